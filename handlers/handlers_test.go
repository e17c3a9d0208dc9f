// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"testing"
	"time"

	"github.com/danielhkuo/rahad-campaign/assistant"
	"github.com/danielhkuo/rahad-campaign/auth"
	"github.com/danielhkuo/rahad-campaign/poll"
	"github.com/danielhkuo/rahad-campaign/storage"
	"github.com/danielhkuo/rahad-campaign/submissions"
	"github.com/danielhkuo/rahad-campaign/testutil"
)

type testEnv struct {
	kv         storage.KV
	forwarder  *testutil.RecordingForwarder
	generator  *testutil.FakeGenerator
	sessions   *auth.Sessions
	submission *SubmissionHandler
	poll       *PollHandler
	assistant  *AssistantHandler
	admin      *AdminHandler
}

// newTestEnv wires every handler over a fresh SQLite store
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	kv := storage.NewSQLKV(conn)
	fwd := &testutil.RecordingForwarder{}
	gen := &testutil.FakeGenerator{Reply: "ok"}
	sessions := auth.NewSessions()

	pipeline := submissions.NewPipeline(kv, fwd)
	p := poll.New(kv, time.Hour)
	bridge := assistant.NewBridge(gen)

	return &testEnv{
		kv:         kv,
		forwarder:  fwd,
		generator:  gen,
		sessions:   sessions,
		submission: NewSubmissionHandler(pipeline),
		poll:       NewPollHandler(p),
		assistant:  NewAssistantHandler(bridge),
		admin:      NewAdminHandler(pipeline, p, bridge, sessions, cfg.AdminPassword),
	}
}
