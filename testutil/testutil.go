// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/rahad-campaign/assistant"
	"github.com/danielhkuo/rahad-campaign/cliparse"
	"github.com/danielhkuo/rahad-campaign/db"
	"github.com/danielhkuo/rahad-campaign/models"
)

// TestAdminPassword is the admin password in GetTestConfig
const TestAdminPassword = "test-admin-password"

// SetupTestDB creates a fresh SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3318,
		DatabaseType:    db.TypeSQLite,
		AdminPassword:   TestAdminPassword,
		GenAIModel:      cliparse.DefaultGenAIModel,
		SheetTimeout:    time.Second,
		PollActivityGap: cliparse.DefaultPollGap,
	}
}

// FakeGenerator returns a canned reply and records every request
type FakeGenerator struct {
	mu       sync.Mutex
	Reply    string
	Err      error
	Requests []assistant.Request
}

func (f *FakeGenerator) Generate(ctx context.Context, req assistant.Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Requests = append(f.Requests, req)
	return f.Reply, f.Err
}

// Forwarded is one record seen by a RecordingForwarder
type Forwarded struct {
	Kind   models.SubmissionKind
	Record any
}

// RecordingForwarder collects forwarded submissions instead of sending them
type RecordingForwarder struct {
	mu    sync.Mutex
	calls []Forwarded
}

func (f *RecordingForwarder) Forward(kind models.SubmissionKind, record any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Forwarded{Kind: kind, Record: record})
}

func (f *RecordingForwarder) Calls() []Forwarded {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Forwarded(nil), f.calls...)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
