// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"os"
	"path/filepath"

	"github.com/danielhkuo/rahad-campaign/assistant"
	"github.com/danielhkuo/rahad-campaign/auth"
	"github.com/danielhkuo/rahad-campaign/cliparse"
	"github.com/danielhkuo/rahad-campaign/handlers"
	"github.com/danielhkuo/rahad-campaign/middleware"
	"github.com/danielhkuo/rahad-campaign/poll"
	"github.com/danielhkuo/rahad-campaign/storage"
	"github.com/danielhkuo/rahad-campaign/submissions"
)

// NewRouter wires every endpoint over the key-value store in db.
// gen and fwd may be nil: the assistant then answers with its fallback
// reply and submissions are only stored locally.
func NewRouter(db *sql.DB, cfg cliparse.Config, gen assistant.Generator, fwd submissions.Forwarder) *http.ServeMux {
	mux := http.NewServeMux()

	kv := storage.NewSQLKV(db)
	pipeline := submissions.NewPipeline(kv, fwd)
	livePoll := poll.New(kv, cfg.PollActivityGap)
	bridge := assistant.NewBridge(gen)
	sessions := auth.NewSessions()

	// Initialize handlers
	submissionHandler := handlers.NewSubmissionHandler(pipeline)
	pollHandler := handlers.NewPollHandler(livePoll)
	assistantHandler := handlers.NewAssistantHandler(bridge)
	adminHandler := handlers.NewAdminHandler(pipeline, livePoll, bridge, sessions, cfg.AdminPassword)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public forms
	mux.HandleFunc("POST /volunteers", middleware.WithLogging(submissionHandler.CreateVolunteer))
	mux.HandleFunc("POST /problems", middleware.WithLogging(submissionHandler.CreateProblem))
	mux.HandleFunc("POST /meetings", middleware.WithLogging(submissionHandler.CreateMeeting))

	// Live poll
	mux.HandleFunc("GET /poll", middleware.WithLogging(pollHandler.GetPoll))
	mux.HandleFunc("POST /poll/votes", middleware.WithLogging(pollHandler.Vote))

	// Campaign assistant
	mux.HandleFunc("POST /assistant/messages", middleware.WithLogging(assistantHandler.SendMessage))

	// Admin session
	mux.HandleFunc("POST /admin/login", middleware.WithLogging(adminHandler.Login))
	mux.HandleFunc("POST /admin/logout", middleware.WithLogging(adminHandler.Logout))

	// Admin views (require a session)
	gated := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdmin(sessions, h))
	}
	mux.HandleFunc("GET /admin", gated(adminHandler.Dashboard))
	mux.HandleFunc("GET /admin/submissions", gated(adminHandler.Submissions))
	mux.HandleFunc("GET /admin/export/{collection}", gated(adminHandler.Export))
	mux.HandleFunc("POST /admin/clear", gated(adminHandler.Clear))
	mux.HandleFunc("POST /admin/analyze", gated(adminHandler.Analyze))

	// Root endpoint
	if cfg.StaticDir != "" {
		mux.Handle("GET /", spaHandler(cfg.StaticDir))
	} else {
		mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("rahad-campaign API v1"))
		})
	}

	return mux
}

// spaHandler serves files from dir and falls back to index.html so the
// site's client-side routes resolve.
func spaHandler(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}
		files.ServeHTTP(w, r)
	})
}
