// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/rahad-campaign/admin"
	"github.com/danielhkuo/rahad-campaign/assistant"
	"github.com/danielhkuo/rahad-campaign/auth"
	"github.com/danielhkuo/rahad-campaign/i18n"
	"github.com/danielhkuo/rahad-campaign/middleware"
	"github.com/danielhkuo/rahad-campaign/models"
	"github.com/danielhkuo/rahad-campaign/poll"
	"github.com/danielhkuo/rahad-campaign/storage"
	"github.com/danielhkuo/rahad-campaign/submissions"
)

type AdminHandler struct {
	pipeline *submissions.Pipeline
	poll     *poll.Poll
	bridge   *assistant.Bridge
	sessions *auth.Sessions
	password string
	now      func() time.Time
}

func NewAdminHandler(pipeline *submissions.Pipeline, p *poll.Poll, bridge *assistant.Bridge, sessions *auth.Sessions, password string) *AdminHandler {
	return &AdminHandler{
		pipeline: pipeline,
		poll:     p,
		bridge:   bridge,
		sessions: sessions,
		password: password,
		now:      time.Now,
	}
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := auth.CheckPassword(req.Password, h.password); err != nil {
		slog.Warn("admin login rejected", "remote", middleware.GetClientIP(r))
		middleware.JSONResponse(w, http.StatusUnauthorized, models.LoginResponse{
			Authenticated: false,
			Error:         "invalid_password",
			Message:       i18n.T(i18n.AdminInvalidPassword, i18n.FromRequest(r)),
			ClearPassword: true,
		})
		return
	}

	token, err := h.sessions.Create()
	if err != nil {
		slog.Error("failed to create admin session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start session")
		return
	}
	middleware.SetAdminCookie(w, token)

	slog.Info("admin logged in", "remote", middleware.GetClientIP(r))

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Authenticated: true,
		Token:         token,
	})
}

// Logout handles POST /admin/logout
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Revoke(middleware.AdminToken(r))
	middleware.ClearAdminCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// Dashboard handles GET /admin
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := admin.RenderDashboard(&buf, h.view(r)); err != nil {
		slog.Error("failed to render dashboard", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render dashboard")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

// Submissions handles GET /admin/submissions
func (h *AdminHandler) Submissions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	middleware.JSONResponse(w, http.StatusOK, h.view(r))
}

// Export handles GET /admin/export/{collection}
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	collection := r.PathValue("collection")
	ctx := r.Context()

	var buf bytes.Buffer
	var err error
	switch collection {
	case storage.KeyVolunteers:
		err = admin.WriteCSV(&buf, h.pipeline.Volunteers(ctx))
	case storage.KeyProblems:
		err = admin.WriteCSV(&buf, h.pipeline.Problems(ctx))
	case storage.KeyMeetings:
		err = admin.WriteCSV(&buf, h.pipeline.Meetings(ctx))
	default:
		middleware.ErrorResponse(w, http.StatusNotFound, "unknown collection")
		return
	}
	if err != nil {
		slog.Error("failed to export collection", "collection", collection, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to export")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", admin.ExportFilename(collection)))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

// Clear handles POST /admin/clear
// Poll counts and device vote flags survive.
func (h *AdminHandler) Clear(w http.ResponseWriter, r *http.Request) {
	cleared, err := h.pipeline.Clear(r.Context())
	if err != nil {
		slog.Error("failed to clear submissions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to clear submissions")
		return
	}
	slog.Warn("admin cleared submissions", "collections", cleared, "remote", middleware.GetClientIP(r))
	middleware.JSONResponse(w, http.StatusOK, models.ClearResponse{Cleared: cleared})
}

// Analyze handles POST /admin/analyze
func (h *AdminHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	problems := h.pipeline.Problems(ctx)
	if len(problems) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "no problem reports to analyze")
		return
	}

	summary := h.bridge.Summarize(ctx, problems, i18n.FromRequest(r))

	middleware.JSONResponse(w, http.StatusOK, models.AnalysisResponse{
		Summary:     summary,
		SummaryHTML: string(admin.RenderMarkdown(summary)),
	})
}

func (h *AdminHandler) view(r *http.Request) admin.View {
	ctx := r.Context()
	return admin.BuildView(admin.Input{
		Volunteers: h.pipeline.Volunteers(ctx),
		Problems:   h.pipeline.Problems(ctx),
		Meetings:   h.pipeline.Meetings(ctx),
		Options:    poll.DefaultOptions(),
		Tally:      h.poll.Tally(ctx),
	}, h.now(), i18n.FromRequest(r))
}
