// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/rahad-campaign/i18n"
	"github.com/danielhkuo/rahad-campaign/middleware"
	"github.com/danielhkuo/rahad-campaign/models"
	"github.com/danielhkuo/rahad-campaign/submissions"
)

type SubmissionHandler struct {
	pipeline *submissions.Pipeline
}

func NewSubmissionHandler(pipeline *submissions.Pipeline) *SubmissionHandler {
	return &SubmissionHandler{pipeline: pipeline}
}

// CreateVolunteer handles POST /volunteers
func (h *SubmissionHandler) CreateVolunteer(w http.ResponseWriter, r *http.Request) {
	var req models.VolunteerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	record, err := h.pipeline.SubmitVolunteer(r.Context(), req)
	if err != nil {
		submissionError(w, err)
		return
	}

	lang := i18n.FromRequest(r)
	middleware.JSONResponse(w, http.StatusCreated, ack(record.ID, record.Timestamp, lang, i18n.VolunteerAckTitle, i18n.VolunteerAckBody))
}

// CreateProblem handles POST /problems
func (h *SubmissionHandler) CreateProblem(w http.ResponseWriter, r *http.Request) {
	var req models.ProblemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	record, err := h.pipeline.SubmitProblem(r.Context(), req)
	if err != nil {
		submissionError(w, err)
		return
	}

	lang := i18n.FromRequest(r)
	middleware.JSONResponse(w, http.StatusCreated, ack(record.ID, record.Timestamp, lang, i18n.ProblemAckTitle, i18n.ProblemAckBody))
}

// CreateMeeting handles POST /meetings
func (h *SubmissionHandler) CreateMeeting(w http.ResponseWriter, r *http.Request) {
	var req models.MeetingRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	record, err := h.pipeline.SubmitMeeting(r.Context(), req)
	if err != nil {
		submissionError(w, err)
		return
	}

	lang := i18n.FromRequest(r)
	middleware.JSONResponse(w, http.StatusCreated, ack(record.ID, record.Timestamp, lang, i18n.MeetingAckTitle, i18n.MeetingAckBody))
}

func ack(id string, timestamp int64, lang models.Language, titleKey, bodyKey string) models.SubmissionResponse {
	return models.SubmissionResponse{
		ID:        id,
		Timestamp: timestamp,
		Title:     i18n.T(titleKey, lang),
		Message:   i18n.T(bodyKey, lang),
		DisplayMS: models.AckDisplayMillis,
	}
}

func submissionError(w http.ResponseWriter, err error) {
	var verr *submissions.ValidationError
	if errors.As(err, &verr) {
		middleware.ErrorResponse(w, http.StatusBadRequest, verr.Error())
		return
	}
	slog.Error("failed to accept submission", "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save submission")
}
