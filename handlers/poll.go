// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/danielhkuo/rahad-campaign/i18n"
	"github.com/danielhkuo/rahad-campaign/middleware"
	"github.com/danielhkuo/rahad-campaign/models"
	"github.com/danielhkuo/rahad-campaign/poll"
)

type PollHandler struct {
	poll *poll.Poll
}

func NewPollHandler(p *poll.Poll) *PollHandler {
	return &PollHandler{poll: p}
}

// GetPoll handles GET /poll
// Counts are only included once the calling device has voted.
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	view := h.poll.Mount(r.Context(), middleware.DeviceID(r), i18n.FromRequest(r))
	middleware.JSONResponse(w, http.StatusOK, view)
}

// Vote handles POST /poll/votes
func (h *PollHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.OptionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "option_id is required")
		return
	}

	view, err := h.poll.Vote(r.Context(), middleware.DeviceID(r), req.OptionID, i18n.FromRequest(r))
	switch {
	case errors.Is(err, poll.ErrNoDevice):
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Device-UUID header is required")
	case errors.Is(err, poll.ErrUnknownOption):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, poll.ErrAlreadyVoted):
		middleware.JSONResponse(w, http.StatusConflict, view)
	case err != nil:
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
	default:
		middleware.JSONResponse(w, http.StatusOK, view)
	}
}
