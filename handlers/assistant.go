// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"

	"github.com/danielhkuo/rahad-campaign/assistant"
	"github.com/danielhkuo/rahad-campaign/i18n"
	"github.com/danielhkuo/rahad-campaign/middleware"
	"github.com/danielhkuo/rahad-campaign/models"
)

type AssistantHandler struct {
	bridge *assistant.Bridge
}

func NewAssistantHandler(bridge *assistant.Bridge) *AssistantHandler {
	return &AssistantHandler{bridge: bridge}
}

// SendMessage handles POST /assistant/messages
// The client owns the conversation and sends it back on every turn.
func (h *AssistantHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "message is required")
		return
	}

	reply := h.bridge.SendMessage(r.Context(), req.History, message, i18n.FromRequest(r))

	history := make([]models.ChatMessage, 0, len(req.History)+2)
	history = append(history, req.History...)
	history = append(history,
		models.ChatMessage{Role: models.RoleUser, Text: message},
		models.ChatMessage{Role: models.RoleAssistant, Text: reply},
	)

	middleware.JSONResponse(w, http.StatusOK, models.ChatResponse{
		Reply:   reply,
		History: history,
	})
}
