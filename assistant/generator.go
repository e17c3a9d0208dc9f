// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package assistant

import (
	"context"

	"github.com/danielhkuo/rahad-campaign/models"
)

// Generator produces one model reply for a conversation.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Request is a single generation call. Nil sampling fields use the model
// defaults.
type Request struct {
	System      string
	Turns       []models.ChatMessage
	Temperature *float32
	TopP        *float32
}
