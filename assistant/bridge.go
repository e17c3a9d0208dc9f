// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package assistant

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/danielhkuo/rahad-campaign/i18n"
	"github.com/danielhkuo/rahad-campaign/models"
)

//go:embed persona.txt
var persona string

// Chat sampling parameters
var (
	chatTemperature float32 = 0.7
	chatTopP        float32 = 0.95
)

// Bridge turns visitor questions and admin requests into generator calls and
// never fails: errors become localized fallback text.
type Bridge struct {
	gen Generator
}

// NewBridge accepts a nil generator, in which case every call falls back.
func NewBridge(gen Generator) *Bridge {
	return &Bridge{gen: gen}
}

// Persona returns the system instruction used for chat in lang.
func Persona(lang models.Language) string {
	if lang == models.LangEnglish {
		return persona + "\nReply in English."
	}
	return persona + "\nউত্তর অবশ্যই বাংলায় দিন।"
}

func (b *Bridge) SendMessage(ctx context.Context, history []models.ChatMessage, message string, lang models.Language) string {
	if b.gen == nil {
		slog.Warn("assistant not configured")
		return i18n.T(i18n.ChatFallbackError, lang)
	}

	turns := make([]models.ChatMessage, 0, len(history)+1)
	turns = append(turns, history...)
	turns = append(turns, models.ChatMessage{Role: models.RoleUser, Text: message})

	temp, topP := chatTemperature, chatTopP
	reply, err := b.gen.Generate(ctx, Request{
		System:      Persona(lang),
		Turns:       turns,
		Temperature: &temp,
		TopP:        &topP,
	})
	if err != nil {
		slog.Warn("assistant generate failed", "error", err)
		return i18n.T(i18n.ChatFallbackError, lang)
	}
	if strings.TrimSpace(reply) == "" {
		return i18n.T(i18n.ChatFallbackEmpty, lang)
	}
	return reply
}

// Summarize asks for a categorized digest of problem reports with
// recommended actions.
func (b *Bridge) Summarize(ctx context.Context, reports []models.ProblemReport, lang models.Language) string {
	if b.gen == nil {
		slog.Warn("assistant not configured")
		return i18n.T(i18n.SummaryError, lang)
	}

	reply, err := b.gen.Generate(ctx, Request{
		Turns: []models.ChatMessage{{Role: models.RoleUser, Text: SummaryPrompt(reports, lang)}},
	})
	if err != nil {
		slog.Warn("problem summary failed", "error", err, "reports", len(reports))
		return i18n.T(i18n.SummaryError, lang)
	}
	if strings.TrimSpace(reply) == "" {
		return i18n.T(i18n.SummaryFailed, lang)
	}
	return reply
}

func SummaryPrompt(reports []models.ProblemReport, lang models.Language) string {
	language := "Bengali"
	if lang == models.LangEnglish {
		language = "English"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Analyze the following community problem reports from the Bagerhat constituency. "+
		"Group them by category, summarize the most critical issues and list recommended actions. Respond in %s.\n\n", language)
	for _, r := range reports {
		fmt.Fprintf(&sb, "- [%s] at %s: %s\n", r.Category, r.Location, r.Description)
	}
	return sb.String()
}
