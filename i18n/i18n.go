// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package i18n

import (
	_ "embed"
	"fmt"
	"net/http"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/rahad-campaign/models"
)

// Message keys
const (
	VolunteerAckTitle    = "volunteer_ack_title"
	VolunteerAckBody     = "volunteer_ack_body"
	ProblemAckTitle      = "problem_ack_title"
	ProblemAckBody       = "problem_ack_body"
	MeetingAckTitle      = "meeting_ack_title"
	MeetingAckBody       = "meeting_ack_body"
	ChatFallbackEmpty    = "chat_fallback_empty"
	ChatFallbackError    = "chat_fallback_error"
	SummaryFailed        = "summary_failed"
	SummaryError         = "summary_error"
	PollQuestion         = "poll_question"
	AdminInvalidPassword = "admin_invalid_password"
)

//go:embed messages.yaml
var messagesYAML []byte

// Catalog maps message keys to their translations.
type Catalog map[string]models.LocalizedString

// Default is the embedded catalog
var Default = mustParse(messagesYAML)

func mustParse(data []byte) Catalog {
	c, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes a YAML catalog and checks that every entry has both languages.
func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse message catalog: %w", err)
	}
	for key, msg := range c {
		if msg.BN == "" || msg.EN == "" {
			return nil, fmt.Errorf("message %q is missing a translation", key)
		}
	}
	return c, nil
}

// T returns the message for key in lang, or the key itself when unknown.
func (c Catalog) T(key string, lang models.Language) string {
	msg, ok := c[key]
	if !ok {
		return key
	}
	return msg.In(lang)
}

// T looks key up in the embedded catalog.
func T(key string, lang models.Language) string {
	return Default.T(key, lang)
}

var supported = []models.Language{models.LangBengali, models.LangEnglish}

var matcher = language.NewMatcher([]language.Tag{language.Bengali, language.English})

// ParseLanguage accepts "bn" or "en"; anything else is not ok.
func ParseLanguage(s string) (models.Language, bool) {
	switch models.Language(s) {
	case models.LangBengali, models.LangEnglish:
		return models.Language(s), true
	}
	return models.LangBengali, false
}

// FromRequest picks the display language: ?lang= first, then
// Accept-Language, then Bengali.
func FromRequest(r *http.Request) models.Language {
	if lang, ok := ParseLanguage(r.URL.Query().Get("lang")); ok {
		return lang
	}

	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return models.LangBengali
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return models.LangBengali
	}
	return supported[idx]
}
