// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidSession  = errors.New("invalid session")
)

// CheckPassword compares the submitted password with the shared admin secret.
func CheckPassword(input, secret string) error {
	if secret == "" || !hmac.Equal([]byte(input), []byte(secret)) {
		return ErrInvalidPassword
	}
	return nil
}

// GenerateSessionToken creates a random secure token for an admin session
func GenerateSessionToken() (string, error) {
	b := make([]byte, 24) // 24 bytes = 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// Sessions tracks authenticated admin sessions for the life of the process.
type Sessions struct {
	mu     sync.Mutex
	tokens map[string]time.Time
}

func NewSessions() *Sessions {
	return &Sessions{tokens: make(map[string]time.Time)}
}

// Create starts a new session and returns its token
func (s *Sessions) Create() (string, error) {
	token, err := GenerateSessionToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.tokens[token] = time.Now()
	s.mu.Unlock()

	return token, nil
}

// Validate returns ErrInvalidSession unless token belongs to a live session
func (s *Sessions) Validate(token string) error {
	if token == "" {
		return ErrInvalidSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tokens[token]; !ok {
		return ErrInvalidSession
	}
	return nil
}

// Revoke ends a session. Unknown tokens are ignored.
func (s *Sessions) Revoke(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}
