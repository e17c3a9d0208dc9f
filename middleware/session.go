// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"strings"
)

const (
	// AdminCookie holds the admin session token. It carries no expiry, so it
	// ends with the browser session.
	AdminCookie = "admin_session"

	// AdminHeader carries the session token for non-browser clients
	AdminHeader = "X-Admin-Session"

	// DeviceHeader identifies one browser for the poll's one-vote rule
	DeviceHeader = "X-Device-UUID"
)

// SessionValidator reports whether a token belongs to a live admin session.
type SessionValidator interface {
	Validate(token string) error
}

// RequireAdmin rejects requests without a valid admin session with 401.
func RequireAdmin(sessions SessionValidator, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := sessions.Validate(AdminToken(r)); err != nil {
			ErrorResponse(w, http.StatusUnauthorized, "Admin login required")
			return
		}
		next(w, r)
	}
}

// AdminToken returns the session token from the header, then the cookie.
func AdminToken(r *http.Request) string {
	if token := strings.TrimSpace(r.Header.Get(AdminHeader)); token != "" {
		return token
	}
	if c, err := r.Cookie(AdminCookie); err == nil {
		return c.Value
	}
	return ""
}

// SetAdminCookie stores token as a browser-session cookie.
func SetAdminCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     AdminCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearAdminCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AdminCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// DeviceID returns the caller's browser identifier, or "" when absent.
func DeviceID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(DeviceHeader))
}
