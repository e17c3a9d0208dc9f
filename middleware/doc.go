// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /poll", middleware.WithLogging(handler))

Logs request start (method, path, client IP) and completion (status,
duration_ms).

# CORS Middleware

Enable cross-origin requests from the campaign SPA:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, OPTIONS with headers Content-Type, Authorization,
Accept-Language, X-Device-UUID, X-Admin-Session.

# Admin Sessions

Gate staff routes behind a login:

	mux.HandleFunc("GET /admin", middleware.WithLogging(
		middleware.RequireAdmin(sessions, h.Dashboard)))

The token is read from the X-Admin-Session header or the admin_session
cookie set by SetAdminCookie.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.VolunteerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Request Identity

	ip := middleware.GetClientIP(r)  // X-Forwarded-For, X-Real-IP, RemoteAddr
	device := middleware.DeviceID(r) // X-Device-UUID
*/
package middleware
