// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the admin password gate and session tokens.

# Password Gate

The admin dashboard is protected by one shared secret compared in plaintext
(constant time) against the submitted password:

	if err := auth.CheckPassword(req.Password, cfg.AdminPassword); err != nil {
		// ErrInvalidPassword
	}

This is advisory access control: anyone holding the secret is an admin.

# Sessions

A successful login creates a random 24-byte (192-bit) token:

	sessions := auth.NewSessions()
	token, err := sessions.Create()
	err = sessions.Validate(token)
	sessions.Revoke(token)

Sessions live in memory and end on logout, when the browser drops its session
cookie, or when the process restarts.
*/
package auth
