// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Rahad campaign site API.

The service backs a bilingual (Bengali/English) campaign site: volunteer,
problem and meeting forms mirrored to a spreadsheet, a "top priority" poll
with simulated live activity, a generative-AI campaign assistant and a
password-gated admin view with CSV export and AI summaries.

# Starting the Server

The server reads CLI flags, then environment variables, then an optional
.env file:

	ADMIN_PASSWORD=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -admin-password ...

# Configuration

Required settings:

  - ADMIN_PASSWORD (-admin-password): Shared admin dashboard password

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): DSN (default: rahad-campaign.db for sqlite)
  - GEMINI_API_KEY or API_KEY (-genai-key): Assistant key
  - GENAI_MODEL (-genai-model): Model id (default: gemini-3-flash-preview)
  - GOOGLE_SHEET_APP_URL (-sheet-url): Spreadsheet web app endpoint
  - SHEET_TIMEOUT (-sheet-timeout): Spreadsheet request timeout (default: 15s)
  - POLL_ACTIVITY_GAP (-poll-gap): Simulated poll activity gap (default: 30s)
  - STATIC_DIR (-static): Built site served at /

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (submissions, poll, assistant, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, admin sessions
  - submissions: Form validation and storage
  - poll: The simulated live poll
  - assistant: Generative model bridge
  - admin: Dashboard view, CSV export, summary rendering
  - sheets: Spreadsheet sync
  - storage: Key-value store and JSON collections
  - i18n: Localized strings and language negotiation
  - models: Request/response and record types
  - auth: Password check and session tokens
  - db: Connection and schema
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
