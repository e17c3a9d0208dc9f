// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP handlers for the campaign site API.

# Submissions

SubmissionHandler accepts the three public forms:

  - POST /volunteers: volunteer sign-up (name, phone, area required)
  - POST /problems: local problem report (location, description required)
  - POST /meetings: courtyard meeting invitation (isCommitted must be true)

Each returns 201 with a localized acknowledgment the frontend shows for
display_ms milliseconds. The record is mirrored to the spreadsheet in the
background.

# Poll

PollHandler serves the "top priority" widget. The browser is identified by
the X-Device-UUID header.

  - GET /poll: options, plus counts and percentages once the device voted
  - POST /poll/votes: one vote per device (409 on a repeat)

# Assistant

AssistantHandler relays POST /assistant/messages to the generative model
with the campaign persona. Nothing is stored; the full history travels with
each request.

# Admin

AdminHandler serves the staff view. Login compares against the shared
password and sets a browser-session cookie; every other admin route sits
behind middleware.RequireAdmin.

  - GET /admin, GET /admin/submissions
  - GET /admin/export/{collection}: volunteers, problems or meetings as CSV
  - POST /admin/clear: wipe the three collections
  - POST /admin/analyze: AI summary of problem reports

# Language

Every handler resolves the response language with i18n.FromRequest:
the lang query parameter, then Accept-Language, then Bengali.
*/
package handlers
