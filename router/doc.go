// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the campaign site API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, generator, forwarder)

# Endpoints

Health:

	GET /health

Public forms (201 with a localized acknowledgment):

	POST /volunteers - Volunteer sign-up
	POST /problems   - Local problem report
	POST /meetings   - Courtyard meeting invitation

Live poll (browser identified by X-Device-UUID):

	GET  /poll       - Question and options; counts once voted
	POST /poll/votes - Cast the device's single vote

Assistant:

	POST /assistant/messages - One conversational turn

Admin (everything except login requires a session):

	POST /admin/login                - Exchange the password for a session
	POST /admin/logout               - End the session
	GET  /admin                      - HTML dashboard
	GET  /admin/submissions          - Dashboard data as JSON
	GET  /admin/export/{collection}  - volunteers, problems or meetings as CSV
	POST /admin/clear                - Wipe all submissions
	POST /admin/analyze              - AI summary of problem reports

Root:

	GET / - The built site when STATIC_DIR is set, otherwise a banner

# Handler Initialization

The router builds the domain services once over the shared store and
injects them into the handlers:

	kv := storage.NewSQLKV(db)
	pipeline := submissions.NewPipeline(kv, fwd)
	livePoll := poll.New(kv, cfg.PollActivityGap)
*/
package router
