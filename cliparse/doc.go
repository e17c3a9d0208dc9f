// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first (github.com/joho/godotenv).
Variables already present in the environment win over the file.

# CLI Flags and Environment Variables

	-p               PORT                  Server port (default: 3318)
	-d               DATABASE_URL          Database URL (default for sqlite: rahad-campaign.db)
	-t               DATABASE_TYPE         sqlite or postgres (default: sqlite)
	-static          STATIC_DIR            Built site served at /
	-admin-password  ADMIN_PASSWORD        Shared admin secret (required)
	-genai-key       GEMINI_API_KEY, API_KEY
	-genai-model     GENAI_MODEL           (default: gemini-3-flash-preview)
	-sheet-url       GOOGLE_SHEET_APP_URL  Spreadsheet sink; empty disables sync
	-sheet-timeout   SHEET_TIMEOUT         (default: 15s)
	-poll-gap        POLL_ACTIVITY_GAP     (default: 30s)

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - ADMIN_PASSWORD is missing
  - DATABASE_URL is missing for postgres
  - PORT, SHEET_TIMEOUT or POLL_ACTIVITY_GAP do not parse
  - the database type is not sqlite or postgres
*/
package cliparse
