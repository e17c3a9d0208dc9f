// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package admin builds the read-only staff view of stored submissions:
// the dashboard, CSV exports and rendered AI summaries.
package admin
