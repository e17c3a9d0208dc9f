// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package i18n holds the Bengali/English message catalog and picks the
// display language for a request.
package i18n
