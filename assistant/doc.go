// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package assistant bridges the campaign site to a generative model.
//
// The Bridge answers visitor questions with the campaign persona and writes
// admin summaries of problem reports. Conversations are not persisted; the
// caller sends the full history on every turn.
package assistant
