// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - VolunteerRequest: name, phone, email, area, skills
  - ProblemRequest: category, location, description, contact
  - MeetingRequest: name, phone, location, peopleCount, isCommitted
  - VoteRequest: option_id
  - ChatRequest: history, message
  - LoginRequest: password

# Response Types

  - SubmissionResponse: id, timestamp, localized title/message, display_ms
  - ChatResponse: reply, history
  - LoginResponse: authenticated, token
  - PollView: localized options, counts only after voting
  - AnalysisResponse: summary, summary_html
  - ErrorResponse: error, message

# Domain Types

  - VolunteerSubmission, ProblemReport, MeetingInvitation: flat submission
    records keyed by a generated id, timestamps in Unix milliseconds
  - ChatMessage: one conversation turn, never persisted
  - PollOption: displayed vote count for one poll option

Submission records implement CSVHeader and CSVValues for admin export.
*/
package models
