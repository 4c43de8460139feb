// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types, request/response types, rank table,
and error taxonomy shared across the QOTD service.

# Domain Types

  - Question: one catalog entry, addressed by day index
  - LedgerEntry: one participant's persistent point row
  - AnswerRecord: one user's live answer for the current day
  - Candidate / TallyEntry: voting session projections
  - DayResult: archived outcome of a completed cycle

# Phases

The day cycle moves through four phases:

	idle → posted → closed → voting → idle

# Ranks

Six tiers derived from insight + contribution totals:

	 0–10  Rice Rookie
	11–25  Miso Mind
	26–40  Sashimi Scholar
	41–75  Wasabi Wizard
	76–99  Sushi Sensei
	 100+  Omakase Master

RankFor is pure; the rank is never stored.

# Errors

Sentinel errors (ErrSelfVote, ErrSubmissionsClosed, ...) cover every
recoverable domain failure. Handlers map them to HTTP status codes; the
scheduler logs and continues.
*/
package models
