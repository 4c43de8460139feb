// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the QOTD service.

# Handler Types

Each handler is a struct with its domain dependencies:

  - AnswerHandler: answer submission into the open day cycle
  - VoteHandler: ballot casting
  - QuestionHandler: catalog submission and admin list/remove
  - PointsHandler: admin adjustments, participant lookup, leaderboard, ranks
  - CycleHandler: phase status and admin-fired triggers

# Command Flow

The day cycle's phase decides which commands are valid; handlers never
inspect the phase themselves. A submission or ballot outside its window
comes back as a domain error, which maps here to a conflict response:

	ErrSubmissionsClosed, ErrVotingClosed → 409
	ErrSelfVote                           → 400
	ErrAlreadyVoted                       → 409 (no-op)
	ErrCandidateNotFound, ErrQuestionNotFound → 404

Admin operations require the X-Admin-Key header, derived from
ADMIN_KEY_SALT (see the auth package).
*/
package handlers
