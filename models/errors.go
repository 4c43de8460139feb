// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "errors"

// Domain error taxonomy. All of these are recoverable: they are reported to
// the requester and never abort the scheduler.
var (
	// ErrQuestionNotFound means the referenced question id is absent from
	// the catalog.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrSubmissionsClosed means an answer arrived outside the open window.
	ErrSubmissionsClosed = errors.New("submissions are closed")

	// ErrVotingClosed means a vote arrived while no voting session is open.
	ErrVotingClosed = errors.New("voting is closed")

	// ErrSelfVote means a voter tried to vote for their own answer.
	ErrSelfVote = errors.New("cannot vote for your own answer")

	// ErrAlreadyVoted means the voter re-cast for the candidate they already
	// chose. The tally is unchanged; this is a no-op, not a failure.
	ErrAlreadyVoted = errors.New("already voted for this candidate")

	// ErrCandidateNotFound means the ballot names an unknown candidate.
	ErrCandidateNotFound = errors.New("candidate not found")

	// ErrNoCandidates means voting was requested with zero non-anonymous
	// answers to vote on.
	ErrNoCandidates = errors.New("no candidates to vote on")

	// ErrNoVotes means the tally was all-zero when voting closed.
	ErrNoVotes = errors.New("no votes were cast")
)
