// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"time"

	"github.com/danielhkuo/qotd/models"
)

// Notifier is the outbound chat surface. Every call is fire-and-forget from
// the core's perspective: implementations report delivery failures by
// logging, never by propagating an error back into the cycle.
type Notifier interface {
	// Purge asks the surface to reset the public channel before a new day.
	Purge()
	// PreAnnounce teases the upcoming question.
	PreAnnounce(postAt time.Time)
	// QuestionPosted publishes the day's question.
	QuestionPosted(q models.Question)
	// ClosingWarning warns that submissions close soon.
	ClosingWarning(closesAt time.Time)
	// SubmissionsClosed announces the end of the answer window.
	SubmissionsClosed(publicCount, anonCount int)
	// VotingOpened presents the candidates.
	VotingOpened(candidates []models.Candidate)
	// NoAnswers announces that the day had nothing to vote on.
	NoAnswers()
	// VotingClosed congratulates the winner or winners.
	VotingClosed(winners []models.Candidate, maxVotes int)
	// NoVotes announces an all-zero tally.
	NoVotes()
	// NothingToTally announces a vote-close trigger with no session.
	NothingToTally()
	// Moderation forwards an anonymous answer to the moderation channel.
	Moderation(refID, questionID, text string)
}
