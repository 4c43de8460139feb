// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"log/slog"
	"time"

	"github.com/danielhkuo/qotd/models"
)

// Log is the fallback Notifier used when no chat surface is configured.
// Announcements land in the structured log with the same texts the chat
// surface would carry.
type Log struct{}

func (Log) Purge() {
	slog.Info("announcement", "event", "purge")
}

func (Log) PreAnnounce(postAt time.Time) {
	slog.Info("announcement", "event", "preannounce", "text", formatPreAnnounce(postAt))
}

func (Log) QuestionPosted(q models.Question) {
	slog.Info("announcement", "event", "question_posted", "question_id", q.ID, "text", formatQuestionPosted(q))
}

func (Log) ClosingWarning(closesAt time.Time) {
	slog.Info("announcement", "event", "closing_warning", "text", formatClosingWarning(closesAt))
}

func (Log) SubmissionsClosed(publicCount, anonCount int) {
	slog.Info("announcement", "event", "submissions_closed", "text", formatSubmissionsClosed(publicCount, anonCount))
}

func (Log) VotingOpened(candidates []models.Candidate) {
	slog.Info("announcement", "event", "voting_opened", "candidates", len(candidates))
}

func (Log) NoAnswers() {
	slog.Info("announcement", "event", "no_answers")
}

func (Log) VotingClosed(winners []models.Candidate, maxVotes int) {
	slog.Info("announcement", "event", "voting_closed", "text", formatVotingClosed(winners, maxVotes))
}

func (Log) NoVotes() {
	slog.Info("announcement", "event", "no_votes")
}

func (Log) NothingToTally() {
	slog.Info("announcement", "event", "nothing_to_tally")
}

func (Log) Moderation(refID, questionID, text string) {
	slog.Info("announcement", "event", "moderation", "ref_id", refID, "question_id", questionID)
}
