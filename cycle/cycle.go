// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cycle

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/qotd/catalog"
	"github.com/danielhkuo/qotd/ledger"
	"github.com/danielhkuo/qotd/models"
	"github.com/danielhkuo/qotd/notify"
	"github.com/danielhkuo/qotd/session"
)

// ResultStore archives the outcome of each completed voting day.
type ResultStore interface {
	SaveResult(models.DayResult) error
}

// DayCycle owns the day's phase and the at-most-one answer and voting
// session. The phase field, guarded by mu, is the single source of truth
// for whether submissions or votes are currently accepted; every trigger is
// idempotent and skips with a log line when the expected prior phase is
// absent.
type DayCycle struct {
	mu       sync.Mutex
	phase    string
	catalog  *catalog.Catalog
	ledger   *ledger.Ledger
	notifier notify.Notifier
	results  ResultStore

	answers *session.AnswerSession
	voting  *session.VotingSession
}

// New builds an idle cycle. results may be nil when no archive is wanted.
func New(cat *catalog.Catalog, led *ledger.Ledger, n notify.Notifier, results ResultStore) *DayCycle {
	return &DayCycle{
		phase:    models.PhaseIdle,
		catalog:  cat,
		ledger:   led,
		notifier: n,
		results:  results,
	}
}

// Purge asks the surface to reset before the day starts. No phase change.
func (c *DayCycle) Purge() {
	c.notifier.Purge()
}

// PreAnnounce teases the upcoming post. No phase change.
func (c *DayCycle) PreAnnounce(postAt time.Time) {
	c.notifier.PreAnnounce(postAt)
}

// Post publishes the day's question and opens a fresh answer session. A
// day index outside the catalog means no question today and no state
// change.
func (c *DayCycle) Post(now time.Time) {
	c.mu.Lock()
	if c.phase != models.PhaseIdle {
		slog.Warn("post trigger skipped", "phase", c.phase)
		c.mu.Unlock()
		return
	}
	q, ok := c.catalog.QuestionFor(now)
	if !ok {
		slog.Info("no question for today", "date", now.Format(models.DateLayout))
		c.mu.Unlock()
		return
	}
	c.answers = session.NewAnswerSession(q, c.ledger)
	c.phase = models.PhasePosted
	c.mu.Unlock()

	slog.Info("question posted", "question_id", q.ID)
	c.notifier.QuestionPosted(q)
}

// Warn announces that submissions close soon. Skipped unless a question is
// currently open.
func (c *DayCycle) Warn(closesAt time.Time) {
	c.mu.Lock()
	phase := c.phase
	c.mu.Unlock()
	if phase != models.PhasePosted {
		slog.Warn("closing-warning trigger skipped", "phase", phase)
		return
	}
	c.notifier.ClosingWarning(closesAt)
}

// Close ends the answer window.
func (c *DayCycle) Close() {
	c.mu.Lock()
	if c.phase != models.PhasePosted {
		slog.Warn("close trigger skipped", "phase", c.phase)
		c.mu.Unlock()
		return
	}
	s := c.answers
	c.phase = models.PhaseClosed
	c.mu.Unlock()

	s.Close()
	public := len(s.NonAnonymous())
	slog.Info("submissions closed", "public", public, "anonymous", s.AnonCount())
	c.notifier.SubmissionsClosed(public, s.AnonCount())
}

// VoteOpen builds the voting session from the closed answer session's
// public records. Zero candidates leaves the voting session absent.
func (c *DayCycle) VoteOpen() {
	c.mu.Lock()
	if c.phase != models.PhaseClosed || c.answers == nil {
		slog.Warn("vote-open trigger skipped", "phase", c.phase)
		c.mu.Unlock()
		return
	}
	v, err := session.NewVotingSession(c.answers.NonAnonymous())
	if err != nil {
		// No candidates: stay in closed phase so VoteClose reports the
		// empty day.
		c.mu.Unlock()
		slog.Info("voting not opened", "error", err)
		c.notifier.NoAnswers()
		return
	}
	c.voting = v
	c.phase = models.PhaseVoting
	c.mu.Unlock()

	slog.Info("voting opened", "candidates", len(v.Candidates()))
	c.notifier.VotingOpened(v.Candidates())
}

// VoteClose freezes the ballots, rewards the winner or winners, archives
// the day, and resets to idle.
func (c *DayCycle) VoteClose(now time.Time) {
	c.mu.Lock()
	switch c.phase {
	case models.PhaseVoting:
	case models.PhaseClosed:
		// The day ran but nobody qualified for a vote.
		c.answers = nil
		c.phase = models.PhaseIdle
		c.mu.Unlock()
		slog.Info("vote close with no session")
		c.notifier.NothingToTally()
		return
	default:
		slog.Warn("vote-close trigger skipped", "phase", c.phase)
		c.mu.Unlock()
		return
	}
	v := c.voting
	q := c.answers.Question()
	c.answers = nil
	c.voting = nil
	c.phase = models.PhaseIdle
	c.mu.Unlock()

	winners, maxVotes := v.Close()
	if maxVotes == 0 {
		slog.Info("voting closed with no votes", "question_id", q.ID)
		c.notifier.NoVotes()
		c.archive(q.ID, nil, 0, v)
		return
	}

	winning := make([]models.Candidate, 0, len(winners))
	for _, cand := range v.Candidates() {
		for _, w := range winners {
			if cand.UserID == w {
				winning = append(winning, cand)
			}
		}
	}
	for _, w := range winners {
		if _, err := c.ledger.AwardInsight(w, 1); err != nil {
			slog.Error("failed to award winner", "error", err, "user_id", w)
		}
	}

	slog.Info("voting closed", "question_id", q.ID, "winners", len(winners), "max_votes", maxVotes)
	c.notifier.VotingClosed(winning, maxVotes)
	c.archive(q.ID, winners, maxVotes, v)
}

func (c *DayCycle) archive(questionID string, winners []string, maxVotes int, v *session.VotingSession) {
	if c.results == nil {
		return
	}
	res := models.DayResult{
		ID:         uuid.NewString(),
		QuestionID: questionID,
		Winners:    winners,
		MaxVotes:   maxVotes,
		Candidates: len(v.Candidates()),
		Ballots:    v.BallotCount(),
		ClosedAt:   time.Now(),
	}
	if err := c.results.SaveResult(res); err != nil {
		slog.Error("failed to archive day result", "error", err, "question_id", questionID)
	}
}

// SubmitAnswer routes a submission to the open answer session. Outside the
// posted phase it fails with ErrSubmissionsClosed; the session itself
// rejects once Close has run, so a submission racing the close trigger is
// accepted or rejected deterministically, never lost.
func (c *DayCycle) SubmitAnswer(userID, displayName, text string, anonymous bool) (session.SubmitResult, error) {
	c.mu.Lock()
	if c.phase != models.PhasePosted || c.answers == nil {
		c.mu.Unlock()
		return session.SubmitResult{}, models.ErrSubmissionsClosed
	}
	s := c.answers
	c.mu.Unlock()

	res, err := s.Submit(userID, displayName, text, anonymous)
	if err != nil {
		return session.SubmitResult{}, err
	}
	if anonymous {
		c.notifier.Moderation(res.RefID, s.Question().ID, text)
	}
	return res, nil
}

// CastVote routes a ballot to the open voting session.
func (c *DayCycle) CastVote(voterID, candidateID string) ([]models.TallyEntry, error) {
	c.mu.Lock()
	if c.phase != models.PhaseVoting || c.voting == nil {
		c.mu.Unlock()
		return nil, models.ErrVotingClosed
	}
	v := c.voting
	c.mu.Unlock()

	return v.CastVote(voterID, candidateID)
}

// Status reports the current phase and session counters.
func (c *DayCycle) Status() models.CycleStatusResponse {
	c.mu.Lock()
	answers, voting := c.answers, c.voting
	status := models.CycleStatusResponse{Phase: c.phase}
	c.mu.Unlock()

	if answers != nil {
		q := answers.Question()
		status.QuestionID = q.ID
		status.Question = q.Text
		status.Candidates = len(answers.NonAnonymous())
	}
	if voting != nil {
		status.Candidates = len(voting.Candidates())
		status.Ballots = voting.BallotCount()
	}
	return status
}
