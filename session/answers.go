// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/qotd/ledger"
	"github.com/danielhkuo/qotd/models"
)

// AnswerSession collects answers for the day's open question. Public
// (non-anonymous) answers are last-write-wins per user and feed the voting
// session; anonymous answers go to a moderation sink and never score.
type AnswerSession struct {
	mu       sync.Mutex
	question models.Question
	ledger   *ledger.Ledger
	open     bool

	records map[string]models.AnswerRecord
	order   []string // public submission order, one slot per user
	anon    []models.AnswerRecord
}

// SubmitResult is what a submission echoes back to the user.
type SubmitResult struct {
	Entry   models.LedgerEntry
	Awarded bool
	RefID   string // moderation reference for anonymous answers
}

// NewAnswerSession opens a fresh session bound to the given question.
func NewAnswerSession(q models.Question, led *ledger.Ledger) *AnswerSession {
	return &AnswerSession{
		question: q,
		ledger:   led,
		open:     true,
		records:  make(map[string]models.AnswerRecord),
	}
}

// Question returns the bound question.
func (s *AnswerSession) Question() models.Question {
	return s.question
}

// Submit records an answer. A later submission from the same user replaces
// the displayed text, but only the first ever completion of this question
// scores: repeat answers never re-award (checked through the ledger's
// answered set).
func (s *AnswerSession) Submit(userID, displayName, text string, anonymous bool) (SubmitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return SubmitResult{}, models.ErrSubmissionsClosed
	}

	rec := models.AnswerRecord{
		QuestionID:  s.question.ID,
		UserID:      userID,
		DisplayName: displayName,
		Text:        text,
		Anonymous:   anonymous,
		SubmittedAt: time.Now(),
	}

	if anonymous {
		s.anon = append(s.anon, rec)
		return SubmitResult{
			Entry: s.ledger.Entry(userID),
			RefID: uuid.NewString(),
		}, nil
	}

	if _, seen := s.records[userID]; !seen {
		s.order = append(s.order, userID)
	}
	s.records[userID] = rec

	entry, awarded, err := s.ledger.RecordAnswer(userID, s.question.ID)
	if err != nil {
		// The answer text is kept; only the point award failed.
		return SubmitResult{}, err
	}
	return SubmitResult{Entry: entry, Awarded: awarded}, nil
}

// Close stops accepting submissions. Idempotent.
func (s *AnswerSession) Close() {
	s.mu.Lock()
	s.open = false
	s.mu.Unlock()
}

// NonAnonymous returns the public records in first-submission order.
func (s *AnswerSession) NonAnonymous() []models.AnswerRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.AnswerRecord, 0, len(s.order))
	for _, userID := range s.order {
		out = append(out, s.records[userID])
	}
	return out
}

// AnonCount reports how many anonymous answers arrived.
func (s *AnswerSession) AnonCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.anon)
}
