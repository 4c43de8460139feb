// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"sync"

	"github.com/danielhkuo/qotd/models"
)

// VotingSession holds the frozen candidate list and the live ballots. The
// candidate list never changes after construction; ballots and the tally
// mutate together under one lock so the tally can never drift from the
// ballot map.
type VotingSession struct {
	mu         sync.Mutex
	candidates []models.Candidate
	index      map[string]int // candidate id -> position
	ballots    map[string]string
	tally      map[string]int
	closed     bool
}

// NewVotingSession builds a session from the closed answer session's public
// records, preserving submission order.
func NewVotingSession(records []models.AnswerRecord) (*VotingSession, error) {
	if len(records) == 0 {
		return nil, models.ErrNoCandidates
	}
	v := &VotingSession{
		candidates: make([]models.Candidate, 0, len(records)),
		index:      make(map[string]int, len(records)),
		ballots:    make(map[string]string),
		tally:      make(map[string]int, len(records)),
	}
	for i, r := range records {
		v.candidates = append(v.candidates, models.Candidate{
			UserID:      r.UserID,
			DisplayName: r.DisplayName,
			AnswerText:  r.Text,
		})
		v.index[r.UserID] = i
		v.tally[r.UserID] = 0
	}
	return v, nil
}

// CastVote records or replaces the voter's ballot and returns the full
// tally. Replacing a ballot decrements the old candidate and increments the
// new one as a single step; re-casting for the same candidate is a no-op
// reported as ErrAlreadyVoted.
func (v *VotingSession) CastVote(voterID, candidateID string) ([]models.TallyEntry, error) {
	if voterID == candidateID {
		return nil, models.ErrSelfVote
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return nil, models.ErrVotingClosed
	}
	if _, ok := v.index[candidateID]; !ok {
		return nil, models.ErrCandidateNotFound
	}

	prev, voted := v.ballots[voterID]
	if voted && prev == candidateID {
		return nil, models.ErrAlreadyVoted
	}
	if voted {
		v.tally[prev]--
	}
	v.ballots[voterID] = candidateID
	v.tally[candidateID]++

	return v.tallyLocked(), nil
}

// Close freezes the ballots and returns the candidates at max tally.
// maxVotes == 0 means nobody voted, which is distinct from a tie.
func (v *VotingSession) Close() (winners []string, maxVotes int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.closed = true
	for _, n := range v.tally {
		if n > maxVotes {
			maxVotes = n
		}
	}
	if maxVotes == 0 {
		return nil, 0
	}
	for _, c := range v.candidates {
		if v.tally[c.UserID] == maxVotes {
			winners = append(winners, c.UserID)
		}
	}
	return winners, maxVotes
}

// Candidates returns the frozen candidate list in submission order.
func (v *VotingSession) Candidates() []models.Candidate {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]models.Candidate, len(v.candidates))
	copy(out, v.candidates)
	return out
}

// Tally returns the current tally in candidate order.
func (v *VotingSession) Tally() []models.TallyEntry {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.tallyLocked()
}

// BallotCount reports how many voters currently hold a ballot.
func (v *VotingSession) BallotCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.ballots)
}

func (v *VotingSession) tallyLocked() []models.TallyEntry {
	out := make([]models.TallyEntry, 0, len(v.candidates))
	for _, c := range v.candidates {
		out = append(out, models.TallyEntry{
			CandidateID: c.UserID,
			DisplayName: c.DisplayName,
			Votes:       v.tally[c.UserID],
		})
	}
	return out
}
