// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Day-cycle phase constants
const (
	PhaseIdle   = "idle"
	PhasePosted = "posted"
	PhaseClosed = "closed"
	PhaseVoting = "voting"
)

// Point kind constants
const (
	KindInsight      = "insight"
	KindContribution = "contribution"
)

// Leaderboard category constants
const (
	CategoryAll          = "all"
	CategoryInsight      = "insight"
	CategoryContribution = "contribution"
)

// DateLayout is the calendar-date format used for contribution tracking
// and the catalog epoch.
const DateLayout = "2006-01-02"

// Domain types

type Question struct {
	ID        string  `json:"id"`
	Text      string  `json:"question"`
	Submitter *string `json:"submitter,omitempty"`
}

// LedgerEntry is one participant's persistent score row.
// Rank is always derived from the point sum, never stored.
type LedgerEntry struct {
	UserID             string   `json:"user_id"`
	InsightPoints      int      `json:"insight_points"`
	ContributionPoints int      `json:"contribution_points"`
	Answered           []string `json:"answered"`
	LastContribution   string   `json:"last_contribution,omitempty"`
}

func (e LedgerEntry) Total() int {
	return e.InsightPoints + e.ContributionPoints
}

// AnswerRecord is one user's live answer for the current day.
// Replaced wholesale on re-submission; never persisted past the day.
type AnswerRecord struct {
	QuestionID  string    `json:"question_id"`
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Text        string    `json:"text"`
	Anonymous   bool      `json:"anonymous"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type Candidate struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	AnswerText  string `json:"answer_text"`
}

type TallyEntry struct {
	CandidateID string `json:"candidate_id"`
	DisplayName string `json:"display_name"`
	Votes       int    `json:"votes"`
}

// DayResult is the archived outcome of one completed voting cycle.
type DayResult struct {
	ID         string    `json:"id"`
	QuestionID string    `json:"question_id"`
	Winners    []string  `json:"winners"`
	MaxVotes   int       `json:"max_votes"`
	Candidates int       `json:"candidates"`
	Ballots    int       `json:"ballots"`
	ClosedAt   time.Time `json:"closed_at"`
}

// Request types

type SubmitAnswerRequest struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Text        string `json:"text"`
	Anonymous   bool   `json:"anonymous"`
}

type CastVoteRequest struct {
	VoterID     string `json:"voter_id"`
	CandidateID string `json:"candidate_id"`
}

type SubmitQuestionRequest struct {
	UserID   string `json:"user_id"`
	Question string `json:"question"`
}

type AdjustPointsRequest struct {
	UserID string `json:"user_id"`
	Kind   string `json:"kind"`
	Delta  int    `json:"delta"`
}

// Response types

type SubmitAnswerResponse struct {
	Insight      int    `json:"insight_points"`
	Contribution int    `json:"contribution_points"`
	Rank         string `json:"rank"`
	Awarded      bool   `json:"awarded"`
	RefID        string `json:"ref_id,omitempty"`
}

type CastVoteResponse struct {
	Tally []TallyEntry `json:"tally"`
}

type SubmitQuestionResponse struct {
	QuestionID string `json:"question_id"`
	Awarded    bool   `json:"awarded"`
}

type EntryResponse struct {
	UserID       string `json:"user_id"`
	Insight      int    `json:"insight_points"`
	Contribution int    `json:"contribution_points"`
	Total        int    `json:"total"`
	Rank         string `json:"rank"`
}

type LeaderboardRow struct {
	Position     int    `json:"position"`
	UserID       string `json:"user_id"`
	Insight      int    `json:"insight_points,omitempty"`
	Contribution int    `json:"contribution_points,omitempty"`
	Points       int    `json:"points"`
	Rank         string `json:"rank"`
}

type LeaderboardResponse struct {
	Category string           `json:"category"`
	Page     int              `json:"page"`
	Pages    int              `json:"pages"`
	Entries  []LeaderboardRow `json:"entries"`
}

type CycleStatusResponse struct {
	Phase      string `json:"phase"`
	QuestionID string `json:"question_id,omitempty"`
	Question   string `json:"question,omitempty"`
	Candidates int    `json:"candidates"`
	Ballots    int    `json:"ballots"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
