// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/qotd/cliparse"
	"github.com/danielhkuo/qotd/db"
	"github.com/danielhkuo/qotd/models"
)

// SetupTestDB creates a fresh SQLite database with the full schema in the
// test's temp directory. Self-contained: no external database required.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

// GetTestConfig returns a standard test configuration with the production
// schedule offsets.
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:              3318,
		DatabaseType:      "sqlite",
		AdminKeySalt:      "test-admin-salt",
		EpochDate:         "2025-06-25",
		PostTime:          "12:00",
		PurgeBefore:       10 * time.Minute,
		PreAnnounceBefore: 5 * time.Minute,
		WarnAfter:         4*time.Hour + 50*time.Minute,
		CloseAfter:        5 * time.Hour,
		VoteOpenAfter:     5*time.Hour + 5*time.Minute,
		VoteCloseAfter:    6*time.Hour + 10*time.Minute,
	}
}

// FixedClock returns the same instant forever.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time { return c.Instant }

// SpyNotifier records every announcement for assertions.
type SpyNotifier struct {
	mu     sync.Mutex
	Events []string

	LastQuestion   models.Question
	LastCandidates []models.Candidate
	LastWinners    []models.Candidate
	LastMaxVotes   int
	LastRefID      string
	LastModeration string
}

func (s *SpyNotifier) record(event string) {
	s.mu.Lock()
	s.Events = append(s.Events, event)
	s.mu.Unlock()
}

// Seen reports whether the named event was announced.
func (s *SpyNotifier) Seen(event string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.Events {
		if e == event {
			return true
		}
	}
	return false
}

func (s *SpyNotifier) Purge()                       { s.record("purge") }
func (s *SpyNotifier) PreAnnounce(time.Time)        { s.record("preannounce") }
func (s *SpyNotifier) ClosingWarning(time.Time)     { s.record("warn") }
func (s *SpyNotifier) SubmissionsClosed(int, int)   { s.record("closed") }
func (s *SpyNotifier) NoAnswers()                   { s.record("no_answers") }
func (s *SpyNotifier) NoVotes()                     { s.record("no_votes") }
func (s *SpyNotifier) NothingToTally()              { s.record("nothing_to_tally") }

func (s *SpyNotifier) QuestionPosted(q models.Question) {
	s.mu.Lock()
	s.LastQuestion = q
	s.mu.Unlock()
	s.record("posted")
}

func (s *SpyNotifier) VotingOpened(candidates []models.Candidate) {
	s.mu.Lock()
	s.LastCandidates = candidates
	s.mu.Unlock()
	s.record("voting_opened")
}

func (s *SpyNotifier) VotingClosed(winners []models.Candidate, maxVotes int) {
	s.mu.Lock()
	s.LastWinners = winners
	s.LastMaxVotes = maxVotes
	s.mu.Unlock()
	s.record("voting_closed")
}

func (s *SpyNotifier) Moderation(refID, questionID, text string) {
	s.mu.Lock()
	s.LastRefID = refID
	s.LastModeration = text
	s.mu.Unlock()
	s.record("moderation")
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
