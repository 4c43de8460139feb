// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cycle

import (
	"errors"
	"testing"
	"time"

	"github.com/danielhkuo/qotd/catalog"
	"github.com/danielhkuo/qotd/ledger"
	"github.com/danielhkuo/qotd/models"
	"github.com/danielhkuo/qotd/testutil"
)

func testDay(t *testing.T) (*DayCycle, *ledger.Ledger, *testutil.SpyNotifier, time.Time) {
	t.Helper()
	epoch, err := time.Parse(models.DateLayout, "2025-06-25")
	if err != nil {
		t.Fatalf("Bad epoch: %v", err)
	}
	cat := catalog.New(nil, epoch)
	cat.Add("What is your favorite roll?", "")
	led := ledger.New(nil)
	spy := &testutil.SpyNotifier{}
	return New(cat, led, spy, nil), led, spy, epoch
}

func TestPostOpensSubmissions(t *testing.T) {
	dc, _, spy, epoch := testDay(t)

	dc.Post(epoch)

	status := dc.Status()
	if status.Phase != models.PhasePosted {
		t.Errorf("Expected posted phase, got %s", status.Phase)
	}
	if status.QuestionID != "1" {
		t.Errorf("Expected question 1 posted, got %s", status.QuestionID)
	}
	if !spy.Seen("posted") {
		t.Error("Expected the posted announcement")
	}
	if spy.LastQuestion.Text != "What is your favorite roll?" {
		t.Errorf("Unexpected announced question: %q", spy.LastQuestion.Text)
	}
}

func TestPostIsIdempotent(t *testing.T) {
	dc, _, spy, epoch := testDay(t)

	dc.Post(epoch)
	dc.Post(epoch)

	count := 0
	for _, e := range spy.Events {
		if e == "posted" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected a single posted announcement, got %d", count)
	}
}

func TestPostWithNoQuestionForDay(t *testing.T) {
	dc, _, spy, epoch := testDay(t)

	// Day index past the end of the catalog.
	dc.Post(epoch.AddDate(0, 0, 30))

	if got := dc.Status().Phase; got != models.PhaseIdle {
		t.Errorf("Expected cycle to stay idle, got %s", got)
	}
	if spy.Seen("posted") {
		t.Error("Expected no announcement when the catalog has run out")
	}
}

func TestSubmitOutsidePostedPhase(t *testing.T) {
	dc, _, _, _ := testDay(t)

	_, err := dc.SubmitAnswer("alice", "Alice", "Too early.", false)
	if !errors.Is(err, models.ErrSubmissionsClosed) {
		t.Errorf("Expected ErrSubmissionsClosed while idle, got %v", err)
	}
}

func TestAnonymousSubmitNotifiesModeration(t *testing.T) {
	dc, _, spy, epoch := testDay(t)
	dc.Post(epoch)

	res, err := dc.SubmitAnswer("alice", "Alice", "Rather not say.", true)
	if err != nil {
		t.Fatalf("Anonymous submit failed: %v", err)
	}
	if !spy.Seen("moderation") {
		t.Error("Expected a moderation notification")
	}
	if spy.LastRefID != res.RefID {
		t.Errorf("Expected moderation ref %s, got %s", res.RefID, spy.LastRefID)
	}
}

func TestVoteOpenWithNoAnswers(t *testing.T) {
	dc, _, spy, epoch := testDay(t)

	dc.Post(epoch)
	dc.Close()
	dc.VoteOpen()

	if got := dc.Status().Phase; got != models.PhaseClosed {
		t.Errorf("Expected cycle to stay closed with zero candidates, got %s", got)
	}
	if !spy.Seen("no_answers") {
		t.Error("Expected the no-answers announcement")
	}

	// The eventual vote-close then reports the empty day and resets.
	dc.VoteClose(epoch)
	if got := dc.Status().Phase; got != models.PhaseIdle {
		t.Errorf("Expected idle after empty-day vote close, got %s", got)
	}
	if !spy.Seen("nothing_to_tally") {
		t.Error("Expected the nothing-to-tally announcement")
	}
}

func TestVoteCloseWithNoBallots(t *testing.T) {
	dc, led, spy, epoch := testDay(t)

	dc.Post(epoch)
	dc.SubmitAnswer("alice", "Alice", "Spicy tuna.", false)
	dc.Close()
	dc.VoteOpen()
	dc.VoteClose(epoch)

	if !spy.Seen("no_votes") {
		t.Error("Expected the no-votes announcement")
	}
	// Submission point stands, but there is no winner point.
	if got := led.Entry("alice").InsightPoints; got != 1 {
		t.Errorf("Expected alice at 1 insight point, got %d", got)
	}
}

func TestTriggersSkipOutOfOrder(t *testing.T) {
	dc, _, spy, epoch := testDay(t)

	// Close and vote-open before anything was posted.
	dc.Close()
	dc.VoteOpen()
	dc.VoteClose(epoch)

	if got := dc.Status().Phase; got != models.PhaseIdle {
		t.Errorf("Expected out-of-order triggers to leave the cycle idle, got %s", got)
	}
	if spy.Seen("closed") || spy.Seen("voting_opened") {
		t.Error("Expected skipped triggers to announce nothing")
	}
}

func TestFullDay(t *testing.T) {
	dc, led, spy, epoch := testDay(t)

	dc.Purge()
	dc.PreAnnounce(epoch.Add(12 * time.Hour))
	dc.Post(epoch)

	if _, err := dc.SubmitAnswer("alice", "Alice", "Spicy tuna.", false); err != nil {
		t.Fatalf("alice submit failed: %v", err)
	}
	if _, err := dc.SubmitAnswer("bob", "Bob", "Salmon.", false); err != nil {
		t.Fatalf("bob submit failed: %v", err)
	}
	if _, err := dc.SubmitAnswer("mallory", "Mallory", "No names please.", true); err != nil {
		t.Fatalf("anonymous submit failed: %v", err)
	}

	dc.Warn(epoch.Add(17 * time.Hour))
	dc.Close()

	if _, err := dc.SubmitAnswer("late", "Late", "Missed it.", false); !errors.Is(err, models.ErrSubmissionsClosed) {
		t.Errorf("Expected late submission rejected, got %v", err)
	}

	dc.VoteOpen()
	if got := len(spy.LastCandidates); got != 2 {
		t.Fatalf("Expected 2 candidates on the ballot, got %d", got)
	}

	if _, err := dc.CastVote("carol", "alice"); err != nil {
		t.Fatalf("carol vote failed: %v", err)
	}
	if _, err := dc.CastVote("dave", "alice"); err != nil {
		t.Fatalf("dave vote failed: %v", err)
	}

	dc.VoteClose(epoch)

	if got := dc.Status().Phase; got != models.PhaseIdle {
		t.Errorf("Expected idle after vote close, got %s", got)
	}
	if len(spy.LastWinners) != 1 || spy.LastWinners[0].UserID != "alice" {
		t.Errorf("Expected alice announced as winner, got %v", spy.LastWinners)
	}
	if spy.LastMaxVotes != 2 {
		t.Errorf("Expected winning tally of 2, got %d", spy.LastMaxVotes)
	}

	// One point for answering, one for winning.
	if got := led.Entry("alice").InsightPoints; got != 2 {
		t.Errorf("Expected alice at 2 insight points, got %d", got)
	}
	if got := led.Entry("bob").InsightPoints; got != 1 {
		t.Errorf("Expected bob at 1 insight point, got %d", got)
	}
	// The anonymous submitter earned nothing.
	if got := led.Entry("mallory").InsightPoints; got != 0 {
		t.Errorf("Expected mallory at 0 insight points, got %d", got)
	}
}

type memResults struct {
	saved []models.DayResult
}

func (m *memResults) SaveResult(r models.DayResult) error {
	m.saved = append(m.saved, r)
	return nil
}

func TestVoteCloseArchivesResult(t *testing.T) {
	epoch, _ := time.Parse(models.DateLayout, "2025-06-25")
	cat := catalog.New(nil, epoch)
	cat.Add("What is your favorite roll?", "")
	led := ledger.New(nil)
	results := &memResults{}
	dc := New(cat, led, &testutil.SpyNotifier{}, results)

	dc.Post(epoch)
	dc.SubmitAnswer("alice", "Alice", "Spicy tuna.", false)
	dc.SubmitAnswer("bob", "Bob", "Salmon.", false)
	dc.Close()
	dc.VoteOpen()
	dc.CastVote("carol", "bob")
	dc.VoteClose(epoch)

	if len(results.saved) != 1 {
		t.Fatalf("Expected 1 archived result, got %d", len(results.saved))
	}
	r := results.saved[0]
	if r.QuestionID != "1" || len(r.Winners) != 1 || r.Winners[0] != "bob" {
		t.Errorf("Unexpected archived result: %+v", r)
	}
	if r.Candidates != 2 || r.Ballots != 1 || r.MaxVotes != 1 {
		t.Errorf("Unexpected archived counters: %+v", r)
	}
}
