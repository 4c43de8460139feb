// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"sync"

	"github.com/danielhkuo/qotd/models"
)

// Store is the persistence boundary for ledger entries. File, KV, and SQL
// backends all satisfy it.
type Store interface {
	Load() ([]models.LedgerEntry, error)
	Put(models.LedgerEntry) error
}

// Ledger holds every participant's points and answered-question history.
// All mutations are serialized behind one mutex and written through the
// store before the in-memory entry is replaced (persist-before-ack): a
// failed save leaves memory untouched and surfaces the error.
type Ledger struct {
	mu      sync.Mutex
	store   Store
	entries map[string]models.LedgerEntry
}

// New loads existing entries from the store. A load failure is logged and
// the ledger starts empty rather than blocking startup. A nil store keeps
// the ledger memory-only.
func New(store Store) *Ledger {
	l := &Ledger{
		store:   store,
		entries: make(map[string]models.LedgerEntry),
	}
	if store == nil {
		return l
	}
	entries, err := store.Load()
	if err != nil {
		slog.Warn("ledger load failed, starting empty", "error", err)
		return l
	}
	for _, e := range entries {
		l.entries[e.UserID] = e
	}
	return l
}

// get returns a detached copy of the entry, creating a zero entry for
// unknown users. Callers must hold l.mu.
func (l *Ledger) get(userID string) models.LedgerEntry {
	e, ok := l.entries[userID]
	if !ok {
		return models.LedgerEntry{UserID: userID}
	}
	e.Answered = slices.Clone(e.Answered)
	return e
}

// mutate applies fn to a copy of the entry as one atomic read-modify-write.
// fn reports whether it changed anything; unchanged entries are not saved.
func (l *Ledger) mutate(userID string, fn func(*models.LedgerEntry) bool) (models.LedgerEntry, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.get(userID)
	changed := fn(&e)
	if !changed {
		return e, false, nil
	}
	if l.store != nil {
		if err := l.store.Put(e); err != nil {
			return l.get(userID), false, fmt.Errorf("failed to save ledger entry: %w", err)
		}
	}
	l.entries[userID] = e
	return e, true, nil
}

// Entry returns the participant's current row. Unknown users get a zero row.
func (l *Ledger) Entry(userID string) models.LedgerEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.get(userID)
}

// AwardInsight adds n insight points.
func (l *Ledger) AwardInsight(userID string, n int) (models.LedgerEntry, error) {
	e, _, err := l.mutate(userID, func(e *models.LedgerEntry) bool {
		e.InsightPoints += n
		return n != 0
	})
	return e, err
}

// AwardContribution adds n contribution points.
func (l *Ledger) AwardContribution(userID string, n int) (models.LedgerEntry, error) {
	e, _, err := l.mutate(userID, func(e *models.LedgerEntry) bool {
		e.ContributionPoints += n
		return n != 0
	})
	return e, err
}

// RemoveInsight subtracts n insight points, flooring at zero.
func (l *Ledger) RemoveInsight(userID string, n int) (models.LedgerEntry, error) {
	e, _, err := l.mutate(userID, func(e *models.LedgerEntry) bool {
		e.InsightPoints = max(0, e.InsightPoints-n)
		return n != 0
	})
	return e, err
}

// RemoveContribution subtracts n contribution points, flooring at zero.
func (l *Ledger) RemoveContribution(userID string, n int) (models.LedgerEntry, error) {
	e, _, err := l.mutate(userID, func(e *models.LedgerEntry) bool {
		e.ContributionPoints = max(0, e.ContributionPoints-n)
		return n != 0
	})
	return e, err
}

// Adjust applies a signed delta to the given point kind.
func (l *Ledger) Adjust(userID, kind string, delta int) (models.LedgerEntry, error) {
	switch {
	case kind == models.KindInsight && delta >= 0:
		return l.AwardInsight(userID, delta)
	case kind == models.KindInsight:
		return l.RemoveInsight(userID, -delta)
	case kind == models.KindContribution && delta >= 0:
		return l.AwardContribution(userID, delta)
	case kind == models.KindContribution:
		return l.RemoveContribution(userID, -delta)
	}
	return models.LedgerEntry{}, fmt.Errorf("unknown point kind %q", kind)
}

// RecordAnswer awards one insight point iff the question id was absent from
// the user's answered set immediately before insertion. The second return
// reports whether this was a new award; repeat calls never re-award.
func (l *Ledger) RecordAnswer(userID, questionID string) (models.LedgerEntry, bool, error) {
	return l.mutate(userID, func(e *models.LedgerEntry) bool {
		if slices.Contains(e.Answered, questionID) {
			return false
		}
		e.Answered = append(e.Answered, questionID)
		e.InsightPoints++
		return true
	})
}

// RecordContributionIfFirstToday awards one contribution point unless the
// user already earned one on the given calendar date.
func (l *Ledger) RecordContributionIfFirstToday(userID, today string) (models.LedgerEntry, bool, error) {
	return l.mutate(userID, func(e *models.LedgerEntry) bool {
		if e.LastContribution == today {
			return false
		}
		e.ContributionPoints++
		e.LastContribution = today
		return true
	})
}

// Leaderboard returns one page of the requested category, ten rows per page.
// Zero-point rows are hidden; rows sort by points descending with user id as
// the deterministic tiebreak. The page is clamped into range.
func (l *Ledger) Leaderboard(category string, page int) ([]models.LeaderboardRow, int) {
	const perPage = 10

	l.mu.Lock()
	rows := make([]models.LeaderboardRow, 0, len(l.entries))
	for _, e := range l.entries {
		var row models.LeaderboardRow
		switch category {
		case models.CategoryInsight:
			if e.InsightPoints == 0 {
				continue
			}
			row = models.LeaderboardRow{UserID: e.UserID, Points: e.InsightPoints}
		case models.CategoryContribution:
			if e.ContributionPoints == 0 {
				continue
			}
			row = models.LeaderboardRow{UserID: e.UserID, Points: e.ContributionPoints}
		default:
			if e.Total() == 0 {
				continue
			}
			row = models.LeaderboardRow{
				UserID:       e.UserID,
				Insight:      e.InsightPoints,
				Contribution: e.ContributionPoints,
				Points:       e.Total(),
			}
		}
		// Rank is always computed over the combined total, whatever the
		// category ranks by.
		row.Rank = models.RankFor(e.Total())
		rows = append(rows, row)
	}
	l.mu.Unlock()

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		return rows[i].UserID < rows[j].UserID
	})

	pages := 1
	if len(rows) > 0 {
		pages = (len(rows)-1)/perPage + 1
	}
	page = max(0, min(page, pages-1))

	start := page * perPage
	end := min(start+perPage, len(rows))
	out := make([]models.LeaderboardRow, 0, perPage)
	for i := start; i < end; i++ {
		rows[i].Position = i + 1
		out = append(out, rows[i])
	}
	return out, pages
}
