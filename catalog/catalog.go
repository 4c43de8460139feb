// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/danielhkuo/qotd/models"
)

// Store is the persistence boundary for the question catalog.
type Store interface {
	Load() ([]models.Question, error)
	Put(models.Question) error
	Delete(id string) error
}

// Catalog is the append-only ordered question list, addressed by a
// day-offset index from the epoch date. Removal is the only mutation of
// stored questions.
type Catalog struct {
	mu        sync.Mutex
	store     Store
	epoch     time.Time
	questions []models.Question
}

// New loads the catalog from the store. Load failures are logged and the
// catalog starts empty. A nil store keeps the catalog memory-only.
func New(store Store, epoch time.Time) *Catalog {
	c := &Catalog{store: store, epoch: epoch}
	if store == nil {
		return c
	}
	questions, err := store.Load()
	if err != nil {
		slog.Warn("catalog load failed, starting empty", "error", err)
		return c
	}
	c.questions = questions
	return c
}

// Add appends a question with the next sequential id. Submitter may be
// empty for bot-authored questions.
func (c *Catalog) Add(text, submitter string) (models.Question, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Next id = max existing numeric id + 1.
	next := 1
	for _, q := range c.questions {
		if n, err := strconv.Atoi(q.ID); err == nil && n >= next {
			next = n + 1
		}
	}

	q := models.Question{ID: strconv.Itoa(next), Text: text}
	if submitter != "" {
		q.Submitter = &submitter
	}

	if c.store != nil {
		if err := c.store.Put(q); err != nil {
			return models.Question{}, fmt.Errorf("failed to save question: %w", err)
		}
	}
	c.questions = append(c.questions, q)
	return q, nil
}

// Remove deletes the question with the given id.
func (c *Catalog) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i, q := range c.questions {
		if q.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.ErrQuestionNotFound
	}
	if c.store != nil {
		if err := c.store.Delete(id); err != nil {
			return fmt.Errorf("failed to delete question: %w", err)
		}
	}
	c.questions = append(c.questions[:idx], c.questions[idx+1:]...)
	return nil
}

// QuestionFor returns the question addressed by the day index of the given
// date. Out-of-range indices (before the epoch or past the end of the
// catalog) mean no question that day.
func (c *Catalog) QuestionFor(today time.Time) (models.Question, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := DayIndex(today, c.epoch)
	if idx < 0 || idx >= len(c.questions) {
		return models.Question{}, false
	}
	return c.questions[idx], true
}

// List returns a copy of all questions in insertion order.
func (c *Catalog) List() []models.Question {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// Len reports the catalog size.
func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.questions)
}

// DayIndex counts whole calendar days from epoch to today. Both dates are
// compared at midnight so the time of day never shifts the index.
func DayIndex(today, epoch time.Time) int {
	ty, tm, td := today.Date()
	ey, em, ed := epoch.Date()
	t := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	e := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return int(t.Sub(e).Hours() / 24)
}
