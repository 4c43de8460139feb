// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/danielhkuo/qotd/models"
)

// CatalogStore persists the question catalog in SQL.
type CatalogStore struct {
	db *sql.DB
}

func NewCatalogStore(db *sql.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// Load returns all questions in insertion (numeric id) order.
func (s *CatalogStore) Load() ([]models.Question, error) {
	rows, err := s.db.Query(`
		SELECT id, question, submitter
		FROM question
		ORDER BY CAST(id AS INTEGER)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.Submitter); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (s *CatalogStore) Put(q models.Question) error {
	_, err := s.db.Exec(`
		INSERT INTO question (id, question, submitter)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET question = excluded.question, submitter = excluded.submitter
	`, q.ID, q.Text, q.Submitter)
	if err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}
	return nil
}

func (s *CatalogStore) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM question WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	return nil
}

// LedgerStore persists ledger entries in SQL. Put rewrites the entry row
// and its answered set in one transaction.
type LedgerStore struct {
	db *sql.DB
}

func NewLedgerStore(db *sql.DB) *LedgerStore {
	return &LedgerStore{db: db}
}

func (s *LedgerStore) Load() ([]models.LedgerEntry, error) {
	rows, err := s.db.Query(`
		SELECT user_id, insight_points, contribution_points, last_contribution
		FROM ledger_entry
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger: %w", err)
	}
	defer rows.Close()

	byUser := make(map[string]*models.LedgerEntry)
	var order []string
	for rows.Next() {
		var e models.LedgerEntry
		var last sql.NullString
		if err := rows.Scan(&e.UserID, &e.InsightPoints, &e.ContributionPoints, &last); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		e.LastContribution = last.String
		byUser[e.UserID] = &e
		order = append(order, e.UserID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	answered, err := s.db.Query(`SELECT user_id, question_id FROM answered_question`)
	if err != nil {
		return nil, fmt.Errorf("failed to query answered set: %w", err)
	}
	defer answered.Close()
	for answered.Next() {
		var userID, questionID string
		if err := answered.Scan(&userID, &questionID); err != nil {
			return nil, fmt.Errorf("failed to scan answered row: %w", err)
		}
		if e, ok := byUser[userID]; ok {
			e.Answered = append(e.Answered, questionID)
		}
	}
	if err := answered.Err(); err != nil {
		return nil, err
	}

	entries := make([]models.LedgerEntry, 0, len(order))
	for _, userID := range order {
		entries = append(entries, *byUser[userID])
	}
	return entries, nil
}

func (s *LedgerStore) Put(e models.LedgerEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var last *string
	if e.LastContribution != "" {
		last = &e.LastContribution
	}
	_, err = tx.Exec(`
		INSERT INTO ledger_entry (user_id, insight_points, contribution_points, last_contribution)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			insight_points = excluded.insight_points,
			contribution_points = excluded.contribution_points,
			last_contribution = excluded.last_contribution
	`, e.UserID, e.InsightPoints, e.ContributionPoints, last)
	if err != nil {
		return fmt.Errorf("failed to save ledger entry: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM answered_question WHERE user_id = $1`, e.UserID); err != nil {
		return fmt.Errorf("failed to clear answered set: %w", err)
	}
	for _, questionID := range e.Answered {
		if _, err := tx.Exec(`
			INSERT INTO answered_question (user_id, question_id) VALUES ($1, $2)
		`, e.UserID, questionID); err != nil {
			return fmt.Errorf("failed to save answered row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ledger entry: %w", err)
	}
	return nil
}

// ResultStore archives day results in SQL.
type ResultStore struct {
	db *sql.DB
}

func NewResultStore(db *sql.DB) *ResultStore {
	return &ResultStore{db: db}
}

func (s *ResultStore) SaveResult(r models.DayResult) error {
	_, err := s.db.Exec(`
		INSERT INTO day_result (id, question_id, winners, max_votes, candidates, ballots, closed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.ID, r.QuestionID, strings.Join(r.Winners, ","), r.MaxVotes, r.Candidates, r.Ballots, r.ClosedAt)
	if err != nil {
		return fmt.Errorf("failed to save day result: %w", err)
	}
	return nil
}
