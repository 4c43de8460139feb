// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/danielhkuo/qotd/models"
)

// File names inside the data directory.
const (
	questionsFile = "questions.json"
	scoresFile    = "user_scores.json"
	resultsFile   = "results.json"
)

func readJSON(path string, v any) (exists bool, err error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return true, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// CatalogStore keeps the question catalog in questions.json, the same
// shape the service has always persisted.
type CatalogStore struct {
	mu   sync.Mutex
	path string
}

func NewCatalogStore(dataDir string) *CatalogStore {
	return &CatalogStore{path: filepath.Join(dataDir, questionsFile)}
}

func (s *CatalogStore) Load() ([]models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var questions []models.Question
	if _, err := readJSON(s.path, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *CatalogStore) Put(q models.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var questions []models.Question
	if _, err := readJSON(s.path, &questions); err != nil {
		return err
	}
	replaced := false
	for i := range questions {
		if questions[i].ID == q.ID {
			questions[i] = q
			replaced = true
			break
		}
	}
	if !replaced {
		questions = append(questions, q)
	}
	return writeJSON(s.path, questions)
}

func (s *CatalogStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var questions []models.Question
	if _, err := readJSON(s.path, &questions); err != nil {
		return err
	}
	kept := questions[:0]
	for _, q := range questions {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	return writeJSON(s.path, kept)
}

// LedgerStore keeps the ledger in user_scores.json as a map keyed by
// participant id. Reload order is not meaningful.
type LedgerStore struct {
	mu   sync.Mutex
	path string
}

func NewLedgerStore(dataDir string) *LedgerStore {
	return &LedgerStore{path: filepath.Join(dataDir, scoresFile)}
}

func (s *LedgerStore) Load() ([]models.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byUser := make(map[string]models.LedgerEntry)
	if _, err := readJSON(s.path, &byUser); err != nil {
		return nil, err
	}
	entries := make([]models.LedgerEntry, 0, len(byUser))
	for userID, e := range byUser {
		e.UserID = userID
		entries = append(entries, e)
	}
	return entries, nil
}

func (s *LedgerStore) Put(e models.LedgerEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	byUser := make(map[string]models.LedgerEntry)
	if _, err := readJSON(s.path, &byUser); err != nil {
		return err
	}
	byUser[e.UserID] = e
	return writeJSON(s.path, byUser)
}

// ResultStore appends archived day outcomes to results.json.
type ResultStore struct {
	mu   sync.Mutex
	path string
}

func NewResultStore(dataDir string) *ResultStore {
	return &ResultStore{path: filepath.Join(dataDir, resultsFile)}
}

func (s *ResultStore) SaveResult(r models.DayResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var results []models.DayResult
	if _, err := readJSON(s.path, &results); err != nil {
		return err
	}
	results = append(results, r)
	return writeJSON(s.path, results)
}
