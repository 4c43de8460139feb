// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS. The DDL sticks to the
// common subset of SQLite and PostgreSQL.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Question catalog (ordered by numeric id)
CREATE TABLE IF NOT EXISTS question (
    id TEXT PRIMARY KEY,
    question TEXT NOT NULL,
    submitter TEXT
);

-- Ledger entries
CREATE TABLE IF NOT EXISTS ledger_entry (
    user_id TEXT PRIMARY KEY,
    insight_points INTEGER NOT NULL DEFAULT 0,
    contribution_points INTEGER NOT NULL DEFAULT 0,
    last_contribution TEXT
);

-- Answered-question set, one row per earned insight point
CREATE TABLE IF NOT EXISTS answered_question (
    user_id TEXT NOT NULL,
    question_id TEXT NOT NULL,
    PRIMARY KEY (user_id, question_id)
);

CREATE INDEX IF NOT EXISTS idx_answered_question_user ON answered_question(user_id);

-- Archived day outcomes
CREATE TABLE IF NOT EXISTS day_result (
    id TEXT PRIMARY KEY,
    question_id TEXT NOT NULL,
    winners TEXT NOT NULL,
    max_votes INTEGER NOT NULL,
    candidates INTEGER NOT NULL,
    ballots INTEGER NOT NULL,
    closed_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_day_result_question ON day_result(question_id);
`
