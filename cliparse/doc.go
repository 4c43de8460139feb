// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite, postgres, or file (default: sqlite)
  - DatabaseURL: SQLite path or PostgreSQL DSN (required for sqlite/postgres)
  - DataDir: Data directory for the file backend (default: ./data)
  - AdminKeySalt: Secret the admin key is derived from (required)
  - EpochDate, PostTime: day-index anchor and daily publish time
  - PurgeBefore..VoteCloseAfter: phase offsets around the post instant
  - TelegramToken, TelegramChatID, TelegramAdminChatID: optional delivery

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	DATA_DIR       → -data
	ADMIN_KEY_SALT → -admin-salt
	EPOCH_DATE     → -epoch
	POST_TIME      → -post-time

CLI flags take precedence over environment variables. Telegram settings
come from the environment only. The schedule offsets are flags only; the
defaults reproduce the production timetable (post at 12:00, close after
5h, vote open 5m later, vote close 65m after that).

# Validation

ParseFlags returns an error if required values are missing or if the
schedule offsets are out of order (warn < close < vote-open < vote-close
must hold).
*/
package cliparse
