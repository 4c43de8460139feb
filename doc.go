// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the QOTD service.

QOTD runs a recurring daily question cycle: a community-submitted question
is published at a fixed time, answers are collected for five hours, an open
vote over the non-anonymous answers follows, and the winner earns an
insight point. A persistent ledger tracks insight and contribution points
per participant and derives a six-tier rank from their sum.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=./qotd.db ADMIN_KEY_SALT=... go run main.go

Or with flags:

	go run main.go -p 3318 -d ./qotd.db -t sqlite -admin-salt ...

# Configuration

Required settings:

  - ADMIN_KEY_SALT (-admin-salt): Secret the admin key is derived from

Storage settings:

  - DATABASE_TYPE (-t): sqlite (default), postgres, or file
  - DATABASE_URL (-d): SQLite path or PostgreSQL DSN
  - DATA_DIR (-data): Data directory for the file backend

Schedule settings:

  - EPOCH_DATE (-epoch): Date of question #0 (default 2025-06-25)
  - POST_TIME (-post-time): Daily publish time (default 12:00)
  - -purge-before, -preannounce-before, -warn-after, -close-after,
    -vote-open-after, -vote-close-after: phase offsets; shorten them to run
    a whole cycle in seconds for testing

Delivery settings (optional):

  - TELEGRAM_TOKEN, TELEGRAM_CHAT_ID, TELEGRAM_ADMIN_CHAT_ID: chat surface;
    without a token announcements go to the structured log

# Architecture

The server uses a handler-based architecture with dependency injection:

  - cycle: day lifecycle state machine and trigger scheduler
  - session: answer collection and voting
  - ledger: persistent two-category point store
  - catalog: day-indexed question list
  - notify: Telegram/log announcement surface
  - handlers, router, middleware: HTTP dispatcher
  - db, jsonfile: SQL and flat-file persistence backends
  - auth, cliparse: admin key derivation and configuration

See package documentation for each component.
*/
package main
