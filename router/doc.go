// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ method routing.

Public routes cover the daily interaction (answers, votes, question
submission) and queries (cycle status, participants, leaderboard, ranks).
Admin routes (catalog management, point adjustment, manual cycle triggers)
sit behind the X-Admin-Key guard.
*/
package router
