// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db is the SQL persistence backend.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The DDL and the queries stick to the SQLite/PostgreSQL common subset so the
same stores run on either driver (modernc.org/sqlite or lib/pq).

# Tables

  - question: the catalog, ordered by numeric id
  - ledger_entry: one row per participant
  - answered_question: the per-user answered set, one row per earned point
  - day_result: archived voting outcomes

# Stores

CatalogStore, LedgerStore, and ResultStore satisfy the catalog.Store,
ledger.Store, and cycle.ResultStore interfaces. LedgerStore.Put rewrites
the entry row and its answered set in one transaction, which keeps the
persist-before-ack contract simple: either the whole entry landed or none
of it did.
*/
package db
