// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package jsonfile is the flat-file persistence backend.

It keeps the historical file layout: questions.json for the catalog,
user_scores.json for the ledger (a map keyed by participant id), and
results.json for archived day outcomes. Each Put re-reads and rewrites the
whole file; fine at community scale, and the SQL backend exists for
anything bigger.
*/
package jsonfile
