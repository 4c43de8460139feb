// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cycle drives the daily question lifecycle.

# Phases

	idle → posted → closed → voting → idle

Each wall-clock trigger (purge, pre-announce, post, warn, close, vote-open,
vote-close) fires at most once per day and is idempotent: when the expected
prior phase is absent the trigger logs and skips instead of corrupting
state. Posting with a day index outside the catalog is a quiet no-op.

# Ownership

DayCycle owns exactly one answer session and at most one voting session at
a time; its phase field is the single authority for whether submissions or
votes are accepted. Handlers reach the sessions only through
SubmitAnswer/CastVote, which read the phase and the session pointer under
the same lock.

# Scheduling

Scheduler computes the next trigger from a Schedule (post time plus
offsets) and sleeps until it. The clock is injectable, and shortened
offsets reproduce the full cycle in seconds for manual testing; there is no
separate fast path. Missed triggers while the process is down are skipped,
never backfilled.
*/
package cycle
