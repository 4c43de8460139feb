// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger maintains each participant's insight and contribution points.

# Invariants

  - recordAnswer is idempotent: a question id enters the answered set at
    most once, and the point is awarded iff the id was absent immediately
    before insertion.
  - A contribution point is awarded at most once per calendar date.
  - Point totals never go negative; removals floor at zero.
  - Every mutation of a single entry is one atomic read-modify-write; no
    concurrent caller can overwrite another's update with a stale read.

# Persistence

Mutations go through a Store before memory is updated (persist-before-ack).
A failed save returns the error and leaves both memory and store unchanged
from the caller's perspective. Load failures at startup fail open to an
empty ledger.
*/
package ledger
