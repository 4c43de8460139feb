// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session implements the two per-day interaction sessions.

# Answer Session

Collects answers while the day's question is open:

	s := session.NewAnswerSession(q, led)
	res, err := s.Submit(userID, name, text, anonymous)

One live record per user; re-submitting replaces the displayed text but a
question scores at most once per user, ever. Anonymous answers are diverted
to a moderation sink, never enter the public record set, and award nothing.

# Voting Session

Built once from the closed answer session's public records:

	v, err := session.NewVotingSession(s.NonAnonymous())
	tally, err := v.CastVote(voterID, candidateID)
	winners, maxVotes := v.Close()

Ballots are replaceable, not stackable: a voter holds at most one, and
replacement adjusts both tallies atomically. Self-votes are rejected before
the ballot map is touched.
*/
package session
