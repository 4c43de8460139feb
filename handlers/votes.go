// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/danielhkuo/qotd/cycle"
	"github.com/danielhkuo/qotd/middleware"
	"github.com/danielhkuo/qotd/models"
)

type VoteHandler struct {
	cycle *cycle.DayCycle
}

func NewVoteHandler(dc *cycle.DayCycle) *VoteHandler {
	return &VoteHandler{cycle: dc}
}

// Cast handles POST /votes
func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.VoterID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter_id is required")
		return
	}
	if req.CandidateID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate_id is required")
		return
	}

	tally, err := h.cycle.CastVote(req.VoterID, req.CandidateID)
	switch {
	case errors.Is(err, models.ErrSelfVote):
		middleware.ErrorResponse(w, http.StatusBadRequest, "You cannot vote for your own answer")
		return
	case errors.Is(err, models.ErrVotingClosed):
		middleware.ErrorResponse(w, http.StatusConflict, "Voting is not open")
		return
	case errors.Is(err, models.ErrAlreadyVoted):
		// Same candidate again: a no-op, not a failure
		middleware.ErrorResponse(w, http.StatusConflict, "You already voted for this candidate")
		return
	case errors.Is(err, models.ErrCandidateNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	case err != nil:
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CastVoteResponse{Tally: tally})
}
