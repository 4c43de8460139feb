// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/qotd/cycle"
	"github.com/danielhkuo/qotd/middleware"
	"github.com/danielhkuo/qotd/models"
)

type AnswerHandler struct {
	cycle *cycle.DayCycle
}

func NewAnswerHandler(dc *cycle.DayCycle) *AnswerHandler {
	return &AnswerHandler{cycle: dc}
}

// Submit handles POST /answers
func (h *AnswerHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitAnswerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.UserID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}
	if req.Text == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "text is required")
		return
	}
	if req.DisplayName == "" {
		req.DisplayName = req.UserID
	}

	res, err := h.cycle.SubmitAnswer(req.UserID, req.DisplayName, req.Text, req.Anonymous)
	if errors.Is(err, models.ErrSubmissionsClosed) {
		middleware.ErrorResponse(w, http.StatusConflict, "Submissions are closed")
		return
	}
	if err != nil {
		slog.Error("failed to submit answer", "error", err, "user_id", req.UserID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit answer")
		return
	}

	slog.Info("answer submitted", "user_id", req.UserID, "anonymous", req.Anonymous, "awarded", res.Awarded)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitAnswerResponse{
		Insight:      res.Entry.InsightPoints,
		Contribution: res.Entry.ContributionPoints,
		Rank:         models.RankFor(res.Entry.Total()),
		Awarded:      res.Awarded,
		RefID:        res.RefID,
	})
}
