// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/qotd/ledger"
	"github.com/danielhkuo/qotd/middleware"
	"github.com/danielhkuo/qotd/models"
)

type PointsHandler struct {
	ledger *ledger.Ledger
}

func NewPointsHandler(led *ledger.Ledger) *PointsHandler {
	return &PointsHandler{ledger: led}
}

func entryResponse(e models.LedgerEntry) models.EntryResponse {
	return models.EntryResponse{
		UserID:       e.UserID,
		Insight:      e.InsightPoints,
		Contribution: e.ContributionPoints,
		Total:        e.Total(),
		Rank:         models.RankFor(e.Total()),
	}
}

// Adjust handles POST /points/adjust (admin)
func (h *PointsHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req models.AdjustPointsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.UserID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}
	if req.Kind != models.KindInsight && req.Kind != models.KindContribution {
		middleware.ErrorResponse(w, http.StatusBadRequest, "kind must be insight or contribution")
		return
	}
	if req.Delta == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "delta must be non-zero")
		return
	}

	entry, err := h.ledger.Adjust(req.UserID, req.Kind, req.Delta)
	if err != nil {
		slog.Error("failed to adjust points", "error", err, "user_id", req.UserID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to adjust points")
		return
	}

	slog.Info("points adjusted", "user_id", req.UserID, "kind", req.Kind, "delta", req.Delta)
	middleware.JSONResponse(w, http.StatusOK, entryResponse(entry))
}

// GetEntry handles GET /participants/{id}
func (h *PointsHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "participant id is required")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, entryResponse(h.ledger.Entry(userID)))
}

// Leaderboard handles GET /leaderboard?category=all|insight|contribution&page=N
func (h *PointsHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = models.CategoryAll
	}
	switch category {
	case models.CategoryAll, models.CategoryInsight, models.CategoryContribution:
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "category must be all, insight, or contribution")
		return
	}

	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		n, err := strconv.Atoi(pageStr)
		if err != nil || n < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "page must be a positive integer")
			return
		}
		page = n
	}

	rows, pages := h.ledger.Leaderboard(category, page-1)
	if page > pages {
		page = pages
	}

	middleware.JSONResponse(w, http.StatusOK, models.LeaderboardResponse{
		Category: category,
		Page:     page,
		Pages:    pages,
		Entries:  rows,
	})
}

// Ranks handles GET /ranks
func (h *PointsHandler) Ranks(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.RankTiers)
}
