// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/qotd/catalog"
	"github.com/danielhkuo/qotd/ledger"
	"github.com/danielhkuo/qotd/middleware"
	"github.com/danielhkuo/qotd/models"
)

type QuestionHandler struct {
	catalog *catalog.Catalog
	ledger  *ledger.Ledger
}

func NewQuestionHandler(cat *catalog.Catalog, led *ledger.Ledger) *QuestionHandler {
	return &QuestionHandler{catalog: cat, ledger: led}
}

// Submit handles POST /questions
func (h *QuestionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.UserID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}
	if req.Question == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question is required")
		return
	}
	if len(req.Question) > 500 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question must be at most 500 characters")
		return
	}

	q, err := h.catalog.Add(req.Question, req.UserID)
	if err != nil {
		slog.Error("failed to add question", "error", err, "user_id", req.UserID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save question")
		return
	}

	today := time.Now().Format(models.DateLayout)
	_, awarded, err := h.ledger.RecordContributionIfFirstToday(req.UserID, today)
	if err != nil {
		// Question is saved; only the point award failed.
		slog.Error("failed to award contribution point", "error", err, "user_id", req.UserID)
	}

	slog.Info("question submitted", "question_id", q.ID, "user_id", req.UserID, "awarded", awarded)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitQuestionResponse{
		QuestionID: q.ID,
		Awarded:    awarded,
	})
}

// List handles GET /questions (admin)
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.catalog.List())
}

// Remove handles DELETE /questions/{id} (admin)
func (h *QuestionHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question id is required")
		return
	}

	err := h.catalog.Remove(id)
	if errors.Is(err, models.ErrQuestionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to remove question", "error", err, "question_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to remove question")
		return
	}

	slog.Info("question removed", "question_id", id)
	w.WriteHeader(http.StatusNoContent)
}
