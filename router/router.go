// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/qotd/catalog"
	"github.com/danielhkuo/qotd/cliparse"
	"github.com/danielhkuo/qotd/cycle"
	"github.com/danielhkuo/qotd/handlers"
	"github.com/danielhkuo/qotd/ledger"
	"github.com/danielhkuo/qotd/middleware"
)

func NewRouter(dc *cycle.DayCycle, sched *cycle.Scheduler, led *ledger.Ledger, cat *catalog.Catalog, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	answerHandler := handlers.NewAnswerHandler(dc)
	voteHandler := handlers.NewVoteHandler(dc)
	questionHandler := handlers.NewQuestionHandler(cat, led)
	pointsHandler := handlers.NewPointsHandler(led)
	cycleHandler := handlers.NewCycleHandler(dc, sched)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Daily interaction (public)
	mux.HandleFunc("POST /answers", middleware.WithLogging(answerHandler.Submit))
	mux.HandleFunc("POST /votes", middleware.WithLogging(voteHandler.Cast))
	mux.HandleFunc("POST /questions", middleware.WithLogging(questionHandler.Submit))

	// Queries (public)
	mux.HandleFunc("GET /cycle", middleware.WithLogging(cycleHandler.Status))
	mux.HandleFunc("GET /participants/{id}", middleware.WithLogging(pointsHandler.GetEntry))
	mux.HandleFunc("GET /leaderboard", middleware.WithLogging(pointsHandler.Leaderboard))
	mux.HandleFunc("GET /ranks", middleware.WithLogging(pointsHandler.Ranks))

	// Admin operations
	mux.HandleFunc("GET /questions", middleware.WithLogging(middleware.AdminOnly(cfg.AdminKeySalt, questionHandler.List)))
	mux.HandleFunc("DELETE /questions/{id}", middleware.WithLogging(middleware.AdminOnly(cfg.AdminKeySalt, questionHandler.Remove)))
	mux.HandleFunc("POST /points/adjust", middleware.WithLogging(middleware.AdminOnly(cfg.AdminKeySalt, pointsHandler.Adjust)))
	mux.HandleFunc("POST /cycle/{trigger}", middleware.WithLogging(middleware.AdminOnly(cfg.AdminKeySalt, cycleHandler.Trigger)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("qotd API v1"))
	})

	return mux
}
