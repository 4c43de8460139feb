// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/qotd/cycle"
	"github.com/danielhkuo/qotd/middleware"
)

type CycleHandler struct {
	cycle     *cycle.DayCycle
	scheduler *cycle.Scheduler
}

func NewCycleHandler(dc *cycle.DayCycle, sched *cycle.Scheduler) *CycleHandler {
	return &CycleHandler{cycle: dc, scheduler: sched}
}

// Status handles GET /cycle
func (h *CycleHandler) Status(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.cycle.Status())
}

// Trigger handles POST /cycle/{trigger} (admin). Fires the named phase
// transition through the same path the daily schedule uses.
func (h *CycleHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("trigger")
	if err := h.scheduler.FireNow(name); err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Unknown trigger")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, h.cycle.Status())
}
