// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/qotd/cycle"
	"github.com/danielhkuo/qotd/models"
	"github.com/danielhkuo/qotd/testutil"
)

func setupScheduler(t *testing.T, dc *cycle.DayCycle, now time.Time) *cycle.Scheduler {
	t.Helper()
	sched, err := cycle.ScheduleFromConfig(testutil.GetTestConfig())
	if err != nil {
		t.Fatalf("ScheduleFromConfig failed: %v", err)
	}
	return cycle.NewScheduler(dc, sched, testutil.FixedClock{Instant: now})
}

func TestCycleStatus(t *testing.T) {
	dc, _, _, epoch := setupDay(t)
	handler := NewCycleHandler(dc, setupScheduler(t, dc, epoch))

	req := httptest.NewRequest("GET", "/cycle", nil)
	w := httptest.NewRecorder()
	handler.Status(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.CycleStatusResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Phase != models.PhaseIdle {
		t.Errorf("Expected idle phase, got %s", resp.Phase)
	}

	dc.Post(epoch)
	w = httptest.NewRecorder()
	handler.Status(w, req)
	testutil.AssertJSON(t, w, &resp)
	if resp.Phase != models.PhasePosted || resp.QuestionID != "1" {
		t.Errorf("Expected posted phase with question 1, got %+v", resp)
	}
}

func TestManualTrigger(t *testing.T) {
	dc, _, _, epoch := setupDay(t)
	handler := NewCycleHandler(dc, setupScheduler(t, dc, epoch))

	req := httptest.NewRequest("POST", "/cycle/post", nil)
	req.SetPathValue("trigger", "post")
	w := httptest.NewRecorder()
	handler.Trigger(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if got := dc.Status().Phase; got != models.PhasePosted {
		t.Errorf("Expected posted phase after manual trigger, got %s", got)
	}
}

func TestManualTriggerUnknownName(t *testing.T) {
	dc, _, _, epoch := setupDay(t)
	handler := NewCycleHandler(dc, setupScheduler(t, dc, epoch))

	req := httptest.NewRequest("POST", "/cycle/explode", nil)
	req.SetPathValue("trigger", "explode")
	w := httptest.NewRecorder()
	handler.Trigger(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}
