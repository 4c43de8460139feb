// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/qotd/ledger"
	"github.com/danielhkuo/qotd/models"
	"github.com/danielhkuo/qotd/testutil"
)

func TestAdjustPoints(t *testing.T) {
	led := ledger.New(nil)
	handler := NewPointsHandler(led)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.EntryResponse)
	}{
		{
			name:           "award insight",
			requestBody:    models.AdjustPointsRequest{UserID: "alice", Kind: "insight", Delta: 5},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.EntryResponse) {
				if resp.Insight != 5 || resp.Total != 5 {
					t.Errorf("Expected 5 insight points, got %+v", resp)
				}
			},
		},
		{
			name:           "remove more than held floors at zero",
			requestBody:    models.AdjustPointsRequest{UserID: "alice", Kind: "insight", Delta: -100},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.EntryResponse) {
				if resp.Insight != 0 {
					t.Errorf("Expected insight floored at 0, got %d", resp.Insight)
				}
			},
		},
		{
			name:           "award contribution",
			requestBody:    models.AdjustPointsRequest{UserID: "bob", Kind: "contribution", Delta: 12},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.EntryResponse) {
				if resp.Contribution != 12 {
					t.Errorf("Expected 12 contribution points, got %d", resp.Contribution)
				}
				if resp.Rank != "🥢 Miso Mind" {
					t.Errorf("Expected Miso Mind at 12 points, got %s", resp.Rank)
				}
			},
		},
		{
			name:           "missing user_id",
			requestBody:    models.AdjustPointsRequest{Kind: "insight", Delta: 1},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown kind",
			requestBody:    models.AdjustPointsRequest{UserID: "alice", Kind: "charisma", Delta: 1},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "zero delta",
			requestBody:    models.AdjustPointsRequest{UserID: "alice", Kind: "insight"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			requestBody:    "not json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(handler.Adjust, "/points/adjust", tt.requestBody)
			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.checkResponse != nil {
				var resp models.EntryResponse
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestGetEntry(t *testing.T) {
	led := ledger.New(nil)
	led.AwardInsight("alice", 30)
	led.AwardContribution("alice", 12)
	handler := NewPointsHandler(led)

	req := httptest.NewRequest("GET", "/participants/alice", nil)
	req.SetPathValue("id", "alice")
	w := httptest.NewRecorder()
	handler.GetEntry(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.EntryResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Total != 42 {
		t.Errorf("Expected total 42, got %d", resp.Total)
	}
	if resp.Rank != "🌶️ Wasabi Wizard" {
		t.Errorf("Expected Wasabi Wizard at 42 points, got %s", resp.Rank)
	}
}

func TestGetEntryUnknownUser(t *testing.T) {
	handler := NewPointsHandler(ledger.New(nil))

	// Unknown participants read as a zero entry, not an error.
	req := httptest.NewRequest("GET", "/participants/nobody", nil)
	req.SetPathValue("id", "nobody")
	w := httptest.NewRecorder()
	handler.GetEntry(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.EntryResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Total != 0 || resp.Rank != "🍚 Rice Rookie" {
		t.Errorf("Expected zero entry with the lowest rank, got %+v", resp)
	}
}

func TestLeaderboard(t *testing.T) {
	led := ledger.New(nil)
	led.AwardInsight("alice", 5)
	led.AwardInsight("bob", 3)
	led.AwardContribution("carol", 7)
	handler := NewPointsHandler(led)

	tests := []struct {
		name           string
		url            string
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.LeaderboardResponse)
	}{
		{
			name:           "default category and page",
			url:            "/leaderboard",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.LeaderboardResponse) {
				if resp.Category != "all" || resp.Page != 1 || resp.Pages != 1 {
					t.Errorf("Unexpected paging: %+v", resp)
				}
				if len(resp.Entries) != 3 {
					t.Fatalf("Expected 3 entries, got %d", len(resp.Entries))
				}
				if resp.Entries[0].UserID != "carol" || resp.Entries[0].Position != 1 {
					t.Errorf("Expected carol on top, got %+v", resp.Entries[0])
				}
			},
		},
		{
			name:           "insight category",
			url:            "/leaderboard?category=insight",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.LeaderboardResponse) {
				if len(resp.Entries) != 2 {
					t.Fatalf("Expected 2 insight entries, got %d", len(resp.Entries))
				}
				if resp.Entries[0].UserID != "alice" {
					t.Errorf("Expected alice on top of the insight board, got %s", resp.Entries[0].UserID)
				}
			},
		},
		{
			name:           "page past the end clamps",
			url:            "/leaderboard?page=9",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.LeaderboardResponse) {
				if resp.Page != 1 {
					t.Errorf("Expected page clamped to 1, got %d", resp.Page)
				}
			},
		},
		{
			name:           "bad category",
			url:            "/leaderboard?category=stealth",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad page",
			url:            "/leaderboard?page=zero",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative page",
			url:            "/leaderboard?page=-1",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.url, nil)
			w := httptest.NewRecorder()
			handler.Leaderboard(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.checkResponse != nil {
				var resp models.LeaderboardResponse
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestRanks(t *testing.T) {
	handler := NewPointsHandler(ledger.New(nil))

	req := httptest.NewRequest("GET", "/ranks", nil)
	w := httptest.NewRecorder()
	handler.Ranks(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var tiers []models.RankTier
	testutil.AssertJSON(t, w, &tiers)
	if len(tiers) != 6 {
		t.Errorf("Expected 6 rank tiers, got %d", len(tiers))
	}
}
