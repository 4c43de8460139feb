// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/qotd/catalog"
	"github.com/danielhkuo/qotd/cycle"
	"github.com/danielhkuo/qotd/ledger"
	"github.com/danielhkuo/qotd/models"
	"github.com/danielhkuo/qotd/testutil"
)

// setupDay builds an in-memory stack with one question in the catalog.
// The returned cycle is still idle; tests drive the phases they need.
func setupDay(t *testing.T) (*cycle.DayCycle, *ledger.Ledger, *catalog.Catalog, time.Time) {
	t.Helper()
	epoch, err := time.Parse(models.DateLayout, "2025-06-25")
	if err != nil {
		t.Fatalf("Bad epoch: %v", err)
	}
	cat := catalog.New(nil, epoch)
	cat.Add("What is your favorite roll?", "")
	led := ledger.New(nil)
	dc := cycle.New(cat, led, &testutil.SpyNotifier{}, nil)
	return dc, led, cat, epoch
}

func postJSON(handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	var buf []byte
	if str, ok := body.(string); ok {
		buf = []byte(str)
	} else {
		buf, _ = json.Marshal(body)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestSubmitAnswer(t *testing.T) {
	dc, _, _, epoch := setupDay(t)
	dc.Post(epoch)
	handler := NewAnswerHandler(dc)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.SubmitAnswerResponse)
	}{
		{
			name: "valid public answer",
			requestBody: models.SubmitAnswerRequest{
				UserID:      "alice",
				DisplayName: "Alice",
				Text:        "Spicy tuna.",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.SubmitAnswerResponse) {
				if !resp.Awarded {
					t.Error("Expected first answer to score")
				}
				if resp.Insight != 1 {
					t.Errorf("Expected 1 insight point, got %d", resp.Insight)
				}
				if resp.Rank != "🍚 Rice Rookie" {
					t.Errorf("Expected Rice Rookie rank, got %s", resp.Rank)
				}
				if resp.RefID != "" {
					t.Errorf("Expected no ref id for a public answer, got %s", resp.RefID)
				}
			},
		},
		{
			name: "resubmission does not score again",
			requestBody: models.SubmitAnswerRequest{
				UserID: "alice",
				Text:   "Actually, salmon.",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.SubmitAnswerResponse) {
				if resp.Awarded {
					t.Error("Expected resubmission not to score")
				}
				if resp.Insight != 1 {
					t.Errorf("Expected insight points unchanged at 1, got %d", resp.Insight)
				}
			},
		},
		{
			name: "anonymous answer returns ref id",
			requestBody: models.SubmitAnswerRequest{
				UserID:    "bob",
				Text:      "Rather not say.",
				Anonymous: true,
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.SubmitAnswerResponse) {
				if resp.Awarded {
					t.Error("Expected anonymous answer not to score")
				}
				if resp.RefID == "" {
					t.Error("Expected a moderation ref id")
				}
			},
		},
		{
			name:           "missing user_id",
			requestBody:    models.SubmitAnswerRequest{Text: "Who am I?"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing text",
			requestBody:    models.SubmitAnswerRequest{UserID: "carol"},
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
			w := postJSON(handler.Submit, "/answers", tt.requestBody)
			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.checkResponse != nil {
				var resp models.SubmitAnswerResponse
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestSubmitAnswerWhileIdle(t *testing.T) {
	dc, _, _, _ := setupDay(t)
	handler := NewAnswerHandler(dc)

	w := postJSON(handler.Submit, "/answers", models.SubmitAnswerRequest{
		UserID: "alice",
		Text:   "Too early.",
	})
	testutil.AssertStatus(t, w, http.StatusConflict)
}

func TestSubmitAnswerAfterClose(t *testing.T) {
	dc, _, _, epoch := setupDay(t)
	dc.Post(epoch)
	dc.SubmitAnswer("alice", "Alice", "Spicy tuna.", false)
	dc.Close()
	handler := NewAnswerHandler(dc)

	w := postJSON(handler.Submit, "/answers", models.SubmitAnswerRequest{
		UserID: "bob",
		Text:   "Too late.",
	})
	testutil.AssertStatus(t, w, http.StatusConflict)
}
