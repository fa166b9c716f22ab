// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/twosevenths/models"
	"github.com/danielhkuo/twosevenths/service"
	"github.com/danielhkuo/twosevenths/testutil"
)

func newTestMux(svc *service.Service) *http.ServeMux {
	voteHandler := NewVoteHandler(svc)
	messageHandler := NewMessageHandler(svc)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/vote", voteHandler.Vote)
	mux.HandleFunc("GET /api/stats", voteHandler.Stats)
	mux.HandleFunc("POST /api/messages", messageHandler.PostMessage)
	mux.HandleFunc("GET /api/messages", messageHandler.ListMessages)
	mux.HandleFunc("POST /api/messages/{id}/like", messageHandler.LikeMessage)
	return mux
}

// TestFullPollWorkflow walks through a poll session:
// 1. Votes arrive
// 2. Stats reflect them
// 3. Messages are posted
// 4. A message is liked
// 5. The list reflects order and likes
func TestFullPollWorkflow(t *testing.T) {
	mux := newTestMux(newTestService(t))

	// Step 1: 1 vote for single, 7 for double
	votes := []string{"single", "double", "double", "double", "double", "double", "double", "double"}
	for i, option := range votes {
		req := testutil.MakeRequest("POST", "/api/vote", models.VoteRequest{Option: option}, nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Step 1 - Vote %d failed: %d - %s", i, w.Code, w.Body.String())
		}
	}

	// Step 2: 1/8 rounds to 13, 7/8 to 88
	req := httptest.NewRequest("GET", "/api/stats", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var snapshot models.Snapshot
	testutil.AssertJSON(t, w, &snapshot)

	if snapshot.Total != 8 {
		t.Errorf("Step 2 - Expected total 8, got %d", snapshot.Total)
	}
	if got := snapshot.Options["single"]; got.Count != 1 || got.Percentage != 13 {
		t.Errorf("Step 2 - Expected single {1, 13}, got %+v", got)
	}
	if got := snapshot.Options["double"]; got.Count != 7 || got.Percentage != 88 {
		t.Errorf("Step 2 - Expected double {7, 88}, got %+v", got)
	}
	if got := snapshot.Options["alternate"]; got.Count != 0 || got.Percentage != 0 {
		t.Errorf("Step 2 - Expected alternate {0, 0}, got %+v", got)
	}
	if len(snapshot.Timeline) != 8 || snapshot.Timeline[0].Option != "single" {
		t.Errorf("Step 2 - Expected 8 timeline items starting with 'single', got %+v", snapshot.Timeline)
	}

	// Step 3: Post three messages
	contents := []string{"first", "hello", "third"}
	ids := make(map[string]string)
	for _, content := range contents {
		req := testutil.MakeRequest("POST", "/api/messages", models.MessageRequest{Content: content, Option: "single"}, nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Step 3 - Post '%s' failed: %d - %s", content, w.Code, w.Body.String())
		}

		var resp models.MessageResponse
		testutil.AssertJSON(t, w, &resp)
		ids[content] = resp.ID
	}

	// Step 4: Like "hello" twice
	for i := 1; i <= 2; i++ {
		req := httptest.NewRequest("POST", "/api/messages/"+ids["hello"]+"/like", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Step 4 - Like failed: %d - %s", w.Code, w.Body.String())
		}

		var resp models.LikeResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Likes != int64(i) {
			t.Errorf("Step 4 - Expected %d likes, got %d", i, resp.Likes)
		}
	}

	// Step 5: Newest first, likes preserved
	req = httptest.NewRequest("GET", "/api/messages?limit=2", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var list models.MessagesResponse
	testutil.AssertJSON(t, w, &list)

	if list.Total != 3 {
		t.Errorf("Step 5 - Expected total 3, got %d", list.Total)
	}
	if len(list.Messages) != 2 {
		t.Fatalf("Step 5 - Expected 2 messages, got %d", len(list.Messages))
	}
	if list.Messages[0].Content != "third" || list.Messages[1].Content != "hello" {
		t.Errorf("Step 5 - Expected [third hello], got [%s %s]", list.Messages[0].Content, list.Messages[1].Content)
	}
	if list.Messages[1].Likes != 2 {
		t.Errorf("Step 5 - Expected 'hello' to have 2 likes, got %d", list.Messages[1].Likes)
	}

	// Votes and messages are independent
	req = httptest.NewRequest("GET", "/api/stats", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertJSON(t, w, &snapshot)
	if snapshot.Total != 8 {
		t.Errorf("Expected messages not to change the tally, got total %d", snapshot.Total)
	}
}

func TestLikeUnknownMessageChangesNothing(t *testing.T) {
	svc := newTestService(t)
	mux := newTestMux(svc)
	postTestMessage(t, svc, "only", "double")

	req := httptest.NewRequest("POST", "/api/messages/no-such-id/like", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)

	req = httptest.NewRequest("GET", "/api/messages", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	var list models.MessagesResponse
	testutil.AssertJSON(t, w, &list)
	if list.Total != 1 || list.Messages[0].Likes != 0 {
		t.Errorf("Expected one message with 0 likes, got %+v", list)
	}
}
