package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mwhitfield/walkstreak/internal/database"
	"github.com/mwhitfield/walkstreak/internal/engine"
	"github.com/mwhitfield/walkstreak/internal/model"
	"github.com/mwhitfield/walkstreak/internal/store"
	"github.com/mwhitfield/walkstreak/internal/websocket"
)

func setupHandlers(t *testing.T) (*ProgressHandler, *BadgeHandler, *websocket.Hub) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	svc := engine.New(store.NewProgressStore(db), slog.Default())
	hub := websocket.NewHub(slog.Default())
	return NewProgressHandler(svc, hub, slog.Default()), NewBadgeHandler(svc, hub, slog.Default()), hub
}

func TestCompleteEndpoint(t *testing.T) {
	ph, _, _ := setupHandlers(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/workouts/complete", strings.NewReader(`{"date_key":"2026-1-5"}`))
	ph.Complete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res engine.CompletionResult
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !res.Success {
		t.Error("expected success")
	}
	if res.WeekCompleted {
		t.Error("one day should not complete a week")
	}
	if res.Reward != nil {
		t.Error("no reward expected")
	}
}

func TestCompleteEndpointRejectsBadKeys(t *testing.T) {
	ph, _, _ := setupHandlers(t)

	for _, body := range []string{`{`, `{"date_key":""}`, `{"date_key":"yesterday"}`, `{"date_key":"2026-13-1"}`} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/workouts/complete", strings.NewReader(body))
		ph.Complete(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestRewardRangeEndpoint(t *testing.T) {
	ph, _, _ := setupHandlers(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/settings/reward-range", strings.NewReader(`{"min":5,"max":1}`))
	ph.UpdateRewardRange(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("inverted range: status = %d, want 400", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest("PUT", "/api/settings/reward-range", strings.NewReader(`{"min":2,"max":9}`))
	ph.UpdateRewardRange(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("valid range: status = %d, want 200", rec.Code)
	}
}

func TestBadgeCheckUnlocksOnce(t *testing.T) {
	ph, bh, _ := setupHandlers(t)

	rec := httptest.NewRecorder()
	ph.Complete(rec, httptest.NewRequest("POST", "/api/workouts/complete", strings.NewReader(`{"date_key":"2026-1-5"}`)))

	rec = httptest.NewRecorder()
	bh.Check(rec, httptest.NewRequest("POST", "/api/badges/check", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var unlocked []model.Badge
	if err := json.NewDecoder(rec.Body).Decode(&unlocked); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(unlocked) != 1 || unlocked[0].ID != "first_day" {
		t.Fatalf("unlocked = %v, want [first_day]", unlocked)
	}

	// Second check unlocks nothing.
	rec = httptest.NewRecorder()
	bh.Check(rec, httptest.NewRequest("POST", "/api/badges/check", nil))
	unlocked = nil
	json.NewDecoder(rec.Body).Decode(&unlocked)
	if len(unlocked) != 0 {
		t.Errorf("second check unlocked %d, want 0", len(unlocked))
	}
}

func TestStatsEndpoint(t *testing.T) {
	ph, _, _ := setupHandlers(t)

	rec := httptest.NewRecorder()
	ph.Complete(rec, httptest.NewRequest("POST", "/api/workouts/complete", strings.NewReader(`{"date_key":"2026-1-5"}`)))

	rec = httptest.NewRecorder()
	ph.Stats(rec, httptest.NewRequest("GET", "/api/progress/stats", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var stats model.Stats
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.TotalDays != 1 {
		t.Errorf("total_days = %d, want 1", stats.TotalDays)
	}
}

func TestIdentityHeaderSeparatesDocuments(t *testing.T) {
	ph, _, _ := setupHandlers(t)

	req := httptest.NewRequest("POST", "/api/workouts/complete", strings.NewReader(`{"date_key":"2026-1-5"}`))
	req.Header.Set("X-User-ID", "phone")
	ph.Complete(httptest.NewRecorder(), req)

	// The default identity saw no completion.
	rec := httptest.NewRecorder()
	ph.Days(rec, httptest.NewRequest("GET", "/api/progress/days", nil))
	var days map[string]bool
	json.NewDecoder(rec.Body).Decode(&days)
	if len(days) != 0 {
		t.Errorf("default identity has %d days, want 0", len(days))
	}

	// The phone identity did.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/progress/days", nil)
	req.Header.Set("X-User-ID", "phone")
	ph.Days(rec, req)
	days = nil
	json.NewDecoder(rec.Body).Decode(&days)
	if !days["2026-1-5"] {
		t.Error("phone identity missing its completed day")
	}
}
