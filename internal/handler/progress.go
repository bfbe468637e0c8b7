package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mwhitfield/walkstreak/internal/engine"
	"github.com/mwhitfield/walkstreak/internal/middleware"
	"github.com/mwhitfield/walkstreak/internal/week"
	"github.com/mwhitfield/walkstreak/internal/websocket"
)

type ProgressHandler struct {
	svc    *engine.Service
	hub    *websocket.Hub
	logger *slog.Logger
}

func NewProgressHandler(svc *engine.Service, hub *websocket.Hub, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{svc: svc, hub: hub, logger: logger}
}

func (h *ProgressHandler) broadcast(ev websocket.Event) {
	if h.hub != nil {
		h.hub.Broadcast(ev)
	}
}

// Complete marks a workout done for a date and reports week-completion and
// any newly issued reward.
func (h *ProgressHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DateKey string `json:"date_key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if _, err := week.ParseDateKey(req.DateKey); err != nil {
		writeError(w, http.StatusBadRequest, "invalid date key")
		return
	}

	res, err := h.svc.CompleteWorkout(identity(r), req.DateKey)
	if err != nil {
		h.logger.Error("complete workout", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to complete workout")
		return
	}

	h.broadcast(websocket.NewEvent("workout", "completed", res.DateKey, nil))
	if res.Reward != nil {
		middleware.CountReward()
		h.broadcast(websocket.NewEvent("week", "completed", res.WeekKey, map[string]any{
			"reward": *res.Reward,
		}))
	}

	writeJSON(w, http.StatusOK, res)
}

// Days returns the completed-days map.
func (h *ProgressHandler) Days(w http.ResponseWriter, r *http.Request) {
	days, err := h.svc.CompletedDays(identity(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load completed days")
		return
	}
	writeJSON(w, http.StatusOK, days)
}

// Rewards returns the weekly-rewards map.
func (h *ProgressHandler) Rewards(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.svc.WeeklyRewards(identity(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load weekly rewards")
		return
	}
	writeJSON(w, http.StatusOK, rewards)
}

// Stats returns the dashboard summary.
func (h *ProgressHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(identity(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// UpdateRewardRange sets the bounds rewards are drawn from.
func (h *ProgressHandler) UpdateRewardRange(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Min int `json:"min"`
		Max int `json:"max"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	ok, err := h.svc.UpdateRewardRange(identity(r), req.Min, req.Max)
	if err != nil {
		h.logger.Error("update reward range", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update reward range")
		return
	}
	if !ok {
		writeError(w, http.StatusBadRequest, "reward range must satisfy 1 <= min <= max")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"min": req.Min, "max": req.Max})
}
