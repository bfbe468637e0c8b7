package handler

import (
	"log/slog"
	"net/http"

	"github.com/mwhitfield/walkstreak/internal/engine"
	"github.com/mwhitfield/walkstreak/internal/middleware"
	"github.com/mwhitfield/walkstreak/internal/model"
	"github.com/mwhitfield/walkstreak/internal/websocket"
)

type BadgeHandler struct {
	svc    *engine.Service
	hub    *websocket.Hub
	logger *slog.Logger
}

func NewBadgeHandler(svc *engine.Service, hub *websocket.Hub, logger *slog.Logger) *BadgeHandler {
	return &BadgeHandler{svc: svc, hub: hub, logger: logger}
}

// List returns every badge with the caller's unlock state and progress.
func (h *BadgeHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.Badges(identity(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load badges")
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// Check evaluates badge thresholds and unlocks anything newly earned. The
// celebration event always carries the first newly unlocked badge in
// catalog order.
func (h *BadgeHandler) Check(w http.ResponseWriter, r *http.Request) {
	unlocked, err := h.svc.CheckAndUnlockBadges(identity(r))
	if err != nil {
		h.logger.Error("check badges", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to check badges")
		return
	}

	if len(unlocked) > 0 {
		middleware.CountBadges(len(unlocked))
		first := unlocked[0]
		if h.hub != nil {
			h.hub.Broadcast(websocket.NewEvent("badge", "unlocked", first.ID, map[string]any{
				"name": first.Name,
				"icon": first.Icon,
			}))
		}
	}

	if unlocked == nil {
		unlocked = []model.Badge{}
	}
	writeJSON(w, http.StatusOK, unlocked)
}
