package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mwhitfield/walkstreak/internal/engine"
	"github.com/mwhitfield/walkstreak/internal/model"
	"github.com/mwhitfield/walkstreak/internal/websocket"
)

type SocialHandler struct {
	svc    *engine.Service
	hub    *websocket.Hub
	logger *slog.Logger
}

func NewSocialHandler(svc *engine.Service, hub *websocket.Hub, logger *slog.Logger) *SocialHandler {
	return &SocialHandler{svc: svc, hub: hub, logger: logger}
}

func (h *SocialHandler) broadcast(ev websocket.Event) {
	if h.hub != nil {
		h.hub.Broadcast(ev)
	}
}

// ListFriends returns the caller's friends.
func (h *SocialHandler) ListFriends(w http.ResponseWriter, r *http.Request) {
	friends, err := h.svc.Friends(identity(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list friends")
		return
	}
	if friends == nil {
		friends = []model.Friend{}
	}
	writeJSON(w, http.StatusOK, friends)
}

// AddFriend creates a friend record.
func (h *SocialHandler) AddFriend(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	friend, err := h.svc.AddFriend(identity(r), req.Name)
	if err != nil {
		h.logger.Error("add friend", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to add friend")
		return
	}

	h.broadcast(websocket.NewEvent("friend", "added", friend.ID, nil))
	writeJSON(w, http.StatusCreated, friend)
}

// Cheer records a one-time cheer for a friend.
func (h *SocialHandler) Cheer(w http.ResponseWriter, r *http.Request) {
	friendID := r.PathValue("id")

	cheered, err := h.svc.CheerFriend(identity(r), friendID)
	if errors.Is(err, engine.ErrNotFound) {
		writeError(w, http.StatusNotFound, "friend not found")
		return
	}
	if err != nil {
		h.logger.Error("cheer friend", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to cheer")
		return
	}

	if cheered {
		h.broadcast(websocket.NewEvent("friend", "cheered", friendID, nil))
	}
	writeJSON(w, http.StatusOK, map[string]bool{"cheered": cheered})
}

// InviteCode returns the caller's stable invite code, generating it on
// first request.
func (h *SocialHandler) InviteCode(w http.ResponseWriter, r *http.Request) {
	code, err := h.svc.InviteCode(identity(r))
	if err != nil {
		h.logger.Error("invite code", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get invite code")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"invite_code": code})
}
