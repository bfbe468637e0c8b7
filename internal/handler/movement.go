package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mwhitfield/walkstreak/internal/engine"
	"github.com/mwhitfield/walkstreak/internal/model"
	"github.com/mwhitfield/walkstreak/internal/websocket"
)

type MovementHandler struct {
	svc    *engine.Service
	hub    *websocket.Hub
	logger *slog.Logger
}

func NewMovementHandler(svc *engine.Service, hub *websocket.Hub, logger *slog.Logger) *MovementHandler {
	return &MovementHandler{svc: svc, hub: hub, logger: logger}
}

func (h *MovementHandler) broadcast(ev websocket.Event) {
	if h.hub != nil {
		h.hub.Broadcast(ev)
	}
}

// List returns the caller's movements.
func (h *MovementHandler) List(w http.ResponseWriter, r *http.Request) {
	movements, err := h.svc.Movements(identity(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list movements")
		return
	}
	if movements == nil {
		movements = []model.Movement{}
	}
	writeJSON(w, http.StatusOK, movements)
}

// Create starts a new movement with the caller as creator.
func (h *MovementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Charity     string `json:"charity"`
		Description string `json:"description"`
		StartDate   string `json:"start_date"`
		EndDate     string `json:"end_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
		return
	}
	if end.Before(start) {
		writeError(w, http.StatusBadRequest, "end_date is before start_date")
		return
	}

	m, err := h.svc.CreateMovement(identity(r), req.Name, req.Charity, req.Description, start, end)
	if err != nil {
		h.logger.Error("create movement", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create movement")
		return
	}

	h.broadcast(websocket.NewEvent("movement", "created", strconv.FormatInt(m.ID, 10), nil))
	writeJSON(w, http.StatusCreated, m)
}

// Join adds the caller to a movement.
func (h *MovementHandler) Join(w http.ResponseWriter, r *http.Request) {
	id, err := parseMovementID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	m, err := h.svc.JoinMovement(identity(r), id)
	if errors.Is(err, engine.ErrNotFound) {
		writeError(w, http.StatusNotFound, "movement not found")
		return
	}
	if err != nil {
		h.logger.Error("join movement", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to join movement")
		return
	}

	h.broadcast(websocket.NewEvent("movement", "joined", strconv.FormatInt(id, 10), nil))
	writeJSON(w, http.StatusOK, m)
}

// Leave removes the caller from a movement.
func (h *MovementHandler) Leave(w http.ResponseWriter, r *http.Request) {
	id, err := parseMovementID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	m, err := h.svc.LeaveMovement(identity(r), id)
	if errors.Is(err, engine.ErrNotFound) {
		writeError(w, http.StatusNotFound, "movement not found")
		return
	}
	if err != nil {
		h.logger.Error("leave movement", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to leave movement")
		return
	}

	h.broadcast(websocket.NewEvent("movement", "left", strconv.FormatInt(id, 10), nil))
	writeJSON(w, http.StatusOK, m)
}
