package handler

import (
	"net/http"
	"time"

	"github.com/mwhitfield/walkstreak/internal/week"
	"github.com/mwhitfield/walkstreak/internal/workout"
)

type WorkoutHandler struct{}

func NewWorkoutHandler() *WorkoutHandler {
	return &WorkoutHandler{}
}

// List returns the workout for a date (?date=YYYY-M-D), defaulting to
// today. The catalog is keyed by weekday, so the same weekday always
// returns the same exercise list.
func (h *WorkoutHandler) List(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if key := r.URL.Query().Get("date"); key != "" {
		parsed, err := week.ParseDateKey(key)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date key")
			return
		}
		date = parsed
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"date_key":  week.DateKeyFor(date),
		"weekday":   date.Weekday().String(),
		"exercises": workout.ForDate(date),
	})
}
