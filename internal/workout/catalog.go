// Package workout holds the static daily workout catalog. Each weekday maps
// to a fixed, ordered list of exercises; the catalog is read-only reference
// data and ships with the binary.
package workout

import (
	"time"

	"github.com/mwhitfield/walkstreak/internal/model"
)

var catalog = map[time.Weekday][]model.Exercise{
	time.Sunday: {
		{Name: "Recovery Walk", Description: "Easy-pace walk, focus on posture", DurationSeconds: 1200, MediaURL: "/media/recovery-walk.mp4"},
		{Name: "Full Body Stretch", Description: "Gentle stretching head to toe", DurationSeconds: 600, MediaURL: "/media/full-body-stretch.mp4"},
	},
	time.Monday: {
		{Name: "Brisk Walk", Description: "Walk at a pace where talking is hard", DurationSeconds: 1800, MediaURL: "/media/brisk-walk.mp4"},
		{Name: "Bodyweight Squats", Description: "3 sets of 15, knees tracking over toes", DurationSeconds: 420, MediaURL: "/media/squats.mp4"},
		{Name: "Plank Hold", Description: "3 rounds of 45 seconds", DurationSeconds: 300, MediaURL: "/media/plank.mp4"},
	},
	time.Tuesday: {
		{Name: "Interval Walk", Description: "Alternate 2 minutes fast, 1 minute easy", DurationSeconds: 1500, MediaURL: "/media/interval-walk.mp4"},
		{Name: "Push-ups", Description: "3 sets to form failure, knees allowed", DurationSeconds: 420, MediaURL: "/media/pushups.mp4"},
	},
	time.Wednesday: {
		{Name: "Hill Walk", Description: "Find an incline and climb it five times", DurationSeconds: 1800, MediaURL: "/media/hill-walk.mp4"},
		{Name: "Lunges", Description: "3 sets of 10 per leg", DurationSeconds: 480, MediaURL: "/media/lunges.mp4"},
		{Name: "Side Plank", Description: "30 seconds per side, 3 rounds", DurationSeconds: 300, MediaURL: "/media/side-plank.mp4"},
	},
	time.Thursday: {
		{Name: "Steady Walk", Description: "Conversational pace, keep moving", DurationSeconds: 2100, MediaURL: "/media/steady-walk.mp4"},
		{Name: "Glute Bridges", Description: "3 sets of 15, squeeze at the top", DurationSeconds: 360, MediaURL: "/media/glute-bridges.mp4"},
	},
	time.Friday: {
		{Name: "Tempo Walk", Description: "Strong sustained pace for the full block", DurationSeconds: 1800, MediaURL: "/media/tempo-walk.mp4"},
		{Name: "Mountain Climbers", Description: "4 rounds of 30 seconds", DurationSeconds: 360, MediaURL: "/media/mountain-climbers.mp4"},
		{Name: "Calf Raises", Description: "3 sets of 20, slow on the way down", DurationSeconds: 300, MediaURL: "/media/calf-raises.mp4"},
	},
	time.Saturday: {
		{Name: "Long Walk", Description: "The week's longest walk, pick a new route", DurationSeconds: 2700, MediaURL: "/media/long-walk.mp4"},
		{Name: "Core Circuit", Description: "Crunches, leg raises, bicycle kicks", DurationSeconds: 600, MediaURL: "/media/core-circuit.mp4"},
	},
}

// ForWeekday returns the ordered exercise list for a weekday.
func ForWeekday(day time.Weekday) []model.Exercise {
	return catalog[day]
}

// ForDate returns the exercise list for the weekday of the given date.
func ForDate(date time.Time) []model.Exercise {
	return catalog[date.Weekday()]
}
