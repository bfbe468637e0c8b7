// Package badge holds the static achievement catalog and the unlock engine.
// Badges are derived from the progress document: each definition names a
// metric type and a threshold, and unlocking is permanent.
package badge

import (
	"sort"

	"github.com/mwhitfield/walkstreak/internal/model"
	"github.com/mwhitfield/walkstreak/internal/week"
)

// Definitions is the full badge catalog in declaration order. The order
// matters: when several badges unlock in one evaluation, the first in this
// list is the one announced in the celebration event.
var Definitions = []model.Badge{
	{ID: "first_day", Name: "First Step", Icon: "👟", Description: "Complete your first workout", Requirement: 1, Type: model.BadgeDays},
	{ID: "seven_days", Name: "Finding the Habit", Icon: "📅", Description: "Complete 7 workouts", Requirement: 7, Type: model.BadgeDays},
	{ID: "thirty_days", Name: "Month of Movement", Icon: "🗓️", Description: "Complete 30 workouts", Requirement: 30, Type: model.BadgeDays},
	{ID: "hundred_days", Name: "Century Club", Icon: "💯", Description: "Complete 100 workouts", Requirement: 100, Type: model.BadgeDays},
	{ID: "first_week", Name: "Perfect Week", Icon: "🌟", Description: "Complete every day of a week", Requirement: 1, Type: model.BadgeWeeks},
	{ID: "four_weeks", Name: "Steady Stride", Icon: "🚶", Description: "Complete 4 full weeks", Requirement: 4, Type: model.BadgeWeeks},
	{ID: "twelve_weeks", Name: "Quarter Master", Icon: "🏆", Description: "Complete 12 full weeks", Requirement: 12, Type: model.BadgeWeeks},
	{ID: "back_to_back", Name: "Back to Back", Icon: "🔥", Description: "Complete 2 weeks in a row", Requirement: 2, Type: model.BadgeStreak},
	{ID: "fifty_pledged", Name: "Generous Heart", Icon: "💝", Description: "Pledge $50 to charity", Requirement: 50, Type: model.BadgeEarnings},
	{ID: "hundred_pledged", Name: "Big Giver", Icon: "🎁", Description: "Pledge $100 to charity", Requirement: 100, Type: model.BadgeEarnings},
	{ID: "movement_founder", Name: "Movement Founder", Icon: "🚩", Description: "Start your own movement", Requirement: 1, Type: model.BadgeMovements},
	{ID: "social_circle", Name: "Social Circle", Icon: "👥", Description: "Add 3 friends", Requirement: 3, Type: model.BadgeFriends},
}

// Metrics derives the six progress metrics badges are judged against.
func Metrics(p *model.UserProgress) map[model.BadgeType]int {
	created := 0
	for i := range p.Movements {
		if p.Movements[i].Creator == p.UserID {
			created++
		}
	}

	earned := 0
	for _, amount := range p.WeeklyRewards {
		earned += amount
	}

	return map[model.BadgeType]int{
		model.BadgeDays:      len(p.CompletedDays),
		model.BadgeWeeks:     len(p.WeeklyRewards),
		model.BadgeStreak:    Streak(p),
		model.BadgeEarnings:  earned,
		model.BadgeMovements: created,
		model.BadgeFriends:   len(p.Friends),
	}
}

// Streak counts consecutive reward-bearing weeks, scanning from the most
// recent week backwards and stopping at the first non-positive entry.
//
// Today every stored reward is positive, so this matches the plain week
// count. The scan exists so that a future "missed week" marker with a zero
// amount breaks the streak without an engine change.
func Streak(p *model.UserProgress) int {
	type entry struct {
		year, month, week int
		amount            int
	}

	entries := make([]entry, 0, len(p.WeeklyRewards))
	for key, amount := range p.WeeklyRewards {
		y, m, w, err := week.ParseKey(key)
		if err != nil {
			continue
		}
		entries = append(entries, entry{y, m, w, amount})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.year != b.year {
			return a.year > b.year
		}
		if a.month != b.month {
			return a.month > b.month
		}
		return a.week > b.week
	})

	streak := 0
	for _, e := range entries {
		if e.amount <= 0 {
			break
		}
		streak++
	}
	return streak
}

// Evaluate unlocks every badge whose metric meets its threshold, appending
// ids to the document's unlocked set. It returns the newly unlocked
// definitions in declaration order; an empty result means the document was
// not modified. Calling it twice with no intervening change unlocks nothing
// the second time.
func Evaluate(p *model.UserProgress) []model.Badge {
	metrics := Metrics(p)

	var unlocked []model.Badge
	for _, def := range Definitions {
		if p.HasBadge(def.ID) {
			continue
		}
		if metrics[def.Type] >= def.Requirement {
			p.UnlockedBadges = append(p.UnlockedBadges, def.ID)
			unlocked = append(unlocked, def)
		}
	}
	return unlocked
}

// Views joins every definition with the document's unlock state and
// progress toward the requirement.
func Views(p *model.UserProgress) []model.BadgeView {
	metrics := Metrics(p)

	views := make([]model.BadgeView, 0, len(Definitions))
	for _, def := range Definitions {
		progress := metrics[def.Type]
		percent := progress * 100 / def.Requirement
		if percent > 100 {
			percent = 100
		}
		views = append(views, model.BadgeView{
			Badge:    def,
			Unlocked: p.HasBadge(def.ID),
			Progress: progress,
			Percent:  percent,
		})
	}
	return views
}

// Stats summarizes the document for the dashboard.
func Stats(p *model.UserProgress) model.Stats {
	earned := 0
	for _, amount := range p.WeeklyRewards {
		earned += amount
	}
	return model.Stats{
		TotalDays:     len(p.CompletedDays),
		CurrentStreak: Streak(p),
		TotalEarned:   earned,
	}
}
