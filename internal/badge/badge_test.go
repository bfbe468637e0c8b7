package badge

import (
	"fmt"
	"testing"

	"github.com/mwhitfield/walkstreak/internal/model"
)

func freshProgress() *model.UserProgress {
	return model.NewUserProgress("u1")
}

func TestCatalogShape(t *testing.T) {
	if len(Definitions) != 12 {
		t.Fatalf("catalog has %d badges, want 12", len(Definitions))
	}

	seen := map[string]bool{}
	for _, def := range Definitions {
		if def.ID == "" || def.Name == "" {
			t.Errorf("badge %+v missing id or name", def)
		}
		if def.Requirement < 1 {
			t.Errorf("badge %s requirement = %d, want >= 1", def.ID, def.Requirement)
		}
		if seen[def.ID] {
			t.Errorf("duplicate badge id %s", def.ID)
		}
		seen[def.ID] = true
	}
}

func TestFirstDayUnlock(t *testing.T) {
	p := freshProgress()
	p.CompletedDays["2026-1-5"] = true

	unlocked := Evaluate(p)
	if len(unlocked) != 1 {
		t.Fatalf("unlocked %d badges, want 1", len(unlocked))
	}
	if unlocked[0].ID != "first_day" {
		t.Errorf("unlocked %s, want first_day", unlocked[0].ID)
	}
	if !p.HasBadge("first_day") {
		t.Error("first_day not recorded on document")
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	p := freshProgress()
	p.CompletedDays["2026-1-5"] = true

	Evaluate(p)
	again := Evaluate(p)
	if len(again) != 0 {
		t.Errorf("second evaluation unlocked %d badges, want 0", len(again))
	}
	if len(p.UnlockedBadges) != 1 {
		t.Errorf("unlocked set has %d entries, want 1", len(p.UnlockedBadges))
	}
}

func TestSimultaneousUnlocksKeepDeclarationOrder(t *testing.T) {
	p := freshProgress()
	for d := 1; d <= 7; d++ {
		p.CompletedDays[keyFor(2026, 3, d)] = true
	}
	p.WeeklyRewards["2026-3-week1"] = 5

	unlocked := Evaluate(p)
	// days=7 unlocks first_day and seven_days; weeks=1 unlocks first_week.
	if len(unlocked) != 3 {
		t.Fatalf("unlocked %d badges, want 3", len(unlocked))
	}
	want := []string{"first_day", "seven_days", "first_week"}
	for i, id := range want {
		if unlocked[i].ID != id {
			t.Errorf("unlocked[%d] = %s, want %s", i, unlocked[i].ID, id)
		}
	}
}

// keyFor builds an unpadded date key.
func keyFor(y, m, d int) string {
	return fmt.Sprintf("%d-%d-%d", y, m, d)
}

func TestStreakScanBreaksAtNonPositive(t *testing.T) {
	p := freshProgress()
	p.WeeklyRewards["2026-1-week2"] = 3
	p.WeeklyRewards["2026-1-week3"] = 5
	p.WeeklyRewards["2026-1-week4"] = 2

	if got := Streak(p); got != 3 {
		t.Errorf("streak = %d, want 3", got)
	}

	// A zero-amount marker breaks the chain at that point.
	p.WeeklyRewards["2026-1-week3"] = 0
	if got := Streak(p); got != 1 {
		t.Errorf("streak with broken week = %d, want 1", got)
	}
}

func TestStreakOrdersAcrossYears(t *testing.T) {
	// Raw keys would sort "2019-..." after "2018-..." but before "202...";
	// the scan orders by parsed components, so a December-to-January run
	// still counts every week.
	p := freshProgress()
	p.WeeklyRewards["2025-12-week5"] = 4
	p.WeeklyRewards["2026-1-week1"] = 6

	if got := Streak(p); got != 2 {
		t.Errorf("streak = %d, want 2", got)
	}
}

func TestMetrics(t *testing.T) {
	p := freshProgress()
	p.CompletedDays["2026-1-5"] = true
	p.CompletedDays["2026-1-6"] = true
	p.WeeklyRewards["2026-1-week2"] = 7
	p.Friends = append(p.Friends, model.Friend{ID: "f1", Name: "Ada"})
	p.Movements = append(p.Movements,
		model.Movement{ID: 1, Creator: "u1"},
		model.Movement{ID: 2, Creator: "someone-else"},
	)

	m := Metrics(p)
	if m[model.BadgeDays] != 2 {
		t.Errorf("days = %d, want 2", m[model.BadgeDays])
	}
	if m[model.BadgeWeeks] != 1 {
		t.Errorf("weeks = %d, want 1", m[model.BadgeWeeks])
	}
	if m[model.BadgeEarnings] != 7 {
		t.Errorf("earnings = %d, want 7", m[model.BadgeEarnings])
	}
	if m[model.BadgeMovements] != 1 {
		t.Errorf("movements = %d, want 1 (only locally created count)", m[model.BadgeMovements])
	}
	if m[model.BadgeFriends] != 1 {
		t.Errorf("friends = %d, want 1", m[model.BadgeFriends])
	}
}

func TestViews(t *testing.T) {
	p := freshProgress()
	for d := 1; d <= 3; d++ {
		p.CompletedDays[keyFor(2026, 3, d)] = true
	}
	Evaluate(p)

	views := Views(p)
	if len(views) != len(Definitions) {
		t.Fatalf("got %d views, want %d", len(views), len(Definitions))
	}

	byID := map[string]model.BadgeView{}
	for _, v := range views {
		byID[v.ID] = v
	}

	if v := byID["first_day"]; !v.Unlocked || v.Percent != 100 {
		t.Errorf("first_day = %+v, want unlocked at 100%%", v)
	}
	if v := byID["seven_days"]; v.Unlocked {
		t.Error("seven_days should be locked at 3 days")
	}
	if v := byID["seven_days"]; v.Progress != 3 || v.Percent != 42 {
		t.Errorf("seven_days progress = %d/%d%%, want 3/42%%", v.Progress, v.Percent)
	}
}

func TestStats(t *testing.T) {
	p := freshProgress()
	p.CompletedDays["2026-1-5"] = true
	p.WeeklyRewards["2026-1-week2"] = 4
	p.WeeklyRewards["2026-1-week3"] = 6

	s := Stats(p)
	if s.TotalDays != 1 {
		t.Errorf("total_days = %d, want 1", s.TotalDays)
	}
	if s.CurrentStreak != 2 {
		t.Errorf("current_streak = %d, want 2", s.CurrentStreak)
	}
	if s.TotalEarned != 10 {
		t.Errorf("total_earned = %d, want 10", s.TotalEarned)
	}
}
