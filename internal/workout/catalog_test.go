package workout

import (
	"testing"
	"time"
)

func TestEveryWeekdayHasExercises(t *testing.T) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		exercises := ForWeekday(day)
		if len(exercises) == 0 {
			t.Errorf("%v has no exercises", day)
		}
		for _, e := range exercises {
			if e.Name == "" {
				t.Errorf("%v has an exercise with no name", day)
			}
			if e.DurationSeconds <= 0 {
				t.Errorf("%v: %s has non-positive duration", day, e.Name)
			}
		}
	}
}

func TestForDateMatchesWeekday(t *testing.T) {
	// 2026-01-05 is a Monday.
	monday := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	got := ForDate(monday)
	want := ForWeekday(time.Monday)
	if len(got) != len(want) {
		t.Fatalf("ForDate returned %d exercises, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Name != want[i].Name {
			t.Errorf("exercise[%d] = %q, want %q", i, got[i].Name, want[i].Name)
		}
	}
}
