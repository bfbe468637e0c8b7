package social

import (
	"strings"
	"testing"
	"time"
)

func TestNewInviteCodeFormat(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := NewInviteCode()
		if len(code) != 10 {
			t.Fatalf("code %q has length %d, want 10", code, len(code))
		}
		if !strings.HasPrefix(code, "WALK") {
			t.Fatalf("code %q missing WALK prefix", code)
		}
		for _, c := range code[4:] {
			if !strings.ContainsRune(inviteCharset, c) {
				t.Fatalf("code %q contains %q outside charset", code, c)
			}
		}
	}
}

func TestNewFriend(t *testing.T) {
	f := NewFriend("Ada")
	if f.ID == "" {
		t.Error("friend id should be set")
	}
	if f.Name != "Ada" {
		t.Errorf("name = %q, want Ada", f.Name)
	}
	if f.TotalDays < f.Streak {
		t.Errorf("total days %d less than streak %d", f.TotalDays, f.Streak)
	}

	other := NewFriend("Grace")
	if other.ID == f.ID {
		t.Error("friend ids should be unique")
	}
}

func TestNewMovement(t *testing.T) {
	now := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)

	m := NewMovement("Winter Walkers", "Red Cross", "Walk all winter", start, end, "u1", now)
	if m.ID != now.UnixMilli() {
		t.Errorf("id = %d, want %d", m.ID, now.UnixMilli())
	}
	if len(m.Members) != 1 || m.Members[0] != "u1" {
		t.Errorf("members = %v, want creator only", m.Members)
	}
	if m.TotalRaised != 0 {
		t.Errorf("total raised = %d, want 0", m.TotalRaised)
	}
	if m.WeeklyContributions == nil {
		t.Error("weekly contributions map should be initialized")
	}

	if !m.ActiveOn(time.Date(2026, time.January, 1, 23, 0, 0, 0, time.UTC)) {
		t.Error("movement should be active on its start date")
	}
	if !m.ActiveOn(end) {
		t.Error("movement should be active on its end date")
	}
	if m.ActiveOn(end.AddDate(0, 0, 1)) {
		t.Error("movement should not be active after its end date")
	}
}
