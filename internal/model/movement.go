package model

import "time"

// Movement is a time-boxed group fundraising campaign. The contribution
// ledger is only ever written by reward fan-out; TotalRaised must equal the
// sum of WeeklyContributions at all times.
type Movement struct {
	ID                  int64          `json:"id"`
	Name                string         `json:"name"`
	Charity             string         `json:"charity"`
	Description         string         `json:"description"`
	StartDate           time.Time      `json:"start_date"`
	EndDate             time.Time      `json:"end_date"`
	Creator             string         `json:"creator"`
	Members             []string       `json:"members"`
	TotalRaised         int            `json:"total_raised"`
	WeeklyContributions map[string]int `json:"weekly_contributions"`
	CreatedAt           time.Time      `json:"created_at"`
}

func (m *Movement) normalize() {
	if m.WeeklyContributions == nil {
		m.WeeklyContributions = map[string]int{}
	}
}

// IsMember reports whether the given identity belongs to the movement.
func (m *Movement) IsMember(userID string) bool {
	for _, id := range m.Members {
		if id == userID {
			return true
		}
	}
	return false
}

// AddMember appends the identity if not already present.
func (m *Movement) AddMember(userID string) bool {
	if m.IsMember(userID) {
		return false
	}
	m.Members = append(m.Members, userID)
	return true
}

// RemoveMember drops the identity from the member set.
func (m *Movement) RemoveMember(userID string) bool {
	for i, id := range m.Members {
		if id == userID {
			m.Members = append(m.Members[:i], m.Members[i+1:]...)
			return true
		}
	}
	return false
}

// ActiveOn reports whether the movement window covers the given date,
// inclusive on both ends at calendar-date granularity.
func (m *Movement) ActiveOn(date time.Time) bool {
	d := startOfDay(date)
	return !d.Before(startOfDay(m.StartDate)) && !d.After(startOfDay(m.EndDate))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
