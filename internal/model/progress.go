package model

// Default reward range for a fresh progress document, in whole dollars.
const (
	DefaultMinReward = 1
	DefaultMaxReward = 10
)

// UserProgress is the whole persisted document for one local identity.
// Every mutation reads the document, updates it in memory, and writes it
// back as a unit.
type UserProgress struct {
	UserID         string          `json:"user_id"`
	CompletedDays  map[string]bool `json:"completed_days"`
	WeeklyRewards  map[string]int  `json:"weekly_rewards"`
	MinReward      int             `json:"min_reward"`
	MaxReward      int             `json:"max_reward"`
	Friends        []Friend        `json:"friends"`
	Cheers         map[string]bool `json:"cheers"`
	Movements      []Movement      `json:"movements"`
	UnlockedBadges []string        `json:"unlocked_badges"`
	InviteCode     string          `json:"invite_code,omitempty"`
}

// NewUserProgress returns a document with defaults for a fresh identity.
func NewUserProgress(userID string) *UserProgress {
	return &UserProgress{
		UserID:        userID,
		CompletedDays: map[string]bool{},
		WeeklyRewards: map[string]int{},
		MinReward:     DefaultMinReward,
		MaxReward:     DefaultMaxReward,
		Cheers:        map[string]bool{},
	}
}

// Normalize repairs a partially-shaped document at the load boundary so the
// engines never see nil maps or a degenerate reward range.
func (p *UserProgress) Normalize() {
	if p.CompletedDays == nil {
		p.CompletedDays = map[string]bool{}
	}
	if p.WeeklyRewards == nil {
		p.WeeklyRewards = map[string]int{}
	}
	if p.Cheers == nil {
		p.Cheers = map[string]bool{}
	}
	if p.MinReward < 1 {
		p.MinReward = DefaultMinReward
	}
	if p.MaxReward < p.MinReward {
		p.MaxReward = p.MinReward
	}
	for i := range p.Movements {
		p.Movements[i].normalize()
	}
}

// HasBadge reports whether the badge id has been unlocked.
func (p *UserProgress) HasBadge(id string) bool {
	for _, b := range p.UnlockedBadges {
		if b == id {
			return true
		}
	}
	return false
}

// MovementByID returns a pointer into Movements, or nil if absent.
func (p *UserProgress) MovementByID(id int64) *Movement {
	for i := range p.Movements {
		if p.Movements[i].ID == id {
			return &p.Movements[i]
		}
	}
	return nil
}

// Stats is the derived summary shown on the dashboard.
type Stats struct {
	TotalDays     int `json:"total_days"`
	CurrentStreak int `json:"current_streak"`
	TotalEarned   int `json:"total_earned"`
}
