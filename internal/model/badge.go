package model

// BadgeType names the progress metric a badge threshold applies to.
type BadgeType string

const (
	BadgeDays      BadgeType = "days"
	BadgeWeeks     BadgeType = "weeks"
	BadgeStreak    BadgeType = "streak"
	BadgeEarnings  BadgeType = "earnings"
	BadgeMovements BadgeType = "movements"
	BadgeFriends   BadgeType = "friends"
)

// Badge is a static achievement definition. Definitions ship with the
// binary and are never persisted per-instance; only unlocked ids are.
type Badge struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	Requirement int       `json:"requirement"`
	Type        BadgeType `json:"type"`
}

// BadgeView is a definition joined with the caller's unlock state and
// numeric progress toward the requirement.
type BadgeView struct {
	Badge
	Unlocked bool `json:"unlocked"`
	Progress int  `json:"progress"`
	Percent  int  `json:"percent"`
}
