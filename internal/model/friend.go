package model

// Friend is a locally-tracked friend record. Stats are simulated locally;
// there is no remote profile behind them.
type Friend struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Streak      int    `json:"streak"`
	TotalDays   int    `json:"total_days"`
	TotalEarned int    `json:"total_earned"`
}

// CheerKey is the cheers-map key for a friend. At most one cheer per friend
// is recorded; there is no un-cheer.
func CheerKey(friendID string) string {
	return "cheer-" + friendID
}
