// Package social builds the locally-owned social records: friend entries
// with simulated stats, invite codes, and movement campaigns.
package social

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/mwhitfield/walkstreak/internal/model"
)

// Invite codes are "WALK" plus six characters from this charset. Ambiguous
// characters (0/O, 1/I/L) are excluded so codes survive being read aloud.
const (
	invitePrefix  = "WALK"
	inviteCharset = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	inviteRandLen = 6
)

// NewInviteCode generates a 10-character invite code. A document's code is
// generated once and persisted; it is never regenerated.
func NewInviteCode() string {
	buf := make([]byte, inviteRandLen)
	for i := range buf {
		buf[i] = inviteCharset[rand.IntN(len(inviteCharset))]
	}
	return invitePrefix + string(buf)
}

// NewFriend creates a friend record with a fresh id and simulated stats.
// There is no remote profile: the stats exist only to populate the friend
// card in the UI.
func NewFriend(name string) model.Friend {
	streak := rand.IntN(10)
	days := streak + rand.IntN(50)
	return model.Friend{
		ID:          uuid.NewString(),
		Name:        name,
		Streak:      streak,
		TotalDays:   days,
		TotalEarned: days * (1 + rand.IntN(5)),
	}
}

// NewMovement creates a movement owned by creator. The id is time-based and
// stable for the life of the document; the creator is always the first
// member.
func NewMovement(name, charity, description string, start, end time.Time, creator string, now time.Time) model.Movement {
	return model.Movement{
		ID:                  now.UnixMilli(),
		Name:                name,
		Charity:             charity,
		Description:         description,
		StartDate:           start,
		EndDate:             end,
		Creator:             creator,
		Members:             []string{creator},
		WeeklyContributions: map[string]int{},
		CreatedAt:           now,
	}
}
