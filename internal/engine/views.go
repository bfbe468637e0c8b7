package engine

import (
	"github.com/mwhitfield/walkstreak/internal/badge"
	"github.com/mwhitfield/walkstreak/internal/model"
)

// CompletedDays returns the date-key → true map of completed workouts.
func (s *Service) CompletedDays(userID string) (map[string]bool, error) {
	p, err := s.Progress(userID)
	if err != nil {
		return nil, err
	}
	return p.CompletedDays, nil
}

// WeeklyRewards returns the week-key → amount map of issued rewards.
func (s *Service) WeeklyRewards(userID string) (map[string]int, error) {
	p, err := s.Progress(userID)
	if err != nil {
		return nil, err
	}
	return p.WeeklyRewards, nil
}

// Stats returns the dashboard summary for the caller.
func (s *Service) Stats(userID string) (*model.Stats, error) {
	p, err := s.Progress(userID)
	if err != nil {
		return nil, err
	}
	stats := badge.Stats(p)
	return &stats, nil
}

// Badges returns every badge definition joined with the caller's unlock
// state and progress.
func (s *Service) Badges(userID string) ([]model.BadgeView, error) {
	p, err := s.Progress(userID)
	if err != nil {
		return nil, err
	}
	return badge.Views(p), nil
}

// CheckAndUnlockBadges evaluates the badge catalog against the caller's
// current metrics and unlocks anything newly earned, persisting only when
// something changed. The returned slice preserves catalog declaration
// order; its first element is the badge to celebrate.
func (s *Service) CheckAndUnlockBadges(userID string) ([]model.Badge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load(userID)
	if err != nil {
		return nil, err
	}

	unlocked := badge.Evaluate(p)
	if len(unlocked) == 0 {
		return nil, nil
	}

	if err := s.store.Save(p); err != nil {
		return nil, err
	}
	s.logger.Info("badges unlocked", "user_id", userID, "count", len(unlocked), "first", unlocked[0].ID)
	return unlocked, nil
}
