// Package engine is the state-transition core: every operation loads the
// caller's whole progress document, mutates an in-memory copy, and writes it
// back before returning. A single mutex serializes these read-modify-write
// cycles so concurrent HTTP requests cannot interleave on the same store.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/mwhitfield/walkstreak/internal/model"
	"github.com/mwhitfield/walkstreak/internal/store"
	"github.com/mwhitfield/walkstreak/internal/week"
)

// A week is complete when this many distinct days in its bucket are marked.
// Buckets at month edges can hold fewer than seven calendar days and so can
// never complete.
const weekCompletionThreshold = 7

// ErrNotFound is returned when a referenced friend or movement does not
// exist in the caller's document.
var ErrNotFound = errors.New("not found")

type Service struct {
	mu     sync.Mutex
	store  *store.ProgressStore
	logger *slog.Logger

	now     func() time.Time
	randInt func(min, max int) int
}

func New(st *store.ProgressStore, logger *slog.Logger) *Service {
	return &Service{
		store:  st,
		logger: logger,
		now:    time.Now,
		randInt: func(min, max int) int {
			return min + rand.IntN(max-min+1)
		},
	}
}

// CompletionResult reports the outcome of one workout completion. Reward is
// nil unless this call issued the week's reward.
type CompletionResult struct {
	Success       bool   `json:"success"`
	DateKey       string `json:"date_key"`
	WeekKey       string `json:"week_key"`
	WeekCompleted bool   `json:"week_completed"`
	Reward        *int   `json:"reward"`
}

// CompleteWorkout marks a date complete and computes the downstream
// effects: week-completion detection, at-most-once reward issuance, and
// fan-out of a newly issued reward into the caller's active movements.
//
// Marking an already-completed date is a harmless no-op for the day map,
// and an already-rewarded week never issues again: presence of the week key
// is the sole guard.
func (s *Service) CompleteWorkout(userID, dateKey string) (*CompletionResult, error) {
	date, err := week.ParseDateKey(dateKey)
	if err != nil {
		return nil, err
	}
	canonical := week.DateKeyFor(date)

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.store.LoadOrCreate(userID)
	if err != nil {
		return nil, err
	}

	p.CompletedDays[canonical] = true

	year, month, weekNum := date.Year(), int(date.Month()), week.OfMonth(date)
	weekKey := week.Key(year, month, weekNum)

	completed := 0
	for _, day := range week.Days(year, month, weekNum) {
		if p.CompletedDays[week.DateKey(year, month, day)] {
			completed++
		}
	}

	result := &CompletionResult{
		Success:       true,
		DateKey:       canonical,
		WeekKey:       weekKey,
		WeekCompleted: completed >= weekCompletionThreshold,
	}

	if result.WeekCompleted {
		if _, rewarded := p.WeeklyRewards[weekKey]; !rewarded {
			reward := s.randInt(p.MinReward, p.MaxReward)
			p.WeeklyRewards[weekKey] = reward
			result.Reward = &reward
			s.fanOutReward(p, date, weekKey, reward)
			s.logger.Info("week completed", "user_id", userID, "week", weekKey, "reward", reward)
		}
	}

	if err := s.store.Save(p); err != nil {
		return nil, err
	}
	return result, nil
}

// fanOutReward credits a newly issued reward to every movement the user
// belongs to that is active on the completed date (not "now" — a backdated
// completion funds the movements that were running then).
func (s *Service) fanOutReward(p *model.UserProgress, date time.Time, weekKey string, reward int) {
	for i := range p.Movements {
		m := &p.Movements[i]
		if !m.IsMember(p.UserID) || !m.ActiveOn(date) {
			continue
		}
		m.WeeklyContributions[weekKey] += reward
		m.TotalRaised += reward
	}
}

// UpdateRewardRange persists a new reward range. It reports false and
// leaves the document untouched when the range is inverted or starts below
// one dollar. Already-issued rewards are never adjusted.
func (s *Service) UpdateRewardRange(userID string, min, max int) (bool, error) {
	if min < 1 || min > max {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.store.LoadOrCreate(userID)
	if err != nil {
		return false, err
	}
	p.MinReward = min
	p.MaxReward = max
	if err := s.store.Save(p); err != nil {
		return false, err
	}
	return true, nil
}

// Progress returns the caller's full document, creating it on first use.
func (s *Service) Progress(userID string) (*model.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.LoadOrCreate(userID)
}

// load is a lock-held helper for mutating operations in other files.
func (s *Service) load(userID string) (*model.UserProgress, error) {
	p, err := s.store.LoadOrCreate(userID)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	return p, nil
}
