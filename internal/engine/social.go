package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/mwhitfield/walkstreak/internal/model"
	"github.com/mwhitfield/walkstreak/internal/social"
)

// InviteCode returns the caller's invite code, generating and persisting it
// on first request. Once a code exists it is never regenerated.
func (s *Service) InviteCode(userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load(userID)
	if err != nil {
		return "", err
	}
	if p.InviteCode != "" {
		return p.InviteCode, nil
	}

	p.InviteCode = social.NewInviteCode()
	if err := s.store.Save(p); err != nil {
		return "", err
	}
	return p.InviteCode, nil
}

// AddFriend appends a friend record with simulated stats.
func (s *Service) AddFriend(userID, name string) (*model.Friend, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("friend name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load(userID)
	if err != nil {
		return nil, err
	}

	friend := social.NewFriend(name)
	p.Friends = append(p.Friends, friend)
	if err := s.store.Save(p); err != nil {
		return nil, err
	}
	return &friend, nil
}

// Friends returns the caller's friend list in insertion order.
func (s *Service) Friends(userID string) ([]model.Friend, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	return p.Friends, nil
}

// CheerFriend records a cheer for a friend. Each friend can be cheered at
// most once; repeat calls report false without modifying the document.
func (s *Service) CheerFriend(userID, friendID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load(userID)
	if err != nil {
		return false, err
	}

	found := false
	for _, f := range p.Friends {
		if f.ID == friendID {
			found = true
			break
		}
	}
	if !found {
		return false, ErrNotFound
	}

	key := model.CheerKey(friendID)
	if p.Cheers[key] {
		return false, nil
	}
	p.Cheers[key] = true
	if err := s.store.Save(p); err != nil {
		return false, err
	}
	return true, nil
}

// CreateMovement starts a new movement with the caller as creator and first
// member.
func (s *Service) CreateMovement(userID, name, charity, description string, start, end time.Time) (*model.Movement, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("movement name is required")
	}
	if end.Before(start) {
		return nil, fmt.Errorf("movement ends before it starts")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load(userID)
	if err != nil {
		return nil, err
	}

	m := social.NewMovement(name, charity, description, start, end, userID, s.now())
	// Time-based ids can collide when two movements are created within the
	// same millisecond.
	for p.MovementByID(m.ID) != nil {
		m.ID++
	}
	p.Movements = append(p.Movements, m)
	if err := s.store.Save(p); err != nil {
		return nil, err
	}
	return &m, nil
}

// JoinMovement adds the caller to a movement's member set. Joining twice is
// a no-op.
func (s *Service) JoinMovement(userID string, movementID int64) (*model.Movement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load(userID)
	if err != nil {
		return nil, err
	}

	m := p.MovementByID(movementID)
	if m == nil {
		return nil, ErrNotFound
	}
	if m.AddMember(userID) {
		if err := s.store.Save(p); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// LeaveMovement removes the caller from a movement's member set. The
// contribution ledger is untouched: money already raised stays raised.
func (s *Service) LeaveMovement(userID string, movementID int64) (*model.Movement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load(userID)
	if err != nil {
		return nil, err
	}

	m := p.MovementByID(movementID)
	if m == nil {
		return nil, ErrNotFound
	}
	if m.RemoveMember(userID) {
		if err := s.store.Save(p); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Movements returns the caller's movement list in creation order.
func (s *Service) Movements(userID string) ([]model.Movement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	return p.Movements, nil
}
