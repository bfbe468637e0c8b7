package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/mwhitfield/walkstreak/internal/model"
)

// ProgressStore persists one UserProgress document per local identity.
// The document is always read and written as a unit; there are no partial
// writes at this interface.
type ProgressStore struct {
	db *sql.DB
}

func NewProgressStore(db *sql.DB) *ProgressStore {
	return &ProgressStore{db: db}
}

// Load returns the document for an identity, or nil if none exists yet.
// The document is normalized before it is returned, so callers never see
// nil maps or a degenerate reward range.
func (s *ProgressStore) Load(userID string) (*model.UserProgress, error) {
	var doc string
	err := s.db.QueryRow(`SELECT doc FROM user_progress WHERE user_id = ?`, userID).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	var p model.UserProgress
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		return nil, fmt.Errorf("decode progress: %w", err)
	}
	p.UserID = userID
	p.Normalize()
	return &p, nil
}

// LoadOrCreate returns the existing document, or creates, persists, and
// returns a defaulted one if the identity has no document yet.
func (s *ProgressStore) LoadOrCreate(userID string) (*model.UserProgress, error) {
	p, err := s.Load(userID)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	p = model.NewUserProgress(userID)
	if err := s.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Save writes the whole document back, creating the row if needed.
func (s *ProgressStore) Save(p *model.UserProgress) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO user_progress (user_id, doc) VALUES (?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET doc = excluded.doc, updated_at = CURRENT_TIMESTAMP`,
		p.UserID, string(doc),
	)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
