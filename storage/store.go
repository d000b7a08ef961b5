package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Snapshot is one persisted document: the full JSON state for a key
// ("foods", "meals", "mealPlans", "targets"). Each save rewrites the whole
// value in a single upsert, so a crash mid-save can lose the latest write
// but never leaves a torn document behind.
type Snapshot struct {
	Key       string         `gorm:"primaryKey;size:64"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

// Store is the key-value storage collaborator for the in-memory stores.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the snapshots table.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&Snapshot{})
}

// Get unmarshals the value stored under key into out. The second return
// is false when the key has never been written.
func (s *Store) Get(key string, out any) (bool, error) {
	var snap Snapshot
	err := s.db.First(&snap, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read snapshot %q: %w", key, err)
	}
	if err := json.Unmarshal(snap.Value, out); err != nil {
		return false, fmt.Errorf("decode snapshot %q: %w", key, err)
	}
	return true, nil
}

// Put marshals v and upserts it under key.
func (s *Store) Put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode snapshot %q: %w", key, err)
	}
	snap := Snapshot{Key: key, Value: data, UpdatedAt: time.Now()}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&snap).Error
	if err != nil {
		return fmt.Errorf("write snapshot %q: %w", key, err)
	}
	return nil
}
