package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chamber-directory/internal/model"
)

// Store defines the persistent key-value namespace the page cache lives in.
// Writes replace any prior value for the key.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// Get returns the value stored under key, or ErrNotFound.
func (s *gormStore) Get(ctx context.Context, key string) (string, error) {
	var kv model.KeyValue
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return kv.Value, nil
}

// Set upserts the value for key.
func (s *gormStore) Set(ctx context.Context, key, value string) error {
	kv := model.KeyValue{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}
