package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	appErrors "github.com/balkashynov/themegen/internal/errors"
	"github.com/balkashynov/themegen/internal/models"
	"github.com/balkashynov/themegen/internal/theme"
)

// DefaultStorageKey names the row the editor reads and writes.
const DefaultStorageKey = "theme-storage"

// ThemeStore persists a theme under a single storage key.
type ThemeStore struct {
	db  *gorm.DB
	key string
}

// NewThemeStore returns a store for key; an empty key uses DefaultStorageKey.
func NewThemeStore(db *gorm.DB, key string) *ThemeStore {
	if key == "" {
		key = DefaultStorageKey
	}
	return &ThemeStore{db: db, key: key}
}

// Key returns the storage key this store reads and writes.
func (s *ThemeStore) Key() string {
	return s.key
}

// Load returns the stored theme, or the default theme if nothing has been
// saved yet. Fields missing from the stored JSON keep their default value.
func (s *ThemeStore) Load(ctx context.Context) (theme.Colors, error) {
	var entry models.ThemeEntry
	err := s.db.WithContext(ctx).Where("name = ?", s.key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return theme.Default(), nil
	}
	if err != nil {
		return theme.Colors{}, appErrors.New(appErrors.CodeStoreFailed,
			fmt.Sprintf("failed to load theme %q", s.key), err)
	}

	colors := theme.Default()
	if err := json.Unmarshal([]byte(entry.Value), &colors); err != nil {
		return theme.Colors{}, appErrors.New(appErrors.CodeStoreFailed,
			fmt.Sprintf("stored theme %q is corrupt", s.key), err)
	}
	return colors, nil
}

// Save writes c under the store key, replacing any previous value.
func (s *ThemeStore) Save(ctx context.Context, c theme.Colors) error {
	value, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal theme: %w", err)
	}

	entry := models.ThemeEntry{Name: s.key, Value: string(value)}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		return appErrors.New(appErrors.CodeStoreFailed,
			fmt.Sprintf("failed to save theme %q", s.key), err)
	}
	return nil
}

// Reset stores and returns the default theme.
func (s *ThemeStore) Reset(ctx context.Context) (theme.Colors, error) {
	colors := theme.Default()
	if err := s.Save(ctx, colors); err != nil {
		return theme.Colors{}, err
	}
	return colors, nil
}
