package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	appErrors "github.com/balkashynov/themegen/internal/errors"
	"github.com/balkashynov/themegen/internal/models"
	"github.com/balkashynov/themegen/internal/theme"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "nested", "themegen.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestThemeStore_LoadDefaultsWhenEmpty(t *testing.T) {
	store := NewThemeStore(setupTestDB(t), "")

	assert.Equal(t, DefaultStorageKey, store.Key())
	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, theme.Default(), got)
}

func TestThemeStore_SaveLoadRoundTrip(t *testing.T) {
	store := NewThemeStore(setupTestDB(t), "")
	ctx := context.Background()

	want := theme.Default().SetBase(theme.Primary, "#336699")
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// second save overwrites the same row
	want = want.Set(theme.Secondary, theme.Tint, "#010203")
	require.NoError(t, store.Save(ctx, want))

	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	var count int64
	require.NoError(t, store.db.Model(&models.ThemeEntry{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestThemeStore_Reset(t *testing.T) {
	store := NewThemeStore(setupTestDB(t), "")
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, theme.Default().SetBase(theme.Secondary, "#000000")))

	reset, err := store.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, theme.Default(), reset)

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, theme.Default(), got)
}

func TestThemeStore_KeysAreIndependent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	a := NewThemeStore(db, "a")
	b := NewThemeStore(db, "b")

	require.NoError(t, a.Save(ctx, theme.Default().SetBase(theme.Primary, "#000000")))

	got, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, theme.Default(), got)
}

func TestThemeStore_PartialValueKeepsDefaults(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.Create(&models.ThemeEntry{Name: DefaultStorageKey, Value: `{"primary":"#000000"}`}).Error)

	got, err := NewThemeStore(db, "").Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "#000000", got.Primary)
	assert.Equal(t, theme.Default().Secondary, got.Secondary)
}

func TestThemeStore_CorruptValue(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.ThemeEntry{Name: DefaultStorageKey, Value: `{not json`}).Error)

	_, err := NewThemeStore(db, "").Load(context.Background())
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeStoreFailed))
}
