package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withLogPath(t *testing.T, path string) {
	t.Helper()
	orig := getLogPath
	getLogPath = func() (string, error) { return path, nil }
	t.Cleanup(func() {
		Close()
		getLogPath = orig
	})
}

func TestInitDisabledWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", LogFileName)
	withLogPath(t, path)

	logger, err := Init(false, "debug")
	require.NoError(t, err)
	logger.Info().Msg("dropped")

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestInitEnabledTruncatesAndWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", LogFileName)
	withLogPath(t, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("old session\n"), 0600))

	logger, err := Init(true, "info")
	require.NoError(t, err)
	logger.Info().Str("family", "primary").Msg("cascade applied")
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "old session")
	assert.Contains(t, string(data), `"family":"primary"`)
	assert.Contains(t, string(data), "cascade applied")
}

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	logger = New(&buf, "not-a-level")
	logger.Debug().Msg("debug fallback")
	assert.Contains(t, buf.String(), "debug fallback")
}
