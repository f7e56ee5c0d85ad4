package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("MATHDESK_THEME overrides file value", func(t *testing.T) {
		t.Setenv("MATHDESK_THEME", "dark")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "dark", cfg.Theme)
	})

	t.Run("MATHDESK_PLAIN parses as bool", func(t *testing.T) {
		t.Setenv("MATHDESK_PLAIN", "true")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.True(t, cfg.Plain)
	})

	t.Run("garbage MATHDESK_PLAIN is ignored", func(t *testing.T) {
		t.Setenv("MATHDESK_PLAIN", "definitely")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.False(t, cfg.Plain)
	})

	t.Run("MATHDESK_HISTORY_SIZE must be a non-negative integer", func(t *testing.T) {
		t.Setenv("MATHDESK_HISTORY_SIZE", "15")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, 15, cfg.HistorySize)

		t.Setenv("MATHDESK_HISTORY_SIZE", "-3")
		cfg = DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, 50, cfg.HistorySize)
	})

	t.Run("MATHDESK_DEBUG and MATHDESK_LOG_LEVEL", func(t *testing.T) {
		t.Setenv("MATHDESK_DEBUG", "1")
		t.Setenv("MATHDESK_LOG_LEVEL", "debug")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.True(t, cfg.Logging.DebugMode)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("env overrides win over yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		cfg := DefaultConfig()
		cfg.Theme = "light"
		require.NoError(t, cfg.Save(path))

		t.Setenv("MATHDESK_THEME", "dark")
		loaded, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "dark", loaded.Theme)
	})

	t.Run("invalid env theme fails load validation", func(t *testing.T) {
		t.Setenv("MATHDESK_THEME", "plaid")

		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}

func TestDefaultPath(t *testing.T) {
	t.Run("MATHDESK_CONFIG wins", func(t *testing.T) {
		t.Setenv("MATHDESK_CONFIG", "/tmp/custom.yaml")

		path, err := DefaultPath()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/custom.yaml", path)
	})

	t.Run("falls back to the user config dir", func(t *testing.T) {
		t.Setenv("MATHDESK_CONFIG", "")

		path, err := DefaultPath()
		require.NoError(t, err)
		assert.Equal(t, "config.yaml", filepath.Base(path))
		assert.Contains(t, path, "mathdesk")
	})
}
