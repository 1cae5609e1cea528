package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestValidate checks range and format validations plus default filling.
func TestValidate(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))

	// Empty settings pick up defaults.
	cfg := new(Config)
	require.NoError(t, Validate(cfg))
	require.Equal(t, DefaultPollInterval, cfg.PollInterval)
	require.Equal(t, DefaultLogLevel, cfg.LogLevel)

	// Poll interval outside the supported window.
	cfg = &Config{PollInterval: 500 * time.Millisecond}
	require.Error(t, Validate(cfg))

	cfg = &Config{PollInterval: time.Minute}
	require.Error(t, Validate(cfg))

	// Bad log level.
	cfg = &Config{LogLevel: "verbose"}
	require.Error(t, Validate(cfg))

	// Okay.
	cfg = &Config{PollInterval: 10 * time.Second, LogLevel: "debug"}
	require.NoError(t, Validate(cfg))
}

// TestLoadMissingFileFallsBackToDefaults ensures the settings file is optional.
func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")

	cfg := &Config{
		PollInterval: 15 * time.Second,
		LogLevel:     "warn",
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.PollInterval, loaded.PollInterval)
	require.Equal(t, cfg.LogLevel, loaded.LogLevel)
}

// TestLoadRejectsInvalidSettings ensures a present but broken file errors out.
func TestLoadRejectsInvalidSettings(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: verbose\n"), DefaultFilePermissions))

	_, err := Load(path)
	require.Error(t, err)

	// Save refuses invalid settings outright.
	require.Error(t, Save(path, &Config{PollInterval: time.Hour}))
}
