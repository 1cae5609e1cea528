package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings of the alarm clock.
type Config struct {
	// PollInterval is how often the scheduler checks alarms against the clock.
	PollInterval time.Duration `yaml:"poll_interval"`
	// LogLevel is the minimum level for log output (debug, info, warn, error, fatal).
	LogLevel string `yaml:"log_level"`
}

const (
	// DefaultConfigFilename is the default filename for alarm clock settings.
	DefaultConfigFilename = "alarm-clock-settings.yaml"

	// DefaultPollInterval is the scheduler poll period used when none is configured.
	DefaultPollInterval = 5 * time.Second

	// MinPollInterval is the finest poll period the scheduler accepts.
	MinPollInterval = 1 * time.Second

	// MaxPollInterval is the coarsest poll period the scheduler accepts.
	// Anything slower risks skipping a whole alarm minute.
	MaxPollInterval = 30 * time.Second

	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errPollIntervalOutOfRange is returned when the poll interval falls outside the supported window.
	errPollIntervalOutOfRange = fmt.Errorf(
		"poll interval must be between %s and %s", MinPollInterval, MaxPollInterval)
	// errUnknownLogLevel is returned when the log level is not a recognized name.
	errUnknownLogLevel = errors.New("unknown log level")
)

// Default returns a configuration with all settings at their defaults.
func Default() *Config {
	return &Config{
		PollInterval: DefaultPollInterval,
		LogLevel:     DefaultLogLevel,
	}
}

// Load reads configuration from the provided path and validates it.
// A missing file is not an error: the defaults apply, since the settings
// file is optional for a local utility.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings, filling in defaults for unset fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.PollInterval == 0 {
		cfg.PollInterval = DefaultPollInterval
	}

	if cfg.PollInterval < MinPollInterval || cfg.PollInterval > MaxPollInterval {
		return fmt.Errorf("%w: got %s", errPollIntervalOutOfRange, cfg.PollInterval)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("%w: %q", errUnknownLogLevel, cfg.LogLevel)
	}

	return nil
}
