package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	// MaxInstances caps the number of materialized instances per master
	// event.
	MaxInstances int `yaml:"max_instances" json:"max_instances"`

	// DefaultOffset is the timezone literal appended to instance
	// timestamps when the master carries none (e.g. "+00:00").
	DefaultOffset string `yaml:"default_offset" json:"default_offset"`

	// Indent is the number of spaces used when pretty-printing the output
	// JSON.
	Indent int `yaml:"indent" json:"indent"`

	// RefreshCron is a cron-style schedule string (e.g. "*/15 * * * *")
	// used by watch mode to re-run the expansion pipeline.
	RefreshCron string `yaml:"refresh" json:"refresh"`

	// LogLevel is the minimum log level: debug, info, warn or error.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// ReportDates lists YYYY-MM-DD dates for which a per-date event report
	// is printed after expansion.
	ReportDates []string `yaml:"report_dates" json:"report_dates"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxInstances:  100,
		DefaultOffset: "+00:00",
		Indent:        2,
		RefreshCron:   "*/15 * * * *",
		LogLevel:      "info",
		ReportDates:   []string{},
	}
}

// Normalize fills in missing/zero values with sensible defaults so that
// partially-filled configs still behave correctly.
func (c *Config) Normalize() {
	if c.MaxInstances <= 0 {
		c.MaxInstances = 100
	}
	if c.DefaultOffset == "" {
		c.DefaultOffset = "+00:00"
	}
	if c.Indent <= 0 {
		c.Indent = 2
	}
	if c.RefreshCron == "" {
		c.RefreshCron = "*/15 * * * *"
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		// ok
	default:
		c.LogLevel = "info"
	}
	if c.ReportDates == nil {
		c.ReportDates = []string{}
	}
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - If the file does not exist:
//   - create parent directory if needed
//   - write a default config with 0600 perms
//   - return the default config
//   - If the file exists:
//   - read YAML and unmarshal into Config
//   - normalize defaults
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// First run: create default config file.
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Even if save fails, return cfg with error so caller can decide.
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the given configuration to the specified path.
//
// Implementation details:
//   - Ensures parent directory exists (0700).
//   - Marshals cfg to YAML.
//   - Writes atomically via a temp file + rename.
//   - Ensures final file permissions are 0600.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	// Atomic write: write to temp file in same directory then rename.
	tmp, err := os.CreateTemp(dir, ".calexpand-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	// Ensure we clean up temp file on error.
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}

	// Flush and close before chmod/rename.
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		return err
	}

	return nil
}
