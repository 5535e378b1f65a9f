package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"gemini-transcribe/internal/app/errors"
)

// Built-in defaults, used when no settings file overrides them.
const (
	DefaultModel      = "flash"
	DefaultOutputDir  = "transcripts"
	DefaultTimeoutSec = 300
)

// Settings are the optional user defaults read from a YAML file.
// Command-line flags override them; they override the built-ins.
type Settings struct {
	DefaultModel string `yaml:"default_model"`
	OutputDir    string `yaml:"output_dir"`
	TimeoutSec   int    `yaml:"timeout_sec"`
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		DefaultModel: DefaultModel,
		OutputDir:    DefaultOutputDir,
		TimeoutSec:   DefaultTimeoutSec,
	}
}

// Timeout returns the configured timeout as a duration.
func (s Settings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSec) * time.Second
}

// DefaultSettingsPath returns the settings file location:
// TRANSCRIBE_CONFIG_PATH when set, otherwise ~/.transcribe/config.yaml.
func DefaultSettingsPath() string {
	if path := os.Getenv("TRANSCRIBE_CONFIG_PATH"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}

	return filepath.Join(home, ".transcribe", "config.yaml")
}

// LoadSettings reads the settings file at path, or at DefaultSettingsPath
// when path is empty. A missing file yields the built-in defaults; a
// present but unreadable or invalid file is a configuration error.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	if path == "" {
		path = DefaultSettingsPath()
	}
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return settings, errors.Wrapf(err, errors.KindConfig, "read settings file %q", path)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, errors.Wrapf(err, errors.KindConfig, "parse settings file %q", path)
	}

	settings.setDefaults()

	if err := settings.validate(); err != nil {
		return settings, errors.Wrapf(err, errors.KindConfig, "invalid settings file %q", path)
	}

	return settings, nil
}

// setDefaults backfills fields the settings file left empty.
func (s *Settings) setDefaults() {
	if s.DefaultModel == "" {
		s.DefaultModel = DefaultModel
	}
	if s.OutputDir == "" {
		s.OutputDir = DefaultOutputDir
	}
	if s.TimeoutSec == 0 {
		s.TimeoutSec = DefaultTimeoutSec
	}
}

func (s Settings) validate() error {
	if err := ValidateModelAlias(s.DefaultModel); err != nil {
		return err
	}
	if err := ValidateTimeout(s.Timeout(), "request"); err != nil {
		return err
	}
	return nil
}

// Config is the resolved runtime configuration handed to the injector.
type Config struct {
	APIKey string
}
