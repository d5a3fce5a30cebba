// Package config loads the ambient settings of the stackinit CLI: logging
// and color. What gets generated is fixed and never configurable.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/stackinit/internal/ports"
)

// Environment variables that override file settings.
const (
	EnvLogLevel  = "STACKINIT_LOG_LEVEL"
	EnvLogFormat = "STACKINIT_LOG_FORMAT"
	EnvNoColor   = "STACKINIT_NO_COLOR"

	EnvLogTimestamps = "STACKINIT_LOG_TIMESTAMPS"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{FormatText, FormatJSON}
)

// Settings holds the resolved ambient configuration.
type Settings struct {
	LogLevel  string `yaml:"log_level" toml:"log_level"`
	LogFormat string `yaml:"log_format" toml:"log_format"`
	NoColor   bool   `yaml:"no_color" toml:"no_color"`

	LogTimestamps bool `yaml:"log_timestamps" toml:"log_timestamps"`
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		LogLevel:  "warn",
		LogFormat: FormatText,
	}
}

// Overrides carries command-line values. Empty strings and nil pointers
// leave the underlying setting untouched.
type Overrides struct {
	LogLevel  string
	LogFormat string
	NoColor   *bool

	LogTimestamps *bool
}

// LookupFunc resolves an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Load resolves settings from defaults, then the file at path (if any),
// then the environment, then flag overrides, and validates the result.
func Load(path string, lookup LookupFunc, overrides Overrides) (Settings, error) {
	s := Default()

	if path != "" {
		if err := s.mergeFile(path); err != nil {
			return Settings{}, err
		}
	}
	if lookup != nil {
		if err := s.mergeEnv(lookup); err != nil {
			return Settings{}, err
		}
	}
	s.mergeOverrides(overrides)

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Level returns the parsed log level.
func (s Settings) Level() ports.Level {
	level, err := ports.ParseLevel(s.LogLevel)
	if err != nil {
		return ports.LevelWarn
	}
	return level
}

// JSON reports whether logs are written as JSON.
func (s Settings) JSON() bool {
	return s.LogFormat == FormatJSON
}

// Validate checks every setting against its allowed values.
func (s Settings) Validate() error {
	if _, err := ports.ParseLevel(s.LogLevel); err != nil {
		return NewValidationFailedError("log_level", s.LogLevel, validLevels)
	}
	switch s.LogFormat {
	case FormatText, FormatJSON:
	default:
		return NewValidationFailedError("log_format", s.LogFormat, validFormats)
	}
	return nil
}

func (s *Settings) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return NewConfigNotFoundError(path, err)
	}

	var file Settings
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".toml":
		err = toml.Unmarshal(data, &file)
	default:
		return NewConfigFormatError(path)
	}
	if err != nil {
		return NewConfigParseError(path, err)
	}

	if file.LogLevel != "" {
		s.LogLevel = file.LogLevel
	}
	if file.LogFormat != "" {
		s.LogFormat = file.LogFormat
	}
	if file.NoColor {
		s.NoColor = true
	}
	if file.LogTimestamps {
		s.LogTimestamps = true
	}
	return nil
}

func (s *Settings) mergeEnv(lookup LookupFunc) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		s.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		s.LogFormat = strings.ToLower(strings.TrimSpace(v))
	}
	if err := lookupBool(lookup, EnvNoColor, &s.NoColor); err != nil {
		return err
	}
	if err := lookupBool(lookup, EnvLogTimestamps, &s.LogTimestamps); err != nil {
		return err
	}
	return nil
}

func (s *Settings) mergeOverrides(o Overrides) {
	if o.LogLevel != "" {
		s.LogLevel = o.LogLevel
	}
	if o.LogFormat != "" {
		s.LogFormat = o.LogFormat
	}
	if o.NoColor != nil {
		s.NoColor = *o.NoColor
	}
	if o.LogTimestamps != nil {
		s.LogTimestamps = *o.LogTimestamps
	}
}

// lookupBool parses key with strconv.ParseBool into dst when it is set.
func lookupBool(lookup LookupFunc, key string, dst *bool) error {
	v, ok := lookup(key)
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		ue := NewValidationFailedError(key, v, []string{"true", "false", "1", "0"})
		ue.Underlying = fmt.Errorf("parse bool: %w", err)
		return ue
	}
	*dst = b
	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
