package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/stackinit/internal/ports"
)

func envMap(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func boolPtr(b bool) *bool { return &b }

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	s, err := Load("", nil, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
	assert.Equal(t, ports.LevelWarn, s.Level())
	assert.False(t, s.JSON())
}

func TestLoad_YAMLFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "stackinit.yaml", "log_level: debug\nlog_format: json\nno_color: true\nlog_timestamps: true\n")

	s, err := Load(path, nil, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "debug", s.LogLevel)
	assert.True(t, s.JSON())
	assert.True(t, s.NoColor)
	assert.True(t, s.LogTimestamps)
	assert.Equal(t, ports.LevelDebug, s.Level())
}

func TestLoad_TOMLFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "stackinit.toml", "log_level = \"info\"\nlog_format = \"text\"\n")

	s, err := Load(path, nil, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, FormatText, s.LogFormat)
	assert.False(t, s.NoColor)
}

func TestLoad_Precedence(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "stackinit.yml", "log_level: error\nlog_format: text\n")
	env := envMap(map[string]string{
		EnvLogLevel:  "INFO",
		EnvLogFormat: "json",
		EnvNoColor:   "1",
	})

	s, err := Load(path, env, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "info", s.LogLevel, "env overrides file")
	assert.Equal(t, FormatJSON, s.LogFormat)
	assert.True(t, s.NoColor)

	s, err = Load(path, env, Overrides{LogLevel: "debug", LogFormat: "text", NoColor: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, "debug", s.LogLevel, "flag overrides env")
	assert.Equal(t, FormatText, s.LogFormat)
	assert.False(t, s.NoColor)
}

func TestLoad_LogTimestampsPrecedence(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "stackinit.toml", "log_timestamps = true\n")

	s, err := Load(path, envMap(nil), Overrides{})
	require.NoError(t, err)
	assert.True(t, s.LogTimestamps)

	s, err = Load(path, envMap(map[string]string{EnvLogTimestamps: "false"}), Overrides{})
	require.NoError(t, err)
	assert.False(t, s.LogTimestamps, "env overrides file")

	s, err = Load(path, envMap(map[string]string{EnvLogTimestamps: "false"}), Overrides{LogTimestamps: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, s.LogTimestamps, "flag overrides env")
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     func(t *testing.T) string
		env      map[string]string
		override Overrides
		code     string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
			code: ErrCodeConfigNotFound,
		},
		{
			name: "unsupported extension",
			path: func(t *testing.T) string { return writeConfig(t, "stackinit.ini", "log_level=debug") },
			code: ErrCodeConfigFormat,
		},
		{
			name: "bad yaml",
			path: func(t *testing.T) string { return writeConfig(t, "stackinit.yaml", "log_level: [debug\n") },
			code: ErrCodeConfigParse,
		},
		{
			name: "bad toml",
			path: func(t *testing.T) string { return writeConfig(t, "stackinit.toml", "log_level = \n") },
			code: ErrCodeConfigParse,
		},
		{
			name: "unknown level from env",
			env:  map[string]string{EnvLogLevel: "loud"},
			code: ErrCodeValidationFailed,
		},
		{
			name:     "unknown format from flag",
			override: Overrides{LogFormat: "xml"},
			code:     ErrCodeValidationFailed,
		},
		{
			name: "bad timestamps env",
			env:  map[string]string{EnvLogTimestamps: "often"},
			code: ErrCodeValidationFailed,
		},
		{
			name: "bad no-color env",
			env:  map[string]string{EnvNoColor: "sometimes"},
			code: ErrCodeValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := ""
			if tt.path != nil {
				path = tt.path(t)
			}

			_, err := Load(path, envMap(tt.env), tt.override)
			require.Error(t, err)

			ue := GetUserError(err)
			require.NotNil(t, ue)
			assert.Equal(t, tt.code, ue.Code)
			assert.True(t, errors.Is(err, &UserError{Code: tt.code}))
			assert.NotEmpty(t, ue.Suggestion)
		})
	}
}

func TestUserError_Format(t *testing.T) {
	t.Parallel()

	err := NewValidationFailedError("log_format", "xml", validFormats)

	assert.Equal(t, `invalid value "xml" for log_format (at log_format)`, err.Error())
	assert.Equal(t, "[VALIDATION_FAILED] invalid value \"xml\" for log_format\n  Location: log_format\n  Suggestion: Allowed values: text, json", err.Format())
	assert.Nil(t, GetUserError(errors.New("plain")))
}

func TestNewConfigParseError_SuggestsFormat(t *testing.T) {
	t.Parallel()

	assert.Contains(t, NewConfigParseError("a.toml", errors.New("x")).Suggestion, "TOML")
	assert.Contains(t, NewConfigParseError("a.yaml", errors.New("x")).Suggestion, "YAML")
}
