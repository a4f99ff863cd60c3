package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
page_size: 10
log_level: debug
log_format: json
datasets_dir: datasets
locale: de-DE
`)

	cfg, err := Load(path, envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "datasets"), cfg.DatasetsDir)
	assert.Equal(t, language.MustParse("de-DE"), cfg.Language())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "page_size: 3\n"), envMap(nil))
	require.NoError(t, err)

	want := Default()
	want.PageSize = 3
	assert.Equal(t, want, cfg)
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := Load("", envMap(map[string]string{EnvConfig: missing}))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), envMap(nil))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Env(t *testing.T) {
	path := writeConfig(t, "page_size: 10\nlog_level: info\n")

	cfg, err := Load(path, envMap(map[string]string{
		EnvPageSize:  "25",
		EnvLogLevel:  "error",
		EnvLogFormat: "json",
		EnvLocale:    "sv",
	}))
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, language.Swedish, cfg.Language())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{"malformed yaml", "page_size: [1", nil},
		{"bad env page size", "", map[string]string{EnvPageSize: "ten"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), envMap(tt.env))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_DoesNotValidate(t *testing.T) {
	cfg, err := Load(writeConfig(t, "log_level: loud\n"), envMap(map[string]string{EnvLogFormat: "xml"}))
	require.NoError(t, err)

	assert.Equal(t, "loud", cfg.LogLevel)
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg.LogLevel = "info"
	cfg.LogFormat = "json"
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{"negative page size", "page_size: -1", nil},
		{"page size above max", "page_size: 5000", nil},
		{"unknown level", "log_level: loud", nil},
		{"unknown env level", "", map[string]string{EnvLogLevel: "loud"}},
		{"unknown format", "log_format: xml", nil},
		{"bad locale", "locale: '!!'", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content), envMap(tt.env))
			require.NoError(t, err)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestConfig_Logging(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "warn", cfg.Logging().Level)
	assert.Equal(t, "console", cfg.Logging().Format)
}
