package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	require.Equal(t, "https://www.universitego.com", cfg.BaseURL)
	require.Equal(t, "Bilgisayar Mühendisliği", cfg.Department)
	require.Equal(t, "Devlet", cfg.Marker)
	require.Equal(t, 10, cfg.BaselineLimit)
	require.Equal(t, 50, cfg.MaxRows)
	require.Zero(t, cfg.Timeout)
	require.Empty(t, cfg.UserAgent)
	require.Equal(t, "info", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"empty department", func(c *Config) { c.Department = "  " }, ErrEmptyDepartment},
		{"relative base URL", func(c *Config) { c.BaseURL = "universitego.com" }, ErrInvalidBaseURL},
		{"ftp base URL", func(c *Config) { c.BaseURL = "ftp://example.com" }, ErrInvalidBaseURL},
		{"zero max rows", func(c *Config) { c.MaxRows = 0 }, ErrInvalidMaxRows},
		{"negative limit", func(c *Config) { c.BaselineLimit = -1 }, ErrInvalidBaselineLimit},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, ErrInvalidTimeout},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }, ErrInvalidLogLevel},
		{"upper case log level", func(c *Config) { c.LogLevel = "WARN" }, nil},
		{"zero limit allowed", func(c *Config) { c.BaselineLimit = 0 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `base_url: http://127.0.0.1:9000
default_department: Tıp
marker: Vakıf
baseline_limit: 5
timeout: 15s
user_agent: rank-trends-test
log_level: warn
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	require.Equal(t, "http://127.0.0.1:9000", cfg.BaseURL)
	require.Equal(t, "Tıp", cfg.Department)
	require.Equal(t, "Vakıf", cfg.Marker)
	require.Equal(t, 5, cfg.BaselineLimit)
	require.Equal(t, 15*time.Second, cfg.Timeout)
	require.Equal(t, "rank-trends-test", cfg.UserAgent)
	require.Equal(t, "warn", cfg.LogLevel)
	// untouched keys keep their defaults
	require.Equal(t, DefaultMaxRows, cfg.MaxRows)
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, ErrConfigNotFound)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("max_rows: [not, a, number]\n"), 0o600))
	_, err = LoadFile(bad)
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Run("explicit missing path is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("explicit path is read", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "c.yaml")
		require.NoError(t, os.WriteFile(path, []byte("max_rows: 20\n"), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 20, cfg.MaxRows)
	})
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	require.Equal(t, DefaultConfigFile, filepath.Base(path))
	require.Equal(t, AppName, filepath.Base(filepath.Dir(path)))
}
