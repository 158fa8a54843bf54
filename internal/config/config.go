package config

import (
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pfrederiksen/rank-trends/internal/ranking"
	"github.com/pfrederiksen/rank-trends/internal/slug"
)

const (
	// AppName is used for XDG directory paths.
	AppName = "rank-trends"

	// DefaultDepartment is the department shown when none is given.
	DefaultDepartment = "Bilgisayar Mühendisliği"

	// DefaultMaxRows is the number of data rows read after the header row.
	DefaultMaxRows = 50

	// DefaultTimeout of zero leaves the HTTP client without a timeout override.
	DefaultTimeout time.Duration = 0

	// DefaultLogLevel is the minimum log level when neither log_level nor --verbose is set.
	DefaultLogLevel = "info"

	// DefaultConfigFile is the file name looked up in the XDG config directory.
	DefaultConfigFile = "config.yaml"
)

// Config holds all configuration options for a pipeline run.
type Config struct {
	// BaseURL is the scheme and host of the ranking site.
	BaseURL string `yaml:"base_url"`

	// Department is used when no department is passed on the command line.
	Department string `yaml:"default_department"`

	// Marker selects which universities enter the baseline (substring, case-insensitive).
	Marker string `yaml:"marker"`

	// BaselineLimit caps the number of matching universities in the baseline.
	// Zero means no cap.
	BaselineLimit int `yaml:"baseline_limit"`

	// MaxRows is the number of table rows read after the header.
	MaxRows int `yaml:"max_rows"`

	// Timeout overrides the HTTP client timeout when positive.
	Timeout time.Duration `yaml:"timeout"`

	// UserAgent replaces the HTTP client's default User-Agent when non-empty.
	UserAgent string `yaml:"user_agent"`

	// LogLevel is the minimum log level: debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// Verbose enables debug logging and overrides LogLevel.
	Verbose bool `yaml:"verbose"`
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		BaseURL:       slug.DefaultBaseURL,
		Department:    DefaultDepartment,
		Marker:        ranking.DefaultMarker,
		BaselineLimit: ranking.DefaultLimit,
		MaxRows:       DefaultMaxRows,
		Timeout:       DefaultTimeout,
		LogLevel:      DefaultLogLevel,
	}
}

// XDGConfigDir returns the XDG config directory for rank-trends.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DefaultConfigPath returns the config file path inside the XDG config directory.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigDir(), DefaultConfigFile)
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Department) == "" {
		return ErrEmptyDepartment
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidBaseURL
	}

	if c.MaxRows <= 0 {
		return ErrInvalidMaxRows
	}

	if c.BaselineLimit < 0 {
		return ErrInvalidBaselineLimit
	}

	if c.Timeout < 0 {
		return ErrInvalidTimeout
	}

	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "", "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	return nil
}
