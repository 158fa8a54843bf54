package config

import "errors"

var (
	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrEmptyDepartment is returned when no department name is configured.
	ErrEmptyDepartment = errors.New("department name must not be empty")

	// ErrInvalidBaseURL is returned when the base URL is not an absolute http(s) URL.
	ErrInvalidBaseURL = errors.New("base URL must be an absolute http or https URL")

	// ErrInvalidMaxRows is returned when the row window is not positive.
	ErrInvalidMaxRows = errors.New("max rows must be greater than zero")

	// ErrInvalidBaselineLimit is returned when the baseline cap is negative.
	ErrInvalidBaselineLimit = errors.New("baseline limit must not be negative")

	// ErrInvalidTimeout is returned when the HTTP timeout is negative.
	ErrInvalidTimeout = errors.New("timeout must not be negative")

	// ErrInvalidLogLevel is returned when the log level is not debug, info, warn or error.
	ErrInvalidLogLevel = errors.New("log level must be debug, info, warn or error")
)
