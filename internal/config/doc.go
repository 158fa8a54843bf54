// Package config holds the runtime configuration for rank-trends.
//
// Defaults come from NewConfig. An optional YAML file can override them; it is read
// from an explicit path or from the XDG config directory
// (~/.config/rank-trends/config.yaml on Linux). Command-line flags are applied last.
package config
