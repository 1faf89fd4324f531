// Package config provides YAML-based configuration loading for the
// platform layer: database location and SSH serve settings. Gameplay
// constants live in the game package and are deliberately not configurable.
package config

import "time"

// Config is the top-level application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	SSH      SSHConfig      `yaml:"ssh"`
}

// DatabaseConfig locates the high-score database.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// SSHConfig holds settings for the serve command.
type SSHConfig struct {
	Address        string `yaml:"address"`
	HostKey        string `yaml:"host_key"` // Auto-generated if empty
	IdleTimeoutMin int    `yaml:"idle_timeout_min"`
}

// IdleTimeout returns the idle timeout as a duration.
func (c SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMin) * time.Minute
}
