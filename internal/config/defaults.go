package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// Default returns the hardcoded default configuration, used only if the
// embedded YAML fails to parse.
func Default() Config {
	return Config{
		Database: DatabaseConfig{
			Path: "~/.snake-game/scores.db",
		},
		SSH: SSHConfig{
			Address:        ":23235",
			IdleTimeoutMin: 30,
		},
	}
}
