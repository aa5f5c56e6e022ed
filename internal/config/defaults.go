package config

import (
	_ "embed"
)

//go:embed defaults/qube.yaml
var defaultQubeYAML []byte

// DefaultQubeConfig returns the default cube game configuration.
func DefaultQubeConfig() QubeConfig {
	return QubeConfig{
		Game: GameplayConfig{
			WinTile: 2048,
			Spawn4:  0.10,
			Mapper:  MapperStatic,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultQubeYAML
}
