// Package config provides YAML-based game configuration loading for the
// qube2048 platform.
package config

// QubeConfig contains all configuration for the cube game.
type QubeConfig struct {
	Game GameplayConfig `yaml:"game"`
}

// GameplayConfig defines gameplay parameters.
type GameplayConfig struct {
	WinTile int     `yaml:"win_tile"` // Tile value that wins the game
	Spawn4  float64 `yaml:"spawn4"`   // Probability of spawning 4 instead of 2 (0.0-1.0)
	Mapper  string  `yaml:"mapper"`   // Direction mapper strategy: "static" or "oriented"
}

// Mapper strategy names accepted in config files.
const (
	MapperStatic   = "static"
	MapperOriented = "oriented"
)
