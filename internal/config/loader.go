package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadQube loads the cube game configuration.
// Search order: customPath -> ~/.qube2048/configs/qube.yaml ->
// ./configs/qube.yaml -> embedded default.
func LoadQube(customPath string) (QubeConfig, error) {
	var cfg QubeConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("qube.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/qube.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultQubeYAML, &cfg); err != nil {
		return DefaultQubeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// normalize fills zero-valued fields with defaults so a partial config file
// still yields a playable game.
func normalize(cfg QubeConfig) QubeConfig {
	def := DefaultQubeConfig()
	if cfg.Game.WinTile <= 0 {
		cfg.Game.WinTile = def.Game.WinTile
	}
	if cfg.Game.Spawn4 <= 0 || cfg.Game.Spawn4 > 1 {
		cfg.Game.Spawn4 = def.Game.Spawn4
	}
	if cfg.Game.Mapper != MapperStatic && cfg.Game.Mapper != MapperOriented {
		cfg.Game.Mapper = def.Game.Mapper
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".qube2048", "configs", filename)
}
