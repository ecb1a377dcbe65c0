package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadOrbit loads the orbit runner configuration.
// Search order: customPath -> ~/.orbrun/configs/orbit.yaml -> ./configs/orbit.yaml -> embedded default
func LoadOrbit(customPath string) (OrbitConfig, error) {
	var cfg OrbitConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return fillRenderDefaults(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("orbit.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return fillRenderDefaults(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/orbit.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return fillRenderDefaults(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultOrbitYAML, &cfg); err != nil {
		return DefaultOrbitConfig(), nil // Fallback to hardcoded if embed fails
	}
	return fillRenderDefaults(cfg), nil
}

// fillRenderDefaults replaces zero render values with defaults so a
// partial config file cannot produce a degenerate projection.
func fillRenderDefaults(cfg OrbitConfig) OrbitConfig {
	def := DefaultOrbitConfig()
	if cfg.Render.CellsPerUnitX <= 0 {
		cfg.Render.CellsPerUnitX = def.Render.CellsPerUnitX
	}
	if cfg.Render.CellsPerUnitY <= 0 {
		cfg.Render.CellsPerUnitY = def.Render.CellsPerUnitY
	}
	if cfg.Render.GroundOffset <= 0 {
		cfg.Render.GroundOffset = def.Render.GroundOffset
	}
	if cfg.Render.PlayerMargin <= 0 {
		cfg.Render.PlayerMargin = def.Render.PlayerMargin
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".orbrun", "configs", filename)
}
