package config

import (
	_ "embed"
)

//go:embed defaults/orbit.yaml
var defaultOrbitYAML []byte

// DefaultOrbitConfig returns the default orbit runner configuration.
func DefaultOrbitConfig() OrbitConfig {
	return OrbitConfig{
		Seed: SeedConfig{
			Mode:  "fixed",
			Value: "0x12345678",
		},
		Render: RenderConfig{
			CellsPerUnitX: 4,
			CellsPerUnitY: 2,
			GroundOffset:  2,
			PlayerMargin:  2.0,
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 23234,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultOrbitYAML
}
