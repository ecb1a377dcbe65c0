// Package config provides YAML-based configuration loading for the
// orbit runner and its hosting surfaces.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FixedSeed is the deterministic default used when seed mode is "fixed".
const FixedSeed uint64 = 0x1234_5678

// OrbitConfig contains all configuration for the orbit runner.
type OrbitConfig struct {
	Seed   SeedConfig   `yaml:"seed"`
	Render RenderConfig `yaml:"render"`
	Server ServerConfig `yaml:"server"`
}

// SeedConfig selects how the level seed is chosen for a new run.
type SeedConfig struct {
	Mode  string `yaml:"mode"`  // "fixed" or "random"
	Value string `yaml:"value"` // seed used in fixed mode, hex (0x...) or decimal
}

// RenderConfig defines how world units map to terminal cells.
// The hide flags are inverted so omitting them keeps scenery visible.
type RenderConfig struct {
	CellsPerUnitX int     `yaml:"cells_per_unit_x"`
	CellsPerUnitY int     `yaml:"cells_per_unit_y"`
	GroundOffset  int     `yaml:"ground_offset"` // rows below the ground line
	PlayerMargin  float32 `yaml:"player_margin"` // world units kept left of the player
	HideWall      bool    `yaml:"hide_wall"`     // skip the background cube wall
	HideLights    bool    `yaml:"hide_lights"`   // skip the light markers
}

// ServerConfig defines the SSH server listen address.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// ParseSeed parses a seed string in 0x-prefixed hex or decimal form.
func ParseSeed(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty seed")
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid hex seed %q: %w", s, err)
		}
		return v, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q: %w", s, err)
	}
	return v, nil
}

// ResolveSeed picks the seed for a new run according to the config.
// Fixed mode uses the configured value; random mode derives a fresh
// seed from the clock.
func (c SeedConfig) ResolveSeed() (uint64, error) {
	switch c.Mode {
	case "", "fixed":
		if c.Value == "" {
			return FixedSeed, nil
		}
		return ParseSeed(c.Value)
	case "random":
		return uint64(time.Now().UnixNano()), nil
	default:
		return 0, fmt.Errorf("unknown seed mode %q", c.Mode)
	}
}
