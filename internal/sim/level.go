package sim

import (
	"fmt"
	"strconv"
)

// Level layout constants.
const (
	ObstacleCount = 40
	LightCount    = 150
	LevelMinX     = -10
	LevelMaxX     = 200

	// Color codes are drawn below this bound so that %06d always prints
	// six digits.
	colorSpan = 999_999
)

// Material is an inert render payload carried from the generator to the
// renderer: a 24-bit RGB color plus two unit-interval PBR scalars.
type Material struct {
	Color     uint32 // 0xRRGGBB
	Metallic  float32
	Roughness float32 // perceptual roughness
}

// Obstacle is a sphere the player must jump over. The radius is the
// shared SphereRadius constant.
type Obstacle struct {
	X, Y     float32
	Material Material
}

// Light is a point light position for the renderer.
type Light struct {
	X, Y float32
}

// BgObject is one cube of the background wall.
type BgObject struct {
	X, Y, Z  float32
	Material Material
}

// Level is an immutable procedurally generated world layout. Two levels
// built from the same seed are identical.
type Level struct {
	Seed      uint64
	Obstacles []Obstacle
	Lights    []Light
	BgObjects []BgObject
}

// InvalidColorError reports a generated color code outside 24-bit space.
// Unreachable for the documented generator ranges; kept so a widened
// range fails at construction instead of rendering garbage.
type InvalidColorError struct {
	Code uint64
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("sim: color code %#x outside 24-bit range", e.Code)
}

// GenerateLevel builds the level for a seed. The draw order below
// defines the seed-to-level mapping and must not be reordered.
func GenerateLevel(seed uint64) (*Level, error) {
	rng := NewRng(seed)

	lvl := &Level{
		Seed:      seed,
		Obstacles: make([]Obstacle, 0, ObstacleCount),
		Lights:    make([]Light, 0, LightCount),
		BgObjects: make([]BgObject, 0, (LevelMaxX-LevelMinX)*10),
	}

	// TODO: reject obstacle placements that leave no winnable gap
	for i := 0; i < ObstacleCount; i++ {
		x := rng.RangeF32(1, LevelMaxX)
		y := rng.RangeF32(0, 1)
		mat, err := randomMaterial(rng)
		if err != nil {
			return nil, err
		}
		lvl.Obstacles = append(lvl.Obstacles, Obstacle{X: x, Y: y, Material: mat})
	}

	for i := 0; i < LightCount; i++ {
		x := rng.RangeF32(1, LevelMaxX)
		y := rng.RangeF32(0, 10)
		lvl.Lights = append(lvl.Lights, Light{X: x, Y: y})
	}

	// Background wall: a 10-high band of cubes across the level, inner
	// loop over y.
	for x := LevelMinX; x < LevelMaxX; x++ {
		for y := 0; y < 10; y++ {
			z := -rng.RangeF32(1, 2)
			mat, err := randomMaterial(rng)
			if err != nil {
				return nil, err
			}
			lvl.BgObjects = append(lvl.BgObjects, BgObject{
				X: float32(x), Y: float32(y), Z: z, Material: mat,
			})
		}
	}

	return lvl, nil
}

// randomMaterial draws metallic, roughness and a color code, in that
// order. The code is printed as six decimal digits and read back as hex,
// so only colors whose hex digits are all decimal are reachable. That
// quirk is part of the seed contract and kept as-is.
func randomMaterial(rng *Rng) (Material, error) {
	metallic := rng.RangeF32(0, 1)
	roughness := rng.RangeF32(0, 1)
	code := rng.RangeU64(0, colorSpan)
	color, err := parseHexColor(fmt.Sprintf("%06d", code))
	if err != nil {
		return Material{}, err
	}
	return Material{Color: color, Metallic: metallic, Roughness: roughness}, nil
}

func parseHexColor(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil || v > 0xffffff {
		return 0, &InvalidColorError{Code: v}
	}
	return uint32(v), nil
}
