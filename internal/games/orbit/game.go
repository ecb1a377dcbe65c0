// Package orbit implements a side-scrolling sphere runner. The player
// rolls through a procedurally generated obstacle field and jumps to
// survive; every run is fully determined by its level seed.
package orbit

import (
	"orbrun/internal/config"
	"orbrun/internal/core"
	"orbrun/internal/registry"
	"orbrun/internal/sim"
)

// Game implements the orbit runner game logic on top of the fixed-tick
// simulation in internal/sim.
type Game struct {
	world   *sim.World
	view    sim.View
	runtime core.RuntimeConfig
	cfg     config.OrbitConfig
	paused  bool
	genErr  error // level generation failure, surfaces as an immediate game over

	// FPS readout fed by the platform, displayed only.
	fpsAvg float64
	fpsOK  bool
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new orbit runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "orbit"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Orbit Runner"
}

// Reset initializes or restarts the game with the seed from the runtime config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadOrbit(configPath)
	if err != nil {
		cfg = config.DefaultOrbitConfig()
	}
	g.cfg = cfg

	g.paused = false
	g.fpsAvg = 0
	g.fpsOK = false

	level, err := sim.GenerateLevel(runtime.Seed)
	if err != nil {
		g.genErr = err
		g.world = sim.NewWorld(&sim.Level{Seed: runtime.Seed})
	} else {
		g.genErr = nil
		g.world = sim.NewWorld(level)
	}
	g.view = sim.NewView(g.world)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.world.Tick(sim.Input{
		Jump:  in.Has(core.ActionJump),
		Boost: in.Has(core.ActionBoost),
	})

	return core.StepResult{State: g.State()}
}

// SetFPS feeds the platform's measured frame rate into the HUD.
func (g *Game) SetFPS(avg float64, ok bool) {
	g.fpsAvg = avg
	g.fpsOK = ok
}

// Seed returns the seed of the current level.
func (g *Game) Seed() uint64 {
	return g.runtime.Seed
}

// RunTicks returns how many simulation ticks the current run has taken.
func (g *Game) RunTicks() uint64 {
	return g.world.Ticks
}

func (g *Game) gameOver() bool {
	return g.genErr != nil || g.view.Collided()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    float64(g.view.Score()),
		GameOver: g.gameOver(),
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("orbit", func() registry.Game {
		return New()
	})
}
