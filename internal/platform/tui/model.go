package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"orbrun/internal/config"
	"orbrun/internal/core"
	"orbrun/internal/registry"
	"orbrun/internal/storage"
)

// fpsSink is implemented by games that display the measured frame rate.
type fpsSink interface {
	SetFPS(avg float64, ok bool)
}

// runStats is implemented by games that expose run telemetry for storage.
type runStats interface {
	RunTicks() uint64
}

// GameModel is the Bubble Tea model for playing a single game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	seedCfg    config.SeedConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	fps        *FPSMeter
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the run has been saved for current game over
}

// NewGameModel creates a new Bubble Tea model for the given game.
// The seed config decides how restarts re-seed the level.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, seedCfg config.SeedConfig, logger *log.Logger) GameModel {
	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		seedCfg:    seedCfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		fps:        NewFPSMeter(cfg.TickRate, logger),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu is only honored outside an active run
	action := m.keyMapper.MapKeyToMenuAction(msg)
	if action == MenuActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.fps.Sample(now)

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Re-resolve the seed: fixed mode replays the same level,
		// random mode deals a fresh one
		if seed, err := m.seedCfg.ResolveSeed(); err == nil {
			m.config.Seed = seed
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.fps.Reset()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if sink, ok := m.game.(fpsSink); ok {
		avg, avgOK := m.fps.Average()
		sink.SetFPS(avg, avgOK)
	}

	// Save the run on game over (once)
	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Best effort, gameplay continues
// regardless of storage errors.
func (m *GameModel) saveRun() {
	if m.store == nil {
		return
	}

	rec := storage.RunRecord{
		Seed:     fmt.Sprintf("%#x", m.config.Seed),
		Score:    m.gameState.Score,
		Collided: true,
	}
	if stats, ok := m.game.(runStats); ok {
		rec.Ticks = int64(stats.RunTicks())
	}
	//nolint:errcheck
	m.store.SaveRun(rec)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, seedCfg config.SeedConfig, logger *log.Logger) error {
	model := NewGameModel(game, store, cfg, seedCfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
