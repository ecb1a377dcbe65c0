package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"orbrun/internal/config"
	"orbrun/internal/core"
	"orbrun/internal/games/orbit"
	"orbrun/internal/platform/tui"
	"orbrun/internal/registry"
	"orbrun/internal/storage"
)

var flagSeed string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run directly, skipping the menu.

Controls:
  Space/Up/W   - Jump
  D/L/Right    - Boost (hold for extra scroll speed)
  P            - Pause
  R            - Restart
  Q/Ctrl+C     - Quit

Seed handling:
  --seed overrides the config. Without it the config's seed mode
  applies: "fixed" replays the same level, "random" deals a fresh
  one each restart.

Examples:
  orbrun play
  orbrun play --seed 0x12345678
  orbrun play --seed 42 --fps 30
  orbrun play --config ./my-orbit.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSeed, "seed", "", "Level seed, hex (0x...) or decimal (overrides config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	seedCfg, err := resolveSeedConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed, err := seedCfg.ResolveSeed()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set config path for the game before creation
	orbit.SetConfigPath(flagConfig)

	game, err := registry.Create("orbit")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()
	cfg.Seed = seed

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, seedCfg, cliLogger())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// resolveSeedConfig merges the --seed flag over the config file.
func resolveSeedConfig() (config.SeedConfig, error) {
	orbitCfg, err := config.LoadOrbit(flagConfig)
	if err != nil {
		return config.SeedConfig{}, fmt.Errorf("loading config: %w", err)
	}

	seedCfg := orbitCfg.Seed
	if flagSeed != "" {
		if _, err := config.ParseSeed(flagSeed); err != nil {
			return config.SeedConfig{}, err
		}
		seedCfg = config.SeedConfig{Mode: "fixed", Value: flagSeed}
	}
	return seedCfg, nil
}

// runtimeConfig builds a RuntimeConfig sized to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}

func cliLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "orbrun",
	})
}
