package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"orbrun/internal/games/orbit"
	"orbrun/internal/platform/tui"
	"orbrun/internal/registry"
	"orbrun/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start Orbit Runner in interactive menu mode.

Pick "New Run" for a run with the configured seed mode, "Enter Seed"
to replay a specific level, or "High Scores" for the run table.
After a run ends you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  orbrun menu
  orbrun menu --fps 30
  orbrun menu --db ./runs.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	seedCfg, err := resolveSeedConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}

	orbit.SetConfigPath(flagConfig)
	cfg := runtimeConfig()
	logger := cliLogger()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg, seedCfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if !menuResult.StartRun {
			break
		}

		game, err := registry.Create("orbit")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		cfg.Seed = menuResult.Seed

		if err := tui.Run(game, store, cfg, seedCfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
