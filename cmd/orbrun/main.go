// orbrun is a deterministic side-scrolling runner for the terminal.
//
// Usage:
//
//	orbrun play              - Jump straight into a run
//	orbrun menu              - Start the interactive menu
//	orbrun serve             - Start SSH server for remote play
//	orbrun scores            - Show best runs
//	orbrun level <seed>      - Inspect the level a seed generates
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--db <path>       - Set database path (default: ~/.orbrun/runs.db)
//	--config <path>   - Path to custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "orbrun/internal/games/orbit"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "orbrun",
	Short: "Orbit Runner - deterministic terminal runner",
	Long: `Orbit Runner is a terminal side-scroller. Jump over procedurally
placed spheres, chase the distance score and replay any level by seed.

Available commands:
  play     - Start a run directly
  menu     - Interactive menu with seed entry and high scores
  serve    - Start SSH server for remote play
  scores   - View best runs
  level    - Print the level layout for a seed

Examples:
  orbrun play
  orbrun play --seed 0x12345678
  orbrun menu
  orbrun serve --ssh :2222
  orbrun scores --seed 0x12345678
  orbrun level 0x12345678`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.orbrun/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelCmd)
}
