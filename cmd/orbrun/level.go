package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"orbrun/internal/config"
	"orbrun/internal/sim"
)

var flagLevelVerbose bool

var levelCmd = &cobra.Command{
	Use:   "level <seed>",
	Short: "Print the level layout for a seed",
	Long: `Generate the level for a seed and print a summary.

Levels are deterministic: the same seed always produces the same
obstacle layout, so this shows exactly what a run on that seed
will face.

Examples:
  orbrun level 0x12345678
  orbrun level 42 --verbose`,
	Args: cobra.ExactArgs(1),
	Run:  runLevel,
}

func init() {
	levelCmd.Flags().BoolVar(&flagLevelVerbose, "verbose", false, "List every obstacle")
}

func runLevel(cmd *cobra.Command, args []string) {
	seed, err := config.ParseSeed(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level, err := sim.GenerateLevel(seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating level: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Level %#x\n", level.Seed)
	fmt.Println()
	fmt.Printf("  Obstacles:   %d\n", len(level.Obstacles))
	fmt.Printf("  Lights:      %d\n", len(level.Lights))
	fmt.Printf("  Wall cubes:  %d\n", len(level.BgObjects))

	if len(level.Obstacles) > 0 {
		first, last := level.Obstacles[0].X, level.Obstacles[0].X
		for _, o := range level.Obstacles {
			if o.X < first {
				first = o.X
			}
			if o.X > last {
				last = o.X
			}
		}
		fmt.Printf("  Span:        %.2f .. %.2f\n", first, last)
	}

	if !flagLevelVerbose {
		return
	}

	fmt.Println()
	fmt.Printf("  %-4s  %-10s  %-6s  %-8s  %-9s  %s\n", "#", "X", "Y", "Color", "Metallic", "Roughness")
	fmt.Printf("  %-4s  %-10s  %-6s  %-8s  %-9s  %s\n", "-", "-", "-", "-----", "--------", "---------")
	for i, o := range level.Obstacles {
		fmt.Printf("  %-4d  %-10.2f  %-6.2f  #%06x  %-9.2f  %.2f\n",
			i+1, o.X, o.Y, o.Material.Color, o.Material.Metallic, o.Material.Roughness)
	}
}
