package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"orbrun/internal/config"
	"orbrun/internal/storage"
)

var flagScoresSeed string

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best runs",
	Long: `Display the top 10 runs, optionally filtered by seed.

With --seed the listing is restricted to that level and seed
statistics are shown alongside.

Examples:
  orbrun scores
  orbrun scores --seed 0x12345678`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresSeed, "seed", "", "Only show runs for this seed")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var runs []storage.RunRecord
	if flagScoresSeed != "" {
		seed, parseErr := config.ParseSeed(flagScoresSeed)
		if parseErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", parseErr)
			os.Exit(1)
		}
		key := fmt.Sprintf("%#x", seed)
		runs, err = store.RunsForSeed(key, 10)
		if err == nil {
			fmt.Printf("Best Runs - seed %s\n", key)
		}
	} else {
		runs, err = store.TopRuns(10)
		if err == nil {
			fmt.Println("Best Runs - all seeds")
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'orbrun play' to set the first best run!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-18s  %-8s  %s\n", "Rank", "Score", "Seed", "Ticks", "Date")
	fmt.Printf("  %-4s  %-10s  %-18s  %-8s  %s\n", "----", "-----", "----", "-----", "----")

	// Print runs
	for i, rec := range runs {
		dateStr := rec.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10.2f  %-18s  %-8d  %s\n", i+1, rec.Score, rec.Seed, rec.Ticks, dateStr)
	}

	// Per-seed statistics
	if flagScoresSeed != "" {
		seed, _ := config.ParseSeed(flagScoresSeed)
		stats, statsErr := store.GetSeedStats(fmt.Sprintf("%#x", seed))
		if statsErr == nil && stats.RunsCount > 0 {
			fmt.Println()
			fmt.Printf("Runs: %d  Best: %.2f  Avg: %.2f  Last played: %s\n",
				stats.RunsCount, stats.BestScore, stats.AvgScore,
				stats.LastPlayed.Format("2006-01-02 15:04"))
		}
	}
}
