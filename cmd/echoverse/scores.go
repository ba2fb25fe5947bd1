package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Vaibhav6780/Echoverse-Project/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best finished sessions",
	Long: `Display the top 10 finished sessions by score.

Examples:
  echoverse scores`,
	Run: runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best sessions")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'echoverse play' to set the first score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-10s  %-6s  %s\n", "Rank", "Score", "Outcome", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %-6s  %s\n", "----", "-----", "-------", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-10s  %-6d  %s\n", i+1, entry.Score, entry.Outcome, entry.LevelReached, dateStr)
	}

	stats, err := store.Summary()
	if err == nil {
		fmt.Println()
		fmt.Printf("Sessions: %d  Wins: %d  Best: %d\n", stats.Sessions, stats.Wins, stats.BestScore)
	}
}
