package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Vivian202511/snake-game-vivian/internal/config"
	"github.com/Vivian202511/snake-game-vivian/internal/game"
	"github.com/Vivian202511/snake-game-vivian/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the persisted best score",
	Long: `Display the best score recorded across all sessions.

Examples:
  snake scores
  snake scores --clear`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Reset the persisted best score")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dbPath := cfg.Database.Path
	if flagDBPath != "" {
		dbPath = flagDBPath
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.Clear(game.ScoreName); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing score: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Best score cleared.")
		return
	}

	best, err := store.HighScore(game.ScoreName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving score: %v\n", err)
		os.Exit(1)
	}

	if best == 0 {
		fmt.Println("No score recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return
	}

	fmt.Printf("Best: %d\n", best)
}
