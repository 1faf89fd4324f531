// snake is a terminal snake game with a persisted high score.
//
// Usage:
//
//	snake play     - Play in the current terminal
//	snake scores   - Show the persisted best score
//	snake serve    - Serve the game over SSH
//
// Global flags:
//
//	--seed <value>   - RNG seed for reproducible food placement
//	--db <path>      - High-score database path
//	--config <path>  - Custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
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
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is a terminal rendition of the classic grid game: steer the
snake onto food to grow and score, avoid the walls and your own body.
The best score is persisted across sessions.

Examples:
  snake play
  snake play --seed 42
  snake scores
  snake serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to high-score database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
