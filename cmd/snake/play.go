package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Vivian202511/snake-game-vivian/internal/config"
	"github.com/Vivian202511/snake-game-vivian/internal/game"
	"github.com/Vivian202511/snake-game-vivian/internal/platform/tui"
	"github.com/Vivian202511/snake-game-vivian/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD - Steer
  Enter/Space - Start
  P/Esc       - Pause
  R           - Restart
  Q/Ctrl+C    - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --db ./scores.db`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dbPath := cfg.Database.Path
	if flagDBPath != "" {
		dbPath = flagDBPath
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var scores game.ScoreStore
	if store != nil {
		scores = store.Named(game.ScoreName)
	}
	g := game.New(seed, scores)

	runErr := tui.Run(g, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
