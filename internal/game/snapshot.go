package game

import (
	"time"

	"github.com/Vivian202511/snake-game-vivian/internal/core"
)

// Snapshot captures the observable game state for tests and tooling.
type Snapshot struct {
	Phase     Phase
	Score     int
	HighScore int
	SnakeLen  int
	Head      core.Point
	Dir       Direction
	Food      core.Point
	Interval  time.Duration
	Snake     []core.Point // Copy, head first
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	var head core.Point
	if len(g.snake) > 0 {
		head = g.snake[0]
	}

	body := make([]core.Point, len(g.snake))
	copy(body, g.snake)

	return Snapshot{
		Phase:     g.phase,
		Score:     g.score,
		HighScore: g.highScore,
		SnakeLen:  len(g.snake),
		Head:      head,
		Dir:       g.dir,
		Food:      g.food,
		Interval:  g.interval,
		Snake:     body,
	}
}
