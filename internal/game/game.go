// Package game implements the snake state machine: snake body, food, score,
// speed and phase, advanced by discrete ticks. It owns the lifecycle of the
// tick timer through a sequence number; the platform schedules ticks but the
// machine decides which of them are still live.
package game

import (
	"math/rand"
	"time"

	"github.com/Vivian202511/snake-game-vivian/internal/core"
)

// Board and progression constants. The board is a fixed square grid; the
// acceleration curve is the single built-in one.
const (
	BoardCells      = 20 // Grid is BoardCells × BoardCells
	InitialLength   = 3
	Reward          = 10
	InitialInterval = 150 * time.Millisecond
	IntervalStep    = 5 * time.Millisecond
	MinInterval     = 50 * time.Millisecond

	// Uniform random tries before falling back to a linear scan when
	// placing food on a crowded board.
	foodSampleTries = 64
)

// ScoreName is the key under which the high score is persisted.
const ScoreName = "snake"

// Phase is the coarse lifecycle stage of a single game session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseEnded
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit grid step for the direction.
func (d Direction) Delta() core.Point {
	switch d {
	case DirUp:
		return core.Point{X: 0, Y: -1}
	case DirDown:
		return core.Point{X: 0, Y: 1}
	case DirLeft:
		return core.Point{X: -1, Y: 0}
	default:
		return core.Point{X: 1, Y: 0}
	}
}

// Opposite returns the 180° reverse of the direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ScoreStore persists a single high-score value across sessions.
// Implementations may fail; the game degrades gracefully (a missing value
// reads as 0, write failures are swallowed).
type ScoreStore interface {
	HighScore() (int, error)
	SetHighScore(v int) error
}

// Game is the snake state machine. It is not safe for concurrent use; the
// platform serializes timer ticks and input events onto one goroutine.
type Game struct {
	rng   *rand.Rand
	store ScoreStore

	snake   []core.Point // Head at index 0
	dir     Direction
	nextDir Direction // Buffered direction, applied on next tick
	food    core.Point

	score     int
	highScore int
	interval  time.Duration
	phase     Phase

	// timerSeq identifies the currently armed tick schedule. Bumping it
	// cancels any in-flight tick: the platform tags scheduled ticks with
	// the sequence they were armed under and drops stale ones.
	timerSeq uint64
}

// New creates an idle game. The high score is read once from the store;
// a nil store or a read failure leaves it at 0.
func New(seed int64, store ScoreStore) *Game {
	g := &Game{
		rng:      rand.New(rand.NewSource(seed)),
		store:    store,
		phase:    PhaseIdle,
		interval: InitialInterval,
		food:     core.Point{X: -1, Y: -1}, // No food until a session starts
	}
	if store != nil {
		if hs, err := store.HighScore(); err == nil {
			g.highScore = hs
		}
	}
	return g
}

// Start begins a new session. Valid only from the idle phase; a no-op otherwise.
func (g *Game) Start() {
	if g.phase != PhaseIdle {
		return
	}
	g.init()
}

// Restart cancels any active timer, resets to idle and starts a fresh session.
// Valid from any phase.
func (g *Game) Restart() {
	g.timerSeq++
	g.phase = PhaseIdle
	g.init()
}

// init performs the shared start/restart initialization.
func (g *Game) init() {
	cx, cy := BoardCells/2, BoardCells/2
	g.snake = make([]core.Point, 0, InitialLength)
	for i := 0; i < InitialLength; i++ {
		g.snake = append(g.snake, core.Point{X: cx - i, Y: cy})
	}
	g.dir = DirRight
	g.nextDir = DirRight
	g.score = 0
	g.interval = InitialInterval
	g.placeFood()
	g.phase = PhaseRunning
	g.timerSeq++
}

// Tick advances the snake by one cell. A no-op unless running.
// Exactly one of three things happens: the snake grows onto food, the snake
// moves one cell, or the session ends on a wall or body collision.
func (g *Game) Tick() {
	if g.phase != PhaseRunning {
		return
	}

	g.dir = g.nextDir
	newHead := g.snake[0].Add(g.dir.Delta())

	if !newHead.In(BoardCells, BoardCells) || g.occupied(newHead) {
		g.end()
		return
	}

	g.snake = append([]core.Point{newHead}, g.snake...)

	if newHead == g.food {
		g.score += Reward
		if g.score > g.highScore {
			g.highScore = g.score
			if g.store != nil {
				// Best effort; a failed write is not surfaced to the player.
				_ = g.store.SetHighScore(g.highScore)
			}
		}
		if !g.placeFood() {
			// Snake fills the board; nothing left to eat.
			g.end()
			return
		}
		if g.interval > MinInterval {
			g.interval -= IntervalStep
			if g.interval < MinInterval {
				g.interval = MinInterval
			}
		}
		return
	}

	g.snake = g.snake[:len(g.snake)-1]
}

// SetDirection buffers a direction change for the next tick. Valid only while
// running; a 180° reversal of the current direction is silently ignored.
func (g *Game) SetDirection(d Direction) {
	if g.phase != PhaseRunning {
		return
	}
	if d == g.dir.Opposite() {
		return
	}
	g.nextDir = d
}

// TogglePause flips between running and paused, cancelling or re-arming the
// tick timer. A no-op in any other phase.
func (g *Game) TogglePause() {
	switch g.phase {
	case PhaseRunning:
		g.phase = PhasePaused
		g.timerSeq++
	case PhasePaused:
		g.phase = PhaseRunning
		g.timerSeq++
	}
}

// end cancels the timer and moves to the terminal ended phase.
func (g *Game) end() {
	g.phase = PhaseEnded
	g.timerSeq++
}

// placeFood picks a random free cell for the food. Bounded rejection sampling
// first; once the board is crowded enough that sampling misses, a linear scan
// from a random offset finds a free cell deterministically. Returns false
// only when the snake occupies every cell.
func (g *Game) placeFood() bool {
	total := BoardCells * BoardCells
	if len(g.snake) >= total {
		g.food = core.Point{X: -1, Y: -1}
		return false
	}

	for i := 0; i < foodSampleTries; i++ {
		p := core.Point{X: g.rng.Intn(BoardCells), Y: g.rng.Intn(BoardCells)}
		if !g.occupied(p) {
			g.food = p
			return true
		}
	}

	start := g.rng.Intn(total)
	for i := 0; i < total; i++ {
		idx := (start + i) % total
		p := core.Point{X: idx % BoardCells, Y: idx / BoardCells}
		if !g.occupied(p) {
			g.food = p
			return true
		}
	}
	return false
}

// occupied checks whether the snake covers the given cell.
func (g *Game) occupied(p core.Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current session score.
func (g *Game) Score() int {
	return g.score
}

// HighScore returns the best score seen this process lifetime.
func (g *Game) HighScore() int {
	return g.highScore
}

// Interval returns the current tick interval.
func (g *Game) Interval() time.Duration {
	return g.interval
}

// TimerSeq returns the identifier of the currently armed tick schedule.
// A scheduled tick whose tag no longer matches has been cancelled.
func (g *Game) TimerSeq() uint64 {
	return g.timerSeq
}
