package game

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/Vivian202511/snake-game-vivian/internal/core"
)

// fakeStore is an in-memory ScoreStore with injectable failures.
type fakeStore struct {
	value    int
	readErr  error
	writeErr error
	writes   []int
}

func (f *fakeStore) HighScore() (int, error) {
	if f.readErr != nil {
		return 0, f.readErr
	}
	return f.value, nil
}

func (f *fakeStore) SetHighScore(v int) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.value = v
	f.writes = append(f.writes, v)
	return nil
}

// eatOnce places food directly ahead of the head and ticks once.
func eatOnce(g *Game) {
	g.food = g.snake[0].Add(g.dir.Delta())
	g.Tick()
}

func TestStartInitializes(t *testing.T) {
	g := New(1, nil)

	if g.Phase() != PhaseIdle {
		t.Fatalf("new game should be idle, got %v", g.Phase())
	}

	g.Start()

	if g.Phase() != PhaseRunning {
		t.Errorf("expected running after Start, got %v", g.Phase())
	}
	if len(g.snake) != InitialLength {
		t.Errorf("expected %d-cell snake, got %d", InitialLength, len(g.snake))
	}
	if g.Score() != 0 {
		t.Errorf("expected score 0, got %d", g.Score())
	}
	if g.Interval() != InitialInterval {
		t.Errorf("expected initial interval %v, got %v", InitialInterval, g.Interval())
	}
	if g.dir != DirRight || g.nextDir != DirRight {
		t.Errorf("expected initial direction right, got %v/%v", g.dir, g.nextDir)
	}

	want := []core.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}
	for i, p := range want {
		if g.snake[i] != p {
			t.Errorf("snake[%d] = %v, want %v", i, g.snake[i], p)
		}
	}

	if g.occupied(g.food) {
		t.Errorf("food placed on snake at %v", g.food)
	}
	if !g.food.In(BoardCells, BoardCells) {
		t.Errorf("food out of bounds at %v", g.food)
	}
}

func TestStartOnlyFromIdle(t *testing.T) {
	g := New(1, nil)
	g.Start()
	eatOnce(g)

	scoreBefore := g.Score()
	g.Start() // Should be a no-op while running

	if g.Score() != scoreBefore {
		t.Errorf("Start while running reset the score: %d -> %d", scoreBefore, g.Score())
	}
}

func TestTickMovesWithoutGrowth(t *testing.T) {
	g := New(2, nil)
	g.Start()

	// Keep the food out of the way.
	g.food = core.Point{X: 0, Y: 0}

	head := g.snake[0]
	lenBefore := len(g.snake)
	g.Tick()

	if len(g.snake) != lenBefore {
		t.Errorf("length changed on a plain move: %d -> %d", lenBefore, len(g.snake))
	}
	wantHead := head.Add(DirRight.Delta())
	if g.snake[0] != wantHead {
		t.Errorf("head = %v, want %v", g.snake[0], wantHead)
	}
	if g.Score() != 0 {
		t.Errorf("score changed on a plain move: %d", g.Score())
	}
}

func TestScenarioEatFood(t *testing.T) {
	// Snake [(10,10),(9,10),(8,10)] heading right with food at (11,10):
	// one tick grows the snake onto the food and awards the reward.
	g := New(3, nil)
	g.Start()
	g.snake = []core.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}
	g.dir, g.nextDir = DirRight, DirRight
	g.food = core.Point{X: 11, Y: 10}

	g.Tick()

	want := []core.Point{{X: 11, Y: 10}, {X: 10, Y: 10}, {X: 9, Y: 10}}
	if len(g.snake) != len(want) {
		t.Fatalf("snake length = %d, want %d", len(g.snake), len(want))
	}
	for i, p := range want {
		if g.snake[i] != p {
			t.Errorf("snake[%d] = %v, want %v", i, g.snake[i], p)
		}
	}
	if g.Score() != Reward {
		t.Errorf("score = %d, want %d", g.Score(), Reward)
	}
	if g.occupied(g.food) {
		t.Errorf("new food placed on snake at %v", g.food)
	}
	if g.Phase() != PhaseRunning {
		t.Errorf("phase = %v, want running", g.Phase())
	}
}

func TestScenarioWallCollision(t *testing.T) {
	// Head at (0,10) moving left: the next tick leaves the board and ends
	// the session.
	g := New(4, nil)
	g.Start()
	g.snake = []core.Point{{X: 0, Y: 10}, {X: 1, Y: 10}, {X: 2, Y: 10}}
	g.dir, g.nextDir = DirLeft, DirLeft
	g.food = core.Point{X: 5, Y: 5}

	g.Tick()

	if g.Phase() != PhaseEnded {
		t.Errorf("phase = %v, want ended", g.Phase())
	}
}

func TestSelfCollisionEnds(t *testing.T) {
	g := New(5, nil)
	g.Start()
	// Hook shape: moving right from (5,5) hits the body at (6,5).
	g.snake = []core.Point{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
	}
	g.dir, g.nextDir = DirRight, DirRight
	g.food = core.Point{X: 0, Y: 0}

	g.Tick()

	if g.Phase() != PhaseEnded {
		t.Errorf("phase = %v, want ended", g.Phase())
	}
}

func TestReversalRejected(t *testing.T) {
	g := New(6, nil)
	g.Start()

	g.SetDirection(DirLeft) // Exact reverse of right
	if g.nextDir != DirRight {
		t.Errorf("reversal changed buffered direction to %v", g.nextDir)
	}

	g.SetDirection(DirDown)
	if g.nextDir != DirDown {
		t.Errorf("valid turn rejected, nextDir = %v", g.nextDir)
	}
}

func TestSetDirectionIgnoredOutsidePhase(t *testing.T) {
	g := New(7, nil)

	g.SetDirection(DirUp) // Idle: ignored
	g.Start()
	g.TogglePause()
	g.SetDirection(DirUp) // Paused: ignored
	if g.nextDir != DirRight {
		t.Errorf("direction change applied while paused: %v", g.nextDir)
	}
}

func TestTickIgnoredOutsideRunning(t *testing.T) {
	g := New(8, nil)

	g.Tick() // Idle
	if g.Phase() != PhaseIdle || len(g.snake) != 0 {
		t.Error("tick while idle mutated state")
	}

	g.Start()
	snapRunning := g.Snapshot()

	g.TogglePause()
	g.Tick() // Paused
	if got := g.Snapshot(); got.Head != snapRunning.Head || got.SnakeLen != snapRunning.SnakeLen {
		t.Error("tick while paused moved the snake")
	}

	g.TogglePause()
	g.snake = []core.Point{{X: 0, Y: 10}, {X: 1, Y: 10}, {X: 2, Y: 10}}
	g.dir, g.nextDir = DirLeft, DirLeft
	g.Tick() // Ends
	headAfterEnd := g.Snapshot().Head
	g.Tick() // Ended: ignored
	if g.Snapshot().Head != headAfterEnd {
		t.Error("tick while ended moved the snake")
	}
}

func TestTogglePause(t *testing.T) {
	g := New(9, nil)

	g.TogglePause() // Idle: no-op
	if g.Phase() != PhaseIdle {
		t.Errorf("pause toggled from idle to %v", g.Phase())
	}

	g.Start()
	seq := g.TimerSeq()

	g.TogglePause()
	if g.Phase() != PhasePaused {
		t.Errorf("phase = %v, want paused", g.Phase())
	}
	if g.TimerSeq() == seq {
		t.Error("pausing did not cancel the timer schedule")
	}

	seq = g.TimerSeq()
	g.TogglePause()
	if g.Phase() != PhaseRunning {
		t.Errorf("phase = %v, want running", g.Phase())
	}
	if g.TimerSeq() == seq {
		t.Error("resuming did not arm a new timer schedule")
	}
}

func TestRestartAfterEnded(t *testing.T) {
	g := New(10, nil)
	g.Start()
	eatOnce(g)

	g.snake = []core.Point{{X: 0, Y: 10}, {X: 1, Y: 10}, {X: 2, Y: 10}}
	g.dir, g.nextDir = DirLeft, DirLeft
	g.Tick()
	if g.Phase() != PhaseEnded {
		t.Fatalf("setup: phase = %v, want ended", g.Phase())
	}

	seq := g.TimerSeq()
	g.Restart()

	if g.Phase() != PhaseRunning {
		t.Errorf("phase = %v, want running", g.Phase())
	}
	if len(g.snake) != InitialLength {
		t.Errorf("snake length = %d, want %d", len(g.snake), InitialLength)
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, want 0", g.Score())
	}
	if g.Interval() != InitialInterval {
		t.Errorf("interval = %v, want %v", g.Interval(), InitialInterval)
	}
	if g.TimerSeq() == seq {
		t.Error("restart did not replace the timer schedule")
	}
}

func TestSpeedDecreasesWithFloor(t *testing.T) {
	g := New(11, nil)
	g.Start()

	eatOnce(g)
	if g.Interval() != InitialInterval-IntervalStep {
		t.Errorf("interval = %v, want %v", g.Interval(), InitialInterval-IntervalStep)
	}

	// A partial step above the floor clamps to the floor.
	g.interval = MinInterval + 2*time.Millisecond
	eatOnce(g)
	if g.Interval() != MinInterval {
		t.Errorf("interval = %v, want floor %v", g.Interval(), MinInterval)
	}

	// At the floor the game no longer accelerates.
	eatOnce(g)
	if g.Interval() != MinInterval {
		t.Errorf("interval dropped below floor: %v", g.Interval())
	}
}

func TestHighScoreReadAtStartup(t *testing.T) {
	store := &fakeStore{value: 50}
	g := New(12, store)
	if g.HighScore() != 50 {
		t.Errorf("high score = %d, want 50", g.HighScore())
	}

	// An unreadable store degrades to 0.
	broken := &fakeStore{value: 50, readErr: errors.New("storage unavailable")}
	g = New(12, broken)
	if g.HighScore() != 0 {
		t.Errorf("high score = %d, want 0 with unreadable store", g.HighScore())
	}
}

func TestHighScorePersistedWhenExceeded(t *testing.T) {
	store := &fakeStore{}
	g := New(13, store)
	g.Start()

	eatOnce(g)
	if g.HighScore() != Reward {
		t.Errorf("high score = %d, want %d", g.HighScore(), Reward)
	}
	if len(store.writes) != 1 || store.writes[0] != Reward {
		t.Errorf("store writes = %v, want [%d]", store.writes, Reward)
	}

	// A score below the stored best is not written.
	store2 := &fakeStore{value: 1000}
	g2 := New(13, store2)
	g2.Start()
	eatOnce(g2)
	if len(store2.writes) != 0 {
		t.Errorf("score below best was persisted: %v", store2.writes)
	}
	if g2.HighScore() != 1000 {
		t.Errorf("high score = %d, want 1000", g2.HighScore())
	}
}

func TestHighScoreWriteFailureIgnored(t *testing.T) {
	store := &fakeStore{writeErr: errors.New("disk full")}
	g := New(14, store)
	g.Start()

	eatOnce(g)

	// In-memory value still updates; the game keeps running.
	if g.HighScore() != Reward {
		t.Errorf("high score = %d, want %d", g.HighScore(), Reward)
	}
	if g.Phase() != PhaseRunning {
		t.Errorf("phase = %v, want running", g.Phase())
	}
}

func TestHighScoreMonotonicAcrossRestarts(t *testing.T) {
	g := New(15, &fakeStore{})
	g.Start()
	eatOnce(g)
	eatOnce(g)
	best := g.HighScore()

	g.Restart()
	if g.HighScore() != best {
		t.Errorf("restart lowered high score: %d -> %d", best, g.HighScore())
	}
	if g.Score() != 0 {
		t.Errorf("restart kept score %d", g.Score())
	}
}

func TestFoodNeverOnSnake(t *testing.T) {
	g := New(16, nil)
	g.Start()

	for i := 0; i < 100; i++ {
		g.placeFood()
		if g.occupied(g.food) {
			t.Fatalf("food placed on snake at %v", g.food)
		}
		if !g.food.In(BoardCells, BoardCells) {
			t.Fatalf("food out of bounds at %v", g.food)
		}
	}
}

func TestFoodPlacementHighOccupancy(t *testing.T) {
	g := New(17, nil)
	g.Start()

	// Cover every cell except (5,5); placement must still terminate and
	// find the single free cell.
	g.snake = g.snake[:0]
	for y := 0; y < BoardCells; y++ {
		for x := 0; x < BoardCells; x++ {
			if x == 5 && y == 5 {
				continue
			}
			g.snake = append(g.snake, core.Point{X: x, Y: y})
		}
	}

	if !g.placeFood() {
		t.Fatal("placeFood failed with one free cell")
	}
	if (g.food != core.Point{X: 5, Y: 5}) {
		t.Errorf("food = %v, want (5,5)", g.food)
	}
}

func TestBoardFullEndsGame(t *testing.T) {
	g := New(18, nil)
	g.Start()

	// Snake covers everything except (0,0); head at (0,1) about to eat it.
	g.snake = []core.Point{{X: 0, Y: 1}}
	for y := 0; y < BoardCells; y++ {
		for x := 0; x < BoardCells; x++ {
			p := core.Point{X: x, Y: y}
			if (p == core.Point{X: 0, Y: 0}) || (p == core.Point{X: 0, Y: 1}) {
				continue
			}
			g.snake = append(g.snake, p)
		}
	}
	g.dir, g.nextDir = DirUp, DirUp
	g.food = core.Point{X: 0, Y: 0}

	g.Tick()

	if g.Phase() != PhaseEnded {
		t.Errorf("phase = %v, want ended when the board fills", g.Phase())
	}
	if g.Score() != Reward {
		t.Errorf("final food not scored: %d", g.Score())
	}
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	g := New(19, nil)
	g.Start()

	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		if g.Phase() == PhaseEnded {
			g.Restart()
		}
		g.SetDirection(dirs[rng.Intn(len(dirs))])
		g.Tick()

		if g.Phase() != PhaseRunning {
			continue
		}
		seen := make(map[core.Point]bool, len(g.snake))
		for _, seg := range g.snake {
			if !seg.In(BoardCells, BoardCells) {
				t.Fatalf("tick %d: segment %v out of bounds", i, seg)
			}
			if seen[seg] {
				t.Fatalf("tick %d: duplicate segment %v", i, seg)
			}
			seen[seg] = true
		}
		if seen[g.food] {
			t.Fatalf("tick %d: food %v on snake", i, g.food)
		}
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and input script stay identical.
	run := func() Snapshot {
		g := New(12345, nil)
		g.Start()
		for i := 0; i < 120; i++ {
			switch i {
			case 5:
				g.SetDirection(DirDown)
			case 12:
				g.SetDirection(DirLeft)
			case 18:
				g.SetDirection(DirUp)
			case 30:
				g.SetDirection(DirRight)
			}
			g.Tick()
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Phase != snap2.Phase {
		t.Errorf("phase mismatch: %v vs %v", snap1.Phase, snap2.Phase)
	}
	if snap1.Score != snap2.Score {
		t.Errorf("score mismatch: %d vs %d", snap1.Score, snap2.Score)
	}
	if snap1.Head != snap2.Head {
		t.Errorf("head mismatch: %v vs %v", snap1.Head, snap2.Head)
	}
	if snap1.Dir != snap2.Dir {
		t.Errorf("direction mismatch: %v vs %v", snap1.Dir, snap2.Dir)
	}
	if snap1.Food != snap2.Food {
		t.Errorf("food mismatch: %v vs %v", snap1.Food, snap2.Food)
	}
	if snap1.Interval != snap2.Interval {
		t.Errorf("interval mismatch: %v vs %v", snap1.Interval, snap2.Interval)
	}
}

func TestDirectionHelpers(t *testing.T) {
	cases := []struct {
		dir      Direction
		delta    core.Point
		opposite Direction
	}{
		{DirUp, core.Point{X: 0, Y: -1}, DirDown},
		{DirDown, core.Point{X: 0, Y: 1}, DirUp},
		{DirLeft, core.Point{X: -1, Y: 0}, DirRight},
		{DirRight, core.Point{X: 1, Y: 0}, DirLeft},
	}

	for _, c := range cases {
		if c.dir.Delta() != c.delta {
			t.Errorf("%v.Delta() = %v, want %v", c.dir, c.dir.Delta(), c.delta)
		}
		if c.dir.Opposite() != c.opposite {
			t.Errorf("%v.Opposite() = %v, want %v", c.dir, c.dir.Opposite(), c.opposite)
		}
	}
}
