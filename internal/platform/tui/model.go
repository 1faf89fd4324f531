package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Vivian202511/snake-game-vivian/internal/core"
	"github.com/Vivian202511/snake-game-vivian/internal/game"
)

// Model is the Bubble Tea model driving a single game session. The game
// owns all state and the timer schedule; the model only maps key presses
// to game actions and executes the tick schedule the game arms.
type Model struct {
	game     *game.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	quitting bool
}

// NewModel creates a model for the given game and terminal size.
// The bottom terminal row is reserved for the help bar.
func NewModel(g *game.Game, width, height int) Model {
	return Model{
		game:   g,
		screen: core.NewScreen(width, core.Max(height-1, 1)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init performs no work: the game starts idle and arms its first timer
// only when the player starts a session.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey maps a key press to a game action and dispatches it. If the
// dispatch armed a new timer schedule, the corresponding tick is scheduled.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	prevSeq := m.game.TimerSeq()

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionStart:
		m.game.Start()
	case core.ActionPause:
		m.game.TogglePause()
	case core.ActionRestart:
		m.game.Restart()
	case core.ActionUp:
		m.game.SetDirection(game.DirUp)
	case core.ActionDown:
		m.game.SetDirection(game.DirDown)
	case core.ActionLeft:
		m.game.SetDirection(game.DirLeft)
	case core.ActionRight:
		m.game.SetDirection(game.DirRight)
	}

	return m, m.armCmd(prevSeq)
}

// handleTick advances the simulation by one step. Ticks from a cancelled
// schedule are dropped; a live schedule re-arms itself at the game's
// current interval, which is how acceleration takes effect.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.game.TimerSeq() {
		return m, nil
	}

	m.game.Tick()

	if m.game.Phase() == game.PhaseRunning {
		return m, tickCmd(m.game.Interval(), m.game.TimerSeq())
	}
	return m, nil
}

// armCmd returns a tick command if the game armed a new timer schedule
// since prevSeq, or nil otherwise. At most one live tick chain exists:
// a new schedule invalidates all ticks tagged with earlier sequences.
func (m Model) armCmd(prevSeq uint64) tea.Cmd {
	if m.game.Phase() == game.PhaseRunning && m.game.TimerSeq() != prevSeq {
		return tickCmd(m.game.Interval(), m.game.TimerSeq())
	}
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game.
func Run(g *game.Game, width, height int) error {
	p := tea.NewProgram(
		NewModel(g, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
