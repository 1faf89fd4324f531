package game

import (
	"fmt"

	"github.com/Vivian202511/snake-game-vivian/internal/core"
)

// HUD occupies a single status line above the board so the whole frame
// fits a standard 24-row terminal with one row left for the help bar.
const hudHeight = 1

// Render draws the current game state into the screen buffer: HUD, board
// border, snake, food, and a phase overlay where one applies. It only reads
// state and is callable after every tick and phase transition.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	// Board plus border, centered below the HUD.
	boxW := BoardCells + 2
	boxH := BoardCells + 2
	if dst.Width() < boxW || dst.Height() < boxH+hudHeight {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	offX := (dst.Width() - boxW) / 2
	offY := hudHeight + (dst.Height()-hudHeight-boxH)/2

	dst.DrawBox(core.NewRect(offX, offY, boxW, boxH))

	// Grid origin: inside the border.
	gx, gy := offX+1, offY+1

	for i, seg := range g.snake {
		if i == 0 {
			dst.SetCell(gx+seg.X, gy+seg.Y, 'O', core.ColorBrightGreen)
		} else {
			dst.SetCell(gx+seg.X, gy+seg.Y, 'o', core.ColorGreen)
		}
	}

	if g.food.X >= 0 && g.food.Y >= 0 {
		dst.SetCell(gx+g.food.X, gy+g.food.Y, '*', core.ColorBrightRed)
	}

	switch g.phase {
	case PhaseIdle:
		g.renderOverlay(dst, "Snake", "Press Enter to start")
	case PhasePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case PhaseEnded:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake | Score: %d  Best: %d", g.score, g.highScore)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
}

// renderOverlay draws a centered boxed two-line message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Blank the interior, clipped to the screen.
	for y := core.Clamp(boxY+1, 0, h); y < core.Clamp(boxY+boxH-1, 0, h); y++ {
		for x := core.Clamp(boxX+1, 0, w); x < core.Clamp(boxX+boxW-1, 0, w); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
