package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

// Render draws the HUD, the playable area and any overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderBoard(dst)

	if g.ctl.IsPaused() {
		g.renderCursor(dst)
		g.renderPausedOverlay(dst)
	}

	if g.notice != "" {
		dst.DrawTextCentered(dst.Height()-1, " "+g.notice+" ", core.ColorRed)
	}
}

// renderHUD draws the status line above the board.
func (g *Game) renderHUD(dst *core.Screen) {
	if g.opts.Config.Board.HUDHeight < 1 {
		return
	}

	state := "Running"
	stateColor := core.ColorGreen
	if g.ctl.IsPaused() {
		state = "Paused"
		stateColor = core.ColorYellow
	}

	delay := fmt.Sprintf("%dms", g.ctl.Delay().Milliseconds())
	if g.ctl.Speed().Fixed {
		delay += " (fixed)"
	}
	hud := fmt.Sprintf(" Life  Gen: %d  Pop: %d  Peak: %d  Delay: %s ",
		g.ctl.Generation(), g.ctl.Population(), g.ctl.Peak(), delay)
	dst.DrawText(0, 0, hud)
	x := len(hud)
	dst.DrawTextColor(x, 0, "["+state+"]", stateColor)
	x += len(state) + 2
	if g.pattern != "" {
		dst.DrawTextColor(x+1, 0, g.pattern, core.ColorCyan)
	}
}

// renderBoard draws every playable cell. The border ring is never shown.
func (g *Game) renderBoard(dst *core.Screen) {
	board := g.opts.Config.Board
	alive := []rune(board.AliveGlyph)
	dead := []rune(board.DeadGlyph)
	aliveColor := board.AliveColorValue()
	deadColor := board.DeadColorValue()

	v := g.ctl.View()
	for y := life.Border; y < v.Height()-life.Border; y++ {
		for x := life.Border; x < v.Width()-life.Border; x++ {
			sx, sy := g.cellToScreen(x, y)
			glyph, color := dead, deadColor
			if v.Get(x, y) == life.Alive {
				glyph, color = alive, aliveColor
			}
			for i, r := range glyph {
				dst.SetCell(sx+i, sy, core.Cell{Rune: r, Color: color})
			}
		}
	}
}

// renderCursor highlights the cell under the edit cursor.
func (g *Game) renderCursor(dst *core.Screen) {
	board := g.opts.Config.Board
	sx, sy := g.cellToScreen(g.cursor.X, g.cursor.Y)

	if g.ctl.View().Get(g.cursor.X, g.cursor.Y) == life.Alive {
		for i, r := range []rune(board.AliveGlyph) {
			dst.SetCell(sx+i, sy, core.Cell{Rune: r, Color: core.ColorBrightYellow})
		}
		return
	}

	if board.CellWidth == 1 {
		dst.SetCell(sx, sy, core.Cell{Rune: '+', Color: core.ColorBrightYellow})
		return
	}
	marker := "[" + strings.Repeat(" ", board.CellWidth-2) + "]"
	dst.DrawTextColor(sx, sy, marker, core.ColorBrightYellow)
}

// renderPausedOverlay draws "Paused" at the top of the board and the
// control legend at the bottom.
func (g *Game) renderPausedOverlay(dst *core.Screen) {
	top := g.opts.Config.Board.HUDHeight
	dst.DrawTextCentered(top, " Paused ", core.ColorYellow)

	if !g.showHelp {
		return
	}

	lines := append([]string{"Controls:"}, g.legend...)
	width := 0
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}

	// Framed legend above the notice row.
	box := core.NewRect(0, dst.Height()-1-(len(lines)+2), min(width+4, dst.Width()), len(lines)+2)
	inner := box.Inset(1)
	if box.Y <= top || inner.Empty() {
		return
	}
	for y := inner.Y; y < inner.Bottom(); y++ {
		dst.DrawText(inner.X, y, strings.Repeat(" ", inner.W))
	}
	dst.DrawBox(box, core.ColorYellow)
	for i, line := range lines {
		dst.DrawTextColor(inner.X+1, inner.Y+i, line, core.ColorYellow)
	}
}

// renderTooSmall replaces the board with a resize notice.
func (g *Game) renderTooSmall(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid, "Terminal too small", core.ColorRed)
	dst.DrawTextCentered(mid+1, "Resize to continue", core.ColorDefault)
}
