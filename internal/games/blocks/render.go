package blocks

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Visual characters for rendering. Each board cell is two characters wide so
// that cells look square in a terminal.
const (
	cellWidth  = 2
	panelWidth = 14

	blockRune = '█'
	ghostRune = '░'
	emptyRune = '·'
)

// boardRect returns the outer rectangle of the bordered board, centered
// together with the side panel.
func (g *Game) boardRect(dst *core.Screen) core.Rect {
	w := g.state.Cols()*cellWidth + 2
	h := g.state.Rows() + 2
	x := core.Clamp((dst.Width()-w-panelWidth)/2, 0, dst.Width())
	y := core.Clamp((dst.Height()-h)/2, 0, dst.Height())
	return core.NewRect(x, y, w, h)
}

func (g *Game) fits(dst *core.Screen) bool {
	w := g.state.Cols()*cellWidth + 2 + panelWidth
	h := g.state.Rows() + 2
	return dst.Width() >= w && dst.Height() >= h
}

func drawCell(dst *core.Screen, area core.Rect, row, col int, r rune, c core.Color) {
	x := area.X + 1 + col*cellWidth
	y := area.Y + 1 + row
	for i := 0; i < cellWidth; i++ {
		dst.SetColored(x+i, y, r, c)
	}
}

// Render draws the board, the falling piece and the side panel.
func (g *Game) Render(dst *core.Screen) {
	if !g.fits(dst) {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2+1,
			fmt.Sprintf("need %dx%d", g.state.Cols()*cellWidth+2+panelWidth, g.state.Rows()+2))
		return
	}

	area := g.boardRect(dst)
	dst.DrawBox(area, core.ColorGray)

	for row := 0; row < g.state.Rows(); row++ {
		for col := 0; col < g.state.Cols(); col++ {
			drawCell(dst, area, row, col, emptyRune, core.ColorGray)
		}
	}

	for _, b := range g.state.Landed() {
		drawCell(dst, area, b.Row, b.Col, blockRune, b.Color)
	}

	if !g.state.GameOver() {
		piece := g.state.Piece()
		if g.cfg.Display.Ghost {
			ghost := g.state.Ghost()
			if ghost.Row != piece.Row {
				for _, b := range ghost.Blocks() {
					drawCell(dst, area, b.Row, b.Col, ghostRune, core.ColorGray)
				}
			}
		}
		for _, b := range piece.Blocks() {
			if area.Contains(area.X+1+b.Col*cellWidth, area.Y+1+b.Row) {
				drawCell(dst, area, b.Row, b.Col, blockRune, b.Color)
			}
		}
	}

	g.renderPanel(dst, area)
	g.renderOverlay(dst, area)
}

func (g *Game) renderPanel(dst *core.Screen, area core.Rect) {
	x := area.Right() + 2
	y := area.Y + 1

	dst.DrawTextColored(x, y, "SCORE", core.ColorYellow)
	dst.DrawText(x, y+1, fmt.Sprintf("%d", g.state.Score()))
	dst.DrawTextColored(x, y+3, "LEVEL", core.ColorYellow)
	dst.DrawText(x, y+4, fmt.Sprintf("%d", g.state.Level()+1))
	dst.DrawTextColored(x, y+6, "LINES", core.ColorYellow)
	dst.DrawText(x, y+7, fmt.Sprintf("%d", g.state.Lines()))

	if !g.cfg.Display.Preview {
		return
	}
	dst.DrawTextColored(x, y+9, "NEXT", core.ColorYellow)
	next := ShapeOf(g.state.NextKind())
	box := core.NewRect(x, y+10, 4*cellWidth+2, 6)
	dst.DrawBox(box, core.ColorGray)
	for _, b := range NewPiece(next.Kind, 0, 0).Blocks() {
		drawCell(dst, box, b.Row, b.Col, blockRune, b.Color)
	}
}

func (g *Game) renderOverlay(dst *core.Screen, area core.Rect) {
	var title, hint string
	switch g.state.Status() {
	case StatusPaused:
		title, hint = "PAUSED", "P to resume"
	case StatusGameOver:
		title, hint = "GAME OVER", "R to restart"
	default:
		return
	}
	mid := area.Y + area.H/2
	dst.DrawRect(core.NewRect(area.X+1, mid-1, area.W-2, 3), ' ')
	center := func(y int, text string, c core.Color) {
		x := area.X + (area.W-len(text))/2
		dst.DrawTextColored(x, y, text, c)
	}
	center(mid-1, title, core.ColorBrightRed)
	center(mid+1, hint, core.ColorWhite)
}
