package renderer

import (
	"fmt"
	"io"
	"strings"

	"skyball/internal/ansii"
	"skyball/internal/game"
)

// hudRows is the number of terminal rows above the playfield.
const hudRows = 1

// Viewport maps a Width x Height world onto a Cols x Rows terminal.
type Viewport struct {
	Cols   int
	Rows   int
	Width  int
	Height int
}

func NewViewport(cols, rows int, s *game.GameState) Viewport {
	v := Viewport{Cols: cols, Rows: rows, Width: game.BallStartX * 2, Height: game.BallStartX * 2}
	if s != nil && s.Width > 0 && s.Height > 0 {
		v.Width, v.Height = s.Width, s.Height
	}
	return v
}

func (v Viewport) playRows() int {
	if v.Rows <= hudRows {
		return 1
	}
	return v.Rows - hudRows
}

func (v Viewport) clip() ansii.Clip { return ansii.Clip{Cols: v.Cols, Rows: v.Rows} }

// ToCell returns the cell holding world point (x, y). Points outside the
// world land outside the playfield and get clipped when drawn.
func (v Viewport) ToCell(x, y float64) ansii.Offset {
	col := floorDiv(x*float64(v.Cols), float64(v.Width))
	row := floorDiv(y*float64(v.playRows()), float64(v.Height))
	return ansii.Offset{X: 1 + col, Y: 1 + hudRows + row}
}

// ToWorld returns the world point at the centre of a cell.
func (v Viewport) ToWorld(cell ansii.Offset) (float32, float32) {
	x := (float64(cell.X-1) + 0.5) * float64(v.Width) / float64(v.Cols)
	y := (float64(cell.Y-1-hudRows) + 0.5) * float64(v.Height) / float64(v.playRows())
	return float32(x), float32(y)
}

func floorDiv(a, b float64) int {
	q := a / b
	n := int(q)
	if q < 0 && float64(n) != q {
		n--
	}
	return n
}

// Frame draws the whole screen for s.
func Frame(s *game.GameState, v Viewport) string {
	var b strings.Builder
	b.WriteString(string(ansii.Screen.ClearScreen))
	clip := v.clip()

	if s == nil {
		ansii.DrawText(&b, clip, ansii.Offset{X: 1, Y: 1}, "waiting for server...", ansii.Colors.Yellow)
		return b.String()
	}

	for _, p := range s.Platforms {
		if p.IsNull {
			continue
		}
		tl := v.ToCell(p.X, p.Y)
		br := v.ToCell(p.X+float64(p.Width), p.Y+float64(p.Height))
		color := ansii.Colors.Cyan
		if p.Kind == game.Moving {
			color = ansii.Colors.Purple
		}
		ansii.DrawRect(&b, clip, tl, max(br.Y-tl.Y, 1), max(br.X-tl.X, 1), color)
	}

	for _, it := range s.Items {
		ansii.DrawGlyph(&b, clip, v.ToCell(it.X, it.Y), ansii.Blocks.Item, ansii.Colors.Yellow)
	}

	ballColor := ansii.Colors.Red
	if s.Ball.FlyPower > 0 {
		ballColor = ansii.Colors.Green
	}
	ansii.DrawGlyph(&b, clip, v.ToCell(float64(s.Ball.X), float64(s.Ball.Y)), ansii.Blocks.Ball, ballColor)

	ansii.DrawText(&b, clip, ansii.Offset{X: 1, Y: 1}, hud(s), ansii.Styles.Bold)
	return b.String()
}

func hud(s *game.GameState) string {
	line := fmt.Sprintf("score %.0f  tick %d", s.Score, s.Tick)
	switch {
	case s.Ball.GameOver:
		line += "  GAME OVER, r to restart"
	case s.Screen == game.ScreenMenu:
		line += "  paused, p to resume"
	case s.Ball.FlyPower > 0:
		line += fmt.Sprintf("  flying %d", s.Ball.FlyPower)
	}
	return line + "  a/d move  click to place  q quit"
}

func Render(w io.Writer, s *game.GameState, v Viewport) error {
	_, err := io.WriteString(w, Frame(s, v))
	return err
}
