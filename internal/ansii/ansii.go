package ansii

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type ANSI string

const (
	reset        ANSI = "\033[0m"
	plain        ANSI = ""
	bold         ANSI = "\033[1m"
	underline    ANSI = "\033[4m"
	black        ANSI = "\033[30m"
	red          ANSI = "\033[31m"
	green        ANSI = "\033[32m"
	yellow       ANSI = "\033[33m"
	blue         ANSI = "\033[34m"
	purple       ANSI = "\033[35m"
	cyan         ANSI = "\033[36m"
	white        ANSI = "\033[37m"
	clearScreen  ANSI = "\033[2J"
	hideCursor   ANSI = "\033[?25l"
	showCursor   ANSI = "\033[?25h"
	mouseOn      ANSI = "\033[?1000h"
	mouseOff     ANSI = "\033[?1000l"
	altScreenOn  ANSI = "\033[?1049h"
	altScreenOff ANSI = "\033[?1049l"
)

// Offset is a terminal cell. Columns and rows start at 1.
type Offset struct {
	X int
	Y int
}

type style struct {
	Reset     ANSI
	Plain     ANSI
	Bold      ANSI
	Underline ANSI
}

type color struct {
	Black  ANSI
	Red    ANSI
	Green  ANSI
	Yellow ANSI
	Blue   ANSI
	Purple ANSI
	Cyan   ANSI
	White  ANSI
}

type screen struct {
	ClearScreen  ANSI
	HideCursor   ANSI
	ShowCursor   ANSI
	MouseOn      ANSI
	MouseOff     ANSI
	AltScreenOn  ANSI
	AltScreenOff ANSI
}

type ascii struct {
	Block string
	Ball  string
	Item  string
}

var (
	Styles = style{Bold: bold, Underline: underline, Reset: reset, Plain: plain}
	Colors = color{Black: black, Red: red, Green: green, Yellow: yellow, Blue: blue, Purple: purple, Cyan: cyan, White: white}
	Screen = screen{
		ClearScreen:  clearScreen,
		HideCursor:   hideCursor,
		ShowCursor:   showCursor,
		MouseOn:      mouseOn,
		MouseOff:     mouseOff,
		AltScreenOn:  altScreenOn,
		AltScreenOff: altScreenOff,
	}
	Blocks = ascii{Block: "█", Ball: "●", Item: "◆"}
)

func GetTermSize() (width int, height int, err error) {
	width, height, err = term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return width, height, nil
}

func MakeTermRaw() (*term.State, error) {
	return term.MakeRaw(int(os.Stdin.Fd()))
}

func RestoreTerm(prev *term.State) error {
	return term.Restore(int(os.Stdin.Fd()), prev)
}

func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func (s screen) PlaceCursor(o Offset) ANSI {
	return ANSI(fmt.Sprintf("\033[%d;%dH", o.Y, o.X))
}

// Clip bounds drawing to a cols x rows terminal.
type Clip struct {
	Cols int
	Rows int
}

func (c Clip) contains(x, y int) bool {
	return x >= 1 && y >= 1 && x <= c.Cols && y <= c.Rows
}

// DrawBox draws the outline of a box of `height` and `width` cells with its
// top left cell at `offset`. Cells off screen are clipped.
func DrawBox(builder *strings.Builder, clip Clip, offset Offset, height int, width int, style ANSI) {
	builder.WriteString(string(style))
	for hIdx := range height {
		if hIdx == 0 || hIdx == height-1 {
			for wIdx := range width {
				drawPixel(builder, clip, offset.X+wIdx, offset.Y+hIdx, Blocks.Block)
			}
		} else {
			drawPixel(builder, clip, offset.X, offset.Y+hIdx, Blocks.Block)
			drawPixel(builder, clip, offset.X+width-1, offset.Y+hIdx, Blocks.Block)
		}
	}
	builder.WriteString(string(Styles.Reset))
}

// DrawRect fills a rectangle, clipped like DrawBox.
func DrawRect(builder *strings.Builder, clip Clip, offset Offset, height int, width int, style ANSI) {
	builder.WriteString(string(style))
	for hIdx := range height {
		for wIdx := range width {
			drawPixel(builder, clip, offset.X+wIdx, offset.Y+hIdx, Blocks.Block)
		}
	}
	builder.WriteString(string(Styles.Reset))
}

func DrawGlyph(builder *strings.Builder, clip Clip, offset Offset, glyph string, style ANSI) {
	builder.WriteString(string(style))
	drawPixel(builder, clip, offset.X, offset.Y, glyph)
	builder.WriteString(string(Styles.Reset))
}

// DrawText writes s starting at offset. Text running past the right edge is
// cut.
func DrawText(builder *strings.Builder, clip Clip, offset Offset, s string, style ANSI) {
	if offset.Y < 1 || offset.Y > clip.Rows || offset.X > clip.Cols {
		return
	}
	runes := []rune(s)
	if offset.X < 1 {
		if 1-offset.X >= len(runes) {
			return
		}
		runes = runes[1-offset.X:]
		offset.X = 1
	}
	if room := clip.Cols - offset.X + 1; len(runes) > room {
		runes = runes[:room]
	}
	builder.WriteString(string(style))
	builder.WriteString(string(Screen.PlaceCursor(offset)))
	builder.WriteString(string(runes))
	builder.WriteString(string(Styles.Reset))
}

func drawPixel(builder *strings.Builder, clip Clip, x, y int, glyph string) {
	if !clip.contains(x, y) {
		return
	}
	builder.WriteString(string(Screen.PlaceCursor(Offset{X: x, Y: y})))
	builder.WriteString(glyph)
}
