package renderer

import (
	"bytes"
	"strings"
	"testing"

	"skyball/internal/ansii"
	"skyball/internal/game"
)

func testViewport() Viewport {
	return Viewport{Cols: 80, Rows: 41, Width: 800, Height: 800}
}

func TestViewportMapping(t *testing.T) {
	v := testViewport()

	if got := v.ToCell(0, 0); got != (ansii.Offset{X: 1, Y: 2}) {
		t.Fatalf("origin: got=%+v", got)
	}
	if got := v.ToCell(799, 799); got != (ansii.Offset{X: 80, Y: 41}) {
		t.Fatalf("far corner: got=%+v", got)
	}
	if got := v.ToCell(5, -300); got.Y >= 2 {
		t.Fatalf("point above the world mapped into the playfield: %+v", got)
	}

	x, y := v.ToWorld(ansii.Offset{X: 1, Y: 2})
	if x != 5 || y != 10 {
		t.Fatalf("ToWorld: got=(%v, %v) want=(5, 10)", x, y)
	}

	for _, c := range []ansii.Offset{{X: 1, Y: 2}, {X: 40, Y: 20}, {X: 80, Y: 41}} {
		x, y := v.ToWorld(c)
		if back := v.ToCell(float64(x), float64(y)); back != c {
			t.Fatalf("round trip %+v -> (%v, %v) -> %+v", c, x, y, back)
		}
	}
}

func TestNewViewportUsesStateSize(t *testing.T) {
	v := NewViewport(100, 30, &game.GameState{Width: 640, Height: 480})
	if v.Width != 640 || v.Height != 480 {
		t.Fatalf("got %dx%d", v.Width, v.Height)
	}
	v = NewViewport(100, 30, nil)
	if v.Width <= 0 || v.Height <= 0 {
		t.Fatalf("no fallback world size: %+v", v)
	}
}

func TestParseInputKeys(t *testing.T) {
	got := ParseInput([]byte("aDzpR\x1b[D\x1b[C\x1b[Aq\x03"))
	want := []UiAction{Left, Right, Pause, Restart, LeftArrow, RightArrow, Quit, Quit}
	if len(got) != len(want) {
		t.Fatalf("got %d inputs %+v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i].Action != want[i] {
			t.Fatalf("input %d: got=%v want=%v", i, got[i].Action, want[i])
		}
	}
}

func TestParseInputMouse(t *testing.T) {
	press := []byte{27, '[', 'M', 32, 32 + 10, 32 + 5}
	release := []byte{27, '[', 'M', 32 + 3, 32 + 10, 32 + 5}
	wheel := []byte{27, '[', 'M', 32 + 64, 32 + 10, 32 + 5}

	buf := append(append(append([]byte{}, press...), release...), wheel...)
	got := ParseInput(buf)
	if len(got) != 1 {
		t.Fatalf("got %d inputs %+v, want 1", len(got), got)
	}
	if got[0].Action != Click || got[0].Cell != (ansii.Offset{X: 10, Y: 5}) {
		t.Fatalf("got %+v", got[0])
	}

	if got := ParseInput(press[:4]); len(got) != 0 {
		t.Fatalf("truncated report decoded: %+v", got)
	}
}

func TestFrameWaitingForServer(t *testing.T) {
	if !strings.Contains(Frame(nil, testViewport()), "waiting for server") {
		t.Fatalf("no waiting message")
	}
}

func TestFrameHidesNullPlatforms(t *testing.T) {
	hidden := game.NewPlatform(100, 400)
	hidden.IsNull = true
	s := &game.GameState{
		Screen:    game.ScreenGame,
		Width:     800,
		Height:    800,
		Ball:      game.NewBall(400, 100),
		Platforms: []game.Platform{game.NewPlatform(300, 200), hidden},
	}

	frame := Frame(s, testViewport())
	if n := strings.Count(frame, string(ansii.Colors.Cyan)); n != 1 {
		t.Fatalf("drew %d static platforms, want 1", n)
	}
	if !strings.Contains(frame, ansii.Blocks.Ball) {
		t.Fatalf("ball missing from frame")
	}
}

func TestHud(t *testing.T) {
	s := &game.GameState{Screen: game.ScreenMenu, Score: 42, Tick: 9}
	if got := hud(s); !strings.Contains(got, "score 42") || !strings.Contains(got, "paused") {
		t.Fatalf("menu hud: %q", got)
	}
	s.Ball.GameOver = true
	if got := hud(s); !strings.Contains(got, "GAME OVER") {
		t.Fatalf("game over hud: %q", got)
	}
}

func TestRenderWrites(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, nil, testViewport()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("nothing written")
	}
}
