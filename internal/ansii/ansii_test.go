package ansii

import (
	"strings"
	"testing"
)

func TestPlaceCursor(t *testing.T) {
	got := Screen.PlaceCursor(Offset{X: 7, Y: 3})
	if got != "\033[3;7H" {
		t.Fatalf("got=%q want=%q", got, "\033[3;7H")
	}
}

func TestDrawBoxOutline(t *testing.T) {
	var b strings.Builder
	DrawBox(&b, Clip{Cols: 80, Rows: 24}, Offset{X: 2, Y: 2}, 3, 4, Colors.Cyan)

	// 4 + 4 on the edges, 2 for the middle row
	if n := strings.Count(b.String(), Blocks.Block); n != 10 {
		t.Fatalf("blocks: got=%d want=10", n)
	}
	if !strings.HasPrefix(b.String(), string(Colors.Cyan)) || !strings.HasSuffix(b.String(), string(Styles.Reset)) {
		t.Fatalf("style not wrapped around the box: %q", b.String())
	}
}

func TestDrawRectClips(t *testing.T) {
	var b strings.Builder
	DrawRect(&b, Clip{Cols: 10, Rows: 10}, Offset{X: 8, Y: 9}, 4, 5, Colors.Green)

	// columns 8..10 and rows 9..10 survive
	if n := strings.Count(b.String(), Blocks.Block); n != 6 {
		t.Fatalf("blocks: got=%d want=6", n)
	}
	if strings.Contains(b.String(), "\033[11;") || strings.Contains(b.String(), ";11H") {
		t.Fatalf("drew outside the clip: %q", b.String())
	}
}

func TestDrawText(t *testing.T) {
	var b strings.Builder
	DrawText(&b, Clip{Cols: 10, Rows: 5}, Offset{X: 6, Y: 1}, "score 12345", Styles.Plain)
	if !strings.Contains(b.String(), "\033[1;6Hscore") || strings.Contains(b.String(), "score ") {
		t.Fatalf("text not cut at the edge: %q", b.String())
	}

	b.Reset()
	DrawText(&b, Clip{Cols: 10, Rows: 5}, Offset{X: 1, Y: 6}, "hidden", Styles.Plain)
	if b.Len() != 0 {
		t.Fatalf("drew below the clip: %q", b.String())
	}
}
