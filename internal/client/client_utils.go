package client

import "skyball/internal/renderer"

// KeyFor maps a UI action onto the key token the server understands.
func KeyFor(action renderer.UiAction) (string, bool) {
	switch action {
	case renderer.Left, renderer.LeftArrow:
		return "a", true
	case renderer.Right, renderer.RightArrow:
		return "d", true
	case renderer.Pause:
		return "p", true
	case renderer.Restart:
		return "r", true
	default:
		return "", false
	}
}

// HandleInput forwards one decoded input to the server. It reports whether
// the player asked to quit.
func (g *Game) HandleInput(in renderer.Input, v renderer.Viewport) (quit bool) {
	switch in.Action {
	case renderer.Quit:
		return true
	case renderer.Click:
		x, y := v.ToWorld(in.Cell)
		g.SendClick(x, y)
	default:
		if key, ok := KeyFor(in.Action); ok {
			g.SendKey(key)
		}
	}
	return false
}
