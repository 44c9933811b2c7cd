package game

import (
	"math"

	"golang.org/x/exp/rand"
)

func NewPlatform(x, y float64) Platform {
	return Platform{
		Kind:   Static,
		X:      x,
		Y:      y,
		Width:  PlatformWidth,
		Height: PlatformHeight,
		Dy:     PlatformDy,
	}
}

func NewMovingPlatform(x, y float64) Platform {
	p := NewPlatform(x, y)
	p.Kind = Moving
	p.Dx = -PlatformPatrolSpeed
	p.X1 = x - PatrolHalfWidth
	p.X2 = x + PatrolHalfWidth
	return p
}

// Collides reports whether the ball lands on this platform this tick: its
// bottom edge is within MaxSpeed of the platform top, its centre is over the
// platform and it is falling.
func (p *Platform) Collides(b *Ball) bool {
	if p.IsNull || !b.Permission || b.Dy <= 0 {
		return false
	}

	tolerance := math.Abs(float64(b.MaxSpeed))
	bottom := float64(b.Y + b.Radius)
	if math.Abs(bottom-p.Y) > tolerance {
		return false
	}

	x := float64(b.X)
	return x >= p.X && x <= p.X+float64(p.Width)
}

// respawn moves the platform back above the window at a random x.
func (p *Platform) respawn(rng *rand.Rand, width int) {
	p.Y = RespawnY

	switch p.Kind {
	case Moving:
		if width > 2*MovingMargin {
			p.X = float64(MovingMargin + rng.Intn(width-2*MovingMargin))
		} else {
			p.X = float64(rng.Intn(width))
		}
		p.X1 = p.X - PatrolHalfWidth
		p.X2 = p.X + PatrolHalfWidth
	default:
		span := width - p.Width
		if span <= 0 {
			span = width
		}
		p.X = float64(rng.Intn(span))
	}
}

func (p *Platform) patrol() {
	if p.Kind != Moving {
		return
	}

	if p.X <= p.X1 || p.X >= p.X2 {
		p.Dx = -p.Dx
	}
	p.X += p.Dx
}

// drift is the game over motion: float back up until just above the window.
func (p *Platform) drift() {
	if p.Y > GameOverCeiling {
		p.Y -= GameOverDrift
	}
}
