package game

import "math"

func NewBall(x, y int) Ball {
	return Ball{
		X:          x,
		Y:          y,
		Radius:     BallRadius,
		Gravity:    BallGravity,
		Agility:    BallAgility,
		MaxSpeed:   BallMaxSpeed,
		Permission: true,
	}
}

func (b *Ball) MoveRight() {
	if b.Dx+float64(b.Agility) < float64(b.MaxSpeed) {
		b.Dx += float64(b.Agility)
	}
}

func (b *Ball) MoveLeft() {
	if b.Dx-float64(b.Agility) > -float64(b.MaxSpeed) {
		b.Dx -= float64(b.Agility)
	}
}

// SetX places the ball at an absolute x, as sent by a click. Walls are
// enforced on the next update.
func (b *Ball) SetX(x float64) {
	b.X = int(x)
}

// Update advances the ball by one step of length dt inside a width x height
// field.
func (b *Ball) Update(width, height int, dt float64) {
	right := float64(width - b.Radius - 1)
	left := float64(b.Radius)
	floor := b.Floor(height)

	next := float64(b.X) + b.Dx
	switch {
	case next > right:
		b.X = int(right)
		b.Dx = -b.Dx
	case next < left:
		b.X = int(left)
		b.Dx = -b.Dx
	default:
		b.X = int(next)
	}

	if b.Y == floor {
		b.Dx *= XFriction
		if math.Abs(b.Dx) < FrictionCutoff {
			b.Dx = 0
		}
	}

	switch {
	case b.FlyPower > 0:
		b.Dy = 0
	case b.Y >= floor:
		b.Y = floor
		b.Dy *= EnergyLoss
		b.Dy = -b.Dy
	default:
		b.Dy += b.Gravity * dt
		b.Y = int(float64(b.Y) + b.Dy*dt + .5*b.Gravity*dt*dt)
	}
	if b.Y > floor {
		b.Y = floor
	}

	if b.Dy > 0 {
		b.Permission = true
	}
}

// bounce rests the ball on top of a platform and launches it upward at
// MaxSpeed regardless of the incoming speed.
func (b *Ball) bounce(top float64) {
	b.Y = int(top) - b.Radius
	b.Dy = -float64(b.MaxSpeed)
	b.Permission = false
}
