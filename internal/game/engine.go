package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/exp/rand"
)

var (
	ErrInvalidTimeStep = errors.New("time step must be positive")
	ErrInvalidBounds   = errors.New("window width and height must be positive")
	ErrNilRand         = errors.New("random source is nil")
)

type Engine struct {
	dt     float64
	rng    *rand.Rand
	effect ItemEffect
	log    *slog.Logger
}

type Option func(*Engine)

func WithItemEffect(effect ItemEffect) Option {
	return func(e *Engine) {
		if effect != nil {
			e.effect = effect
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// NewEngine builds an engine that advances dt per tick and draws every
// respawn position from rng.
func NewEngine(dt float64, rng *rand.Rand, opts ...Option) (*Engine, error) {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeStep, dt)
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	e := &Engine{
		dt:     dt,
		rng:    rng,
		effect: NoEffect,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Engine) TimeStep() float64 { return e.dt }

// Setup creates a fresh world: the ball near the top, one platform right
// under it and the rest spread down the window.
func (e *Engine) Setup(width, height, platforms, items int) (*GameState, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidBounds, width, height)
	}

	startX := BallStartX
	if startX > width-BallRadius-1 {
		startX = width / 2
	}

	s := &GameState{
		Screen: ScreenGame,
		Width:  width,
		Height: height,
		Ball:   NewBall(startX, BallStartY),
	}

	gap := float64(height) / float64(platforms+1)
	for i := 0; i < platforms; i++ {
		y := gap * float64(i+1)

		var x float64
		if i == 0 {
			x = float64(startX - PlatformWidth/2)
		} else {
			span := width - PlatformWidth
			if span <= 0 {
				span = width
			}
			x = float64(e.rng.Intn(span))
		}

		if i%MovingEvery == MovingEvery-1 {
			s.Platforms = append(s.Platforms, NewMovingPlatform(x, y))
		} else {
			s.Platforms = append(s.Platforms, NewPlatform(x, y))
		}
	}

	for i := 0; i < items; i++ {
		it := NewItem(0, 0)
		it.respawn(e.rng, width, height)
		s.Items = append(s.Items, it)
	}

	return s, nil
}

// Restart replaces the world in place, keeping the session and the shape of
// the old one.
func (e *Engine) Restart(s *GameState) error {
	fresh, err := e.Setup(s.Width, s.Height, len(s.Platforms), len(s.Items))
	if err != nil {
		return err
	}
	fresh.SessionID = s.SessionID
	*s = *fresh
	return nil
}

// Step advances the world one tick. Nothing moves unless the screen is GAME.
func (e *Engine) Step(s *GameState) error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidBounds, s.Width, s.Height)
	}
	if s.Screen != ScreenGame {
		return nil
	}

	s.Tick++
	e.UpdatePhysics(s)
	e.UpdateLogic(s)
	return nil
}

func (e *Engine) UpdatePhysics(s *GameState) {
	s.Ball.Update(s.WindowWidth(), s.WindowHeight(), e.dt)
}

// UpdateLogic runs collisions, scrolling, respawns, power-ups and the game
// over rule.
func (e *Engine) UpdateLogic(s *GameState) {
	b := &s.Ball
	width, height := s.WindowWidth(), s.WindowHeight()

	if b.GameOver {
		for i := range s.Platforms {
			s.Platforms[i].drift()
		}
		return
	}

	flying := b.FlyPower > 0

	var climb float64
	if !flying && b.Y < HighestPoint && b.Dy < 0 {
		climb = math.Abs(b.Dy) * e.dt
	}

	for i := range s.Platforms {
		p := &s.Platforms[i]

		if flying {
			p.Y += FlySpeed
		} else {
			if p.Y <= float64(height) && p.Collides(b) {
				b.bounce(p.Y)
				e.log.Debug("bounce", slog.Int("platform", i), slog.Int("y", b.Y))
			}
			p.Y += p.Dy*e.dt + climb
		}

		// A relocated platform holds its respawn x until the next tick.
		if p.Y > float64(height) {
			p.respawn(e.rng, width)
			continue
		}
		p.patrol()
	}

	for i := range s.Items {
		it := &s.Items[i]

		if flying {
			it.Y += FlySpeed
		} else {
			it.Y += it.Dy + climb
		}

		if it.touches(b) {
			e.effect(b)
			it.park(height)
			e.log.Debug("item collected", slog.Int("item", i))
		}
		if it.Y > float64(height) {
			it.respawn(e.rng, width, height)
		}
	}

	if flying {
		s.Score += FlySpeed
		b.FlyPower--
	} else {
		s.Score += PlatformDy*e.dt + climb
	}

	if b.Y >= b.Floor(height) && s.Score > 0 {
		b.GameOver = true
		e.log.Info("game over", slog.String("session", s.SessionID), slog.Float64("score", s.Score))
	}
}

// ApplyKey feeds one key token to the world. It reports whether the token
// meant anything.
func (e *Engine) ApplyKey(s *GameState, key string) bool {
	switch key {
	case "a":
		s.Ball.MoveLeft()
	case "d":
		s.Ball.MoveRight()
	case "p":
		if s.Screen == ScreenGame {
			s.Screen = ScreenMenu
		} else {
			s.Screen = ScreenGame
		}
	case "r":
		if !s.Ball.GameOver {
			return false
		}
		if err := e.Restart(s); err != nil {
			e.log.Error("restart failed", slog.Any("error", err))
			return false
		}
	default:
		return false
	}
	return true
}

// ApplyClick moves the ball to x, kept between the walls. A NaN or infinite
// x is dropped and reported as false.
func (e *Engine) ApplyClick(s *GameState, x, y float32) bool {
	fx := float64(x)
	if math.IsNaN(fx) || math.IsInf(fx, 0) {
		return false
	}

	b := &s.Ball
	left := float64(b.Radius)
	right := float64(s.WindowWidth() - b.Radius - 1)
	b.SetX(math.Max(left, math.Min(fx, right)))
	return true
}
