package server

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"skyball/internal/game"
	"skyball/internal/netwrk"
)

type Phase int32

const (
	PhaseInitializing Phase = iota
	PhaseRunning
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhaseRunning:
		return "running"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

const DefaultTickRate = 30

// Server owns one client's game. It is the only writer of the state; inbound
// messages only reach the ball controls and the screen flag.
type Server struct {
	id     string
	state  *game.GameState
	engine *game.Engine
	router *netwrk.Router
	log    *slog.Logger
	tick   time.Duration

	phase atomic.Int32
}

func New(state *game.GameState, engine *game.Engine, ch *netwrk.Channel, tickRate int, log *slog.Logger) *Server {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	if log == nil {
		log = slog.Default()
	}

	s := &Server{
		id:     state.SessionID,
		state:  state,
		engine: engine,
		log:    log.With(slog.String("session", state.SessionID)),
		tick:   time.Second / time.Duration(tickRate),
	}
	s.router = netwrk.NewRouter(ch, s)
	return s
}

func (s *Server) Phase() Phase { return Phase(s.phase.Load()) }

// SessionID is fixed at construction and safe to call from any goroutine.
func (s *Server) SessionID() string { return s.id }

// Step runs one tick: publish the current state, apply whatever input has
// arrived, then advance the world. It returns false once the session is over.
func (s *Server) Step() bool {
	switch s.Phase() {
	case PhaseTerminated:
		return false
	case PhaseInitializing:
		s.phase.Store(int32(PhaseRunning))
		s.log.Info("session running", slog.String("screen", s.state.Screen.String()))
	}

	if !s.router.Channel().Send(netwrk.StateMessage(s.state)) {
		s.terminate("state send failed")
		return false
	}

	if !s.router.DrainAndDispatch() {
		s.terminate("channel closed")
		return false
	}

	if err := s.engine.Step(s.state); err != nil {
		s.log.Error("engine step failed", slog.Any("error", err))
		s.terminate("engine error")
		return false
	}

	return true
}

// Run steps the session at the tick rate until it terminates or ctx is done.
func (s *Server) Run(ctx context.Context) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.terminate("shutdown")
			return
		case <-ticker.C:
			if !s.Step() {
				return
			}
		}
	}
}

func (s *Server) HandleMessage(m netwrk.Message) {
	switch m.Kind() {
	case netwrk.KindKey:
		if !s.engine.ApplyKey(s.state, m.Key) {
			s.log.Debug("ignoring key", slog.String("key", m.Key))
		}
	case netwrk.KindClick:
		if !s.engine.ApplyClick(s.state, m.Click.X, m.Click.Y) {
			s.log.Debug("ignoring click", slog.Float64("x", float64(m.Click.X)))
		}
	default:
		s.log.Warn("dropping unexpected message", slog.String("kind", m.Kind().String()))
	}
}

func (s *Server) terminate(reason string) {
	if Phase(s.phase.Swap(int32(PhaseTerminated))) == PhaseTerminated {
		return
	}
	s.router.Channel().Close()
	s.log.Info("session terminated",
		slog.String("reason", reason),
		slog.Uint64("tick", s.state.Tick),
		slog.Float64("score", s.state.Score),
	)
}
