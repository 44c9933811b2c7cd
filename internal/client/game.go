package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"skyball/internal/game"
	"skyball/internal/netwrk"
)

var ErrGaveUp = errors.New("gave up reconnecting")

// Dialer opens a fresh connection to the server.
type Dialer func() (netwrk.Conn, error)

type Options struct {
	Codec   netwrk.Codec
	Channel netwrk.Options
	// NetworkRate is how many times a second inbound snapshots are drained.
	NetworkRate       int
	ReconnectAttempts int
	ReconnectDelay    time.Duration
	Logger            *slog.Logger
}

// Game is the client side of a session. It never simulates anything; the
// last snapshot received replaces the whole local state.
type Game struct {
	opts  Options
	log   *slog.Logger
	state atomic.Pointer[game.GameState]
	ch    atomic.Pointer[netwrk.Channel]
}

func NewGame(opts Options) *Game {
	if opts.Codec == nil {
		opts.Codec = netwrk.ProtoCodec{}
	}
	if opts.NetworkRate <= 0 {
		opts.NetworkRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Channel.Logger == nil {
		opts.Channel.Logger = opts.Logger
	}
	return &Game{opts: opts, log: opts.Logger}
}

// State is the latest snapshot, or nil before the first one arrives. Callers
// must treat it as read only.
func (g *Game) State() *game.GameState { return g.state.Load() }

func (g *Game) HandleMessage(m netwrk.Message) {
	if m.Kind() != netwrk.KindState {
		g.log.Debug("ignoring non-state message", slog.String("kind", m.Kind().String()))
		return
	}
	if prev := g.state.Swap(m.State); prev == nil || prev.SessionID != m.State.SessionID {
		g.log.Info("joined session", slog.String("session", m.State.SessionID))
	}
}

func (g *Game) SendKey(key string) bool {
	return g.send(netwrk.KeyMessage(key))
}

func (g *Game) SendClick(x, y float32) bool {
	return g.send(netwrk.ClickMessage(x, y))
}

func (g *Game) send(m netwrk.Message) bool {
	ch := g.ch.Load()
	if ch == nil {
		return false
	}
	return ch.Send(m)
}

// Run drains ch at the network rate until ctx is done or ch stops. It
// returns netwrk.ErrChannelClosed when the connection is lost.
func (g *Game) Run(ctx context.Context, ch *netwrk.Channel) error {
	g.ch.Store(ch)
	defer g.ch.CompareAndSwap(ch, nil)

	router := netwrk.NewRouter(ch, g)
	ticker := time.NewTicker(time.Second / time.Duration(g.opts.NetworkRate))
	defer ticker.Stop()

	for {
		if !router.DrainAndDispatch() {
			return netwrk.ErrChannelClosed
		}
		select {
		case <-ctx.Done():
			ch.Close()
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Play connects with dial and keeps the session going. After a lost or failed
// connection it redials up to ReconnectAttempts times, pausing ReconnectDelay
// between tries, and then gives up with ErrGaveUp. It returns nil when ctx is
// done.
func (g *Game) Play(ctx context.Context, dial Dialer) error {
	failures := 0
	for {
		if ctx.Err() != nil {
			return nil
		}

		conn, err := dial()
		if err != nil {
			failures++
			g.log.Warn("connect failed", slog.Int("attempt", failures), slog.Any("error", err))
			if failures > g.opts.ReconnectAttempts {
				return fmt.Errorf("%w after %d attempts: %v", ErrGaveUp, failures, err)
			}
			if !g.pause(ctx) {
				return nil
			}
			continue
		}

		g.log.Info("connected", slog.String("server", conn.RemoteAddr()))
		failures = 0
		err = g.Run(ctx, netwrk.NewChannel(conn, g.opts.Codec, g.opts.Channel))
		if ctx.Err() != nil {
			return nil
		}

		g.log.Warn("connection lost", slog.Any("error", err))
		if g.opts.ReconnectAttempts <= 0 {
			return fmt.Errorf("%w: %v", ErrGaveUp, err)
		}
		if !g.pause(ctx) {
			return nil
		}
	}
}

func (g *Game) pause(ctx context.Context) bool {
	t := time.NewTimer(g.opts.ReconnectDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
