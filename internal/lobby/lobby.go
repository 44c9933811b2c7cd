package lobby

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"skyball/internal/game"
	"skyball/internal/netwrk"
	"skyball/internal/server"
)

// Settings shapes every session the lobby starts.
type Settings struct {
	Width     int
	Height    int
	Platforms int
	Items     int
	TickRate  int
	// Seed is the base seed for session worlds. Zero seeds from the clock.
	Seed    uint64
	Effect  game.ItemEffect
	Codec   netwrk.Codec
	Channel netwrk.Options
}

// Lobby hands every accepted connection its own session and forgets the
// session once it ends.
type Lobby struct {
	settings Settings
	sessions sync.Map
	live     atomic.Int64
	seq      atomic.Uint64
	log      *slog.Logger
}

func CreateLobby(settings Settings) *Lobby {
	if settings.Seed == 0 {
		settings.Seed = uint64(time.Now().UnixNano())
	}
	if settings.Codec == nil {
		settings.Codec = netwrk.ProtoCodec{}
	}
	if settings.Channel.Logger == nil {
		settings.Channel.Logger = slog.Default()
	}

	return &Lobby{
		settings: settings,
		log:      settings.Channel.Logger,
	}
}

// Sessions is the number of sessions currently running.
func (l *Lobby) Sessions() int { return int(l.live.Load()) }

func (l *Lobby) Session(id string) (*server.Server, bool) {
	v, ok := l.sessions.Load(id)
	if !ok {
		return nil, false
	}
	return v.(*server.Server), true
}

// Serve accepts connections until ln is closed or ctx is done. One session
// ending never stops the lobby.
func (l *Lobby) Serve(ctx context.Context, ln netwrk.Listener) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			ln.Close()
		case <-done:
		}
	}()

	l.log.Info("lobby accepting connections", slog.String("addr", ln.Addr()))
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			l.log.Warn("accept failed", slog.Any("error", err))
			time.Sleep(10 * time.Millisecond)
			continue
		}

		go func() {
			if err := l.HandleConnection(ctx, conn); err != nil {
				l.log.Error("session failed to start", slog.String("peer", conn.RemoteAddr()), slog.Any("error", err))
			}
		}()
	}
}

// HandleConnection runs a whole session on conn and returns when it ends.
func (l *Lobby) HandleConnection(ctx context.Context, conn netwrk.Conn) error {
	id := uuid.NewString()
	seed := l.settings.Seed + l.seq.Add(1)

	engine, err := game.NewEngine(
		game.TimeStep,
		rand.New(rand.NewSource(seed)),
		game.WithItemEffect(l.settings.Effect),
		game.WithLogger(l.log.With(slog.String("session", id))),
	)
	if err != nil {
		conn.Close()
		return fmt.Errorf("building engine: %w", err)
	}

	state, err := engine.Setup(l.settings.Width, l.settings.Height, l.settings.Platforms, l.settings.Items)
	if err != nil {
		conn.Close()
		return fmt.Errorf("building world: %w", err)
	}
	state.SessionID = id

	ch := netwrk.NewChannel(conn, l.settings.Codec, l.settings.Channel)
	srv := server.New(state, engine, ch, l.settings.TickRate, l.log)

	l.sessions.Store(id, srv)
	l.live.Add(1)
	l.log.Info("session started", slog.String("session", id), slog.String("peer", conn.RemoteAddr()), slog.Uint64("seed", seed))

	defer func() {
		l.sessions.Delete(id)
		l.live.Add(-1)
		l.log.Info("session removed", slog.String("session", id), slog.Int("live", l.Sessions()))
	}()

	srv.Run(ctx)
	return nil
}
