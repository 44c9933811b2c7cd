package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"skyball/internal/config"
	"skyball/internal/lobby"
	"skyball/internal/netwrk"
)

func main() {
	if len(os.Args) == 1 {
		config.LoadConfig("")
	} else {
		config.LoadConfig(os.Args[1])
	}
	cfg := config.Config

	slog.SetLogLoggerLevel(slog.Level(cfg.LogLevel))

	codec, err := netwrk.NewCodec(cfg.Codec)
	if err != nil {
		slog.Error("bad codec", slog.Any("error", err))
		os.Exit(1)
	}

	ln, err := netwrk.Listen(cfg.Transport, cfg.Addr, cfg.MaxFrameSize)
	if err != nil {
		slog.Error("Error setting up listener for lobby. Exiting...", slog.String("addr", cfg.Addr), slog.Any("error", err))
		os.Exit(1)
	}

	l := lobby.CreateLobby(lobby.Settings{
		Width:     cfg.WindowWidth,
		Height:    cfg.WindowHeight,
		Platforms: cfg.Platforms,
		Items:     cfg.Items,
		TickRate:  cfg.TickRate,
		Seed:      cfg.Seed,
		Effect:    cfg.Effect(),
		Codec:     codec,
		Channel: netwrk.Options{
			SendQueue: cfg.SendQueue,
			RecvQueue: cfg.RecvQueue,
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting skyball server on %s (%s, %s)...\n", ln.Addr(), cfg.Transport, codec.Name())
	if err := l.Serve(ctx, ln); err != nil {
		slog.Error("lobby stopped", slog.Any("error", err))
		os.Exit(1)
	}
	fmt.Println("Server stopped")
}
