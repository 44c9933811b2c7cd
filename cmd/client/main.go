package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"skyball/internal/ansii"
	"skyball/internal/client"
	"skyball/internal/config"
	"skyball/internal/netwrk"
	"skyball/internal/renderer"
)

const logFile = "skyball-client.log"

func main() {
	if len(os.Args) == 1 {
		config.LoadConfig("")
	} else {
		config.LoadConfig(os.Args[1])
	}
	cfg := config.Config

	slog.SetLogLoggerLevel(slog.Level(cfg.LogLevel))

	// The terminal belongs to the renderer; logs go to a file.
	if f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Println("skyball:", err)
		os.Exit(1)
	}
}

func run(cfg config.Configuration) error {
	codec, err := netwrk.NewCodec(cfg.Codec)
	if err != nil {
		return err
	}
	if !ansii.IsTerminal() {
		return errors.New("stdin is not a terminal")
	}

	g := client.NewGame(client.Options{
		Codec: codec,
		Channel: netwrk.Options{
			SendQueue: cfg.SendQueue,
			RecvQueue: cfg.RecvQueue,
		},
		NetworkRate:       cfg.TickRate,
		ReconnectAttempts: cfg.ReconnectAttempts,
		ReconnectDelay:    time.Duration(cfg.ReconnectDelayMs) * time.Millisecond,
	})

	prev, err := ansii.MakeTermRaw()
	if err != nil {
		return fmt.Errorf("making terminal raw: %w", err)
	}
	defer ansii.RestoreTerm(prev)

	os.Stdout.WriteString(string(ansii.Screen.AltScreenOn + ansii.Screen.HideCursor + ansii.Screen.MouseOn))
	defer os.Stdout.WriteString(string(ansii.Screen.MouseOff + ansii.Screen.ShowCursor + ansii.Screen.AltScreenOff))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Input handler
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				slog.Error("reading stdin", slog.Any("error", err))
				cancel()
				return
			}
			v := viewport(g)
			for _, in := range renderer.ParseInput(buf[:n]) {
				if g.HandleInput(in, v) {
					cancel()
					return
				}
			}
		}
	}()

	// Renderer
	go func() {
		ticker := time.NewTicker(time.Second / time.Duration(cfg.RenderFps))
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s := g.State()
				if err := renderer.Render(os.Stdout, s, viewport(g)); err != nil {
					slog.Error("render failed", slog.Any("error", err))
				}
			}
		}
	}()

	dial := func() (netwrk.Conn, error) {
		return netwrk.Dial(cfg.Transport, cfg.Addr, cfg.MaxFrameSize)
	}
	return g.Play(ctx, dial)
}

func viewport(g *client.Game) renderer.Viewport {
	cols, rows, err := ansii.GetTermSize()
	if err != nil {
		cols, rows = 80, 24
	}
	return renderer.NewViewport(cols, rows, g.State())
}
