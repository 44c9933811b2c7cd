package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"skyball/internal/game"
)

var Config Configuration

type Configuration struct {
	LogLevel int `json:"logLevel" toml:"logLevel"`

	Addr         string `json:"addr" toml:"addr"`
	Transport    string `json:"transport" toml:"transport"`
	Codec        string `json:"codec" toml:"codec"`
	TickRate     int    `json:"tickRate" toml:"tickRate"`
	RenderFps    int    `json:"renderFps" toml:"renderFps"`
	SendQueue    int    `json:"sendQueue" toml:"sendQueue"`
	RecvQueue    int    `json:"recvQueue" toml:"recvQueue"`
	MaxFrameSize int    `json:"maxFrameSize" toml:"maxFrameSize"`

	Seed          uint64 `json:"seed" toml:"seed"`
	WindowWidth   int    `json:"windowWidth" toml:"windowWidth"`
	WindowHeight  int    `json:"windowHeight" toml:"windowHeight"`
	Platforms     int    `json:"platforms" toml:"platforms"`
	Items         int    `json:"items" toml:"items"`
	ItemEffect    string `json:"itemEffect" toml:"itemEffect"`
	FlyPowerTicks int    `json:"flyPowerTicks" toml:"flyPowerTicks"`

	ReconnectAttempts int `json:"reconnectAttempts" toml:"reconnectAttempts"`
	ReconnectDelayMs  int `json:"reconnectDelayMs" toml:"reconnectDelayMs"`
}

func Default() Configuration {
	return Configuration{
		LogLevel:          int(slog.LevelInfo),
		Addr:              "127.0.0.1:12345",
		Transport:         "tcp",
		Codec:             "proto",
		TickRate:          30,
		RenderFps:         30,
		SendQueue:         64,
		RecvQueue:         256,
		MaxFrameSize:      1 << 20,
		WindowWidth:       800,
		WindowHeight:      800,
		Platforms:         6,
		Items:             1,
		ItemEffect:        "none",
		FlyPowerTicks:     50,
		ReconnectAttempts: 3,
		ReconnectDelayMs:  1000,
	}
}

// LoadConfig fills the global Config. Later sources win: defaults, then the
// file at path (config.json when empty, TOML when it ends in .toml), then
// SKYBALL_* variables from the environment or a .env file.
func LoadConfig(path string) {
	Config = Load(path)
}

func Load(path string) Configuration {
	c := Default()

	if path == "" {
		path = "config.json"
	}
	if err := c.readFile(path); err != nil {
		slog.Info("failed to read configuration, using defaults instead", slog.String("path", path), slog.Any("error", err))
	}

	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", slog.Any("error", err))
	}
	c.applyEnv()

	if err := c.Validate(); err != nil {
		slog.Warn("invalid configuration, using defaults for bad keys", slog.Any("error", err))
		c.fixInvalid()
	}
	return c
}

func (c *Configuration) readFile(path string) error {
	if strings.HasSuffix(path, ".toml") {
		_, err := toml.DecodeFile(path, c)
		return err
	}

	cf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(cf, c)
}

func (c *Configuration) applyEnv() {
	strs := map[string]*string{
		"SKYBALL_ADDR":        &c.Addr,
		"SKYBALL_TRANSPORT":   &c.Transport,
		"SKYBALL_CODEC":       &c.Codec,
		"SKYBALL_ITEM_EFFECT": &c.ItemEffect,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"SKYBALL_LOG_LEVEL":          &c.LogLevel,
		"SKYBALL_TICK_RATE":          &c.TickRate,
		"SKYBALL_RENDER_FPS":         &c.RenderFps,
		"SKYBALL_SEND_QUEUE":         &c.SendQueue,
		"SKYBALL_RECV_QUEUE":         &c.RecvQueue,
		"SKYBALL_MAX_FRAME_SIZE":     &c.MaxFrameSize,
		"SKYBALL_WINDOW_WIDTH":       &c.WindowWidth,
		"SKYBALL_WINDOW_HEIGHT":      &c.WindowHeight,
		"SKYBALL_PLATFORMS":          &c.Platforms,
		"SKYBALL_ITEMS":              &c.Items,
		"SKYBALL_FLY_POWER_TICKS":    &c.FlyPowerTicks,
		"SKYBALL_RECONNECT_ATTEMPTS": &c.ReconnectAttempts,
		"SKYBALL_RECONNECT_DELAY_MS": &c.ReconnectDelayMs,
	}
	for key, dst := range ints {
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			slog.Warn("ignoring non-integer environment value", slog.String("key", key), slog.String("value", v))
			continue
		}
		*dst = n
	}

	if v, ok := os.LookupEnv("SKYBALL_SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			slog.Warn("ignoring bad seed", slog.String("value", v))
		} else {
			c.Seed = n
		}
	}
}

func (c Configuration) Validate() error {
	var bad []string
	switch c.Transport {
	case "tcp", "ws":
	default:
		bad = append(bad, fmt.Sprintf("transport %q", c.Transport))
	}
	switch c.Codec {
	case "proto", "msgpack":
	default:
		bad = append(bad, fmt.Sprintf("codec %q", c.Codec))
	}
	switch c.ItemEffect {
	case "none", "fly":
	default:
		bad = append(bad, fmt.Sprintf("itemEffect %q", c.ItemEffect))
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		bad = append(bad, fmt.Sprintf("window %dx%d", c.WindowWidth, c.WindowHeight))
	}
	if c.TickRate <= 0 {
		bad = append(bad, fmt.Sprintf("tickRate %d", c.TickRate))
	}
	if c.RenderFps <= 0 {
		bad = append(bad, fmt.Sprintf("renderFps %d", c.RenderFps))
	}
	if c.Platforms < 0 || c.Items < 0 {
		bad = append(bad, fmt.Sprintf("platforms %d items %d", c.Platforms, c.Items))
	}
	if len(bad) > 0 {
		return fmt.Errorf("bad config values: %s", strings.Join(bad, ", "))
	}
	return nil
}

func (c *Configuration) fixInvalid() {
	d := Default()
	switch c.Transport {
	case "tcp", "ws":
	default:
		c.Transport = d.Transport
	}
	switch c.Codec {
	case "proto", "msgpack":
	default:
		c.Codec = d.Codec
	}
	switch c.ItemEffect {
	case "none", "fly":
	default:
		c.ItemEffect = d.ItemEffect
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		c.WindowWidth, c.WindowHeight = d.WindowWidth, d.WindowHeight
	}
	if c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	if c.RenderFps <= 0 {
		c.RenderFps = d.RenderFps
	}
	if c.Platforms < 0 {
		c.Platforms = d.Platforms
	}
	if c.Items < 0 {
		c.Items = d.Items
	}
}

// Effect maps itemEffect onto the engine hook.
func (c Configuration) Effect() game.ItemEffect {
	if c.ItemEffect == "fly" {
		return game.FlyPowerEffect(c.FlyPowerTicks)
	}
	return game.NoEffect
}
