package game

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pixil98/go-errors"

	"github.com/samdwyer/roguelike/internal/world"
)

const envPrefix = "ROGUELIKE_"

// Config holds game configuration options.
type Config struct {
	ScreenWidth  int    // Root console width in cells
	ScreenHeight int    // Root console height in cells
	MapWidth     int    // Map grid width
	MapHeight    int    // Map grid height
	FPS          int    // Target frame rate
	Title        string // Shown in the status line
	LayoutPath   string // Optional layout JSON; empty uses the embedded layout
	LogFile      string // Empty disables logging
	LogLevel     string // debug, info, warn or error
	Telemetry    bool   // Export traces over OTLP
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  160,
		ScreenHeight: 90,
		MapWidth:     world.DefaultWidth,
		MapHeight:    world.DefaultHeight,
		FPS:          20,
		Title:        "Roguelike",
		LogFile:      "roguelike.log",
		LogLevel:     "info",
	}
}

// LoadConfig reads ROGUELIKE_* environment variables over the defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	el := errors.NewErrorList()

	el.Add(envInt("SCREEN_WIDTH", &cfg.ScreenWidth))
	el.Add(envInt("SCREEN_HEIGHT", &cfg.ScreenHeight))
	el.Add(envInt("MAP_WIDTH", &cfg.MapWidth))
	el.Add(envInt("MAP_HEIGHT", &cfg.MapHeight))
	el.Add(envInt("FPS", &cfg.FPS))
	el.Add(envBool("TELEMETRY", &cfg.Telemetry))
	envString("TITLE", &cfg.Title)
	envString("LAYOUT", &cfg.LayoutPath)
	envString("LOG_LEVEL", &cfg.LogLevel)
	if v, ok := os.LookupEnv(envPrefix + "LOG_FILE"); ok {
		cfg.LogFile = v
	}

	if err := el.Err(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		el.Add(fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight))
	}
	if c.MapWidth <= 0 || c.MapHeight <= 0 {
		el.Add(fmt.Errorf("map size must be positive, got %dx%d", c.MapWidth, c.MapHeight))
	}
	if c.MapWidth > c.ScreenWidth || c.MapHeight > c.ScreenHeight {
		el.Add(fmt.Errorf("map %dx%d does not fit the %dx%d screen", c.MapWidth, c.MapHeight, c.ScreenWidth, c.ScreenHeight))
	}
	if c.FPS < 1 || c.FPS > 240 {
		el.Add(fmt.Errorf("fps must be between 1 and 240, got %d", c.FPS))
	}
	if _, err := c.SlogLevel(); err != nil {
		el.Add(err)
	}

	return el.Err()
}

// SlogLevel parses LogLevel.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

func envString(name string, dst *string) {
	if v := os.Getenv(envPrefix + name); v != "" {
		*dst = v
	}
}

func envInt(name string, dst *int) error {
	v := os.Getenv(envPrefix + name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s%s: %w", envPrefix, name, err)
	}
	*dst = n
	return nil
}

func envBool(name string, dst *bool) error {
	v := os.Getenv(envPrefix + name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s%s: %w", envPrefix, name, err)
	}
	*dst = b
	return nil
}
