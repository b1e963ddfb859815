// Package main is the entry point for the roguelike.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/roguelike/internal/game"
	"github.com/samdwyer/roguelike/internal/gamedata"
	"github.com/samdwyer/roguelike/internal/telemetry"
	"github.com/samdwyer/roguelike/internal/ui"
)

func main() {
	// Not fatal - env vars might be set directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	if err := run(context.Background()); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

func run(ctx context.Context) error {
	cfg, err := game.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer closeLog()

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			// Game still works without traces
			slog.WarnContext(ctx, "telemetry setup failed", "error", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					slog.ErrorContext(ctx, "shutting down telemetry", "error", err)
				}
			}()
		}
	}

	layout, err := gamedata.LoadLayoutFile(cfg.LayoutPath)
	if err != nil {
		return fmt.Errorf("loading layout: %w", err)
	}

	screen, err := ui.NewScreen(ui.ScreenConfig{
		Width:  cfg.ScreenWidth,
		Height: cfg.ScreenHeight,
		Title:  cfg.Title,
	})
	if err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Close()

	g, err := game.New(ctx, cfg, screen, layout)
	if err != nil {
		return fmt.Errorf("initializing game: %w", err)
	}

	return g.Run(ctx)
}

// setupLogging points the default slog logger at the configured file.
func setupLogging(cfg game.Config) (func(), error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		w = f
		closeFn = func() { f.Close() }
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return closeFn, nil
}
