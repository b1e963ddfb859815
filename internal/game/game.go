package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roguelike/internal/entity"
	"github.com/samdwyer/roguelike/internal/gamedata"
	"github.com/samdwyer/roguelike/internal/telemetry"
	"github.com/samdwyer/roguelike/internal/ui"
	"github.com/samdwyer/roguelike/internal/world"
)

// Game holds the entire game state. The map is built once in New and never replaced.
type Game struct {
	display   ui.Display
	console   *ui.Console
	renderer  *ui.Renderer
	gameMap   *world.Map
	objects   []*entity.Object // objects[0] is the player
	state     State
	sessionID string
	logger    *slog.Logger
}

// New validates the layout, generates the map and places the objects.
func New(ctx context.Context, cfg Config, display ui.Display, layout *gamedata.LayoutDef) (*Game, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	if err := layout.Validate(cfg.MapWidth, cfg.MapHeight); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	palette, err := layout.Palette()
	if err != nil {
		return nil, err
	}
	objects, err := layout.NewObjects()
	if err != nil {
		return nil, err
	}

	sessionID := uuid.NewString()
	g := &Game{
		display:   display,
		console:   ui.NewConsole(cfg.MapWidth, cfg.MapHeight),
		renderer:  ui.NewRenderer(palette),
		gameMap:   world.Generate(ctx, cfg.MapWidth, cfg.MapHeight, layout.Layout()),
		objects:   objects,
		state:     StateRunning,
		sessionID: sessionID,
		logger:    slog.Default().With("session", sessionID),
	}
	display.SetFPS(cfg.FPS)

	player := g.Player()
	span.SetAttributes(
		attribute.String("session.id", sessionID),
		attribute.Int("objects", len(objects)),
		attribute.Int("player.start_x", player.X),
		attribute.Int("player.start_y", player.Y),
	)
	g.logger.InfoContext(ctx, "game initialized",
		"map_width", cfg.MapWidth, "map_height", cfg.MapHeight,
		"rooms", len(layout.Rooms), "tunnels", len(layout.Tunnels), "objects", len(objects))

	return g, nil
}

// Run executes the main game loop until Escape, window close or ctx cancellation.
func (g *Game) Run(ctx context.Context) error {
	for !g.display.WindowClosed() {
		if err := ctx.Err(); err != nil {
			return err
		}

		g.renderFrame()
		if err := g.display.Flush(ctx); err != nil {
			return fmt.Errorf("presenting frame: %w", err)
		}

		// Blocks until a key arrives or the window closes.
		key := g.display.WaitForKeypress()
		if g.handleKeys(ctx, key) {
			break
		}
	}

	g.logger.InfoContext(ctx, "game loop finished", "state", g.state, "window_closed", g.display.WindowClosed())
	return nil
}

// renderFrame draws the objects and map into the console and composites it.
func (g *Game) renderFrame() {
	g.console.Clear()
	g.renderer.Render(g.console, g.gameMap, g.objects)
	g.display.Blit(g.console)
}

// handleKeys applies one key press and reports whether the game should exit.
func (g *Game) handleKeys(ctx context.Context, key ui.Key) bool {
	cmd := CommandFor(key)

	switch cmd {
	case CmdExit:
		g.state = StateExiting
		return true

	case CmdToggleFullscreen:
		fullscreen := !g.display.IsFullscreen()
		g.display.SetFullscreen(fullscreen)
		g.logger.DebugContext(ctx, "fullscreen toggled", "fullscreen", fullscreen)

	case CmdMoveUp, CmdMoveDown, CmdMoveLeft, CmdMoveRight:
		dx, dy, _ := cmd.Delta()
		player := g.Player()
		moved := player.MoveBy(dx, dy, g.gameMap)
		g.logger.DebugContext(ctx, "player move",
			"command", cmd.String(), "moved", moved, "x", player.X, "y", player.Y)
	}

	return false
}

// Player returns the player object.
func (g *Game) Player() *entity.Object {
	return g.objects[0]
}

// Objects returns every object in draw order.
func (g *Game) Objects() []*entity.Object {
	return g.objects
}

// Map returns the session's map.
func (g *Game) Map() *world.Map {
	return g.gameMap
}

// State returns the current game state.
func (g *Game) State() State {
	return g.state
}

// SessionID identifies this run in logs and traces.
func (g *Game) SessionID() string {
	return g.sessionID
}
