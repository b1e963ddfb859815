package game

import (
	"context"
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roguelike/internal/gamedata"
	"github.com/samdwyer/roguelike/internal/ui"
)

// fakeDisplay replays scripted keys and records what it was asked to do.
type fakeDisplay struct {
	keys       []ui.Key
	closed     bool
	fullscreen bool
	fps        int
	blits      int
	flushes    int
	last       ui.Cell
}

func (d *fakeDisplay) Blit(con *ui.Console) {
	d.blits++
	d.last, _ = con.Cell(25, 23)
}

func (d *fakeDisplay) Flush(ctx context.Context) error {
	d.flushes++
	return ctx.Err()
}

func (d *fakeDisplay) WaitForKeypress() ui.Key {
	if len(d.keys) == 0 {
		d.closed = true
		return ui.Key{}
	}
	k := d.keys[0]
	d.keys = d.keys[1:]
	return k
}

func (d *fakeDisplay) WindowClosed() bool { return d.closed }
func (d *fakeDisplay) IsFullscreen() bool { return d.fullscreen }
func (d *fakeDisplay) SetFullscreen(full bool) { d.fullscreen = full }
func (d *fakeDisplay) SetFPS(fps int) { d.fps = fps }
func (d *fakeDisplay) Close() {}

func newTestGame(t *testing.T, keys ...ui.Key) (*Game, *fakeDisplay) {
	t.Helper()
	layout, err := gamedata.LoadLayout()
	if err != nil {
		t.Fatalf("LoadLayout() error: %v", err)
	}
	display := &fakeDisplay{keys: keys}
	g, err := New(context.Background(), DefaultConfig(), display, layout)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return g, display
}

func TestNew(t *testing.T) {
	g, display := newTestGame(t)

	if g.State() != StateRunning {
		t.Errorf("State() = %v, want running", g.State())
	}
	if len(g.Objects()) != 2 {
		t.Fatalf("Objects() length = %d, want 2", len(g.Objects()))
	}
	if x, y := g.Player().Position(); x != 25 || y != 23 {
		t.Errorf("player at (%d,%d), want (25,23)", x, y)
	}
	if g.Map().Width != 80 || g.Map().Height != 45 {
		t.Errorf("map size = %dx%d, want 80x45", g.Map().Width, g.Map().Height)
	}
	if display.fps != 20 {
		t.Errorf("SetFPS() got %d, want 20", display.fps)
	}
	if g.SessionID() == "" {
		t.Error("SessionID() should not be empty")
	}
}

func TestNewRejectsInvalidLayout(t *testing.T) {
	layout, err := gamedata.LoadLayout()
	if err != nil {
		t.Fatalf("LoadLayout() error: %v", err)
	}
	layout.Objects = nil

	if _, err := New(context.Background(), DefaultConfig(), &fakeDisplay{}, layout); err == nil {
		t.Error("New() with no objects should fail")
	}
}

func TestHandleKeysMovement(t *testing.T) {
	tests := []struct {
		name         string
		key          ui.Key
		wantX, wantY int
	}{
		{"right into tunnel", ui.Key{Code: ui.KeyRight}, 26, 23},
		{"left into room", ui.Key{Code: ui.KeyLeft}, 24, 23},
		{"up moves toward row 0", ui.Key{Code: ui.KeyUp}, 25, 22},
		{"down moves away from row 0", ui.Key{Code: ui.KeyDown}, 25, 24},
		{"unbound key", ui.Key{Code: ui.KeyRune, Rune: 'x'}, 25, 23},
	}

	for _, tt := range tests {
		g, _ := newTestGame(t)
		if g.handleKeys(context.Background(), tt.key) {
			t.Errorf("%s: handleKeys() = true, want false", tt.name)
		}
		if x, y := g.Player().Position(); x != tt.wantX || y != tt.wantY {
			t.Errorf("%s: player at (%d,%d), want (%d,%d)", tt.name, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestHandleKeysBlocked(t *testing.T) {
	g, _ := newTestGame(t)
	player := g.Player()
	player.X, player.Y = 40, 23 // Tunnel between the rooms

	g.handleKeys(context.Background(), ui.Key{Code: ui.KeyUp})
	g.handleKeys(context.Background(), ui.Key{Code: ui.KeyDown})

	if player.X != 40 || player.Y != 23 {
		t.Errorf("player at (%d,%d), want (40,23)", player.X, player.Y)
	}
}

func TestHandleKeysOnlyMovesPlayer(t *testing.T) {
	g, _ := newTestGame(t)
	npc := *g.Objects()[1]

	g.handleKeys(context.Background(), ui.Key{Code: ui.KeyRight})

	if *g.Objects()[1] != npc {
		t.Errorf("npc changed to %+v, want %+v", *g.Objects()[1], npc)
	}
}

func TestHandleKeysEscapeAlwaysExits(t *testing.T) {
	keys := []ui.Key{
		{Code: ui.KeyEscape},
		{Code: ui.KeyEscape, Ctrl: true},
		{Code: ui.KeyEscape, Alt: true},
	}

	for _, k := range keys {
		g, display := newTestGame(t)
		display.fullscreen = true
		if !g.handleKeys(context.Background(), k) {
			t.Errorf("handleKeys(%+v) = false, want true", k)
		}
		if g.State() != StateExiting {
			t.Errorf("State() = %v, want exiting", g.State())
		}
	}
}

func TestHandleKeysToggleFullscreen(t *testing.T) {
	g, display := newTestGame(t)
	x, y := g.Player().Position()

	if g.handleKeys(context.Background(), ui.Key{Code: ui.KeyEnter, Ctrl: true}) {
		t.Error("ctrl+enter should not exit")
	}
	if !display.fullscreen {
		t.Error("ctrl+enter should enable fullscreen")
	}

	g.handleKeys(context.Background(), ui.Key{Code: ui.KeyF11})
	if display.fullscreen {
		t.Error("F11 should disable fullscreen again")
	}

	g.handleKeys(context.Background(), ui.Key{Code: ui.KeyEnter})
	if display.fullscreen {
		t.Error("plain enter should not toggle fullscreen")
	}

	if px, py := g.Player().Position(); px != x || py != y {
		t.Error("fullscreen toggle should not move the player")
	}
}

func TestRunStopsOnEscape(t *testing.T) {
	g, display := newTestGame(t,
		ui.Key{Code: ui.KeyRight},
		ui.Key{Code: ui.KeyEscape},
		ui.Key{Code: ui.KeyRight},
	)

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if g.State() != StateExiting {
		t.Errorf("State() = %v, want exiting", g.State())
	}
	if display.blits != 2 || display.flushes != 2 {
		t.Errorf("frames = %d blits / %d flushes, want 2/2", display.blits, display.flushes)
	}
	if len(display.keys) != 1 {
		t.Errorf("remaining keys = %d, want 1", len(display.keys))
	}
	if x, _ := g.Player().Position(); x != 26 {
		t.Errorf("player x = %d, want 26", x)
	}
}

func TestRunStopsOnWindowClose(t *testing.T) {
	g, display := newTestGame(t, ui.Key{Code: ui.KeyLeft})

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if !display.closed {
		t.Error("display should report closed")
	}
	if g.State() != StateRunning {
		t.Errorf("State() = %v, want running after window close", g.State())
	}
	// The zero key returned on close is a no-op.
	if x, _ := g.Player().Position(); x != 24 {
		t.Errorf("player x = %d, want 24", x)
	}
}

func TestRunRendersPlayer(t *testing.T) {
	g, display := newTestGame(t, ui.Key{Code: ui.KeyEscape})

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if display.last.Rune != '@' || display.last.Foreground != tcell.ColorWhite {
		t.Errorf("player cell = %+v, want white '@'", display.last)
	}
}

func TestRunCancelled(t *testing.T) {
	g, _ := newTestGame(t, ui.Key{Code: ui.KeyRight})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := g.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateRunning, "running"},
		{StateExiting, "exiting"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}
