package gamedata

import (
	"fmt"
	"unicode/utf8"

	"github.com/pixil98/go-errors"

	"github.com/samdwyer/roguelike/internal/entity"
	"github.com/samdwyer/roguelike/internal/ui"
	"github.com/samdwyer/roguelike/internal/world"
)

const layoutFile = "layout.json"

// RoomDef is a room given by origin and size.
type RoomDef struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// TunnelDef is a straight corridor. See world.Tunnel.
type TunnelDef struct {
	Orientation string `json:"orientation"` // "horizontal" or "vertical"
	From        int    `json:"from"`
	To          int    `json:"to"`
	At          int    `json:"at"` // Row for horizontal tunnels, column for vertical ones
}

// ObjectDef places an entity on the map. The first object is the player.
type ObjectDef struct {
	Name  string `json:"name"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Glyph string `json:"glyph"` // Exactly one character
	Color string `json:"color"` // Hex code or tcell color name
}

// ColorsDef holds the map background colors.
type ColorsDef struct {
	DarkWall   string `json:"darkWall"`
	DarkGround string `json:"darkGround"`
}

// LayoutDef is the structure of layout.json.
type LayoutDef struct {
	Colors  ColorsDef   `json:"colors"`
	Tunnels []TunnelDef `json:"tunnels"`
	Rooms   []RoomDef   `json:"rooms"`
	Objects []ObjectDef `json:"objects"`
}

// LoadLayout loads the embedded layout.json.
func LoadLayout() (*LayoutDef, error) {
	def, err := Load[LayoutDef](layoutFile)
	if err != nil {
		return nil, err
	}
	return &def, nil
}

// LoadLayoutFile loads a layout from disk, falling back to the embedded
// layout when path is empty.
func LoadLayoutFile(path string) (*LayoutDef, error) {
	if path == "" {
		return LoadLayout()
	}
	def, err := LoadFile[LayoutDef](path)
	if err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks that every feature fits a width x height map.
func (l *LayoutDef) Validate(width, height int) error {
	el := errors.NewErrorList()

	if _, err := ParseColor(l.Colors.DarkWall); err != nil {
		el.Add(fmt.Errorf("colors.darkWall: %w", err))
	}
	if _, err := ParseColor(l.Colors.DarkGround); err != nil {
		el.Add(fmt.Errorf("colors.darkGround: %w", err))
	}

	for i, r := range l.Rooms {
		if r.W <= 0 || r.H <= 0 {
			el.Add(fmt.Errorf("room %d: size must be positive, got %dx%d", i, r.W, r.H))
			continue
		}
		if r.X < 0 || r.Y < 0 || r.X+r.W > width || r.Y+r.H > height {
			el.Add(fmt.Errorf("room %d: (%d,%d %dx%d) does not fit a %dx%d map", i, r.X, r.Y, r.W, r.H, width, height))
		}
	}

	for i, t := range l.Tunnels {
		switch world.Orientation(t.Orientation) {
		case world.Horizontal:
			if !inRange(t.At, height) || !inRange(t.From, width) || !inRange(t.To, width) {
				el.Add(fmt.Errorf("tunnel %d: row %d from %d to %d is outside the map", i, t.At, t.From, t.To))
			}
		case world.Vertical:
			if !inRange(t.At, width) || !inRange(t.From, height) || !inRange(t.To, height) {
				el.Add(fmt.Errorf("tunnel %d: column %d from %d to %d is outside the map", i, t.At, t.From, t.To))
			}
		default:
			el.Add(fmt.Errorf("tunnel %d: unknown orientation %q", i, t.Orientation))
		}
	}

	if len(l.Objects) == 0 {
		el.Add(fmt.Errorf("at least one object (the player) is required"))
	}
	for i, o := range l.Objects {
		if !inRange(o.X, width) || !inRange(o.Y, height) {
			el.Add(fmt.Errorf("object %d (%s): position (%d,%d) is outside the map", i, o.Name, o.X, o.Y))
		}
		if utf8.RuneCountInString(o.Glyph) != 1 {
			el.Add(fmt.Errorf("object %d (%s): glyph must be one character, got %q", i, o.Name, o.Glyph))
		}
		if _, err := ParseColor(o.Color); err != nil {
			el.Add(fmt.Errorf("object %d (%s): %w", i, o.Name, err))
		}
	}

	return el.Err()
}

// Layout converts the definition into the generator's input.
func (l *LayoutDef) Layout() world.Layout {
	layout := world.Layout{
		Tunnels: make([]world.Tunnel, 0, len(l.Tunnels)),
		Rooms:   make([]world.Rect, 0, len(l.Rooms)),
	}
	for _, t := range l.Tunnels {
		layout.Tunnels = append(layout.Tunnels, world.Tunnel{
			Orientation: world.Orientation(t.Orientation),
			From:        t.From,
			To:          t.To,
			At:          t.At,
		})
	}
	for _, r := range l.Rooms {
		layout.Rooms = append(layout.Rooms, world.NewRect(r.X, r.Y, r.W, r.H))
	}
	return layout
}

// NewObjects creates the entities in layout order. Call Validate first.
func (l *LayoutDef) NewObjects() ([]*entity.Object, error) {
	objects := make([]*entity.Object, 0, len(l.Objects))
	for _, o := range l.Objects {
		color, err := ParseColor(o.Color)
		if err != nil {
			return nil, fmt.Errorf("object %s: %w", o.Name, err)
		}
		objects = append(objects, entity.NewObject(o.Name, o.X, o.Y, o.GlyphRune(), color))
	}
	return objects, nil
}

// Palette returns the map background colors.
func (l *LayoutDef) Palette() (ui.Palette, error) {
	wall, err := ParseColor(l.Colors.DarkWall)
	if err != nil {
		return ui.Palette{}, fmt.Errorf("colors.darkWall: %w", err)
	}
	ground, err := ParseColor(l.Colors.DarkGround)
	if err != nil {
		return ui.Palette{}, fmt.Errorf("colors.darkGround: %w", err)
	}
	return ui.Palette{DarkWall: wall, DarkGround: ground}, nil
}

// GlyphRune returns the object's glyph, or '?' when none is set.
func (o ObjectDef) GlyphRune() rune {
	if o.Glyph == "" {
		return '?'
	}
	r, _ := utf8.DecodeRuneInString(o.Glyph)
	return r
}

func inRange(v, limit int) bool {
	return v >= 0 && v < limit
}
