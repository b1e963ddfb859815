package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roguelike/internal/entity"
	"github.com/samdwyer/roguelike/internal/world"
)

// Palette holds the map background colors.
type Palette struct {
	DarkWall   tcell.Color
	DarkGround tcell.Color
}

// DefaultPalette returns the dark blue wall and ground colors.
func DefaultPalette() Palette {
	return Palette{
		DarkWall:   tcell.NewRGBColor(0, 0, 100),
		DarkGround: tcell.NewRGBColor(50, 50, 150),
	}
}

// Renderer draws the map and objects onto a console.
type Renderer struct {
	palette Palette
}

// NewRenderer creates a renderer using the given colors.
func NewRenderer(palette Palette) *Renderer {
	return &Renderer{palette: palette}
}

// Render draws every object in order, then repaints every map cell's background.
// Later objects draw over earlier ones.
func (r *Renderer) Render(con *Console, m *world.Map, objects []*entity.Object) {
	for _, o := range objects {
		con.SetDefaultForeground(o.Color)
		con.PutChar(o.X, o.Y, o.Glyph)
	}

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.BlocksSight(x, y) {
				con.SetCharBackground(x, y, r.palette.DarkWall)
			} else {
				con.SetCharBackground(x, y, r.palette.DarkGround)
			}
		}
	}
}
