// Package entity provides the movable, drawable things that live on the map.
package entity

import "github.com/gdamore/tcell/v2"

// Blocker reports whether a cell can be entered. Cells outside the grid
// must report as blocked.
type Blocker interface {
	IsBlocked(x, y int) bool
}

// Object is a positioned glyph on the map, such as the player or an npc.
type Object struct {
	Name  string      // Display name, used in logs
	X, Y  int         // Position on the map, row 0 at the top
	Glyph rune        // Display character
	Color tcell.Color // Foreground color
}

// NewObject creates an object at the given position.
func NewObject(name string, x, y int, glyph rune, color tcell.Color) *Object {
	return &Object{
		Name:  name,
		X:     x,
		Y:     y,
		Glyph: glyph,
		Color: color,
	}
}

// MoveBy shifts the object one step if the destination is not blocked.
// A positive dy moves up the screen, toward row 0. It reports whether the
// object moved; a rejected move leaves the position untouched.
func (o *Object) MoveBy(dx, dy int, b Blocker) bool {
	newX := o.X + dx
	newY := o.Y - dy

	if b.IsBlocked(newX, newY) {
		return false
	}

	o.X = newX
	o.Y = newY
	return true
}

// Position returns the current x, y coordinates.
func (o *Object) Position() (int, int) {
	return o.X, o.Y
}
