package ui

import "github.com/gdamore/tcell/v2"

// Cell is one character cell of a Console.
type Cell struct {
	Rune       rune
	Foreground tcell.Color
	Background tcell.Color
}

// Console is an off-screen grid of cells that is composited onto a Display.
// Writes outside the grid are ignored.
type Console struct {
	width, height int
	cells         []Cell
	fg            tcell.Color
}

// NewConsole creates a blank console of the given size.
func NewConsole(width, height int) *Console {
	c := &Console{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		fg:     tcell.ColorWhite,
	}
	c.Clear()
	return c
}

// Size returns the console dimensions.
func (c *Console) Size() (width, height int) {
	return c.width, c.height
}

// Clear blanks every cell.
func (c *Console) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' ', Foreground: c.fg, Background: tcell.ColorBlack}
	}
}

// SetDefaultForeground sets the color used by subsequent PutChar calls.
func (c *Console) SetDefaultForeground(color tcell.Color) {
	c.fg = color
}

// PutChar draws a character in the default foreground color, keeping the
// cell's background.
func (c *Console) PutChar(x, y int, r rune) {
	cell := c.cell(x, y)
	if cell == nil {
		return
	}
	cell.Rune = r
	cell.Foreground = c.fg
}

// SetCharBackground sets a cell's background, keeping its character.
func (c *Console) SetCharBackground(x, y int, color tcell.Color) {
	cell := c.cell(x, y)
	if cell == nil {
		return
	}
	cell.Background = color
}

// Cell returns the cell at (x, y) and whether it exists.
func (c *Console) Cell(x, y int) (Cell, bool) {
	cell := c.cell(x, y)
	if cell == nil {
		return Cell{}, false
	}
	return *cell, true
}

func (c *Console) cell(x, y int) *Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return nil
	}
	return &c.cells[y*c.width+x]
}
