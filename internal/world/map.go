package world

const (
	// Default map dimensions
	DefaultWidth  = 80
	DefaultHeight = 45
)

// Map is the tile grid for one game session.
type Map struct {
	Width  int
	Height int
	Tiles  [][]Tile // Indexed [y][x]
}

// NewMap creates a map filled with walls.
func NewMap(width, height int) *Map {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = TileWall
		}
	}

	return &Map{
		Width:  width,
		Height: height,
		Tiles:  tiles,
	}
}

// InBounds reports whether (x, y) lies inside the grid.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile at the given position. Cells outside the grid read as wall.
func (m *Map) At(x, y int) Tile {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.Tiles[y][x]
}

// Set replaces the tile at the given position. Out of bounds writes are ignored.
func (m *Map) Set(x, y int, t Tile) {
	if !m.InBounds(x, y) {
		return
	}
	m.Tiles[y][x] = t
}

// IsBlocked returns true if nothing may move onto (x, y).
func (m *Map) IsBlocked(x, y int) bool {
	return m.At(x, y).Blocked
}

// BlocksSight returns true if the cell at (x, y) is opaque.
func (m *Map) BlocksSight(x, y int) bool {
	return m.At(x, y).BlocksSight
}

// FloorCount returns the number of passable cells.
func (m *Map) FloorCount() int {
	count := 0
	for y := range m.Tiles {
		for _, t := range m.Tiles[y] {
			if t.IsPassable() {
				count++
			}
		}
	}
	return count
}
