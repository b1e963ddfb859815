// Package world provides the tile map and its room/tunnel generator.
package world

// Tile represents a single map cell.
type Tile struct {
	Blocked     bool // Entities cannot move onto the tile
	BlocksSight bool // Rendered as wall
}

var (
	// TileEmpty is a passable floor tile.
	TileEmpty = Tile{Blocked: false, BlocksSight: false}
	// TileWall is an impassable, opaque wall tile.
	TileWall = Tile{Blocked: true, BlocksSight: true}
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return !t.Blocked
}
