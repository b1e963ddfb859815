package world

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roguelike/internal/telemetry"
)

// Orientation is the direction a tunnel runs in.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// Tunnel is a one-cell wide corridor. A horizontal tunnel runs along row At
// between columns From and To, a vertical one along column At between rows.
type Tunnel struct {
	Orientation Orientation
	From, To    int
	At          int
}

// Layout is an ordered list of features carved into an all-wall map.
type Layout struct {
	Tunnels []Tunnel
	Rooms   []Rect
}

// DefaultLayout returns two rooms joined by a horizontal tunnel.
func DefaultLayout() Layout {
	return Layout{
		Tunnels: []Tunnel{
			{Orientation: Horizontal, From: 25, To: 55, At: 23},
		},
		Rooms: []Rect{
			NewRect(20, 15, 10, 15),
			NewRect(50, 15, 10, 15),
		},
	}
}

// Generate builds a map of the given size and carves the layout into it.
// Tunnels are carved before rooms; both are plain overwrites so order does
// not change the result.
func Generate(ctx context.Context, width, height int, layout Layout) *Map {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "map.generate")
	defer span.End()

	startTime := time.Now()

	m := NewMap(width, height)
	for _, t := range layout.Tunnels {
		CreateTunnel(m, t)
	}
	for _, r := range layout.Rooms {
		CreateRoom(m, r)
	}

	span.SetAttributes(
		attribute.Int("map.width", width),
		attribute.Int("map.height", height),
		attribute.Int("map.room_count", len(layout.Rooms)),
		attribute.Int("map.tunnel_count", len(layout.Tunnels)),
		attribute.Int("map.floor_count", m.FloorCount()),
		attribute.Int64("map.generation_us", time.Since(startTime).Microseconds()),
	)

	return m
}

// CreateRoom empties the strict interior of the room, leaving a one-cell wall border.
func CreateRoom(m *Map, room Rect) {
	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			m.Set(x, y, TileEmpty)
		}
	}
}

// CreateTunnel carves a tunnel of either orientation.
func CreateTunnel(m *Map, t Tunnel) {
	switch t.Orientation {
	case Vertical:
		CreateVTunnel(m, t.From, t.To, t.At)
	default:
		CreateHTunnel(m, t.From, t.To, t.At)
	}
}

// CreateHTunnel carves row y from x1 to x2 inclusive, in either order.
func CreateHTunnel(m *Map, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		m.Set(x, y, TileEmpty)
	}
}

// CreateVTunnel carves column x from y1 to y2 inclusive, in either order.
func CreateVTunnel(m *Map, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		m.Set(x, y, TileEmpty)
	}
}
