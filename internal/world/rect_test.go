package world

import "testing"

func TestNewRect(t *testing.T) {
	r := NewRect(20, 15, 10, 15)
	want := Rect{X1: 20, Y1: 15, X2: 30, Y2: 30}
	if r != want {
		t.Errorf("NewRect() = %+v, want %+v", r, want)
	}

	x, y := r.Center()
	if x != 25 || y != 22 {
		t.Errorf("Center() = (%d,%d), want (25,22)", x, y)
	}
}

func TestRectContainsInterior(t *testing.T) {
	r := NewRect(20, 15, 10, 15)

	tests := []struct {
		x, y int
		want bool
	}{
		{21, 16, true},
		{29, 29, true},
		{20, 16, false},
		{21, 15, false},
		{30, 20, false},
		{25, 30, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(20, 15, 10, 15)
	b := NewRect(50, 15, 10, 15)
	c := NewRect(25, 20, 10, 10)

	if a.Intersects(b) {
		t.Error("rooms A and B should not intersect")
	}
	if !a.Intersects(c) || !c.Intersects(a) {
		t.Error("overlapping rooms should intersect both ways")
	}
}
