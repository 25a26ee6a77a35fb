package world

import "testing"

func TestAxial(t *testing.T) {
	tests := []struct {
		h, v int
		want Direction
	}{
		{0, 0, None},
		{1, 0, Right},
		{-1, 0, Left},
		{0, 1, Up},
		{0, -1, Down},
		{1, 1, Right},
		{-1, -1, Left},
		{5, 0, Right},
	}

	for _, tt := range tests {
		if got := Axial(tt.h, tt.v); got != tt.want {
			t.Errorf("Axial(%d, %d) = %v, want %v", tt.h, tt.v, got, tt.want)
		}
	}
}

func TestDominant(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   Direction
	}{
		{0, 0, None},
		{3, 1, Right},
		{-3, 1, Left},
		{1, 3, Up},
		{1, -3, Down},
		{2, 2, Up},
	}

	for _, tt := range tests {
		if got := Dominant(tt.dx, tt.dy); got != tt.want {
			t.Errorf("Dominant(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestCellAdd(t *testing.T) {
	c := Cell{X: 2, Y: 3}
	if got := c.Add(Up); got != (Cell{X: 2, Y: 4}) {
		t.Errorf("Add(Up) = %v, want (2,4)", got)
	}
	if got := c.Add(Left); got != (Cell{X: 1, Y: 3}) {
		t.Errorf("Add(Left) = %v, want (1,3)", got)
	}
}

func TestVecMoveTowards(t *testing.T) {
	v := Vec{X: 0, Y: 0}
	got := v.MoveTowards(Vec{X: 1, Y: 0}, 0.25)
	if got != (Vec{X: 0.25, Y: 0}) {
		t.Errorf("MoveTowards() = %+v, want {0.25 0}", got)
	}
	got = v.MoveTowards(Vec{X: 1, Y: 0}, 2)
	if got != (Vec{X: 1, Y: 0}) {
		t.Errorf("MoveTowards() overshoot = %+v, want {1 0}", got)
	}
}

func TestBoardPerimeter(t *testing.T) {
	b := &Board{Columns: 3, Rows: 3}
	tests := []struct {
		c    Cell
		want bool
	}{
		{Cell{-1, -1}, true},
		{Cell{3, 1}, true},
		{Cell{1, 3}, true},
		{Cell{0, 0}, false},
		{Cell{2, 2}, false},
		{Cell{5, 1}, false},
	}
	for _, tt := range tests {
		if got := b.IsPerimeter(tt.c); got != tt.want {
			t.Errorf("IsPerimeter(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}
