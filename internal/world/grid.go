package world

import (
	"fmt"
	"math"
)

// Cell is a discrete grid coordinate. Y grows upwards.
type Cell struct {
	X, Y int
}

// Add returns the cell one step away in the given direction.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Vec returns the cell's position in continuous space.
func (c Cell) Vec() Vec {
	return Vec{X: float64(c.X), Y: float64(c.Y)}
}

// String returns "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is an axis-aligned unit step, or the zero direction.
type Direction struct {
	DX, DY int
}

var (
	None  = Direction{}
	Up    = Direction{DX: 0, DY: 1}
	Down  = Direction{DX: 0, DY: -1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// IsZero reports whether the direction carries no movement.
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Axial resolves a raw (horizontal, vertical) signal into a single axis step.
// Each component is reduced to its sign; horizontal wins when both are set.
func Axial(horizontal, vertical int) Direction {
	h, v := sign(horizontal), sign(vertical)
	if h != 0 {
		return Direction{DX: h}
	}
	return Direction{DY: v}
}

// Dominant resolves an offset into a step along its larger axis.
// Ties go to the vertical axis. A zero offset yields None.
func Dominant(dx, dy float64) Direction {
	if dx == 0 && dy == 0 {
		return None
	}
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return Right
		}
		return Left
	}
	if dy > 0 {
		return Up
	}
	return Down
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case None:
		return "none"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Vec is a continuous position used for smooth movement.
type Vec struct {
	X, Y float64
}

// Dist returns the euclidean distance between two positions.
func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// MoveTowards steps v towards target by at most maxDelta.
func (v Vec) MoveTowards(target Vec, maxDelta float64) Vec {
	d := v.Dist(target)
	if d <= maxDelta || d == 0 {
		return target
	}
	return Vec{
		X: v.X + (target.X-v.X)/d*maxDelta,
		Y: v.Y + (target.Y-v.Y)/d*maxDelta,
	}
}
