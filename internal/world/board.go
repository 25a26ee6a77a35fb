// Package world provides the board model and procedural level generation.
package world

import (
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Kind identifies what a placement puts on the board.
type Kind int

const (
	KindWall Kind = iota
	KindFood
	KindEnemy
	KindExit
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindFood:
		return "food"
	case KindEnemy:
		return "enemy"
	case KindExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Glyph returns the plain-text symbol used when printing a board.
func (k Kind) Glyph() rune {
	switch k {
	case KindWall:
		return 'W'
	case KindFood:
		return 'f'
	case KindEnemy:
		return 'E'
	case KindExit:
		return 'x'
	default:
		return '?'
	}
}

// Tile is the base category of a floor or outer ring cell.
type Tile rune

const (
	TileOuter Tile = '#'
	TileFloor Tile = '.'
)

// Rune returns the plain-text symbol of the tile.
func (t Tile) Rune() rune { return rune(t) }

// TileSpot is one base tile of the board.
type TileSpot struct {
	Cell   Cell
	Tile   Tile
	Prefab string
}

// Placement is an object placed on top of the floor.
type Placement struct {
	Kind   Kind
	Cell   Cell
	Prefab string
}

// Board describes a generated level. It is immutable once built.
type Board struct {
	Columns    int
	Rows       int
	Level      int
	Tiles      []TileSpot
	Placements []Placement
	Exit       Cell
}

// InBounds reports whether c lies on the playable area [0, columns) x [0, rows).
func (b *Board) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < b.Columns && c.Y >= 0 && c.Y < b.Rows
}

// IsPerimeter reports whether c lies on the outer ring.
func (b *Board) IsPerimeter(c Cell) bool {
	onX := c.X == -1 || c.X == b.Columns
	onY := c.Y == -1 || c.Y == b.Rows
	inX := c.X >= -1 && c.X <= b.Columns
	inY := c.Y >= -1 && c.Y <= b.Rows
	return (onX && inY) || (onY && inX)
}

// IsInterior reports whether c may be claimed by a random placement.
func (b *Board) IsInterior(c Cell) bool {
	return c.X >= 1 && c.X <= b.Columns-2 && c.Y >= 1 && c.Y <= b.Rows-2
}

// Count returns how many placements of the given kind the board holds.
func (b *Board) Count(kind Kind) int {
	n := 0
	for _, p := range b.Placements {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

// PlacementsOf returns the placements of the given kind in placement order.
func (b *Board) PlacementsOf(kind Kind) []Placement {
	var out []Placement
	for _, p := range b.Placements {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

// Occupied returns the interior cells claimed by walls, food and enemies.
func (b *Board) Occupied() mapset.Set[Cell] {
	set := mapset.New[Cell]()
	for _, p := range b.Placements {
		if p.Kind != KindExit {
			set.Put(p.Cell)
		}
	}
	return set
}

// String prints the board top row first, perimeter included.
func (b *Board) String() string {
	glyphs := make(map[Cell]rune, len(b.Tiles)+len(b.Placements))
	for _, t := range b.Tiles {
		glyphs[t.Cell] = t.Tile.Rune()
	}
	for _, p := range b.Placements {
		glyphs[p.Cell] = p.Kind.Glyph()
	}

	var sb strings.Builder
	for y := b.Rows; y >= -1; y-- {
		for x := -1; x <= b.Columns; x++ {
			r, ok := glyphs[Cell{X: x, Y: y}]
			if !ok {
				r = ' '
			}
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
