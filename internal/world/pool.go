package world

import "github.com/samdwyer/scavenger/internal/rng"

// positionPool is the set of interior cells not yet claimed in the current level.
type positionPool struct {
	cells []Cell
}

// reset clears the pool and refills it with every strictly interior cell.
func (p *positionPool) reset(columns, rows int) {
	p.cells = p.cells[:0]
	for x := 1; x < columns-1; x++ {
		for y := 1; y < rows-1; y++ {
			p.cells = append(p.cells, Cell{X: x, Y: y})
		}
	}
}

// draw removes and returns a uniformly chosen unclaimed cell.
func (p *positionPool) draw(src rng.Source) (Cell, error) {
	if len(p.cells) == 0 {
		return Cell{}, ErrPoolExhausted
	}
	i := src.RangeInt(0, len(p.cells))
	cell := p.cells[i]
	p.cells = append(p.cells[:i], p.cells[i+1:]...)
	return cell, nil
}

func (p *positionPool) len() int {
	return len(p.cells)
}
