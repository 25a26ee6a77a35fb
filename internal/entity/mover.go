package entity

import "github.com/samdwyer/scavenger/internal/world"

// Reactions maps an occupant kind to the handler fired when a move is
// blocked by it. Kinds without an entry block silently.
type Reactions map[OccupantKind]func(Occupant)

// MoveOutcome reports what a single move attempt did.
type MoveOutcome struct {
	Moved   bool
	Blocked OccupantKind
	Reacted bool
}

// Mover is the grid movement primitive shared by the player and enemies.
// The logical cell changes at once; the continuous position catches up at
// speed cells per tick, or jumps when speed is zero.
type Mover struct {
	cell   world.Cell
	pos    world.Vec
	speed  float64
	field  *Field
	fx     Effects
	handle Handle
}

func newMover(field *Field, fx Effects, cell world.Cell, speed float64, prefab string) Mover {
	return Mover{
		cell:   cell,
		pos:    cell.Vec(),
		speed:  speed,
		field:  field,
		fx:     fx,
		handle: fx.Instantiate(prefab, cell.Vec()),
	}
}

// Cell returns the logical grid cell.
func (m *Mover) Cell() world.Cell {
	return m.cell
}

// Position returns the continuous position.
func (m *Mover) Position() world.Vec {
	return m.pos
}

// Handle returns the visual handle.
func (m *Mover) Handle() Handle {
	return m.handle
}

// Moving reports whether the continuous position still lags the cell.
func (m *Mover) Moving() bool {
	return m.pos != m.cell.Vec()
}

// Advance moves the continuous position one tick closer to the cell.
func (m *Mover) Advance() {
	if !m.Moving() {
		return
	}
	if m.speed <= 0 {
		m.pos = m.cell.Vec()
	} else {
		m.pos = m.pos.MoveTowards(m.cell.Vec(), m.speed)
	}
	m.fx.Place(m.handle, m.pos)
}

// AttemptMove tries to step one cell in dir. If the destination is free the
// mover relocates and Moved is set. Otherwise it stays put and the reaction
// registered for the blocker's kind, if any, fires.
func (m *Mover) AttemptMove(dir world.Direction, reactions Reactions) MoveOutcome {
	if dir.IsZero() {
		return MoveOutcome{}
	}

	dest := m.cell.Add(dir)
	hit := m.field.Probe(m.cell, dest)
	if hit.Kind == OccupantNone {
		m.field.Relocate(m.cell, dest)
		m.cell = dest
		if m.speed <= 0 {
			m.pos = dest.Vec()
			m.fx.Place(m.handle, m.pos)
		}
		return MoveOutcome{Moved: true}
	}

	out := MoveOutcome{Blocked: hit.Kind}
	if react, ok := reactions[hit.Kind]; ok {
		react(hit)
		out.Reacted = true
	}
	return out
}
