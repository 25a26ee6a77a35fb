package entity

import "github.com/samdwyer/scavenger/internal/world"

// OccupantKind tags what a movement probe ran into.
type OccupantKind int

const (
	OccupantNone OccupantKind = iota
	// OccupantBoundary is the outer wall ring or anything beyond it.
	OccupantBoundary
	OccupantWall
	OccupantPlayer
	OccupantEnemy
)

// String returns a human-readable occupant kind.
func (k OccupantKind) String() string {
	switch k {
	case OccupantNone:
		return "none"
	case OccupantBoundary:
		return "boundary"
	case OccupantWall:
		return "wall"
	case OccupantPlayer:
		return "player"
	case OccupantEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Occupant is a blocking thing on a cell. Exactly the field matching Kind is set.
type Occupant struct {
	Kind   OccupantKind
	Wall   *Wall
	Player *Player
	Enemy  *Enemy
}

// TriggerKind tags a non-blocking overlap target.
type TriggerKind int

const (
	TriggerNone TriggerKind = iota
	TriggerExit
	TriggerPickup
)

// Trigger is a non-blocking thing the player can step onto.
type Trigger struct {
	Kind   TriggerKind
	Pickup *Pickup
}

// Field is the live occupancy of one level: blockers on the collision layer
// and overlap triggers. It is owned by the simulation thread.
type Field struct {
	columns, rows int
	blockers      map[world.Cell]Occupant
	triggers      map[world.Cell]Trigger
}

// NewField creates an empty field for a columns x rows board.
func NewField(columns, rows int) *Field {
	return &Field{
		columns:  columns,
		rows:     rows,
		blockers: make(map[world.Cell]Occupant),
		triggers: make(map[world.Cell]Trigger),
	}
}

// InBounds reports whether c is on the playable area.
func (f *Field) InBounds(c world.Cell) bool {
	return c.X >= 0 && c.X < f.columns && c.Y >= 0 && c.Y < f.rows
}

// Probe casts from one cell towards an adjacent one and returns the first
// blocker hit. Steps of more than one cell are not supported.
func (f *Field) Probe(from, to world.Cell) Occupant {
	if !f.InBounds(to) {
		return Occupant{Kind: OccupantBoundary}
	}
	if occ, ok := f.blockers[to]; ok {
		return occ
	}
	return Occupant{}
}

// At returns the blocker on c, if any.
func (f *Field) At(c world.Cell) Occupant {
	return f.blockers[c]
}

// Occupy puts a blocker on c.
func (f *Field) Occupy(c world.Cell, occ Occupant) {
	f.blockers[c] = occ
}

// Vacate removes whatever blocks c.
func (f *Field) Vacate(c world.Cell) {
	delete(f.blockers, c)
}

// Relocate moves the blocker on from to to.
func (f *Field) Relocate(from, to world.Cell) {
	occ, ok := f.blockers[from]
	if !ok {
		return
	}
	delete(f.blockers, from)
	f.blockers[to] = occ
}

// SetTrigger puts an overlap target on c.
func (f *Field) SetTrigger(c world.Cell, t Trigger) {
	f.triggers[c] = t
}

// TriggerAt returns the overlap target on c.
func (f *Field) TriggerAt(c world.Cell) Trigger {
	return f.triggers[c]
}

// ClearTrigger removes the overlap target on c.
func (f *Field) ClearTrigger(c world.Cell) {
	delete(f.triggers, c)
}

// Blockers returns the number of occupied cells.
func (f *Field) Blockers() int {
	return len(f.blockers)
}
