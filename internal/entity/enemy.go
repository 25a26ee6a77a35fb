package entity

import (
	"github.com/samdwyer/scavenger/internal/gamedata"
	"github.com/samdwyer/scavenger/internal/world"
)

// EnemyPhase is the enemy's step sub-state. An enemy alternates between
// taking a step and settling, so every other invocation is swallowed.
type EnemyPhase int

const (
	// PhaseAwaitingStep means the next invocation moves.
	PhaseAwaitingStep EnemyPhase = iota
	// PhaseSettling means the next invocation is skipped.
	PhaseSettling
)

// String returns a human-readable phase name.
func (p EnemyPhase) String() string {
	switch p {
	case PhaseAwaitingStep:
		return "awaiting_step"
	case PhaseSettling:
		return "settling"
	default:
		return "unknown"
	}
}

// Enemy chases the player one axis-aligned step at a time.
type Enemy struct {
	Mover
	Def       *gamedata.PrefabDef
	damage    int
	phase     EnemyPhase
	active    bool
	target    *Player
	reactions Reactions
}

// NewEnemyFromDef places an enemy on the field and registers it with turns.
func NewEnemyFromDef(field *Field, fx Effects, turns Turns, cell world.Cell, def *gamedata.PrefabDef, target *Player) *Enemy {
	e := &Enemy{
		Mover:  newMover(field, fx, cell, 0, def.ID),
		Def:    def,
		damage: def.Damage,
		active: true,
		target: target,
	}
	e.reactions = Reactions{
		OccupantPlayer: e.attack,
	}
	field.Occupy(cell, Occupant{Kind: OccupantEnemy, Enemy: e})
	turns.RegisterEnemy(e)
	return e
}

// Damage returns the food the enemy takes from the player per hit.
func (e *Enemy) Damage() int { return e.damage }

// Phase returns the step sub-state.
func (e *Enemy) Phase() EnemyPhase { return e.phase }

// Active reports whether the enemy is still in play.
func (e *Enemy) Active() bool { return e.active }

// Deactivate removes the enemy from play.
func (e *Enemy) Deactivate() {
	if !e.active {
		return
	}
	e.active = false
	e.field.Vacate(e.cell)
	e.fx.Deactivate(e.handle)
}

// MoveEnemy is one scheduler invocation. It reports whether a move was
// attempted; when settling, the invocation is consumed without acting.
func (e *Enemy) MoveEnemy() (MoveOutcome, bool) {
	if !e.active || e.target == nil {
		return MoveOutcome{}, false
	}
	if e.phase == PhaseSettling {
		e.phase = PhaseAwaitingStep
		return MoveOutcome{}, false
	}

	out := e.AttemptMove(e.StepToward(e.target.Cell()), e.reactions)
	e.phase = PhaseSettling
	return out, true
}

// StepToward returns the greedy step towards target: horizontal unless
// already in the target's column, then vertical.
func (e *Enemy) StepToward(target world.Cell) world.Direction {
	if target.X == e.cell.X {
		if target.Y > e.cell.Y {
			return world.Up
		}
		return world.Down
	}
	if target.X > e.cell.X {
		return world.Right
	}
	return world.Left
}

func (e *Enemy) attack(occ Occupant) {
	occ.Player.LoseFood(e.damage)
	e.fx.SetTrigger(e.handle, AnimEnemyAttack)
	e.fx.PlayReaction(CueEnemyAttack)
}
