package entity

import (
	"github.com/samdwyer/scavenger/internal/gamedata"
	"github.com/samdwyer/scavenger/internal/world"
)

// DefaultWallHP is used when a wall prefab does not set hit points.
const DefaultWallHP = 4

// Wall is a destructible obstacle.
type Wall struct {
	Def     *gamedata.PrefabDef
	cell    world.Cell
	hp      int
	damaged bool
	active  bool
	handle  Handle
	field   *Field
	fx      Effects
}

// NewWallFromDef places a wall on the field.
func NewWallFromDef(field *Field, fx Effects, cell world.Cell, def *gamedata.PrefabDef) *Wall {
	hp := def.HP
	if hp <= 0 {
		hp = DefaultWallHP
	}
	w := &Wall{
		Def:    def,
		cell:   cell,
		hp:     hp,
		active: true,
		handle: fx.Instantiate(def.ID, cell.Vec()),
		field:  field,
		fx:     fx,
	}
	field.Occupy(cell, Occupant{Kind: OccupantWall, Wall: w})
	return w
}

// Damage chops loss hit points off the wall and removes it at zero.
func (w *Wall) Damage(loss int) {
	if !w.active {
		return
	}
	w.fx.PlayReaction(CueChop)
	w.fx.SetSprite(w.handle, SpriteDamaged)
	w.damaged = true
	w.hp -= loss
	if w.hp <= 0 {
		w.active = false
		w.field.Vacate(w.cell)
		w.fx.Deactivate(w.handle)
	}
}

// Cell returns the wall's cell.
func (w *Wall) Cell() world.Cell { return w.cell }

// HP returns the remaining hit points.
func (w *Wall) HP() int { return w.hp }

// Damaged reports whether the wall has been hit at least once.
func (w *Wall) Damaged() bool { return w.damaged }

// Active reports whether the wall is still in play.
func (w *Wall) Active() bool { return w.active }
