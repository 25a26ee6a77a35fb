package entity

import (
	"github.com/samdwyer/scavenger/internal/gamedata"
	"github.com/samdwyer/scavenger/internal/world"
)

// Pickup is a food or soda item consumed by stepping onto it.
type Pickup struct {
	Def    *gamedata.PrefabDef
	cell   world.Cell
	active bool
	handle Handle
	field  *Field
	fx     Effects
}

// NewPickupFromDef places a pickup trigger on the field.
func NewPickupFromDef(field *Field, fx Effects, cell world.Cell, def *gamedata.PrefabDef) *Pickup {
	p := &Pickup{
		Def:    def,
		cell:   cell,
		active: true,
		handle: fx.Instantiate(def.ID, cell.Vec()),
		field:  field,
		fx:     fx,
	}
	field.SetTrigger(cell, Trigger{Kind: TriggerPickup, Pickup: p})
	return p
}

// Kind returns which bonus the pickup grants.
func (p *Pickup) Kind() gamedata.PickupKind {
	if p.Def.Pickup == "" {
		return gamedata.PickupFood
	}
	return p.Def.Pickup
}

// Cell returns the pickup's cell.
func (p *Pickup) Cell() world.Cell { return p.cell }

// Active reports whether the pickup is still in play.
func (p *Pickup) Active() bool { return p.active }

// deactivate removes the pickup from play.
func (p *Pickup) deactivate() {
	p.active = false
	p.field.ClearTrigger(p.cell)
	p.fx.Deactivate(p.handle)
}

// PlaceExit puts the level exit on the field.
func PlaceExit(field *Field, fx Effects, cell world.Cell, prefab string) Handle {
	field.SetTrigger(cell, Trigger{Kind: TriggerExit})
	return fx.Instantiate(prefab, cell.Vec())
}
