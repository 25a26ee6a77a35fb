package entity

import (
	"fmt"

	"github.com/samdwyer/scavenger/internal/gamedata"
	"github.com/samdwyer/scavenger/internal/world"
)

// PlayerPrefab is the prefab id used for the player's visual.
const PlayerPrefab = "player"

// PlayerConfig holds the player's tuning values.
type PlayerConfig struct {
	WallDamage    int
	PointsPerFood int
	PointsPerSoda int
	// Speed is cells per tick for the smooth move; zero jumps.
	Speed float64
}

// DefaultPlayerConfig returns the classic tuning.
func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		WallDamage:    1,
		PointsPerFood: 10,
		PointsPerSoda: 20,
	}
}

// Player is the user-controlled actor. It owns the food counter.
type Player struct {
	Mover
	cfg       PlayerConfig
	food      int
	enabled   bool
	turns     Turns
	reactions Reactions
}

// NewPlayer places the player on the field with the given food.
func NewPlayer(field *Field, fx Effects, turns Turns, cell world.Cell, food int, cfg PlayerConfig) *Player {
	p := &Player{
		Mover:   newMover(field, fx, cell, cfg.Speed, PlayerPrefab),
		cfg:     cfg,
		food:    food,
		enabled: true,
		turns:   turns,
	}
	p.reactions = Reactions{
		OccupantWall: p.chop,
	}
	field.Occupy(cell, Occupant{Kind: OccupantPlayer, Player: p})
	fx.ShowText(TextFood, fmt.Sprintf("Food: %d", p.food))
	return p
}

// Food returns the current food.
func (p *Player) Food() int { return p.food }

// Enabled reports whether the player still accepts input.
func (p *Player) Enabled() bool { return p.enabled }

// Act spends the player's turn moving one cell in dir. A zero direction or
// a disabled player does nothing and does not end the turn.
func (p *Player) Act(dir world.Direction) (MoveOutcome, bool) {
	if !p.enabled || dir.IsZero() {
		return MoveOutcome{}, false
	}

	p.food--
	p.fx.ShowText(TextFood, fmt.Sprintf("Food: %d", p.food))

	out := p.AttemptMove(dir, p.reactions)
	if out.Moved {
		p.fx.PlayReaction(CueMove)
	}

	// Triggers on the new cell only fire for a player still alive after the step.
	if !p.checkIfGameOver() && out.Moved {
		p.enter(p.cell)
	}
	p.turns.EndPlayerTurn()
	return out, true
}

// LoseFood applies an enemy hit.
func (p *Player) LoseFood(loss int) {
	p.fx.SetTrigger(p.handle, AnimPlayerHit)
	p.food -= loss
	p.fx.ShowText(TextFood, fmt.Sprintf("-%d Food: %d", loss, p.food))
	p.checkIfGameOver()
}

// Teardown disables the player and hands its food back to the coordinator.
func (p *Player) Teardown() {
	p.enabled = false
	p.turns.StoreFood(p.food)
}

func (p *Player) chop(occ Occupant) {
	occ.Wall.Damage(p.cfg.WallDamage)
	p.fx.SetTrigger(p.handle, AnimPlayerChop)
}

// enter handles overlap with whatever trigger sits on c.
func (p *Player) enter(c world.Cell) {
	t := p.field.TriggerAt(c)
	switch t.Kind {
	case TriggerExit:
		p.enabled = false
		p.turns.ExitReached()
	case TriggerPickup:
		if t.Pickup == nil || !t.Pickup.Active() {
			return
		}
		points, cue := p.cfg.PointsPerFood, CueEat
		if t.Pickup.Kind() == gamedata.PickupSoda {
			points, cue = p.cfg.PointsPerSoda, CueDrink
		}
		p.food += points
		p.fx.ShowText(TextFood, fmt.Sprintf("+%d Food: %d", points, p.food))
		p.fx.PlayReaction(cue)
		t.Pickup.deactivate()
	}
}

// checkIfGameOver ends the run once food is gone and reports whether it did.
func (p *Player) checkIfGameOver() bool {
	if p.food > 0 {
		return false
	}
	p.turns.GameOver()
	return true
}
