// Package entity provides the actors that live on a board: the player,
// enemies, walls and pickups, plus the movement primitive they share.
package entity

import "github.com/samdwyer/scavenger/internal/world"

// Handle identifies an instantiated visual. The zero Handle is no visual.
type Handle int

// Cue names a set of interchangeable sound effects.
type Cue string

const (
	CueMove        Cue = "move"
	CueEat         Cue = "eat"
	CueDrink       Cue = "drink"
	CueChop        Cue = "chop"
	CueEnemyAttack Cue = "enemy_attack"
	CueGameOver    Cue = "game_over"
)

// Animation names a one-shot animation trigger.
type Animation string

const (
	AnimPlayerChop  Animation = "playerChop"
	AnimPlayerHit   Animation = "playerHit"
	AnimEnemyAttack Animation = "enemyAttack"
)

// Sprite names an alternative sprite for a visual.
type Sprite string

const (
	SpriteDamaged Sprite = "damaged"
)

// TextSlot identifies a UI text line.
type TextSlot int

const (
	// TextFood is the food counter line.
	TextFood TextSlot = iota
	// TextBanner is the full-screen title card. Empty text hides it.
	TextBanner
)

// Effects is the rendering, audio and UI collaborator the core calls into.
// Implementations must tolerate a zero Handle.
type Effects interface {
	Instantiate(prefab string, at world.Vec) Handle
	Place(h Handle, at world.Vec)
	SetTrigger(h Handle, anim Animation)
	SetSprite(h Handle, sprite Sprite)
	Deactivate(h Handle)
	ClearScene()

	PlayReaction(cue Cue)
	StopMusic()

	ShowText(slot TextSlot, text string)
}

// Turns is the turn coordinator as seen by actors.
type Turns interface {
	// EndPlayerTurn is called once the player has spent its action.
	EndPlayerTurn()
	// GameOver is called when the player's food is exhausted.
	GameOver()
	// ExitReached is called when the player steps onto the exit.
	ExitReached()
	// StoreFood persists the player's food across levels.
	StoreFood(food int)
	// RegisterEnemy adds a newly created enemy to the enemy phase.
	RegisterEnemy(e *Enemy)
}

// NopEffects discards every effect. Instantiate hands out increasing handles.
type NopEffects struct {
	next Handle
}

func (n *NopEffects) Instantiate(string, world.Vec) Handle {
	n.next++
	return n.next
}

func (*NopEffects) Place(Handle, world.Vec) {}
func (*NopEffects) SetTrigger(Handle, Animation) {}
func (*NopEffects) SetSprite(Handle, Sprite) {}
func (*NopEffects) Deactivate(Handle) {}
func (*NopEffects) ClearScene() {}
func (*NopEffects) PlayReaction(Cue) {}
func (*NopEffects) StopMusic() {}
func (*NopEffects) ShowText(TextSlot, string) {}

var _ Effects = (*NopEffects)(nil)
