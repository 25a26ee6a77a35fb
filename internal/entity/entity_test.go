package entity

import (
	"testing"

	"github.com/samdwyer/scavenger/internal/gamedata"
	"github.com/samdwyer/scavenger/internal/world"
)

// fakeTurns records coordinator callbacks.
type fakeTurns struct {
	ended    int
	gameOver int
	exits    int
	stored   []int
	enemies  []*Enemy
}

func (f *fakeTurns) EndPlayerTurn()         { f.ended++ }
func (f *fakeTurns) GameOver()              { f.gameOver++ }
func (f *fakeTurns) ExitReached()           { f.exits++ }
func (f *fakeTurns) StoreFood(food int)     { f.stored = append(f.stored, food) }
func (f *fakeTurns) RegisterEnemy(e *Enemy) { f.enemies = append(f.enemies, e) }

// recordingEffects records cues, triggers and deactivations.
type recordingEffects struct {
	NopEffects
	cues        []Cue
	triggers    []Animation
	sprites     []Sprite
	deactivated []Handle
	texts       map[TextSlot]string
}

func newRecordingEffects() *recordingEffects {
	return &recordingEffects{texts: make(map[TextSlot]string)}
}

func (r *recordingEffects) PlayReaction(cue Cue)               { r.cues = append(r.cues, cue) }
func (r *recordingEffects) SetTrigger(_ Handle, a Animation)   { r.triggers = append(r.triggers, a) }
func (r *recordingEffects) SetSprite(_ Handle, s Sprite)       { r.sprites = append(r.sprites, s) }
func (r *recordingEffects) Deactivate(h Handle)                { r.deactivated = append(r.deactivated, h) }
func (r *recordingEffects) ShowText(slot TextSlot, text string) { r.texts[slot] = text }

func (r *recordingEffects) hasCue(cue Cue) bool {
	for _, c := range r.cues {
		if c == cue {
			return true
		}
	}
	return false
}

var (
	wallDef  = &gamedata.PrefabDef{ID: "wall1", Kind: gamedata.KindWall, HP: 4}
	foodDef  = &gamedata.PrefabDef{ID: "food", Kind: gamedata.KindFood, Pickup: gamedata.PickupFood}
	sodaDef  = &gamedata.PrefabDef{ID: "soda", Kind: gamedata.KindFood, Pickup: gamedata.PickupSoda}
	enemyDef = &gamedata.PrefabDef{ID: "enemy1", Kind: gamedata.KindEnemy, Damage: 10}
)

func setup(t *testing.T, food int) (*Field, *recordingEffects, *fakeTurns, *Player) {
	t.Helper()
	field := NewField(8, 8)
	fx := newRecordingEffects()
	turns := &fakeTurns{}
	player := NewPlayer(field, fx, turns, world.Cell{X: 1, Y: 1}, food, DefaultPlayerConfig())
	return field, fx, turns, player
}

func TestPlayerMoveIntoEmptyCell(t *testing.T) {
	field, fx, turns, player := setup(t, 100)

	out, acted := player.Act(world.Right)
	if !acted || !out.Moved {
		t.Fatalf("Act(Right) = %+v, %v, want a move", out, acted)
	}
	if got := player.Cell(); got != (world.Cell{X: 2, Y: 1}) {
		t.Errorf("Cell() = %v, want (2,1)", got)
	}
	if field.At(world.Cell{X: 2, Y: 1}).Player != player {
		t.Error("field should track the player at its new cell")
	}
	if field.At(world.Cell{X: 1, Y: 1}).Kind != OccupantNone {
		t.Error("old cell should be vacated")
	}
	if player.Food() != 99 {
		t.Errorf("Food() = %d, want 99", player.Food())
	}
	if turns.ended != 1 {
		t.Errorf("EndPlayerTurn calls = %d, want 1", turns.ended)
	}
	if !fx.hasCue(CueMove) {
		t.Error("expected move cue")
	}
	if fx.texts[TextFood] != "Food: 99" {
		t.Errorf("food text = %q, want %q", fx.texts[TextFood], "Food: 99")
	}
}

func TestPlayerChopsWeakWall(t *testing.T) {
	field, fx, turns, player := setup(t, 100)
	wall := NewWallFromDef(field, fx, world.Cell{X: 2, Y: 1}, &gamedata.PrefabDef{ID: "wall1", HP: 1})

	out, acted := player.Act(world.Right)
	if !acted {
		t.Fatal("Act(Right) should consume the turn")
	}
	if out.Moved || out.Blocked != OccupantWall || !out.Reacted {
		t.Errorf("Act(Right) = %+v, want blocked by wall with reaction", out)
	}
	if wall.Active() {
		t.Error("wall with 1 hp should be deactivated")
	}
	if player.Cell() != (world.Cell{X: 1, Y: 1}) {
		t.Errorf("Cell() = %v, want (1,1)", player.Cell())
	}
	if player.Food() != 99 {
		t.Errorf("Food() = %d, want 99", player.Food())
	}
	if field.At(world.Cell{X: 2, Y: 1}).Kind != OccupantNone {
		t.Error("destroyed wall should vacate its cell")
	}
	if turns.ended != 1 {
		t.Errorf("EndPlayerTurn calls = %d, want 1", turns.ended)
	}
	if len(fx.triggers) != 1 || fx.triggers[0] != AnimPlayerChop {
		t.Errorf("triggers = %v, want [playerChop]", fx.triggers)
	}
	if !fx.hasCue(CueChop) {
		t.Error("expected chop cue")
	}
}

func TestWallDamage(t *testing.T) {
	field := NewField(8, 8)
	fx := newRecordingEffects()
	wall := NewWallFromDef(field, fx, world.Cell{X: 3, Y: 3}, wallDef)

	wall.Damage(1)
	if !wall.Active() || wall.HP() != 3 || !wall.Damaged() {
		t.Fatalf("after one hit: active=%v hp=%d damaged=%v", wall.Active(), wall.HP(), wall.Damaged())
	}
	if len(fx.sprites) != 1 || fx.sprites[0] != SpriteDamaged {
		t.Errorf("sprites = %v, want [damaged]", fx.sprites)
	}

	wall.Damage(3)
	if wall.Active() {
		t.Error("wall should be deactivated at 0 hp")
	}
	if len(fx.deactivated) != 1 {
		t.Errorf("deactivations = %d, want 1", len(fx.deactivated))
	}

	wall.Damage(1)
	if wall.HP() != 0 {
		t.Errorf("HP() after hitting a destroyed wall = %d, want 0", wall.HP())
	}
}

func TestWallDefaultHP(t *testing.T) {
	wall := NewWallFromDef(NewField(4, 4), &NopEffects{}, world.Cell{X: 1, Y: 1}, &gamedata.PrefabDef{ID: "w"})
	if wall.HP() != DefaultWallHP {
		t.Errorf("HP() = %d, want %d", wall.HP(), DefaultWallHP)
	}
}

func TestPlayerBlockedByNonWall(t *testing.T) {
	tests := []struct {
		name string
		dir  world.Direction
		want OccupantKind
	}{
		{"boundary", world.Left, OccupantBoundary},
		{"enemy", world.Up, OccupantEnemy},
	}

	for _, tt := range tests {
		field, fx, turns, player := setup(t, 100)
		player.Mover.cell = world.Cell{X: 0, Y: 1}
		field.Vacate(world.Cell{X: 1, Y: 1})
		field.Occupy(player.Cell(), Occupant{Kind: OccupantPlayer, Player: player})
		NewEnemyFromDef(field, fx, turns, world.Cell{X: 0, Y: 2}, enemyDef, player)

		out, acted := player.Act(tt.dir)
		if !acted {
			t.Fatalf("%s: Act() should consume the turn", tt.name)
		}
		if out.Moved || out.Blocked != tt.want || out.Reacted {
			t.Errorf("%s: Act() = %+v, want silent block by %v", tt.name, out, tt.want)
		}
		if player.Cell() != (world.Cell{X: 0, Y: 1}) {
			t.Errorf("%s: player moved to %v", tt.name, player.Cell())
		}
		if player.Food() != 99 {
			t.Errorf("%s: Food() = %d, want 99", tt.name, player.Food())
		}
		if len(fx.triggers) != 0 {
			t.Errorf("%s: triggers = %v, want none", tt.name, fx.triggers)
		}
	}
}

func TestPlayerZeroDirection(t *testing.T) {
	_, _, turns, player := setup(t, 100)

	if _, acted := player.Act(world.None); acted {
		t.Error("Act(None) should not consume the turn")
	}
	if player.Food() != 100 || turns.ended != 0 {
		t.Errorf("Act(None) changed state: food=%d ended=%d", player.Food(), turns.ended)
	}
}

func TestPlayerPickups(t *testing.T) {
	tests := []struct {
		def  *gamedata.PrefabDef
		want int
		cue  Cue
		text string
	}{
		{foodDef, 100 - 1 + 10, CueEat, "+10 Food: 109"},
		{sodaDef, 100 - 1 + 20, CueDrink, "+20 Food: 119"},
	}

	for _, tt := range tests {
		field, fx, _, player := setup(t, 100)
		pickup := NewPickupFromDef(field, fx, world.Cell{X: 2, Y: 1}, tt.def)

		player.Act(world.Right)
		if player.Food() != tt.want {
			t.Errorf("%s: Food() = %d, want %d", tt.def.ID, player.Food(), tt.want)
		}
		if pickup.Active() {
			t.Errorf("%s: pickup should be deactivated", tt.def.ID)
		}
		if field.TriggerAt(pickup.Cell()).Kind != TriggerNone {
			t.Errorf("%s: trigger should be cleared", tt.def.ID)
		}
		if !fx.hasCue(tt.cue) {
			t.Errorf("%s: expected %s cue", tt.def.ID, tt.cue)
		}
		if fx.texts[TextFood] != tt.text {
			t.Errorf("%s: food text = %q, want %q", tt.def.ID, fx.texts[TextFood], tt.text)
		}
	}
}

func TestPlayerReachesExit(t *testing.T) {
	field, fx, turns, player := setup(t, 100)
	PlaceExit(field, fx, world.Cell{X: 1, Y: 2}, "exit")

	player.Act(world.Up)
	if turns.exits != 1 {
		t.Errorf("ExitReached calls = %d, want 1", turns.exits)
	}
	if player.Enabled() {
		t.Error("player should be disabled after reaching the exit")
	}
	if _, acted := player.Act(world.Down); acted {
		t.Error("disabled player should not act")
	}
}

func TestPlayerStarves(t *testing.T) {
	_, _, turns, player := setup(t, 1)

	player.Act(world.Right)
	if player.Food() != 0 {
		t.Errorf("Food() = %d, want 0", player.Food())
	}
	if turns.gameOver != 1 {
		t.Errorf("GameOver calls = %d, want 1", turns.gameOver)
	}
}

func TestPlayerStarvesBeforeReachingPickup(t *testing.T) {
	field, fx, turns, player := setup(t, 1)
	pickup := NewPickupFromDef(field, fx, world.Cell{X: 2, Y: 1}, foodDef)

	player.Act(world.Right)
	if player.Cell() != (world.Cell{X: 2, Y: 1}) {
		t.Errorf("Cell() = %v, want (2,1)", player.Cell())
	}
	if player.Food() != 0 {
		t.Errorf("Food() = %d, want 0", player.Food())
	}
	if turns.gameOver != 1 {
		t.Errorf("GameOver calls = %d, want 1", turns.gameOver)
	}
	if !pickup.Active() || fx.hasCue(CueEat) {
		t.Error("pickup should not be eaten after starving")
	}
}

func TestPlayerStarvesBeforeReachingExit(t *testing.T) {
	field, fx, turns, player := setup(t, 1)
	PlaceExit(field, fx, world.Cell{X: 1, Y: 2}, "exit")

	player.Act(world.Up)
	if turns.gameOver != 1 || turns.exits != 0 {
		t.Errorf("gameOver=%d exits=%d, want 1, 0", turns.gameOver, turns.exits)
	}
}

func TestPlayerLoseFood(t *testing.T) {
	_, fx, turns, player := setup(t, 25)

	player.LoseFood(10)
	if player.Food() != 15 || turns.gameOver != 0 {
		t.Errorf("after 10 damage: food=%d gameOver=%d", player.Food(), turns.gameOver)
	}
	if fx.texts[TextFood] != "-10 Food: 15" {
		t.Errorf("food text = %q", fx.texts[TextFood])
	}

	player.LoseFood(15)
	if turns.gameOver != 1 {
		t.Errorf("GameOver calls = %d, want 1", turns.gameOver)
	}
}

func TestPlayerTeardown(t *testing.T) {
	_, _, turns, player := setup(t, 42)

	player.Teardown()
	if player.Enabled() {
		t.Error("player should be disabled after teardown")
	}
	if len(turns.stored) != 1 || turns.stored[0] != 42 {
		t.Errorf("stored food = %v, want [42]", turns.stored)
	}
}

func TestEnemyRegistersOnCreation(t *testing.T) {
	field, fx, turns, player := setup(t, 100)
	e := NewEnemyFromDef(field, fx, turns, world.Cell{X: 5, Y: 5}, enemyDef, player)

	if len(turns.enemies) != 1 || turns.enemies[0] != e {
		t.Errorf("registered enemies = %v, want [e]", turns.enemies)
	}
	if e.Damage() != 10 {
		t.Errorf("Damage() = %d, want 10", e.Damage())
	}
}

func TestEnemyTwoInvocationsOneStep(t *testing.T) {
	field, fx, turns, player := setup(t, 100)
	e := NewEnemyFromDef(field, fx, turns, world.Cell{X: 5, Y: 1}, enemyDef, player)

	out, attempted := e.MoveEnemy()
	if !attempted || !out.Moved {
		t.Fatalf("first MoveEnemy() = %+v, %v, want a move", out, attempted)
	}
	if e.Phase() != PhaseSettling {
		t.Errorf("Phase() = %v, want settling", e.Phase())
	}

	out, attempted = e.MoveEnemy()
	if attempted || out.Moved {
		t.Errorf("second MoveEnemy() = %+v, %v, want swallowed", out, attempted)
	}
	if e.Phase() != PhaseAwaitingStep {
		t.Errorf("Phase() = %v, want awaiting_step", e.Phase())
	}

	if got := e.Cell(); got != (world.Cell{X: 4, Y: 1}) {
		t.Errorf("Cell() = %v, want (4,1)", got)
	}
}

func TestEnemyStepToward(t *testing.T) {
	field, fx, turns, player := setup(t, 100)
	e := NewEnemyFromDef(field, fx, turns, world.Cell{X: 3, Y: 3}, enemyDef, player)

	tests := []struct {
		target world.Cell
		want   world.Direction
	}{
		{world.Cell{X: 6, Y: 0}, world.Right},
		{world.Cell{X: 0, Y: 6}, world.Left},
		{world.Cell{X: 3, Y: 6}, world.Up},
		{world.Cell{X: 3, Y: 0}, world.Down},
	}

	for _, tt := range tests {
		if got := e.StepToward(tt.target); got != tt.want {
			t.Errorf("StepToward(%v) = %v, want %v", tt.target, got, tt.want)
		}
	}
}

func TestEnemyAttacksPlayer(t *testing.T) {
	field, fx, turns, player := setup(t, 30)
	e := NewEnemyFromDef(field, fx, turns, world.Cell{X: 2, Y: 1}, enemyDef, player)

	out, attempted := e.MoveEnemy()
	if !attempted || out.Moved || out.Blocked != OccupantPlayer || !out.Reacted {
		t.Fatalf("MoveEnemy() = %+v, %v, want blocked by player with reaction", out, attempted)
	}
	if player.Food() != 20 {
		t.Errorf("Food() = %d, want 20", player.Food())
	}
	if e.Cell() != (world.Cell{X: 2, Y: 1}) {
		t.Errorf("enemy moved to %v", e.Cell())
	}
	if !fx.hasCue(CueEnemyAttack) {
		t.Error("expected enemy attack cue")
	}
	wantTriggers := []Animation{AnimPlayerHit, AnimEnemyAttack}
	if len(fx.triggers) != 2 || fx.triggers[0] != wantTriggers[0] || fx.triggers[1] != wantTriggers[1] {
		t.Errorf("triggers = %v, want %v", fx.triggers, wantTriggers)
	}
}

func TestEnemyBlockedByWallDoesNothing(t *testing.T) {
	field, fx, turns, player := setup(t, 100)
	wall := NewWallFromDef(field, fx, world.Cell{X: 4, Y: 1}, wallDef)
	e := NewEnemyFromDef(field, fx, turns, world.Cell{X: 5, Y: 1}, enemyDef, player)

	out, attempted := e.MoveEnemy()
	if !attempted || out.Moved || out.Reacted || out.Blocked != OccupantWall {
		t.Errorf("MoveEnemy() = %+v, %v, want silent block by wall", out, attempted)
	}
	if wall.HP() != 4 {
		t.Errorf("wall HP = %d, want 4", wall.HP())
	}
	if e.Cell() != (world.Cell{X: 5, Y: 1}) {
		t.Errorf("enemy moved to %v", e.Cell())
	}
}

func TestEnemyDeactivate(t *testing.T) {
	field, fx, turns, player := setup(t, 100)
	e := NewEnemyFromDef(field, fx, turns, world.Cell{X: 5, Y: 1}, enemyDef, player)

	e.Deactivate()
	if e.Active() {
		t.Error("enemy should be inactive")
	}
	if field.At(world.Cell{X: 5, Y: 1}).Kind != OccupantNone {
		t.Error("inactive enemy should vacate its cell")
	}
	if _, attempted := e.MoveEnemy(); attempted {
		t.Error("inactive enemy should not move")
	}
}

func TestMoverSmoothMove(t *testing.T) {
	field := NewField(8, 8)
	fx := &NopEffects{}
	cfg := DefaultPlayerConfig()
	cfg.Speed = 0.5
	player := NewPlayer(field, fx, &fakeTurns{}, world.Cell{X: 1, Y: 1}, 100, cfg)

	player.Act(world.Right)
	if !player.Moving() {
		t.Fatal("player should still be interpolating")
	}
	player.Advance()
	if got := player.Position(); got != (world.Vec{X: 1.5, Y: 1}) {
		t.Errorf("Position() = %+v, want {1.5 1}", got)
	}
	player.Advance()
	if player.Moving() || player.Position() != (world.Vec{X: 2, Y: 1}) {
		t.Errorf("Position() = %+v, want {2 1}", player.Position())
	}
}
