package game

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/scavenger/internal/entity"
	"github.com/samdwyer/scavenger/internal/gamedata"
	"github.com/samdwyer/scavenger/internal/rng"
	"github.com/samdwyer/scavenger/internal/telemetry"
	"github.com/samdwyer/scavenger/internal/world"
)

// PlayerStart is the cell the player spawns on every level.
var PlayerStart = world.Cell{X: 0, Y: 0}

// Summary describes a finished run.
type Summary struct {
	Seed   int64
	Level  int
	Rounds int
}

// Coordinator owns the round state machine: whose turn it is, the enemies
// registered for the level, the level and round counters, and the food
// carried between levels. It implements entity.Turns.
//
// A Coordinator is not safe for concurrent use; all calls must come from
// the goroutine driving Tick.
type Coordinator struct {
	cfg      Config
	registry *gamedata.PrefabRegistry
	fx       entity.Effects
	logger   *log.Logger

	src   *rng.Rand
	gen   *world.Generator
	sched *Scheduler
	token *Token
	runs  int

	phase   Phase
	level   int
	rounds  int
	food    int
	running bool
	err     error

	board   *world.Board
	field   *entity.Field
	player  *entity.Player
	enemies []*entity.Enemy

	// OnGameOver, if set, is called once per finished run from Tick.
	OnGameOver func(Summary)
}

// NewCoordinator validates cfg and builds a coordinator whose tile pools
// come from registry. A nil fx discards effects and a nil logger discards logs.
func NewCoordinator(cfg Config, registry *gamedata.PrefabRegistry, fx entity.Effects, logger *log.Logger) (*Coordinator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game config: %w", err)
	}
	if fx == nil {
		fx = &entity.NopEffects{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	pools, err := registry.TilePools()
	if err != nil {
		return nil, err
	}
	cfg.Board.Pools = pools
	if ticks := cfg.Ticks(cfg.PlayerMoveTime); ticks > 0 && cfg.Player.Speed == 0 {
		cfg.Player.Speed = 1 / float64(ticks)
	}

	src := rng.New(cfg.Seed)
	gen, err := world.NewGenerator(cfg.Board, src)
	if err != nil {
		return nil, err
	}

	return &Coordinator{
		cfg:      cfg,
		registry: registry,
		fx:       fx,
		logger:   logger,
		src:      src,
		gen:      gen,
		sched:    NewScheduler(),
		token:    &Token{},
	}, nil
}

// Start begins a new run on level 1 with the starting food. Every run
// draws its boards from its own source: the first uses the configured seed,
// later ones a seed drawn from the previous run's source. Seed reports it.
func (c *Coordinator) Start(ctx context.Context) error {
	seed := c.src.Seed()
	if c.runs > 0 {
		seed = c.src.NextSeed()
	}
	src := rng.New(seed)
	gen, err := world.NewGenerator(c.cfg.Board, src)
	if err != nil {
		return err
	}

	return c.loadLevel(ctx, gen, 1, func() {
		c.src, c.gen = src, gen
		c.runs++
		c.food = c.cfg.StartingFood
		c.rounds = 0
	})
}

// StartLevel loads level, keeping the food carried over from the last one.
// On a generation error the current level is left untouched.
func (c *Coordinator) StartLevel(ctx context.Context, level int) error {
	return c.loadLevel(ctx, c.gen, level, nil)
}

// loadLevel generates level with gen and, only if that succeeds, replaces
// the current level. commit runs between teardown and build.
func (c *Coordinator) loadLevel(ctx context.Context, gen *world.Generator, level int, commit func()) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "level.start")
	defer span.End()

	board, err := gen.GenerateLevel(ctx, level)
	if err != nil {
		c.logger.Error("level generation failed", "level", level, "err", err)
		return fmt.Errorf("start level %d: %w", level, err)
	}

	c.retire()
	if commit != nil {
		commit()
	}
	c.build(board)
	c.running = true

	c.phase = PhaseLevelTransition
	c.fx.ShowText(entity.TextBanner, fmt.Sprintf("Day %d", c.level))
	c.sched.After(c.cfg.Ticks(c.cfg.LevelStartDelay), c.token, func(context.Context) {
		c.fx.ShowText(entity.TextBanner, "")
		c.phase = PhasePlayerTurn
	})

	span.SetAttributes(
		attribute.Int("level", c.level),
		attribute.Int("food", c.food),
		attribute.Int("enemies", len(c.enemies)),
	)
	c.logger.Info("level started", "level", c.level, "food", c.food, "enemies", len(c.enemies))
	return nil
}

// retire tears down the current level and cancels its pending events.
func (c *Coordinator) retire() {
	if c.player != nil {
		c.player.Teardown()
		c.player = nil
	}
	c.token.Cancel()
	c.token = &Token{}
	for _, e := range c.enemies {
		e.Deactivate()
	}
	c.enemies = nil
	c.board = nil
	c.field = nil
	c.fx.ClearScene()
}

// build instantiates every tile and actor of board.
func (c *Coordinator) build(board *world.Board) {
	c.board = board
	c.level = board.Level
	c.field = entity.NewField(board.Columns, board.Rows)

	for _, spot := range board.Tiles {
		c.fx.Instantiate(spot.Prefab, spot.Cell.Vec())
	}

	c.player = entity.NewPlayer(c.field, c.fx, c, PlayerStart, c.food, c.cfg.Player)

	for _, p := range board.Placements {
		switch p.Kind {
		case world.KindWall:
			entity.NewWallFromDef(c.field, c.fx, p.Cell, c.def(p.Prefab))
		case world.KindFood:
			entity.NewPickupFromDef(c.field, c.fx, p.Cell, c.def(p.Prefab))
		case world.KindEnemy:
			entity.NewEnemyFromDef(c.field, c.fx, c, p.Cell, c.def(p.Prefab), c.player)
		case world.KindExit:
			entity.PlaceExit(c.field, c.fx, p.Cell, p.Prefab)
		}
	}
}

func (c *Coordinator) def(id string) *gamedata.PrefabDef {
	if def := c.registry.GetByID(id); def != nil {
		return def
	}
	c.logger.Warn("unknown prefab", "id", id)
	return &gamedata.PrefabDef{ID: id}
}

// Tick advances the simulation by one scheduler tick. dir is the player's
// input for this tick; it is ignored outside the player's turn and while
// the player is still sliding into its cell. Errors from a delayed level
// load are returned here.
func (c *Coordinator) Tick(ctx context.Context, dir world.Direction) error {
	if !c.running {
		return ErrNotRunning
	}
	before := c.phase

	c.sched.Advance(ctx)
	if c.player != nil {
		c.player.Advance()
	}
	for _, e := range c.enemies {
		e.Advance()
	}

	if c.phase == PhasePlayerTurn && !dir.IsZero() && c.player != nil && !c.player.Moving() {
		c.player.Act(dir)
	}

	if before != PhaseGameOver && c.phase == PhaseGameOver {
		c.finish(ctx)
	}

	err := c.err
	c.err = nil
	return err
}

// finish records the end of a run.
func (c *Coordinator) finish(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.over")
	span.SetAttributes(
		attribute.Int("level", c.level),
		attribute.Int("rounds", c.rounds),
	)
	span.End()

	c.logger.Info("game over", "level", c.level, "rounds", c.rounds, "seed", c.src.Seed())
	if c.OnGameOver != nil {
		c.OnGameOver(c.Summary())
	}
}

// EndPlayerTurn hands the round to the enemies after the turn delay.
func (c *Coordinator) EndPlayerTurn() {
	if c.phase != PhasePlayerTurn {
		return
	}
	c.phase = PhaseEnemiesTurn
	c.pruneEnemies()

	delay := c.cfg.Ticks(c.cfg.TurnDelay)
	if len(c.enemies) == 0 {
		delay += c.cfg.Ticks(c.cfg.TurnDelay)
	}
	c.sched.After(delay, c.token, c.moveEnemies)
}

func (c *Coordinator) moveEnemies(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "round.enemies")
	span.SetAttributes(
		attribute.Int("enemy_count", len(c.enemies)),
		attribute.Int("round", c.rounds),
	)
	span.End()

	queue := make([]*entity.Enemy, 0, len(c.enemies)*c.cfg.EnemyInvocationsPerRound)
	for pass := 0; pass < c.cfg.EnemyInvocationsPerRound; pass++ {
		queue = append(queue, c.enemies...)
	}
	c.advanceEnemies(ctx, queue)
}

// advanceEnemies invokes queued enemies in order, waiting the enemy move
// delay after each attempted move. Swallowed invocations cost no time.
func (c *Coordinator) advanceEnemies(_ context.Context, queue []*entity.Enemy) {
	for len(queue) > 0 {
		if c.phase != PhaseEnemiesTurn {
			return
		}
		e := queue[0]
		queue = queue[1:]

		if _, attempted := e.MoveEnemy(); !attempted {
			continue
		}
		if c.phase != PhaseEnemiesTurn {
			return
		}
		rest := queue
		c.sched.After(c.cfg.Ticks(c.cfg.EnemyMoveDelay), c.token, func(ctx context.Context) {
			c.advanceEnemies(ctx, rest)
		})
		return
	}
	c.endRound()
}

func (c *Coordinator) endRound() {
	if c.phase != PhaseEnemiesTurn {
		return
	}
	c.rounds++
	c.phase = PhasePlayerTurn
	c.logger.Debug("round complete", "round", c.rounds, "food", c.player.Food())
}

func (c *Coordinator) pruneEnemies() {
	active := c.enemies[:0]
	for _, e := range c.enemies {
		if e.Active() {
			active = append(active, e)
		}
	}
	c.enemies = active
}

// ExitReached schedules the next level after the restart delay. A second
// call during the transition is a no-op.
func (c *Coordinator) ExitReached() {
	if c.phase == PhaseLevelTransition || c.phase == PhaseGameOver {
		return
	}
	c.phase = PhaseLevelTransition
	c.token.Cancel()
	c.token = &Token{}

	next := c.level + 1
	c.logger.Info("exit reached", "level", c.level, "next", next)
	c.sched.After(c.cfg.Ticks(c.cfg.RestartDelay), c.token, func(ctx context.Context) {
		if err := c.StartLevel(ctx, next); err != nil {
			c.err = err
		}
	})
}

// GameOver ends the run. Pending events are cancelled and no further turn
// flips happen until Start is called again.
func (c *Coordinator) GameOver() {
	if c.phase == PhaseGameOver {
		return
	}
	c.phase = PhaseGameOver
	c.token.Cancel()
	c.token = &Token{}

	c.fx.PlayReaction(entity.CueGameOver)
	c.fx.StopMusic()
	c.fx.ShowText(entity.TextBanner, fmt.Sprintf("After %d days, you starved.", c.level))
}

// StoreFood keeps the player's food for the next level.
func (c *Coordinator) StoreFood(food int) {
	c.food = food
}

// RegisterEnemy adds e to the enemy phase.
func (c *Coordinator) RegisterEnemy(e *entity.Enemy) {
	c.enemies = append(c.enemies, e)
}

// Phase returns the current round state.
func (c *Coordinator) Phase() Phase { return c.phase }

// Level returns the current level, starting at 1.
func (c *Coordinator) Level() int { return c.level }

// Rounds returns the number of completed rounds in this run.
func (c *Coordinator) Rounds() int { return c.rounds }

// Food returns the player's live food, or the carried food between levels.
func (c *Coordinator) Food() int {
	if c.player != nil {
		return c.player.Food()
	}
	return c.food
}

// Seed returns the seed of the current run's boards.
func (c *Coordinator) Seed() int64 { return c.src.Seed() }

// Board returns the current level's board.
func (c *Coordinator) Board() *world.Board { return c.board }

// Field returns the current level's live occupancy.
func (c *Coordinator) Field() *entity.Field { return c.field }

// Player returns the current level's player.
func (c *Coordinator) Player() *entity.Player { return c.player }

// Enemies returns a copy of the registered enemies.
func (c *Coordinator) Enemies() []*entity.Enemy {
	return append([]*entity.Enemy(nil), c.enemies...)
}

// Pending returns the number of scheduled events still live.
func (c *Coordinator) Pending() int { return c.sched.Pending() }

// Config returns the effective configuration.
func (c *Coordinator) Config() Config { return c.cfg }

// Summary returns the run summary so far.
func (c *Coordinator) Summary() Summary {
	return Summary{Seed: c.src.Seed(), Level: c.level, Rounds: c.rounds}
}
