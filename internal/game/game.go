package game

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/scavenger/internal/gamedata"
	"github.com/samdwyer/scavenger/internal/telemetry"
	"github.com/samdwyer/scavenger/internal/ui"
	"github.com/samdwyer/scavenger/internal/world"
)

// Audio is the sound service used by the interactive game.
type Audio interface {
	ui.AudioSink
	StartMusic()
}

// Options carries the optional collaborators of a Game.
type Options struct {
	Audio      Audio
	Logger     *log.Logger
	OnGameOver func(Summary)
}

// Game holds the entire interactive game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	scene    *ui.Scene
	coord    *Coordinator
	audio    Audio
	logger   *log.Logger
	tickRate int
	pending  world.Direction
	running  bool
}

// New creates a new game instance on the terminal.
func New(cfg Config, registry *gamedata.PrefabRegistry, opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var sink ui.AudioSink
	if opts.Audio != nil {
		sink = opts.Audio
	}
	scene := ui.NewScene(registry, sink)

	coord, err := NewCoordinator(cfg, registry, scene, logger)
	if err != nil {
		return nil, err
	}
	coord.OnGameOver = opts.OnGameOver

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		scene:    scene,
		coord:    coord,
		audio:    opts.Audio,
		logger:   logger,
		tickRate: coord.Config().TickRate,
		running:  true,
	}, nil
}

// Coordinator returns the turn coordinator driving this game.
func (g *Game) Coordinator() *Coordinator {
	return g.coord
}

// Run executes the main game loop until the player quits or ctx ends.
// Input is read on its own goroutine; every game mutation happens here.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	initCtx, initSpan := tracer.Start(ctx, "game.init")
	err := g.coord.Start(initCtx)
	initSpan.SetAttributes(
		attribute.Int64("seed", g.coord.Seed()),
		attribute.Int("tick_rate", g.tickRate),
	)
	initSpan.End()
	if err != nil {
		return err
	}
	g.startMusic()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)
	go g.pollEvents(events, done)

	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	for g.running {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			g.handleEvent(ctx, ev)
		case <-ticker.C:
			dir := g.pending
			g.pending = world.None
			if err := g.coord.Tick(ctx, dir); err != nil {
				return err
			}
			g.scene.Step()
			g.render()
		}
	}
	return nil
}

// pollEvents forwards terminal events until the screen is finalized.
func (g *Game) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		g.handleMouseEvent(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input. The latest direction pressed
// before a tick wins.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ui.KeyAction(ev) {
	case ui.ActionQuit:
		g.running = false
		return
	case ui.ActionRestart:
		if g.coord.Phase() == PhaseGameOver {
			g.restart(ctx)
		}
		return
	}

	if dir := ui.KeyDirection(ev); !dir.IsZero() {
		g.pending = dir
	}
}

// handleMouseEvent turns a left click into a step along the dominant axis.
func (g *Game) handleMouseEvent(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	player := g.coord.Player()
	if player == nil {
		return
	}
	x, y := ev.Position()
	if dir := ui.ClickDirection(player.Cell(), g.renderer.ScreenToCell(x, y)); !dir.IsZero() {
		g.pending = dir
	}
}

func (g *Game) restart(ctx context.Context) {
	if err := g.coord.Start(ctx); err != nil {
		g.logger.Error("restart failed", "err", err)
		g.running = false
		return
	}
	g.logger.Info("run restarted", "seed", g.coord.Seed())
	g.startMusic()
}

func (g *Game) startMusic() {
	if g.audio != nil {
		g.audio.StartMusic()
	}
}

func (g *Game) render() {
	board := g.coord.Board()
	if board == nil {
		return
	}
	g.renderer.Render(g.scene, board.Columns, board.Rows)
	if g.coord.Phase() == PhaseGameOver {
		g.renderer.RenderMessage("r: play again  q: quit")
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
