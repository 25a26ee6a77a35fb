package world

import (
	"context"
	"fmt"
	"math/bits"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/scavenger/internal/rng"
	"github.com/samdwyer/scavenger/internal/telemetry"
)

// EnemyCount returns floor(log2(level)), or 0 for levels below 2.
func EnemyCount(level int) int {
	if level < 2 {
		return 0
	}
	return bits.Len(uint(level)) - 1
}

// Generator lays out levels. All random draws go through one Source so a
// fixed seed reproduces every level in sequence.
type Generator struct {
	params Params
	src    rng.Source
	pool   positionPool
}

// NewGenerator validates params and returns a generator drawing from src.
func NewGenerator(params Params, src rng.Source) (*Generator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Generator{params: params, src: src}, nil
}

// Params returns the generation parameters.
func (g *Generator) Params() Params {
	return g.params
}

// GenerateLevel builds the board for the given level.
// On error no board is returned; callers must keep their previous state.
func (g *Generator) GenerateLevel(ctx context.Context, level int) (*Board, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "board.generate")
	defer span.End()

	startTime := time.Now()
	p := g.params

	board := &Board{
		Columns: p.Columns,
		Rows:    p.Rows,
		Level:   level,
		Exit:    Cell{X: p.Columns - 1, Y: p.Rows - 1},
	}

	g.setupFloor(board)
	g.pool.reset(p.Columns, p.Rows)

	enemies := EnemyCount(level)
	layouts := []struct {
		kind     Kind
		pool     []string
		min, max int
	}{
		{KindWall, p.Pools.Wall, p.WallCount.Min, p.WallCount.Max},
		{KindFood, p.Pools.Food, p.FoodCount.Min, p.FoodCount.Max},
		{KindEnemy, p.Pools.Enemy, enemies, enemies},
	}
	for _, l := range layouts {
		if err := g.layoutAtRandom(board, l.kind, l.pool, l.min, l.max); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "generation failed")
			return nil, fmt.Errorf("level %d: %w", level, err)
		}
	}

	board.Placements = append(board.Placements, Placement{
		Kind:   KindExit,
		Cell:   board.Exit,
		Prefab: p.Pools.Exit,
	})

	span.SetAttributes(
		attribute.Int("board.columns", p.Columns),
		attribute.Int("board.rows", p.Rows),
		attribute.Int("board.level", level),
		attribute.Int("board.walls", board.Count(KindWall)),
		attribute.Int("board.food", board.Count(KindFood)),
		attribute.Int("board.enemies", board.Count(KindEnemy)),
		attribute.Int64("board.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return board, nil
}

// setupFloor lays a floor tile on every cell of [-1, columns] x [-1, rows]
// and swaps it for an outer wall on the ring.
func (g *Generator) setupFloor(board *Board) {
	p := g.params
	board.Tiles = make([]TileSpot, 0, (p.Columns+2)*(p.Rows+2))
	for x := -1; x < p.Columns+1; x++ {
		for y := -1; y < p.Rows+1; y++ {
			spot := TileSpot{
				Cell:   Cell{X: x, Y: y},
				Tile:   TileFloor,
				Prefab: rng.Pick(g.src, p.Pools.Floor),
			}
			if x == -1 || x == p.Columns || y == -1 || y == p.Rows {
				spot.Tile = TileOuter
				spot.Prefab = rng.Pick(g.src, p.Pools.OuterWall)
			}
			board.Tiles = append(board.Tiles, spot)
		}
	}
}

// layoutAtRandom places between min and max (inclusive) objects of one kind,
// each on a cell claimed from the pool.
func (g *Generator) layoutAtRandom(board *Board, kind Kind, prefabs []string, min, max int) error {
	count := g.src.RangeInt(min, max+1)
	for i := 0; i < count; i++ {
		cell, err := g.pool.draw(g.src)
		if err != nil {
			return fmt.Errorf("place %s %d of %d: %w", kind, i+1, count, err)
		}
		board.Placements = append(board.Placements, Placement{
			Kind:   kind,
			Cell:   cell,
			Prefab: rng.Pick(g.src, prefabs),
		})
	}
	return nil
}

// GenerateLevel builds a single level with a throwaway generator.
func GenerateLevel(ctx context.Context, params Params, level int, src rng.Source) (*Board, error) {
	g, err := NewGenerator(params, src)
	if err != nil {
		return nil, err
	}
	return g.GenerateLevel(ctx, level)
}
