package world

import (
	"errors"
	"fmt"
)

// Default board parameters.
const (
	DefaultColumns = 8
	DefaultRows    = 8
)

var (
	// ErrInvalidParams is returned when generation parameters are rejected.
	ErrInvalidParams = errors.New("invalid generation parameters")
	// ErrPoolExhausted is returned when a placement is requested but no
	// unclaimed interior cell is left.
	ErrPoolExhausted = errors.New("unclaimed position pool exhausted")
)

// Range is an inclusive integer range.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// TilePools lists the prefab ids a placement may be drawn from.
type TilePools struct {
	Floor     []string
	Wall      []string
	Food      []string
	Enemy     []string
	OuterWall []string
	Exit      string
}

// Params configures level generation.
type Params struct {
	Columns   int
	Rows      int
	WallCount Range
	FoodCount Range
	Pools     TilePools
}

// DefaultParams returns the classic 8x8 board with anonymous prefab pools.
func DefaultParams() Params {
	return Params{
		Columns:   DefaultColumns,
		Rows:      DefaultRows,
		WallCount: Range{Min: 5, Max: 9},
		FoodCount: Range{Min: 1, Max: 5},
		Pools: TilePools{
			Floor:     []string{"floor"},
			Wall:      []string{"wall"},
			Food:      []string{"food"},
			Enemy:     []string{"enemy"},
			OuterWall: []string{"outer_wall"},
			Exit:      "exit",
		},
	}
}

// InteriorCells returns the number of cells available for random placement.
func (p Params) InteriorCells() int {
	if p.Columns < 3 || p.Rows < 3 {
		return 0
	}
	return (p.Columns - 2) * (p.Rows - 2)
}

// Validate checks the parameters and reports every problem found.
func (p Params) Validate() error {
	var problems []error
	if p.Columns <= 0 || p.Rows <= 0 {
		problems = append(problems, fmt.Errorf("board size %dx%d must be positive", p.Columns, p.Rows))
	}
	if err := p.WallCount.validate("wall count"); err != nil {
		problems = append(problems, err)
	}
	if err := p.FoodCount.validate("food count"); err != nil {
		problems = append(problems, err)
	}
	for name, pool := range map[string][]string{
		"floor":      p.Pools.Floor,
		"wall":       p.Pools.Wall,
		"food":       p.Pools.Food,
		"enemy":      p.Pools.Enemy,
		"outer wall": p.Pools.OuterWall,
	} {
		if len(pool) == 0 {
			problems = append(problems, fmt.Errorf("%s tile pool is empty", name))
		}
	}
	if p.Pools.Exit == "" {
		problems = append(problems, errors.New("exit prefab is not set"))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidParams, errors.Join(problems...))
	}
	return nil
}

func (r Range) validate(name string) error {
	if r.Min < 0 {
		return fmt.Errorf("%s minimum %d is negative", name, r.Min)
	}
	if r.Max < r.Min {
		return fmt.Errorf("%s range [%d, %d] is inverted", name, r.Min, r.Max)
	}
	return nil
}
