package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/samdwyer/scavenger/internal/entity"
	"github.com/samdwyer/scavenger/internal/world"
)

// ErrNotRunning is returned by Tick before Start has succeeded.
var ErrNotRunning = errors.New("game: not running")

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible boards.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Board        world.Params
	Player       entity.PlayerConfig
	StartingFood int

	// TickRate is the number of scheduler ticks per second.
	TickRate int

	TurnDelay       time.Duration
	EnemyMoveDelay  time.Duration
	RestartDelay    time.Duration
	LevelStartDelay time.Duration
	PlayerMoveTime  time.Duration

	// EnemyInvocationsPerRound is how many times each enemy's move is
	// invoked per round. Enemies skip every other invocation, so 2 gives
	// one step per round.
	EnemyInvocationsPerRound int
}

// DefaultConfig returns the classic game settings.
func DefaultConfig() Config {
	return Config{
		Board:                    world.DefaultParams(),
		Player:                   entity.DefaultPlayerConfig(),
		StartingFood:             100,
		TickRate:                 60,
		TurnDelay:                100 * time.Millisecond,
		EnemyMoveDelay:           100 * time.Millisecond,
		RestartDelay:             time.Second,
		LevelStartDelay:          2 * time.Second,
		PlayerMoveTime:           100 * time.Millisecond,
		EnemyInvocationsPerRound: 2,
	}
}

// Validate reports every problem with the timing and turn settings.
// Board rules are checked by world.Params.Validate.
func (c Config) Validate() error {
	var errs []error
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick rate must be positive, got %d", c.TickRate))
	}
	if c.StartingFood <= 0 {
		errs = append(errs, fmt.Errorf("starting food must be positive, got %d", c.StartingFood))
	}
	if c.EnemyInvocationsPerRound < 1 {
		errs = append(errs, fmt.Errorf("enemy invocations per round must be at least 1, got %d", c.EnemyInvocationsPerRound))
	}
	for name, d := range map[string]time.Duration{
		"turn delay":        c.TurnDelay,
		"enemy move delay":  c.EnemyMoveDelay,
		"restart delay":     c.RestartDelay,
		"level start delay": c.LevelStartDelay,
		"player move time":  c.PlayerMoveTime,
	} {
		if d < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %s", name, d))
		}
	}
	return errors.Join(errs...)
}

// Ticks converts a duration to scheduler ticks, rounding up.
func (c Config) Ticks(d time.Duration) int {
	if d <= 0 || c.TickRate <= 0 {
		return 0
	}
	n := int64(d) * int64(c.TickRate)
	return int((n + int64(time.Second) - 1) / int64(time.Second))
}
