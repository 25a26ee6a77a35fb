// Package config provides YAML-based configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/samdwyer/scavenger/internal/entity"
	"github.com/samdwyer/scavenger/internal/game"
	"github.com/samdwyer/scavenger/internal/world"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all configuration for the game.
type Config struct {
	Seed    int64         `yaml:"seed"`
	Board   BoardConfig   `yaml:"board"`
	Player  PlayerConfig  `yaml:"player"`
	Timing  TimingConfig  `yaml:"timing"`
	Audio   AudioConfig   `yaml:"audio"`
	Storage StorageConfig `yaml:"storage"`
}

// BoardConfig defines the board size and placement counts.
type BoardConfig struct {
	Columns   int         `yaml:"columns"`
	Rows      int         `yaml:"rows"`
	WallCount world.Range `yaml:"wall_count"`
	FoodCount world.Range `yaml:"food_count"`
}

// PlayerConfig defines the player's food economy.
type PlayerConfig struct {
	StartingFood  int `yaml:"starting_food"`
	WallDamage    int `yaml:"wall_damage"`
	PointsPerFood int `yaml:"points_per_food"`
	PointsPerSoda int `yaml:"points_per_soda"`
}

// TimingConfig defines the tick rate and the delayed transitions.
type TimingConfig struct {
	TickRate                 int           `yaml:"tick_rate"`
	TurnDelay                time.Duration `yaml:"turn_delay"`
	EnemyMoveDelay           time.Duration `yaml:"enemy_move_delay"`
	RestartDelay             time.Duration `yaml:"restart_delay"`
	LevelStartDelay          time.Duration `yaml:"level_start_delay"`
	PlayerMoveTime           time.Duration `yaml:"player_move_time"`
	EnemyInvocationsPerRound int           `yaml:"enemy_invocations_per_round"`
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// StorageConfig defines where run history is kept.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Columns:   world.DefaultColumns,
			Rows:      world.DefaultRows,
			WallCount: world.Range{Min: 5, Max: 9},
			FoodCount: world.Range{Min: 1, Max: 5},
		},
		Player: PlayerConfig{
			StartingFood:  100,
			WallDamage:    1,
			PointsPerFood: 10,
			PointsPerSoda: 20,
		},
		Timing: TimingConfig{
			TickRate:                 60,
			TurnDelay:                100 * time.Millisecond,
			EnemyMoveDelay:           100 * time.Millisecond,
			RestartDelay:             time.Second,
			LevelStartDelay:          2 * time.Second,
			PlayerMoveTime:           100 * time.Millisecond,
			EnemyInvocationsPerRound: 2,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Storage: StorageConfig{
			Path: "~/.scavenger/runs.db",
		},
	}
}

// Validate reports every problem in the configuration at once.
func (c Config) Validate() error {
	var problems []error
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf(format, args...))
	}

	if c.Board.Columns <= 0 || c.Board.Rows <= 0 {
		add("board: size %dx%d must be positive", c.Board.Columns, c.Board.Rows)
	}
	for name, r := range map[string]world.Range{
		"wall_count": c.Board.WallCount,
		"food_count": c.Board.FoodCount,
	} {
		if r.Min < 0 {
			add("board.%s: min %d is negative", name, r.Min)
		}
		if r.Max < r.Min {
			add("board.%s: range [%d, %d] is inverted", name, r.Min, r.Max)
		}
	}

	if c.Player.StartingFood <= 0 {
		add("player.starting_food: must be positive, got %d", c.Player.StartingFood)
	}
	for name, v := range map[string]int{
		"wall_damage":     c.Player.WallDamage,
		"points_per_food": c.Player.PointsPerFood,
		"points_per_soda": c.Player.PointsPerSoda,
	} {
		if v < 0 {
			add("player.%s: must not be negative, got %d", name, v)
		}
	}

	if c.Timing.TickRate <= 0 {
		add("timing.tick_rate: must be positive, got %d", c.Timing.TickRate)
	}
	for name, d := range map[string]time.Duration{
		"turn_delay":        c.Timing.TurnDelay,
		"enemy_move_delay":  c.Timing.EnemyMoveDelay,
		"restart_delay":     c.Timing.RestartDelay,
		"level_start_delay": c.Timing.LevelStartDelay,
		"player_move_time":  c.Timing.PlayerMoveTime,
	} {
		if d < 0 {
			add("timing.%s: must not be negative, got %s", name, d)
		}
	}
	if c.Timing.EnemyInvocationsPerRound < 1 {
		add("timing.enemy_invocations_per_round: must be at least 1, got %d", c.Timing.EnemyInvocationsPerRound)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		add("audio.volume: must be within [0, 1], got %g", c.Audio.Volume)
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(problems...))
	}
	return nil
}

// Game converts the configuration to game settings. Tile pools are filled
// in from the prefab registry by the coordinator.
func (c Config) Game() game.Config {
	cfg := game.DefaultConfig()
	cfg.Seed = c.Seed

	cfg.Board.Columns = c.Board.Columns
	cfg.Board.Rows = c.Board.Rows
	cfg.Board.WallCount = c.Board.WallCount
	cfg.Board.FoodCount = c.Board.FoodCount

	cfg.Player = entity.PlayerConfig{
		WallDamage:    c.Player.WallDamage,
		PointsPerFood: c.Player.PointsPerFood,
		PointsPerSoda: c.Player.PointsPerSoda,
	}
	cfg.StartingFood = c.Player.StartingFood

	cfg.TickRate = c.Timing.TickRate
	cfg.TurnDelay = c.Timing.TurnDelay
	cfg.EnemyMoveDelay = c.Timing.EnemyMoveDelay
	cfg.RestartDelay = c.Timing.RestartDelay
	cfg.LevelStartDelay = c.Timing.LevelStartDelay
	cfg.PlayerMoveTime = c.Timing.PlayerMoveTime
	cfg.EnemyInvocationsPerRound = c.Timing.EnemyInvocationsPerRound
	return cfg
}
