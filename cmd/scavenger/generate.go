package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samdwyer/scavenger/internal/gamedata"
	"github.com/samdwyer/scavenger/internal/rng"
	"github.com/samdwyer/scavenger/internal/world"
)

var (
	flagLevel int
	flagEach  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a generated board",
	Long: `Generate boards the way a run would and print them as text.

Levels are generated in sequence from the seed, so level N here matches
day N of a run played with the same seed and config.

Legend: # outer wall, . floor, W wall, f food, E enemy, x exit

Examples:
  scavenger generate --seed 42
  scavenger generate --seed 42 --level 8
  scavenger generate --seed 42 --level 4 --each`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to generate")
	generateCmd.Flags().BoolVar(&flagEach, "each", false, "Print every level up to --level")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if flagLevel < 1 {
		return fmt.Errorf("level must be at least 1, got %d", flagLevel)
	}

	logger := newStderrLogger()
	ctx := cmd.Context()
	defer setupTelemetry(ctx, logger)()

	registry, err := gamedata.LoadPrefabRegistry()
	if err != nil {
		return fmt.Errorf("load prefabs: %w", err)
	}
	params := cfg.Game().Board
	if params.Pools, err = registry.TilePools(); err != nil {
		return err
	}

	src := rng.New(cfg.Seed)
	gen, err := world.NewGenerator(params, src)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for level := 1; level <= flagLevel; level++ {
		board, err := gen.GenerateLevel(ctx, level)
		if err != nil {
			return err
		}
		if !flagEach && level != flagLevel {
			continue
		}
		fmt.Fprintf(out, "Day %d (seed %d): %d walls, %d food, %d enemies\n",
			level, src.Seed(),
			board.Count(world.KindWall), board.Count(world.KindFood), board.Count(world.KindEnemy))
		fmt.Fprintln(out, board.String())
	}
	return nil
}
