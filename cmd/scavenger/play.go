package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/samdwyer/scavenger/internal/audio"
	"github.com/samdwyer/scavenger/internal/game"
	"github.com/samdwyer/scavenger/internal/gamedata"
	"github.com/samdwyer/scavenger/internal/rng"
	"github.com/samdwyer/scavenger/internal/storage"
)

var (
	flagNoAudio bool
	flagLogPath string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a new run on day 1.

Controls:
  Arrows/WASD/hjkl - Move (bumping a wall chops it)
  Left click       - Step towards the clicked cell
  R/Enter          - Play again (after game over)
  Q/Esc/Ctrl+C     - Quit

Examples:
  scavenger play
  scavenger play --seed 42 --no-audio
  scavenger play --config ./my-scavenger.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newFileLogger(flagLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := cmd.Context()
	defer setupTelemetry(ctx, logger)()

	registry, err := gamedata.LoadPrefabRegistry()
	if err != nil {
		return fmt.Errorf("load prefabs: %w", err)
	}

	opts := game.Options{Logger: logger}

	if cfg.Audio.Enabled && !flagNoAudio {
		sounds := audio.NewSoundManager(cfg.Audio.Volume, rng.New(0), logger)
		if err := sounds.Initialize(); err != nil {
			logger.Warn("audio unavailable, playing silently", "err", err)
		}
		defer sounds.Cleanup()
		opts.Audio = sounds
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("run history unavailable", "err", err)
	} else {
		defer store.Close()
		opts.OnGameOver = func(s game.Summary) {
			id, err := store.SaveRun(storage.Run{Seed: s.Seed, Days: s.Level, Rounds: s.Rounds})
			if err != nil {
				logger.Error("saving run failed", "err", err)
				return
			}
			logger.Info("run saved", "id", id, "days", s.Level, "rounds", s.Rounds)
		}
	}

	g, err := game.New(cfg.Game(), registry, opts)
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}
	defer g.Close()

	logger.Info("starting run", "seed", g.Coordinator().Seed())
	return g.Run(ctx)
}

// newFileLogger logs to path, creating its directory. A leading ~ is the home directory.
func newFileLogger(path string) (*log.Logger, func(), error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "scavenger",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
