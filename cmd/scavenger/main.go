// scavenger is a turn-based roguelike: cross each day's board to the exit
// before your food runs out.
//
// Usage:
//
//	scavenger                       - Play (same as 'scavenger play')
//	scavenger play                  - Play the game
//	scavenger generate --level <n>  - Print a generated board
//	scavenger scores                - Show the best runs
//
// Global flags:
//
//	--config <path> - Config file (default search: ~/.scavenger, ./configs, built-in)
//	--seed <value>  - RNG seed for reproducible boards
//	--db <path>     - Run history database
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/samdwyer/scavenger/internal/config"
	"github.com/samdwyer/scavenger/internal/telemetry"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagDBPath string
)

func main() {
	// Load .env file for local development. Not fatal: variables may be set directly.
	_ = godotenv.Load()

	setupOTelEnv()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scavenger",
	Short: "Scavenger - survive as many days as you can",
	Long: `Scavenger is a turn-based roguelike played in the terminal.

Each day is a small board of walls, food and enemies. Every step costs
one food; reach the exit in the top right corner to start the next day.

Available commands:
  play      - Play the game (default)
  generate  - Print a generated board
  scores    - View the best runs

Examples:
  scavenger
  scavenger play --seed 42
  scavenger generate --level 5 --seed 42
  scavenger scores`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (default from config)")

	// Play flags are shared with the root so plain 'scavenger' accepts them too.
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound")
	playCmd.Flags().StringVar(&flagLogPath, "log", "~/.scavenger/scavenger.log", "Log file (the terminal is used by the game)")
	rootCmd.Flags().AddFlagSet(playCmd.Flags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig loads the configuration and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return cfg, nil
}

// newStderrLogger returns the logger used by the non-interactive commands.
func newStderrLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "scavenger",
	})
}

// setupTelemetry starts tracing if a collector is configured.
// The returned function flushes and stops it.
func setupTelemetry(ctx context.Context, logger *log.Logger) func() {
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn("telemetry setup failed, running without tracing", "err", err)
		return func() {}
	}
	if telemetry.Configured() {
		logger.Info("telemetry enabled")
	}
	return func() {
		if err := shutdown(ctx); err != nil {
			logger.Error("telemetry shutdown failed", "err", err)
		}
	}
}

// setupOTelEnv maps SCAVENGER_* variables onto the standard OTEL_* ones.
func setupOTelEnv() {
	if endpoint := os.Getenv("SCAVENGER_OTLP_ENDPOINT"); endpoint != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", endpoint)
	}

	// Build headers here; a .env file may hold an unexpanded variable reference.
	apiKey := os.Getenv("SCAVENGER_OTLP_API_KEY")
	dataset := os.Getenv("SCAVENGER_OTLP_DATASET")
	if dataset == "" {
		dataset = "scavenger"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
