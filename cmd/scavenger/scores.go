package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samdwyer/scavenger/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the longest-surviving runs, most days first.

Examples:
  scavenger scores
  scavenger scores --limit 20`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer store.Close()

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Best Runs")
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'scavenger play' to set the first record!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-5s  %-6s  %-20s  %s\n", "Rank", "Days", "Rounds", "Seed", "Date")
	fmt.Fprintf(out, "  %-4s  %-5s  %-6s  %-20s  %s\n", "----", "----", "------", "----", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-5d  %-6d  %-20d  %s\n", i+1, r.Days, r.Rounds, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
