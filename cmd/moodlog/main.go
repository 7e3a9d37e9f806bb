/*
Package main is the entry point for the moodlog CLI.

moodlog is a journaling companion: it classifies free-text entries into a
primary emotion with a confidence score, keeps a timeline of entries, and
derives statistics, patterns, streaks, and insights from it.

Usage:
  moodlog [command]

Available Commands:
  log         Journal a new entry and classify its emotion
  analyze     Classify text without journaling it
  stats       Show mood statistics for a trailing window
  patterns    Show weekday and time-of-day emotion patterns
  streaks     Show consecutive same-emotion runs
  insights    Show natural-language observations about your mood
  history     List journal entries in a trailing window
  search      Full-text search over journal entries
  export      Export journal entries as CSV or JSON
  version     Show version information

Examples:
  # Journal an entry
  moodlog log "I am feeling very happy today!"

  # See the last week's statistics
  moodlog stats

  # Export everything as JSON
  moodlog export --format json --output mood.json
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khanglvm/moodlog/internal/cli"
	"github.com/khanglvm/moodlog/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "moodlog",
		Short: "Journal your mood and understand your emotional patterns",
		Long: `moodlog classifies journal entries into emotions using a keyword lexicon
combined with two sentiment estimators, and derives statistics, patterns,
streaks, and insights from your entry timeline.

All data stays local in ~/.moodlog/journal.db.`,
		Version:       version.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		cli.NewLogCmd(),
		cli.NewAnalyzeCmd(),
		cli.NewStatsCmd(),
		cli.NewPatternsCmd(),
		cli.NewStreaksCmd(),
		cli.NewInsightsCmd(),
		cli.NewHistoryCmd(),
		cli.NewSearchCmd(),
		cli.NewExportCmd(),
		cli.NewVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
