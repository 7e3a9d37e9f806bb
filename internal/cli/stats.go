package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/khanglvm/moodlog/internal/emotion"
)

// NewStatsCmd creates the 'stats' command for windowed aggregates.
func NewStatsCmd() *cobra.Command {
	var dbPath string
	var days int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show mood statistics for a trailing window",
		Example: `  moodlog stats
  moodlog stats --days 30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(dbPath, days)
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Lookback window in days")
	addDBFlag(cmd, &dbPath)
	return cmd
}

// runStats prints the statistics snapshot for the window.
func runStats(dbPath string, days int) error {
	sess, err := openSession(dbPath)
	if err != nil {
		return err
	}
	defer sess.Close()

	snapshot := sess.Stats.Statistics(days)

	fmt.Printf("Mood statistics, last %d days:\n\n", days)
	fmt.Printf("  Entries:         %d\n", snapshot.TotalEntries)
	fmt.Printf("  Most common:     %s\n", snapshot.MostCommonEmotion)
	fmt.Printf("  Avg confidence:  %s\n", percent(snapshot.AvgConfidence))
	fmt.Printf("  Avg sentiment:   %+.2f\n", snapshot.AvgSentiment)
	fmt.Printf("  Trend:           %s\n", snapshot.Trend)

	if len(snapshot.EmotionDistribution) > 0 {
		fmt.Println("\n  Emotion distribution:")
		labels := make([]string, 0, len(snapshot.EmotionDistribution))
		for label := range snapshot.EmotionDistribution {
			labels = append(labels, string(label))
		}
		sort.Strings(labels)
		for _, label := range labels {
			fmt.Printf("    %-14s %d\n", label, snapshot.EmotionDistribution[emotion.Label(label)])
		}
	}

	if len(snapshot.DailyCounts) > 0 {
		fmt.Println("\n  Entries per day:")
		dates := make([]string, 0, len(snapshot.DailyCounts))
		for date := range snapshot.DailyCounts {
			dates = append(dates, date)
		}
		sort.Strings(dates)
		for _, date := range dates {
			fmt.Printf("    %s  %d\n", date, snapshot.DailyCounts[date])
		}
	}

	return nil
}
