package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khanglvm/moodlog/internal/stats"
)

// NewPatternsCmd creates the 'patterns' command for weekday/time-of-day
// patterns.
func NewPatternsCmd() *cobra.Command {
	var dbPath string
	var days int

	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "Show weekday and time-of-day emotion patterns",
		Example: `  moodlog patterns
  moodlog patterns --days 60`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatterns(dbPath, days)
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "Lookback window in days")
	addDBFlag(cmd, &dbPath)
	return cmd
}

// runPatterns prints pattern groupings for the window.
func runPatterns(dbPath string, days int) error {
	sess, err := openSession(dbPath)
	if err != nil {
		return err
	}
	defer sess.Close()

	patterns := sess.Stats.Patterns(days)

	if len(patterns.DayPatterns) == 0 && len(patterns.TimePatterns) == 0 {
		fmt.Printf("No entries in the last %d days.\n", days)
		return nil
	}

	if len(patterns.DayPatterns) > 0 {
		fmt.Println("By day of week:")
		for _, day := range patterns.DayOrder {
			fmt.Printf("  %-10s %s\n", day, patterns.DayPatterns[day])
		}
	}

	if len(patterns.TimePatterns) > 0 {
		fmt.Println("\nBy time of day:")
		for _, bucket := range stats.TimeBuckets {
			if label, ok := patterns.TimePatterns[bucket]; ok {
				fmt.Printf("  %-10s %s\n", bucket, label)
			}
		}
	}

	return nil
}
