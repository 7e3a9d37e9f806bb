package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewInsightsCmd creates the 'insights' command.
func NewInsightsCmd() *cobra.Command {
	var dbPath string
	var days int

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Show natural-language observations about your mood",
		Example: `  moodlog insights
  moodlog insights --days 30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInsights(dbPath, days)
		},
	}

	cmd.Flags().IntVar(&days, "days", 14, "Lookback window in days")
	addDBFlag(cmd, &dbPath)
	return cmd
}

// runInsights prints the generated insight lines.
func runInsights(dbPath string, days int) error {
	sess, err := openSession(dbPath)
	if err != nil {
		return err
	}
	defer sess.Close()

	insights := sess.Stats.Insights(days)
	if len(insights) == 0 {
		fmt.Printf("No entries in the last %d days to draw insights from.\n", days)
		return nil
	}

	for _, insight := range insights {
		fmt.Printf("  • %s\n", insight)
	}
	return nil
}
