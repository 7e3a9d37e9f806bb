package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the 'history' command for listing entries.
func NewHistoryCmd() *cobra.Command {
	var dbPath string
	var days int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List journal entries in a trailing window",
		Example: `  moodlog history
  moodlog history --days 30 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(dbPath, days, jsonOutput)
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Lookback window in days")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	addDBFlag(cmd, &dbPath)
	return cmd
}

// runHistory lists the entries of the window, oldest first.
func runHistory(dbPath string, days int, jsonOutput bool) error {
	sess, err := openSession(dbPath)
	if err != nil {
		return err
	}
	defer sess.Close()

	entries := sess.Log.EntriesSince(days)

	if jsonOutput {
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal entries: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	if len(entries) == 0 {
		fmt.Printf("No entries in the last %d days.\n", days)
		return nil
	}

	fmt.Printf("Entries, last %d days (%d):\n\n", days, len(entries))
	for _, entry := range entries {
		fmt.Printf("  %s  %-14s %s  %s\n",
			entry.Timestamp.Format("2006-01-02 15:04"),
			entry.Emotion,
			percent(entry.Confidence),
			entry.Text,
		)
	}
	return nil
}
