package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewStreaksCmd creates the 'streaks' command.
func NewStreaksCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:     "streaks",
		Short:   "Show consecutive same-emotion runs",
		Example: `  moodlog streaks`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStreaks(dbPath)
		},
	}

	addDBFlag(cmd, &dbPath)
	return cmd
}

// runStreaks lists streaks from the most recent run to the oldest.
func runStreaks(dbPath string) error {
	sess, err := openSession(dbPath)
	if err != nil {
		return err
	}
	defer sess.Close()

	streaks := sess.Stats.Streaks()
	if len(streaks) == 0 {
		fmt.Println("No streaks yet; a streak needs at least 2 consecutive entries of the same emotion.")
		return nil
	}

	fmt.Printf("Emotion streaks (%d):\n\n", len(streaks))
	for _, streak := range streaks {
		fmt.Printf("  %-14s x%d  since %s\n",
			streak.Emotion, streak.Count, streak.StartDate.Format("2006-01-02 15:04"))
	}
	return nil
}
