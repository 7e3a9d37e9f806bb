package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// defaultSearchLimit caps search output.
const defaultSearchLimit = 10

// NewSearchCmd creates the 'search' command for full-text search over
// journal entries.
func NewSearchCmd() *cobra.Command {
	var dbPath string
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Full-text search over journal entries",
		Example: `  moodlog search presentation
  moodlog search "job interview" --limit 5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(dbPath, strings.Join(args, " "), limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultSearchLimit, "Maximum results")
	addDBFlag(cmd, &dbPath)
	return cmd
}

// runSearch queries the entry index and prints hits, best first.
func runSearch(dbPath, query string, limit int) error {
	sess, err := openSession(dbPath)
	if err != nil {
		return err
	}
	defer sess.Close()

	matches, err := sess.Index.Search(query, limit)
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		fmt.Printf("No entries matched %q.\n", query)
		return nil
	}

	fmt.Printf("Matches for %q (%d):\n\n", query, len(matches))
	for _, match := range matches {
		fmt.Printf("  %s  %-14s %s\n",
			match.Timestamp.Format("2006-01-02 15:04"), match.Emotion, match.Text)
	}
	return nil
}
