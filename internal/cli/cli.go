/*
Package cli implements the moodlog command surface.

Each command opens its own Session against the journal database, runs, and
closes it. The database path is overridable with --db on every command.
*/
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khanglvm/moodlog/internal/session"
	"github.com/khanglvm/moodlog/internal/storage"
)

// openSession resolves the database path (flag value or default) and opens a
// Session.
func openSession(dbPath string) (*session.Session, error) {
	if dbPath == "" {
		var err error
		dbPath, err = storage.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return session.Open(dbPath)
}

// addDBFlag registers the shared --db flag on a command.
func addDBFlag(cmd *cobra.Command, dbPath *string) {
	cmd.Flags().StringVar(dbPath, "db", "", "Journal database path (default: ~/.moodlog/journal.db)")
}

// percent formats a [0,1] fraction for display.
func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}
