package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khanglvm/moodlog/internal/journal"
)

// NewExportCmd creates the 'export' command.
func NewExportCmd() *cobra.Command {
	var dbPath string
	var format string
	var output string
	var noText bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export journal entries as CSV or JSON",
		Long: `Serialize every journal entry as delimited rows (csv) or structured
records (json), to stdout or a file. Timestamps are ISO-8601.`,
		Example: `  moodlog export
  moodlog export --format json --output mood.json
  moodlog export --no-text    # omit the journal text column`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(dbPath, format, output, !noText)
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "Output format: csv or json")
	cmd.Flags().StringVar(&output, "output", "", "Output path (default: stdout)")
	cmd.Flags().BoolVar(&noText, "no-text", false, "Omit the original text column")
	addDBFlag(cmd, &dbPath)
	return cmd
}

// runExport serializes entries in the requested format.
func runExport(dbPath, formatStr, output string, includeText bool) error {
	format, err := journal.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	sess, err := openSession(dbPath)
	if err != nil {
		return err
	}
	defer sess.Close()

	data, err := journal.Export(sess.Log.Entries(), format, includeText)
	if err != nil {
		return err
	}

	if output == "" {
		fmt.Print(data)
		return nil
	}

	if err := os.WriteFile(output, []byte(data), 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Printf("Exported %d entries to %s\n", sess.Log.Len(), output)
	return nil
}
