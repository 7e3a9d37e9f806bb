package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khanglvm/moodlog/internal/emotion"
	"github.com/khanglvm/moodlog/internal/suggest"
)

// NewLogCmd creates the 'log' command for journaling a new entry.
func NewLogCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "log <text>",
		Short: "Journal a new entry and classify its emotion",
		Long: `Analyze free-text for its primary emotion, store the entry in the journal,
and print the classification with a self-care suggestion and affirmation.`,
		Example: `  moodlog log "I am feeling very happy today!"
  moodlog log "anxious about tomorrow's presentation"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(dbPath, strings.Join(args, " "))
		},
	}

	addDBFlag(cmd, &dbPath)
	return cmd
}

// runLog records one entry and prints the analysis.
func runLog(dbPath, text string) error {
	sess, err := openSession(dbPath)
	if err != nil {
		return err
	}
	defer sess.Close()

	entry, result, err := sess.Record(text)
	if err != nil {
		return err
	}

	fmt.Printf("Emotion:    %s\n", entry.Emotion)
	fmt.Printf("Confidence: %s\n", percent(entry.Confidence))
	fmt.Printf("Sentiment:  %+.2f\n", entry.SentimentScore)
	fmt.Println()
	fmt.Println(emotion.Explain(result))
	fmt.Println()
	fmt.Printf("Suggestion:  %s\n", sess.Suggestor.Suggestion(entry.Emotion))
	fmt.Printf("Affirmation: %s\n", suggest.Affirmation(entry.Emotion))

	return nil
}
