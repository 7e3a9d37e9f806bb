package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khanglvm/moodlog/internal/emotion"
)

// NewAnalyzeCmd creates the 'analyze' command: classification without
// storing anything.
func NewAnalyzeCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "analyze <text>",
		Short: "Classify text without journaling it",
		Example: `  moodlog analyze "I can't stop worrying about everything"
  moodlog analyze --json "what a great day"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(strings.Join(args, " "), jsonOutput)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	return cmd
}

// analysisOutput is the JSON shape of an analyze result.
type analysisOutput struct {
	PrimaryEmotion string             `json:"primary_emotion"`
	Confidence     float64            `json:"confidence"`
	SentimentScore float64            `json:"sentiment_score"`
	EmotionScores  map[string]float64 `json:"emotion_scores"`
}

// runAnalyze classifies text and prints the result.
func runAnalyze(text string, jsonOutput bool) error {
	classifier := emotion.NewClassifier()
	result := classifier.Analyze(text)

	if jsonOutput {
		scores := make(map[string]float64, len(result.EmotionScores))
		for label, score := range result.EmotionScores {
			if score > 0 {
				scores[string(label)] = score
			}
		}
		out, err := json.MarshalIndent(analysisOutput{
			PrimaryEmotion: string(result.PrimaryEmotion),
			Confidence:     result.Confidence,
			SentimentScore: result.SentimentScore,
			EmotionScores:  scores,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal analysis: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("Emotion:    %s\n", result.PrimaryEmotion)
	fmt.Printf("Confidence: %s\n", percent(result.Confidence))
	fmt.Printf("Sentiment:  %+.2f\n", result.SentimentScore)
	fmt.Println()
	fmt.Println(emotion.Explain(result))
	return nil
}
