package stats

import (
	"fmt"
	"strings"
)

// streakInsightLen is the run length at which a streak earns an insight line.
const streakInsightLen = 3

// Insights composes an ordered list of natural-language observations from
// the Statistics, Patterns, and Streaks outputs for the window. Pure string
// templating; all thresholds live in the three source computations.
func (e *Engine) Insights(daysBack int) []string {
	snapshot := e.Statistics(daysBack)
	patterns := e.Patterns(daysBack)
	streaks := e.Streaks()

	var insights []string

	if snapshot.TotalEntries > 0 {
		insights = append(insights,
			fmt.Sprintf("You've logged %d mood entries in the past %d days.", snapshot.TotalEntries, daysBack),
			fmt.Sprintf("Your most common emotion has been %s.", snapshot.MostCommonEmotion),
		)
	}

	switch snapshot.Trend {
	case TrendImproving:
		insights = append(insights, "Your overall mood has been trending upward recently. Keep up the positive momentum!")
	case TrendDeclining:
		insights = append(insights, "Your mood has been trending downward recently. Consider reaching out for support if needed.")
	case TrendStable:
		insights = append(insights, "Your mood has been relatively stable recently.")
	}

	// Lists every day present in the pattern map, not days ranked by entry
	// count. Known quirk, kept for output compatibility.
	if len(patterns.DayOrder) > 0 {
		insights = append(insights,
			fmt.Sprintf("You tend to log entries most often on %s.", strings.Join(patterns.DayOrder, ", ")))
	}

	if len(streaks) > 0 && streaks[0].Count >= streakInsightLen {
		insights = append(insights,
			fmt.Sprintf("You've had %d consecutive entries of %s.", streaks[0].Count, streaks[0].Emotion))
	}

	return insights
}
