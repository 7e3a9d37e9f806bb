/*
Package stats derives aggregate statistics, patterns, streaks, and
natural-language insights from the mood entry log.

Every computation reads a window of the log and recomputes from scratch; the
log is small enough per session that no caching is worthwhile.
*/
package stats

import (
	"github.com/khanglvm/moodlog/internal/emotion"
	"github.com/khanglvm/moodlog/internal/journal"
)

// Trend labels reported by Statistics.
const (
	TrendNoData       = "no data"
	TrendInsufficient = "insufficient data"
	TrendImproving    = "improving"
	TrendDeclining    = "declining"
	TrendStable       = "stable"
)

const (
	// trendMinEntries is the fewest entries a window needs before a trend
	// comparison is meaningful.
	trendMinEntries = 4

	// trendDelta is the half-to-half mean sentiment change needed to call
	// a trend improving or declining.
	trendDelta = 0.1
)

// Snapshot is the windowed aggregate view of the log, recomputed on demand.
type Snapshot struct {
	TotalEntries        int
	MostCommonEmotion   string
	AvgConfidence       float64
	AvgSentiment        float64
	EmotionDistribution map[emotion.Label]int
	DailyCounts         map[string]int
	Trend               string
}

// Engine computes statistics over one Log. Read-only: the engine never
// mutates the log.
type Engine struct {
	log *journal.Log
}

// NewEngine builds an Engine reading from log.
func NewEngine(log *journal.Log) *Engine {
	return &Engine{log: log}
}

// Statistics aggregates the entries of the trailing daysBack window. An
// empty window yields the documented zero snapshot with Trend "no data".
func (e *Engine) Statistics(daysBack int) Snapshot {
	entries := e.log.EntriesSince(daysBack)

	if len(entries) == 0 {
		return Snapshot{
			MostCommonEmotion:   "none",
			EmotionDistribution: map[emotion.Label]int{},
			DailyCounts:         map[string]int{},
			Trend:               TrendNoData,
		}
	}

	distribution := make(map[emotion.Label]int)
	daily := make(map[string]int)
	var firstSeen []emotion.Label
	var confidenceSum, sentimentSum float64

	for _, entry := range entries {
		if distribution[entry.Emotion] == 0 {
			firstSeen = append(firstSeen, entry.Emotion)
		}
		distribution[entry.Emotion]++
		daily[entry.Timestamp.Format("2006-01-02")]++
		confidenceSum += entry.Confidence
		sentimentSum += entry.SentimentScore
	}

	// Ties resolve to the emotion encountered first in the scan.
	mostCommon := firstSeen[0]
	for _, label := range firstSeen[1:] {
		if distribution[label] > distribution[mostCommon] {
			mostCommon = label
		}
	}

	n := float64(len(entries))
	return Snapshot{
		TotalEntries:        len(entries),
		MostCommonEmotion:   string(mostCommon),
		AvgConfidence:       confidenceSum / n,
		AvgSentiment:        sentimentSum / n,
		EmotionDistribution: distribution,
		DailyCounts:         daily,
		Trend:               sentimentTrend(entries),
	}
}

// sentimentTrend compares mean sentiment of the chronological first half
// against the second half. Odd counts put the extra entry in the second half.
func sentimentTrend(entries []journal.Entry) string {
	if len(entries) < trendMinEntries {
		return TrendInsufficient
	}

	mid := len(entries) / 2
	first := meanSentiment(entries[:mid])
	second := meanSentiment(entries[mid:])

	switch {
	case second > first+trendDelta:
		return TrendImproving
	case second < first-trendDelta:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func meanSentiment(entries []journal.Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0.0
	for _, entry := range entries {
		sum += entry.SentimentScore
	}
	return sum / float64(len(entries))
}
