package stats

import (
	"math"
	"testing"
	"time"

	"github.com/khanglvm/moodlog/internal/emotion"
	"github.com/khanglvm/moodlog/internal/journal"
)

// buildLog appends entries with evenly spaced recent timestamps, oldest
// first, preserving the given emotion/sentiment order.
func buildLog(t *testing.T, emotions []emotion.Label, sentiments []float64) *journal.Log {
	t.Helper()
	l := journal.NewLog()
	now := time.Now()
	for i, em := range emotions {
		sentiment := 0.0
		if sentiments != nil {
			sentiment = sentiments[i]
		}
		entry := journal.Entry{
			Timestamp:      now.Add(time.Duration(i-len(emotions)) * time.Minute),
			Text:           "entry",
			Emotion:        em,
			Confidence:     0.5,
			SentimentScore: sentiment,
		}
		if err := l.Append(entry); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	return l
}

func TestStatistics_EmptyWindow(t *testing.T) {
	engine := NewEngine(journal.NewLog())
	snapshot := engine.Statistics(7)

	if snapshot.TotalEntries != 0 {
		t.Errorf("expected 0 entries, got %d", snapshot.TotalEntries)
	}
	if snapshot.MostCommonEmotion != "none" {
		t.Errorf("expected most common \"none\", got %q", snapshot.MostCommonEmotion)
	}
	if snapshot.AvgConfidence != 0 || snapshot.AvgSentiment != 0 {
		t.Errorf("expected zero averages, got %f / %f", snapshot.AvgConfidence, snapshot.AvgSentiment)
	}
	if snapshot.Trend != TrendNoData {
		t.Errorf("expected trend %q, got %q", TrendNoData, snapshot.Trend)
	}
}

func TestStatistics_CountsAndAverages(t *testing.T) {
	l := buildLog(t,
		[]emotion.Label{emotion.Joy, emotion.Joy, emotion.Sadness},
		[]float64{0.6, 0.4, -0.2},
	)
	snapshot := NewEngine(l).Statistics(7)

	if snapshot.TotalEntries != 3 {
		t.Errorf("expected 3 entries, got %d", snapshot.TotalEntries)
	}
	if snapshot.MostCommonEmotion != "joy" {
		t.Errorf("expected joy, got %q", snapshot.MostCommonEmotion)
	}
	wantSentiment := (0.6 + 0.4 - 0.2) / 3
	if math.Abs(snapshot.AvgSentiment-wantSentiment) > 1e-9 {
		t.Errorf("expected avg sentiment %f, got %f", wantSentiment, snapshot.AvgSentiment)
	}
	if snapshot.EmotionDistribution[emotion.Joy] != 2 {
		t.Errorf("expected joy count 2, got %d", snapshot.EmotionDistribution[emotion.Joy])
	}
}

func TestStatistics_MostCommonTieBreaksByFirstSeen(t *testing.T) {
	l := buildLog(t,
		[]emotion.Label{emotion.Sadness, emotion.Joy, emotion.Joy, emotion.Sadness},
		nil,
	)
	snapshot := NewEngine(l).Statistics(7)

	// 2-2 tie; sadness was encountered first in the scan.
	if snapshot.MostCommonEmotion != "sadness" {
		t.Errorf("expected sadness on tie, got %q", snapshot.MostCommonEmotion)
	}
}

func TestStatistics_DailyCounts(t *testing.T) {
	l := buildLog(t, []emotion.Label{emotion.Joy, emotion.Joy}, nil)
	snapshot := NewEngine(l).Statistics(7)

	total := 0
	for _, count := range snapshot.DailyCounts {
		total += count
	}
	if total != 2 {
		t.Errorf("expected daily counts to sum to 2, got %d", total)
	}
}

func TestStatistics_TrendInsufficientData(t *testing.T) {
	l := buildLog(t,
		[]emotion.Label{emotion.Joy, emotion.Joy, emotion.Joy},
		[]float64{0.0, 0.5, 1.0},
	)
	snapshot := NewEngine(l).Statistics(7)

	if snapshot.Trend != TrendInsufficient {
		t.Errorf("expected trend %q for 3 entries, got %q", TrendInsufficient, snapshot.Trend)
	}
}

func TestStatistics_TrendImproving(t *testing.T) {
	l := buildLog(t,
		[]emotion.Label{emotion.Sadness, emotion.Sadness, emotion.Joy, emotion.Joy},
		[]float64{-0.5, -0.5, 0.5, 0.5},
	)
	snapshot := NewEngine(l).Statistics(7)

	if snapshot.Trend != TrendImproving {
		t.Errorf("expected trend %q, got %q", TrendImproving, snapshot.Trend)
	}
}

func TestStatistics_TrendDeclining(t *testing.T) {
	l := buildLog(t,
		[]emotion.Label{emotion.Joy, emotion.Joy, emotion.Sadness, emotion.Sadness},
		[]float64{0.5, 0.5, -0.5, -0.5},
	)
	snapshot := NewEngine(l).Statistics(7)

	if snapshot.Trend != TrendDeclining {
		t.Errorf("expected trend %q, got %q", TrendDeclining, snapshot.Trend)
	}
}

func TestStatistics_TrendStable(t *testing.T) {
	l := buildLog(t,
		[]emotion.Label{emotion.Joy, emotion.Joy, emotion.Joy, emotion.Joy},
		[]float64{0.3, 0.3, 0.35, 0.35},
	)
	snapshot := NewEngine(l).Statistics(7)

	if snapshot.Trend != TrendStable {
		t.Errorf("expected trend %q, got %q", TrendStable, snapshot.Trend)
	}
}

func TestStatistics_TrendOddCountSplitsExtraToSecondHalf(t *testing.T) {
	// 5 entries: first half is 2 entries, second half 3.
	// first mean = 0.0; second mean = (0.0+0.3+0.3)/3 = 0.2 => improving.
	l := buildLog(t,
		[]emotion.Label{emotion.Joy, emotion.Joy, emotion.Joy, emotion.Joy, emotion.Joy},
		[]float64{0.0, 0.0, 0.0, 0.3, 0.3},
	)
	snapshot := NewEngine(l).Statistics(7)

	if snapshot.Trend != TrendImproving {
		t.Errorf("expected trend %q, got %q", TrendImproving, snapshot.Trend)
	}
}
