package stats

import (
	"testing"
	"time"

	"github.com/khanglvm/moodlog/internal/emotion"
	"github.com/khanglvm/moodlog/internal/journal"
)

func TestStreaks_EmptyAndSingleEntryLogs(t *testing.T) {
	l := journal.NewLog()
	if got := NewEngine(l).Streaks(); len(got) != 0 {
		t.Errorf("expected no streaks on empty log, got %v", got)
	}

	appendAt(t, l, time.Now(), emotion.Joy)
	if got := NewEngine(l).Streaks(); len(got) != 0 {
		t.Errorf("expected no streaks with one entry, got %v", got)
	}
}

func TestStreaks_RunsOfOneAreExcluded(t *testing.T) {
	l := journal.NewLog()
	now := time.Now()
	appendAt(t, l, now.Add(-3*time.Hour), emotion.Joy)
	appendAt(t, l, now.Add(-2*time.Hour), emotion.Sadness)
	appendAt(t, l, now.Add(-1*time.Hour), emotion.Anger)

	if got := NewEngine(l).Streaks(); len(got) != 0 {
		t.Errorf("expected no streaks for alternating emotions, got %v", got)
	}
}

func TestStreaks_NewestFirstWithStartTimestamps(t *testing.T) {
	// Oldest to newest: joy, joy, sadness, sadness, sadness, anger.
	l := journal.NewLog()
	now := time.Now()
	order := []emotion.Label{
		emotion.Joy, emotion.Joy,
		emotion.Sadness, emotion.Sadness, emotion.Sadness,
		emotion.Anger,
	}
	timestamps := make([]time.Time, len(order))
	for i, em := range order {
		timestamps[i] = now.Add(time.Duration(i-len(order)) * time.Hour)
		appendAt(t, l, timestamps[i], em)
	}

	streaks := NewEngine(l).Streaks()

	if len(streaks) != 2 {
		t.Fatalf("expected 2 streaks, got %d", len(streaks))
	}

	// Trailing single anger entry is excluded; most recent run first.
	if streaks[0].Emotion != emotion.Sadness || streaks[0].Count != 3 {
		t.Errorf("expected first streak {sadness, 3}, got {%s, %d}", streaks[0].Emotion, streaks[0].Count)
	}
	if !streaks[0].StartDate.Equal(timestamps[2]) {
		t.Errorf("expected sadness streak to start at its oldest entry")
	}

	if streaks[1].Emotion != emotion.Joy || streaks[1].Count != 2 {
		t.Errorf("expected second streak {joy, 2}, got {%s, %d}", streaks[1].Emotion, streaks[1].Count)
	}
	if !streaks[1].StartDate.Equal(timestamps[0]) {
		t.Errorf("expected joy streak to start at its oldest entry")
	}
}

func TestStreaks_WholeLogIsOneRun(t *testing.T) {
	l := journal.NewLog()
	now := time.Now()
	for i := 0; i < 4; i++ {
		appendAt(t, l, now.Add(time.Duration(i-4)*time.Hour), emotion.Trust)
	}

	streaks := NewEngine(l).Streaks()

	if len(streaks) != 1 {
		t.Fatalf("expected 1 streak, got %d", len(streaks))
	}
	if streaks[0].Emotion != emotion.Trust || streaks[0].Count != 4 {
		t.Errorf("expected {trust, 4}, got {%s, %d}", streaks[0].Emotion, streaks[0].Count)
	}
}
