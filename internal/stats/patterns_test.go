package stats

import (
	"testing"
	"time"

	"github.com/khanglvm/moodlog/internal/emotion"
	"github.com/khanglvm/moodlog/internal/journal"
)

// appendAt appends an entry with an explicit timestamp.
func appendAt(t *testing.T, l *journal.Log, ts time.Time, em emotion.Label) {
	t.Helper()
	err := l.Append(journal.Entry{Timestamp: ts, Text: "entry", Emotion: em, Confidence: 0.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// todayAt returns today's date at the given local hour, which always falls
// inside any positive lookback window.
func todayAt(hour int) time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, time.Local)
}

func TestTimeBucket_Boundaries(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{5, BucketMorning},
		{11, BucketMorning},
		{12, BucketAfternoon},
		{16, BucketAfternoon},
		{17, BucketEvening},
		{21, BucketEvening},
		{22, BucketNight},
		{23, BucketNight},
		{0, BucketNight},
		{4, BucketNight},
	}

	for _, tc := range cases {
		if got := timeBucket(tc.hour); got != tc.want {
			t.Errorf("hour %d: expected %s, got %s", tc.hour, tc.want, got)
		}
	}
}

func TestPatterns_EmptyWindow(t *testing.T) {
	p := NewEngine(journal.NewLog()).Patterns(30)

	if len(p.DayPatterns) != 0 || len(p.TimePatterns) != 0 {
		t.Errorf("expected empty patterns, got %+v", p)
	}
}

func TestPatterns_GroupsByTimeOfDay(t *testing.T) {
	l := journal.NewLog()
	appendAt(t, l, todayAt(8), emotion.Anxiety)
	appendAt(t, l, todayAt(9), emotion.Anxiety)
	appendAt(t, l, todayAt(10), emotion.Joy)
	appendAt(t, l, todayAt(19), emotion.Trust)

	p := NewEngine(l).Patterns(30)

	if p.TimePatterns[BucketMorning] != emotion.Anxiety {
		t.Errorf("expected morning anxiety, got %s", p.TimePatterns[BucketMorning])
	}
	if p.TimePatterns[BucketEvening] != emotion.Trust {
		t.Errorf("expected evening trust, got %s", p.TimePatterns[BucketEvening])
	}
	if _, ok := p.TimePatterns[BucketAfternoon]; ok {
		t.Error("expected no afternoon bucket without entries")
	}
}

func TestPatterns_GroupsByWeekday(t *testing.T) {
	l := journal.NewLog()
	ts := todayAt(9)
	appendAt(t, l, ts, emotion.Joy)
	appendAt(t, l, ts.Add(time.Hour), emotion.Joy)
	appendAt(t, l, ts.Add(2*time.Hour), emotion.Sadness)

	p := NewEngine(l).Patterns(30)

	day := ts.Weekday().String()
	if p.DayPatterns[day] != emotion.Joy {
		t.Errorf("expected %s to map to joy, got %s", day, p.DayPatterns[day])
	}
	if len(p.DayOrder) != 1 || p.DayOrder[0] != day {
		t.Errorf("expected day order [%s], got %v", day, p.DayOrder)
	}
}

func TestPatterns_TieBreaksByFirstSeen(t *testing.T) {
	l := journal.NewLog()
	ts := todayAt(9)
	appendAt(t, l, ts, emotion.Fear)
	appendAt(t, l, ts.Add(time.Minute), emotion.Joy)
	appendAt(t, l, ts.Add(2*time.Minute), emotion.Joy)
	appendAt(t, l, ts.Add(3*time.Minute), emotion.Fear)

	p := NewEngine(l).Patterns(30)

	if p.TimePatterns[BucketMorning] != emotion.Fear {
		t.Errorf("expected fear on tie, got %s", p.TimePatterns[BucketMorning])
	}
}
