package stats

import (
	"time"

	"github.com/khanglvm/moodlog/internal/emotion"
)

// minStreakLen is the shortest run worth reporting.
const minStreakLen = 2

// Streak is a maximal run of consecutive same-emotion entries.
type Streak struct {
	Emotion emotion.Label
	// Count is the run length, always >= 2.
	Count int
	// StartDate is the timestamp of the oldest entry in the run.
	StartDate time.Time
}

// Streaks scans the full log (not window-limited) from the most recent entry
// backward, grouping consecutive same-emotion runs. Only runs of length >= 2
// are reported, ordered from the most recent run to the oldest.
func (e *Engine) Streaks() []Streak {
	entries := e.log.Entries()
	if len(entries) < minStreakLen {
		return nil
	}

	var streaks []Streak
	last := entries[len(entries)-1]
	current := Streak{Emotion: last.Emotion, Count: 1, StartDate: last.Timestamp}

	for i := len(entries) - 2; i >= 0; i-- {
		if entries[i].Emotion == current.Emotion {
			current.Count++
			current.StartDate = entries[i].Timestamp
			continue
		}
		if current.Count >= minStreakLen {
			streaks = append(streaks, current)
		}
		current = Streak{Emotion: entries[i].Emotion, Count: 1, StartDate: entries[i].Timestamp}
	}

	if current.Count >= minStreakLen {
		streaks = append(streaks, current)
	}
	return streaks
}
