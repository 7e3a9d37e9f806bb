package stats

import (
	"github.com/khanglvm/moodlog/internal/emotion"
)

// Time-of-day bucket names, in reporting order.
const (
	BucketMorning   = "morning"
	BucketAfternoon = "afternoon"
	BucketEvening   = "evening"
	BucketNight     = "night"
)

// TimeBuckets lists the buckets in reporting order.
var TimeBuckets = []string{BucketMorning, BucketAfternoon, BucketEvening, BucketNight}

// Patterns maps weekdays and time-of-day buckets to their most frequent
// emotion within a window.
type Patterns struct {
	// DayPatterns keys are weekday names ("Monday"); DayOrder preserves
	// the order weekdays were first encountered in the scan.
	DayPatterns map[string]emotion.Label
	DayOrder    []string
	// TimePatterns keys are the bucket names; buckets with no entries
	// are absent.
	TimePatterns map[string]emotion.Label
}

// Patterns groups the window's entries by weekday and by time-of-day bucket
// and reports the most frequent emotion per group. Empty window yields empty
// maps.
func (e *Engine) Patterns(daysBack int) Patterns {
	entries := e.log.EntriesSince(daysBack)

	p := Patterns{
		DayPatterns:  map[string]emotion.Label{},
		TimePatterns: map[string]emotion.Label{},
	}
	if len(entries) == 0 {
		return p
	}

	byDay := map[string][]emotion.Label{}
	byBucket := map[string][]emotion.Label{}
	for _, entry := range entries {
		day := entry.Timestamp.Weekday().String()
		if _, seen := byDay[day]; !seen {
			p.DayOrder = append(p.DayOrder, day)
		}
		byDay[day] = append(byDay[day], entry.Emotion)

		bucket := timeBucket(entry.Timestamp.Hour())
		byBucket[bucket] = append(byBucket[bucket], entry.Emotion)
	}

	for day, emotions := range byDay {
		p.DayPatterns[day] = mostFrequent(emotions)
	}
	for bucket, emotions := range byBucket {
		p.TimePatterns[bucket] = mostFrequent(emotions)
	}
	return p
}

// timeBucket maps a local hour to its bucket: morning 05-11, afternoon
// 12-16, evening 17-21, night 22-04.
func timeBucket(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return BucketMorning
	case hour >= 12 && hour < 17:
		return BucketAfternoon
	case hour >= 17 && hour < 22:
		return BucketEvening
	default:
		return BucketNight
	}
}

// mostFrequent returns the label with the highest count; ties resolve to the
// label encountered first.
func mostFrequent(labels []emotion.Label) emotion.Label {
	counts := map[emotion.Label]int{}
	var order []emotion.Label
	for _, label := range labels {
		if counts[label] == 0 {
			order = append(order, label)
		}
		counts[label]++
	}

	best := order[0]
	for _, label := range order[1:] {
		if counts[label] > counts[best] {
			best = label
		}
	}
	return best
}
