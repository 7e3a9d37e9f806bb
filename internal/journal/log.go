/*
Package journal holds the append-only mood entry log.

A Log is single-writer, multi-reader: reads return copies, so callers can
never mutate stored entries. Entries are immutable once appended and are
never edited or deleted within a session.
*/
package journal

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/khanglvm/moodlog/internal/emotion"
)

// Precondition errors reported by AddEntry/Append. Out-of-range numeric
// inputs indicate an upstream bug and fail fast rather than being clamped.
var (
	ErrConfidenceRange = errors.New("confidence must be within [0, 1]")
	ErrSentimentRange  = errors.New("sentiment score must be within [-1, 1]")
	ErrUnknownEmotion  = errors.New("unknown emotion label")
)

// Entry is one journaled observation. All fields are immutable after append.
type Entry struct {
	Timestamp      time.Time     `json:"timestamp"`
	Text           string        `json:"text"`
	Emotion        emotion.Label `json:"emotion"`
	Confidence     float64       `json:"confidence"`
	SentimentScore float64       `json:"sentiment_score"`
}

// Log is the append-only store of entries, ordered by insertion.
type Log struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewLog creates an empty Log.
func NewLog() *Log {
	return &Log{}
}

// AddEntry validates the inputs, stamps the current time, and appends a new
// entry. Returns the stored entry.
func (l *Log) AddEntry(text string, em emotion.Label, confidence, sentimentScore float64) (Entry, error) {
	entry := Entry{
		Timestamp:      time.Now(),
		Text:           text,
		Emotion:        em,
		Confidence:     confidence,
		SentimentScore: sentimentScore,
	}
	if err := l.Append(entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// Append validates and appends an entry with its existing timestamp. Used to
// restore persisted entries; AddEntry is the normal write path.
func (l *Log) Append(entry Entry) error {
	if !emotion.Valid(entry.Emotion) {
		return fmt.Errorf("%w: %q", ErrUnknownEmotion, entry.Emotion)
	}
	if entry.Confidence < 0 || entry.Confidence > 1 {
		return fmt.Errorf("%w: got %g", ErrConfidenceRange, entry.Confidence)
	}
	if entry.SentimentScore < -1 || entry.SentimentScore > 1 {
		return fmt.Errorf("%w: got %g", ErrSentimentRange, entry.SentimentScore)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	return nil
}

// Entries returns a copy of every entry in insertion order.
func (l *Log) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// EntriesSince returns a copy of the entries whose timestamp falls within
// the trailing daysBack window, preserving insertion order.
func (l *Log) EntriesSince(daysBack int) []Entry {
	cutoff := time.Now().Add(-time.Duration(daysBack) * 24 * time.Hour)

	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []Entry
	for _, entry := range l.entries {
		if !entry.Timestamp.Before(cutoff) {
			out = append(out, entry)
		}
	}
	return out
}

// Len returns the number of stored entries.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
