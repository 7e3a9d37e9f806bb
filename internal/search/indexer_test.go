package search

import (
	"testing"
	"time"

	"github.com/khanglvm/moodlog/internal/emotion"
	"github.com/khanglvm/moodlog/internal/journal"
)

func newTestIndexer(t *testing.T) *Indexer {
	t.Helper()
	indexer, err := NewIndexer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { indexer.Close() })
	return indexer
}

func TestSearch_FindsIndexedEntry(t *testing.T) {
	indexer := newTestIndexer(t)

	entry := journal.Entry{
		Timestamp:  time.Date(2026, 8, 20, 9, 0, 0, 0, time.Local),
		Text:       "nervous about the presentation tomorrow",
		Emotion:    emotion.Anxiety,
		Confidence: 0.7,
	}
	if err := indexer.IndexEntry(entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	matches, err := indexer.Search("presentation", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Text != entry.Text {
		t.Errorf("expected text %q, got %q", entry.Text, matches[0].Text)
	}
	if matches[0].Emotion != "anxiety" {
		t.Errorf("expected emotion anxiety, got %q", matches[0].Emotion)
	}
	if !matches[0].Timestamp.Equal(entry.Timestamp) {
		t.Errorf("expected timestamp %v, got %v", entry.Timestamp, matches[0].Timestamp)
	}
}

func TestSearch_NoMatches(t *testing.T) {
	indexer := newTestIndexer(t)

	entry := journal.Entry{Timestamp: time.Now(), Text: "quiet walk in the park", Emotion: emotion.Neutral}
	if err := indexer.IndexEntry(entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	matches, err := indexer.Search("volcano", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("expected no matches, got %d", len(matches))
	}
}

func TestIndexAll_BatchIndexesEverything(t *testing.T) {
	indexer := newTestIndexer(t)

	entries := []journal.Entry{
		{Timestamp: time.Now(), Text: "coffee with an old friend", Emotion: emotion.Joy},
		{Timestamp: time.Now(), Text: "another coffee, another deadline", Emotion: emotion.Anxiety},
		{Timestamp: time.Now(), Text: "early night", Emotion: emotion.Neutral},
	}
	if err := indexer.IndexAll(entries); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	matches, err := indexer.Search("coffee", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("expected 2 matches, got %d", len(matches))
	}
}

func TestSearch_RespectsLimit(t *testing.T) {
	indexer := newTestIndexer(t)

	for i := 0; i < 5; i++ {
		entry := journal.Entry{Timestamp: time.Now(), Text: "walk by the river", Emotion: emotion.Neutral}
		if err := indexer.IndexEntry(entry); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	matches, err := indexer.Search("river", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 3 {
		t.Errorf("expected 3 matches with limit, got %d", len(matches))
	}
}
