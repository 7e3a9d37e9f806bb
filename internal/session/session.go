/*
Package session wires the journal components together.

One Session owns one log, one classifier, one store, one search index, and
one suggestor, passed explicitly to everything that needs them. There are no
package-level singletons; each CLI invocation opens its own Session.
*/
package session

import (
	"fmt"
	"log"

	"github.com/khanglvm/moodlog/internal/emotion"
	"github.com/khanglvm/moodlog/internal/journal"
	"github.com/khanglvm/moodlog/internal/search"
	"github.com/khanglvm/moodlog/internal/stats"
	"github.com/khanglvm/moodlog/internal/storage"
	"github.com/khanglvm/moodlog/internal/suggest"
)

// Session owns one user's journal state for the lifetime of a CLI
// invocation.
type Session struct {
	Log        *journal.Log
	Classifier *emotion.Classifier
	Store      storage.Storage
	Index      *search.Indexer
	Suggestor  *suggest.Suggestor
	Stats      *stats.Engine
}

// Open builds a Session backed by the database at dbPath, restores persisted
// entries into the in-memory log, and indexes them for search. A failing
// store degrades to memory-only; a restore error is fatal since it means the
// stored data is corrupt.
func Open(dbPath string) (*Session, error) {
	store := storage.NewSQLiteStorage(dbPath)
	if err := store.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	index, err := search.NewIndexer()
	if err != nil {
		return nil, fmt.Errorf("failed to create search index: %w", err)
	}

	moodLog := journal.NewLog()
	entries, err := store.LoadEntries()
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	for _, entry := range entries {
		if err := moodLog.Append(entry); err != nil {
			// Skip rather than fail: one bad row should not lock the
			// user out of their journal.
			log.Printf("Warning: skipping invalid stored entry: %v", err)
		}
	}
	if err := index.IndexAll(moodLog.Entries()); err != nil {
		return nil, fmt.Errorf("failed to index entries: %w", err)
	}

	return &Session{
		Log:        moodLog,
		Classifier: emotion.NewClassifier(),
		Store:      store,
		Index:      index,
		Suggestor:  suggest.NewSuggestor(),
		Stats:      stats.NewEngine(moodLog),
	}, nil
}

// Record analyzes text, appends the classified entry to the log, persists
// it, and indexes it for search. Returns the stored entry and the full
// analysis.
func (s *Session) Record(text string) (journal.Entry, emotion.Result, error) {
	result := s.Classifier.Analyze(text)

	entry, err := s.Log.AddEntry(text, result.PrimaryEmotion, result.Confidence, result.SentimentScore)
	if err != nil {
		return journal.Entry{}, emotion.Result{}, err
	}

	if err := s.Store.SaveEntry(entry); err != nil {
		log.Printf("Warning: entry kept in memory but not persisted: %v", err)
	}
	if err := s.Index.IndexEntry(entry); err != nil {
		log.Printf("Warning: entry not indexed for search: %v", err)
	}

	return entry, result, nil
}

// Close releases the store and index.
func (s *Session) Close() error {
	if err := s.Index.Close(); err != nil {
		log.Printf("Warning: failed to close search index: %v", err)
	}
	return s.Store.Close()
}
