/*
Package storage persists journal entries between CLI invocations.

SQLite-backed via modernc.org/sqlite (pure Go, CGo-free), with versioned
migrations and graceful degradation: if the database cannot be opened the
store disables itself, logs a warning, and the session continues in-memory.

The database lives at ~/.moodlog/journal.db by default.
*/
package storage

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/khanglvm/moodlog/internal/emotion"
	"github.com/khanglvm/moodlog/internal/journal"
)

// Storage defines the persistence operations the session needs.
type Storage interface {
	// Init opens the database and runs migrations.
	Init() error

	// SaveEntry persists one journal entry.
	SaveEntry(entry journal.Entry) error

	// LoadEntries returns every persisted entry in insertion order.
	LoadEntries() ([]journal.Entry, error)

	// Close closes the database connection.
	Close() error
}

// SQLiteStorage implements Storage using SQLite.
type SQLiteStorage struct {
	db       *sql.DB
	dbPath   string
	enabled  bool
	mu       sync.Mutex
	initOnce sync.Once
}

// NewSQLiteStorage creates a store for the database at dbPath. Call Init
// before use.
func NewSQLiteStorage(dbPath string) *SQLiteStorage {
	return &SQLiteStorage{dbPath: dbPath, enabled: true}
}

// DefaultPath returns the standard database location under the user's home
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".moodlog", "journal.db"), nil
}

// Init opens the database, creating its directory if needed, and runs
// migrations. Failure disables the store rather than aborting the session.
func (s *SQLiteStorage) Init() error {
	var initErr error
	s.initOnce.Do(func() {
		if err := os.MkdirAll(filepath.Dir(s.dbPath), 0755); err != nil {
			log.Printf("Warning: failed to create data directory, persistence disabled: %v", err)
			s.enabled = false
			return
		}

		db, err := sql.Open("sqlite", s.dbPath)
		if err != nil {
			log.Printf("Warning: failed to open database, persistence disabled: %v", err)
			s.enabled = false
			return
		}
		s.db = db

		if err := s.runMigrations(); err != nil {
			log.Printf("Warning: migrations failed, persistence disabled: %v", err)
			s.enabled = false
			db.Close()
			s.db = nil
			return
		}
	})
	return initErr
}

// SaveEntry persists one entry. A disabled store is a no-op.
func (s *SQLiteStorage) SaveEntry(entry journal.Entry) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO mood_entries (timestamp, text, emotion, confidence, sentiment_score)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := s.db.Exec(query,
		entry.Timestamp.Format(time.RFC3339Nano),
		entry.Text,
		string(entry.Emotion),
		entry.Confidence,
		entry.SentimentScore,
	)
	if err != nil {
		return fmt.Errorf("failed to save entry: %w", err)
	}
	return nil
}

// LoadEntries returns all persisted entries in insertion order. A disabled
// store returns an empty slice.
func (s *SQLiteStorage) LoadEntries() ([]journal.Entry, error) {
	if !s.enabled || s.db == nil {
		return []journal.Entry{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		SELECT timestamp, text, emotion, confidence, sentiment_score
		FROM mood_entries
		ORDER BY id ASC
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var entries []journal.Entry
	for rows.Next() {
		var entry journal.Entry
		var timestampStr, emotionStr string

		if err := rows.Scan(&timestampStr, &entry.Text, &emotionStr, &entry.Confidence, &entry.SentimentScore); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}

		entry.Timestamp, err = time.Parse(time.RFC3339Nano, timestampStr)
		if err != nil {
			log.Printf("Warning: skipping entry with bad timestamp %q: %v", timestampStr, err)
			continue
		}
		entry.Emotion = emotion.Label(emotionStr)

		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	return entries, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
