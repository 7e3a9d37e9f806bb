/*
Package search provides full-text search over journal entry text.

Backed by an in-memory Bleve index rebuilt from the log at session open;
entry count per session is small enough that rebuild cost is negligible.
*/
package search

import (
	"fmt"
	"sync"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/khanglvm/moodlog/internal/journal"
)

// Match is one search hit.
type Match struct {
	Text      string
	Emotion   string
	Timestamp time.Time
	Score     float64
}

// Indexer manages the search index over journal entries.
type Indexer struct {
	bleveIndex bleve.Index
	mu         sync.Mutex
	nextID     int
}

// NewIndexer creates an in-memory index.
func NewIndexer() (*Indexer, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create bleve index: %w", err)
	}
	return &Indexer{bleveIndex: index}, nil
}

// buildIndexMapping creates the Bleve mapping for entry documents.
func buildIndexMapping() mapping.IndexMapping {
	entryMapping := bleve.NewDocumentMapping()

	// Text field: searchable.
	textFieldMapping := bleve.NewTextFieldMapping()
	entryMapping.AddFieldMappingsAt("text", textFieldMapping)

	// Emotion field: searchable, enables queries like "emotion:joy".
	emotionFieldMapping := bleve.NewTextFieldMapping()
	entryMapping.AddFieldMappingsAt("emotion", emotionFieldMapping)

	// Timestamp: stored for retrieval, not indexed.
	timestampFieldMapping := bleve.NewTextFieldMapping()
	timestampFieldMapping.Index = false
	timestampFieldMapping.IncludeInAll = false
	entryMapping.AddFieldMappingsAt("timestamp", timestampFieldMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", entryMapping)
	return indexMapping
}

// IndexEntry adds one entry to the index.
func (i *Indexer) IndexEntry(entry journal.Entry) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.indexLocked(entry)
}

// IndexAll adds a batch of entries, typically the whole log at session open.
func (i *Indexer) IndexAll(entries []journal.Entry) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	batch := i.bleveIndex.NewBatch()
	for _, entry := range entries {
		if err := batch.Index(i.docID(), entryDoc(entry)); err != nil {
			return fmt.Errorf("failed to index entry: %w", err)
		}
	}
	if err := i.bleveIndex.Batch(batch); err != nil {
		return fmt.Errorf("failed to batch index entries: %w", err)
	}
	return nil
}

func (i *Indexer) indexLocked(entry journal.Entry) error {
	if err := i.bleveIndex.Index(i.docID(), entryDoc(entry)); err != nil {
		return fmt.Errorf("failed to index entry: %w", err)
	}
	return nil
}

// docID hands out sequential document IDs; entries are append-only so IDs
// follow insertion order.
func (i *Indexer) docID() string {
	i.nextID++
	return fmt.Sprintf("entry-%d", i.nextID)
}

func entryDoc(entry journal.Entry) map[string]interface{} {
	return map[string]interface{}{
		"text":      entry.Text,
		"emotion":   string(entry.Emotion),
		"timestamp": entry.Timestamp.Format(time.RFC3339Nano),
	}
}

// Search runs a match query against entry text and returns up to limit hits,
// best first.
func (i *Indexer) Search(queryText string, limit int) ([]Match, error) {
	query := bleve.NewMatchQuery(queryText)
	query.SetField("text")

	req := bleve.NewSearchRequestOptions(query, limit, 0, false)
	req.Fields = []string{"text", "emotion", "timestamp"}

	res, err := i.bleveIndex.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	matches := make([]Match, 0, len(res.Hits))
	for _, hit := range res.Hits {
		m := Match{Score: hit.Score}
		if text, ok := hit.Fields["text"].(string); ok {
			m.Text = text
		}
		if em, ok := hit.Fields["emotion"].(string); ok {
			m.Emotion = em
		}
		if ts, ok := hit.Fields["timestamp"].(string); ok {
			if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
				m.Timestamp = parsed
			}
		}
		matches = append(matches, m)
	}
	return matches, nil
}

// Close releases the index.
func (i *Indexer) Close() error {
	return i.bleveIndex.Close()
}
