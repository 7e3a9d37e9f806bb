package journal

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/khanglvm/moodlog/internal/emotion"
)

// ErrInvalidFormat is returned when a requested export format is outside the
// supported set.
var ErrInvalidFormat = errors.New(`export format must be "csv" or "json"`)

// Format selects an export serialization.
type Format string

// Supported export formats.
const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat validates a user-supplied format string.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidFormat, s)
	}
}

// Export serializes entries in the given format. Timestamps are ISO-8601.
// includeText=false drops the original text column, for sharing data without
// journal contents. An empty entry list exports to an empty string.
func Export(entries []Entry, format Format, includeText bool) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}

	switch format {
	case FormatCSV:
		return exportCSV(entries, includeText)
	case FormatJSON:
		return exportJSON(entries, includeText)
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidFormat, format)
	}
}

// Parse reads exported data back into entries. Inverse of Export for both
// formats when text was included.
func Parse(data string, format Format) ([]Entry, error) {
	if strings.TrimSpace(data) == "" {
		return nil, nil
	}

	switch format {
	case FormatCSV:
		return parseCSV(data)
	case FormatJSON:
		return parseJSON(data)
	default:
		return nil, fmt.Errorf("%w: got %q", ErrInvalidFormat, format)
	}
}

func exportCSV(entries []Entry, includeText bool) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	header := []string{"timestamp", "text", "emotion", "confidence", "sentiment_score"}
	if !includeText {
		header = []string{"timestamp", "emotion", "confidence", "sentiment_score"}
	}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, entry := range entries {
		record := []string{
			entry.Timestamp.Format(time.RFC3339Nano),
			entry.Text,
			string(entry.Emotion),
			strconv.FormatFloat(entry.Confidence, 'g', -1, 64),
			strconv.FormatFloat(entry.SentimentScore, 'g', -1, 64),
		}
		if !includeText {
			record = append(record[:1], record[2:]...)
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}
	return b.String(), nil
}

func parseCSV(data string) ([]Entry, error) {
	r := csv.NewReader(strings.NewReader(data))
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	// Column positions come from the header so exports without the text
	// column parse too.
	columns := map[string]int{}
	for i, name := range records[0] {
		columns[name] = i
	}

	entries := make([]Entry, 0, len(records)-1)
	for _, record := range records[1:] {
		var entry Entry

		entry.Timestamp, err = time.Parse(time.RFC3339Nano, record[columns["timestamp"]])
		if err != nil {
			return nil, fmt.Errorf("failed to parse timestamp: %w", err)
		}
		if i, ok := columns["text"]; ok {
			entry.Text = record[i]
		}
		entry.Emotion = emotion.Label(record[columns["emotion"]])
		entry.Confidence, err = strconv.ParseFloat(record[columns["confidence"]], 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse confidence: %w", err)
		}
		entry.SentimentScore, err = strconv.ParseFloat(record[columns["sentiment_score"]], 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse sentiment score: %w", err)
		}

		entries = append(entries, entry)
	}
	return entries, nil
}

func exportJSON(entries []Entry, includeText bool) (string, error) {
	records := entries
	if !includeText {
		records = make([]Entry, len(entries))
		copy(records, entries)
		for i := range records {
			records[i].Text = ""
		}
	}

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal entries: %w", err)
	}
	return string(out), nil
}

func parseJSON(data string) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		return nil, fmt.Errorf("failed to parse json entries: %w", err)
	}
	return entries, nil
}
