package suggest

import (
	"testing"

	"github.com/khanglvm/moodlog/internal/emotion"
)

func TestSuggestion_ComesFromEmotionTable(t *testing.T) {
	s := NewSeededSuggestor(1)
	got := s.Suggestion(emotion.Joy)

	found := false
	for _, candidate := range suggestions[emotion.Joy] {
		if got == candidate {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("suggestion %q not in the joy table", got)
	}
}

func TestSuggestion_SeededDeterminism(t *testing.T) {
	first := NewSeededSuggestor(42).Suggestion(emotion.Sadness)
	second := NewSeededSuggestor(42).Suggestion(emotion.Sadness)

	if first != second {
		t.Errorf("expected identical suggestions for same seed, got %q vs %q", first, second)
	}
}

func TestSuggestion_UnknownEmotionFallsBack(t *testing.T) {
	s := NewSeededSuggestor(1)
	got := s.Suggestion(emotion.Label("melancholia"))

	if got != fallbackSuggestion {
		t.Errorf("expected fallback suggestion, got %q", got)
	}
}

func TestSuggestions_ReturnsDistinctEntries(t *testing.T) {
	s := NewSeededSuggestor(7)
	got := s.Suggestions(emotion.Anxiety, 3)

	if len(got) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(got))
	}
	seen := map[string]bool{}
	for _, suggestion := range got {
		if seen[suggestion] {
			t.Errorf("duplicate suggestion %q", suggestion)
		}
		seen[suggestion] = true
	}
}

func TestSuggestions_CappedAtTableSize(t *testing.T) {
	s := NewSeededSuggestor(7)
	got := s.Suggestions(emotion.Trust, 100)

	if len(got) != len(suggestions[emotion.Trust]) {
		t.Errorf("expected %d suggestions, got %d", len(suggestions[emotion.Trust]), len(got))
	}
}

func TestAffirmation_KnownAndUnknown(t *testing.T) {
	if got := Affirmation(emotion.Fear); got != affirmations[emotion.Fear] {
		t.Errorf("unexpected affirmation %q", got)
	}
	if got := Affirmation(emotion.Label("bogus")); got != fallbackAffirmation {
		t.Errorf("expected fallback affirmation, got %q", got)
	}
}

func TestColor_KnownAndUnknown(t *testing.T) {
	if got := Color(emotion.Joy); got != "#FFD700" {
		t.Errorf("expected joy gold, got %q", got)
	}
	if got := Color(emotion.Label("bogus")); got != fallbackColor {
		t.Errorf("expected gray fallback, got %q", got)
	}
}
