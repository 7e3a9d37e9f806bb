package emotion

import (
	"fmt"
	"sort"
	"strings"

	"github.com/khanglvm/moodlog/internal/sentiment"
)

const (
	// baseConfidence is the floor contribution every analysis starts from.
	baseConfidence = 0.4

	// keywordWeight scales the primary emotion's keyword score.
	keywordWeight = 0.2

	// keywordCap bounds the keyword contribution (0.3 = at most 30%).
	keywordCap = 0.3

	// sentimentWeight scales the combined sentiment magnitude.
	sentimentWeight = 0.2

	// subjectivityWeight scales the pattern estimator's subjectivity.
	subjectivityWeight = 0.1

	// minConfidence and maxConfidence clamp the final score; the heuristic
	// is never fully certain nor fully uncertain.
	minConfidence = 0.3
	maxConfidence = 0.95

	// emptyConfidence is reported for empty or whitespace-only input.
	emptyConfidence = 0.5
)

// Result is one classification of a piece of text.
type Result struct {
	// PrimaryEmotion is the selected label.
	PrimaryEmotion Label
	// Confidence is the heuristic certainty, always within [0.3, 0.95]
	// for non-empty input and exactly 0.5 for empty input.
	Confidence float64
	// SentimentScore is the combined sentiment signal in [-1, 1].
	SentimentScore float64
	// EmotionScores maps each lexicon label to its raw keyword score,
	// kept for explanation and debugging. Empty for empty input.
	EmotionScores map[Label]float64
	// Sentiment holds the estimator intermediates. Zero for empty input.
	Sentiment sentiment.Signal
}

// SentimentScorer is the sentiment signal source the classifier consumes.
// Satisfied by *sentiment.Scorer.
type SentimentScorer interface {
	Score(text string) sentiment.Signal
}

// Classifier selects a primary emotion for text. Keyword evidence wins when
// any lexicon keyword fires; otherwise the sentiment fallback ladder decides.
type Classifier struct {
	scorer SentimentScorer
}

// NewClassifier builds a Classifier backed by the default sentiment scorer.
func NewClassifier() *Classifier {
	return &Classifier{scorer: sentiment.NewScorer()}
}

// NewClassifierWithScorer builds a Classifier with a caller-supplied
// sentiment scorer.
func NewClassifierWithScorer(scorer SentimentScorer) *Classifier {
	return &Classifier{scorer: scorer}
}

// Analyze classifies text. Pure function of its input: identical text always
// yields an identical Result. Never fails; empty or whitespace-only text
// yields the fixed neutral result without running either scorer.
func (c *Classifier) Analyze(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{
			PrimaryEmotion: Neutral,
			Confidence:     emptyConfidence,
			SentimentScore: 0,
			EmotionScores:  map[Label]float64{},
		}
	}

	signal := c.scorer.Score(text)
	scores := KeywordScores(text)

	primary, matched := topKeywordEmotion(scores)
	if !matched {
		primary = emotionFromSentiment(signal)
	}

	return Result{
		PrimaryEmotion: primary,
		Confidence:     confidence(scores[primary], signal),
		SentimentScore: signal.Combined,
		EmotionScores:  scores,
		Sentiment:      signal,
	}
}

// topKeywordEmotion returns the label with the maximum keyword score, and
// whether any label scored above zero. Ties resolve to the first label in
// lexicon order.
func topKeywordEmotion(scores map[Label]float64) (Label, bool) {
	var best Label
	bestScore := 0.0
	for _, label := range lexiconOrder {
		if scores[label] > bestScore {
			best = label
			bestScore = scores[label]
		}
	}
	return best, bestScore > 0
}

// emotionFromSentiment maps a sentiment signal to a label when no keyword
// fired. The ladder is evaluated top to bottom, first match wins.
func emotionFromSentiment(signal sentiment.Signal) Label {
	switch {
	case signal.Combined > 0.5:
		return Joy
	case signal.Combined < -0.5:
		return Sadness
	case signal.Combined > 0.1:
		return Anticipation
	case signal.Combined < -0.1:
		if signal.Rule.Negative > 0.3 {
			if signal.Rule.Compound < -0.3 {
				return Anger
			}
			return Fear
		}
		return Sadness
	default:
		// Near-neutral band [-0.1, 0.1].
		if signal.Rule.Neutral > 0.7 {
			return Trust
		}
		return Anticipation
	}
}

// confidence combines keyword strength, sentiment magnitude, and
// subjectivity into one additive score, clamped to [0.3, 0.95].
func confidence(keywordScore float64, signal sentiment.Signal) float64 {
	keyword := keywordScore * keywordWeight
	if keyword > keywordCap {
		keyword = keywordCap
	}

	magnitude := signal.Combined
	if magnitude < 0 {
		magnitude = -magnitude
	}

	total := baseConfidence +
		keyword +
		magnitude*sentimentWeight +
		signal.Subjectivity*subjectivityWeight

	if total < minConfidence {
		return minConfidence
	}
	if total > maxConfidence {
		return maxConfidence
	}
	return total
}

// Explain renders a Result as a human-readable sentence naming the emotion,
// the confidence percentage, a coarse sentiment qualifier, and any labels
// that had keyword matches.
func Explain(r Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "I detected %s with %.1f%% confidence. ", r.PrimaryEmotion, r.Confidence*100)

	switch {
	case r.SentimentScore > 0.3:
		b.WriteString("The text has a positive sentiment. ")
	case r.SentimentScore < -0.3:
		b.WriteString("The text has a negative sentiment. ")
	default:
		b.WriteString("The text has a neutral sentiment. ")
	}

	var matched []string
	for label, score := range r.EmotionScores {
		if score > 0 {
			matched = append(matched, string(label))
		}
	}
	if len(matched) > 0 {
		sort.Strings(matched)
		fmt.Fprintf(&b, "Keywords associated with %s were found.", strings.Join(matched, ", "))
	}

	return b.String()
}
