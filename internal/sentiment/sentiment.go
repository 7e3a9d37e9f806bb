/*
Package sentiment estimates the sentiment of journal text.

Two independent estimators run per call: a pattern-lexicon estimator producing
polarity and subjectivity, and a VADER-style rule estimator (govader) tuned for
short informal text producing negative/neutral/positive/compound scores. Their
polarity and compound signals are averaged into one combined score.
*/
package sentiment

import "github.com/jonreiter/govader"

// RuleScores is the four-part output of the rule estimator. Negative, Neutral
// and Positive are proportions that sum to ~1; Compound is the normalized
// overall score in [-1, 1].
type RuleScores struct {
	Negative float64
	Neutral  float64
	Positive float64
	Compound float64
}

// Signal bundles everything both estimators produced for one text.
type Signal struct {
	// Polarity is the pattern estimator's score in [-1, 1].
	Polarity float64
	// Subjectivity is the pattern estimator's score in [0, 1];
	// 0 is fully objective, 1 fully subjective.
	Subjectivity float64
	// Rule holds the rule estimator's component breakdown.
	Rule RuleScores
	// Combined is (Polarity + Rule.Compound) / 2, giving equal trust
	// to both estimators.
	Combined float64
}

// Scorer runs both estimators. It holds no mutable state after construction;
// Score is safe for concurrent use.
type Scorer struct {
	vader *govader.SentimentIntensityAnalyzer
}

// NewScorer builds a Scorer with the default rule lexicon.
func NewScorer() *Scorer {
	return &Scorer{vader: govader.NewSentimentIntensityAnalyzer()}
}

// Score estimates sentiment for text. Deterministic: identical text always
// yields an identical Signal. Callers must not pass empty text; the
// classifier short-circuits empty input before reaching here.
func (s *Scorer) Score(text string) Signal {
	polarity, subjectivity := PatternSentiment(text)
	v := s.vader.PolarityScores(text)

	rule := RuleScores{
		Negative: v.Negative,
		Neutral:  v.Neutral,
		Positive: v.Positive,
		Compound: v.Compound,
	}

	return Signal{
		Polarity:     polarity,
		Subjectivity: subjectivity,
		Rule:         rule,
		Combined:     (polarity + rule.Compound) / 2,
	}
}
