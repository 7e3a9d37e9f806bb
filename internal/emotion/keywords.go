package emotion

import "strings"

// Normalize lowercases text, collapses whitespace runs to single spaces, and
// trims the ends. Keyword matching always runs on normalized text.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// KeywordScores scans text against the lexicon and returns a raw score per
// label. Each keyword contributes at most once per call (presence, not count):
// 1.0 for a bare match, or the modifier's factor when an intensity phrase like
// "very happy" appears. Labels with no matches score 0.
//
// Matching is substring containment, so a keyword embedded in a longer word
// still counts ("mad" inside "madrigal"). That is a deliberate
// simplicity/precision tradeoff carried over from the scoring design.
func KeywordScores(text string) map[Label]float64 {
	text = Normalize(text)

	scores := make(map[Label]float64, len(lexiconOrder))
	for _, label := range lexiconOrder {
		score := 0.0
		for _, keyword := range lexicon[label] {
			if !strings.Contains(text, keyword) {
				continue
			}

			base := 1.0
			for _, m := range modifiers {
				if strings.Contains(text, m.phrase+" "+keyword) {
					base *= m.factor
					break
				}
			}

			score += base
		}
		scores[label] = score
	}

	return scores
}
