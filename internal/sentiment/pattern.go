package sentiment

import (
	"strings"
	"unicode"
)

// patternEntry is one lexicon word's polarity and subjectivity.
type patternEntry struct {
	polarity     float64
	subjectivity float64
}

// patternLexicon scores individual words. Polarity in [-1, 1], subjectivity
// in [0, 1]. Entries lean toward the vocabulary of personal journaling.
var patternLexicon = map[string]patternEntry{
	"happy":       {0.8, 1.0},
	"joyful":      {0.8, 1.0},
	"great":       {0.8, 0.75},
	"good":        {0.7, 0.6},
	"wonderful":   {1.0, 1.0},
	"amazing":     {0.6, 0.9},
	"fantastic":   {0.4, 0.9},
	"excellent":   {1.0, 1.0},
	"excited":     {0.3, 0.8},
	"cheerful":    {0.8, 1.0},
	"delighted":   {1.0, 1.0},
	"pleased":     {0.6, 0.9},
	"glad":        {0.5, 1.0},
	"love":        {0.5, 0.6},
	"loved":       {0.7, 0.9},
	"adore":       {0.6, 0.9},
	"beautiful":   {0.85, 1.0},
	"nice":        {0.6, 1.0},
	"fun":         {0.3, 0.2},
	"hopeful":     {0.3, 0.7},
	"optimistic":  {0.4, 0.8},
	"grateful":    {0.5, 0.8},
	"calm":        {0.3, 0.7},
	"content":     {0.3, 0.6},
	"proud":       {0.5, 0.8},
	"relaxed":     {0.4, 0.7},
	"better":      {0.5, 0.5},
	"best":        {1.0, 0.3},
	"okay":        {0.1, 0.4},
	"fine":        {0.2, 0.5},
	"sad":         {-0.5, 1.0},
	"unhappy":     {-0.6, 1.0},
	"depressed":   {-0.7, 1.0},
	"miserable":   {-1.0, 1.0},
	"gloomy":      {-0.5, 0.9},
	"terrible":    {-1.0, 1.0},
	"awful":       {-1.0, 1.0},
	"horrible":    {-1.0, 1.0},
	"bad":         {-0.7, 0.67},
	"worse":       {-0.5, 0.5},
	"worst":       {-1.0, 0.3},
	"angry":       {-0.5, 1.0},
	"furious":     {-0.8, 1.0},
	"mad":         {-0.6, 0.9},
	"annoyed":     {-0.4, 0.8},
	"irritated":   {-0.4, 0.8},
	"frustrated":  {-0.5, 0.9},
	"hate":        {-0.8, 0.9},
	"afraid":      {-0.6, 1.0},
	"scared":      {-0.6, 1.0},
	"terrified":   {-0.9, 1.0},
	"worried":     {-0.4, 0.8},
	"nervous":     {-0.4, 0.8},
	"anxious":     {-0.5, 0.9},
	"stressed":    {-0.5, 0.9},
	"overwhelmed": {-0.5, 0.9},
	"tired":       {-0.3, 0.6},
	"exhausted":   {-0.5, 0.8},
	"lonely":      {-0.5, 0.9},
	"hurt":        {-0.6, 0.8},
	"pain":        {-0.6, 0.7},
	"cry":         {-0.5, 0.8},
	"upset":       {-0.5, 0.9},
	"disgusted":   {-0.7, 1.0},
	"sick":        {-0.7, 0.8},
	"confused":    {-0.3, 0.7},
	"bored":       {-0.4, 0.7},
	"disappointed": {-0.6, 0.9},
}

// patternIntensifiers scale the polarity of the word that follows them.
var patternIntensifiers = map[string]float64{
	"very":       1.3,
	"extremely":  1.5,
	"really":     1.2,
	"incredibly": 1.5,
	"so":         1.2,
	"totally":    1.3,
	"completely": 1.3,
	"quite":      1.1,
	"somewhat":   0.8,
	"slightly":   0.6,
	"barely":     0.5,
}

// patternNegators flip the polarity of the word that follows them.
var patternNegators = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"nothing": true,
	"isnt":    true,
	"wasnt":   true,
	"dont":    true,
	"didnt":   true,
	"cant":    true,
	"wont":    true,
}

// negationDamping is applied when a negator flips a word: "not happy" is
// negative but weaker than "sad".
const negationDamping = 0.5

// PatternSentiment estimates polarity and subjectivity for text by averaging
// the lexicon entries of matched words. A negator directly before a matched
// word flips and dampens its polarity; an intensifier scales it. Texts with
// no lexicon words score (0, 0).
func PatternSentiment(text string) (polarity, subjectivity float64) {
	words := tokenize(text)

	matched := 0
	for i, word := range words {
		entry, ok := patternLexicon[word]
		if !ok {
			continue
		}

		p := entry.polarity
		if i > 0 {
			prev := words[i-1]
			if patternNegators[prev] {
				p = -p * negationDamping
			} else if factor, ok := patternIntensifiers[prev]; ok {
				p = clampPolarity(p * factor)
			}
		}

		polarity += p
		subjectivity += entry.subjectivity
		matched++
	}

	if matched == 0 {
		return 0, 0
	}
	return polarity / float64(matched), subjectivity / float64(matched)
}

// tokenize lowercases and splits text into words. Apostrophes are removed
// before splitting so contractions like "don't" match the negator list.
func tokenize(text string) []string {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, "'", "")
	text = strings.ReplaceAll(text, "’", "")
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func clampPolarity(p float64) float64 {
	if p > 1 {
		return 1
	}
	if p < -1 {
		return -1
	}
	return p
}
