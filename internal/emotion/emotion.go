/*
Package emotion implements rule-based emotion classification for journal text.

Classification combines two signals: a keyword lexicon with intensity-modifier
amplification, and a two-estimator sentiment score (see internal/sentiment).
A keyword match always wins; sentiment is the fallback when no keyword fires.
*/
package emotion

// Label is one emotion from the closed classification set.
type Label string

// The eleven recognized emotion labels.
const (
	Joy          Label = "joy"
	Sadness      Label = "sadness"
	Anger        Label = "anger"
	Fear         Label = "fear"
	Surprise     Label = "surprise"
	Disgust      Label = "disgust"
	Anticipation Label = "anticipation"
	Trust        Label = "trust"
	Love         Label = "love"
	Anxiety      Label = "anxiety"
	Neutral      Label = "neutral"
)

// Labels enumerates every label. Neutral carries no keywords; it is only
// produced for empty input.
var Labels = []Label{
	Joy, Sadness, Anger, Fear, Surprise, Disgust,
	Anticipation, Trust, Love, Anxiety, Neutral,
}

// lexiconOrder is the scan order for keyword scoring. Ties on the maximum
// keyword score resolve to the first label in this order.
var lexiconOrder = []Label{
	Joy, Sadness, Anger, Fear, Surprise, Disgust,
	Anticipation, Trust, Love, Anxiety,
}

// lexicon maps each label to the keywords and phrases that signal it.
// Matching is plain substring containment on normalized text.
var lexicon = map[Label][]string{
	Joy:          {"happy", "joyful", "excited", "cheerful", "delighted", "elated", "thrilled", "content", "pleased", "glad"},
	Sadness:      {"sad", "depressed", "melancholy", "gloomy", "dejected", "downhearted", "sorrowful", "unhappy", "blue", "down"},
	Anger:        {"angry", "furious", "mad", "irritated", "annoyed", "rage", "outraged", "livid", "frustrated", "pissed"},
	Fear:         {"afraid", "scared", "frightened", "terrified", "anxious", "worried", "nervous", "panicked", "fearful", "apprehensive"},
	Surprise:     {"surprised", "shocked", "amazed", "astonished", "stunned", "bewildered", "startled", "astounded"},
	Disgust:      {"disgusted", "revolted", "repulsed", "nauseated", "sickened", "appalled", "repelled"},
	Anticipation: {"excited", "eager", "hopeful", "expectant", "anticipating", "looking forward", "optimistic"},
	Trust:        {"confident", "secure", "trusting", "faithful", "assured", "certain", "believing"},
	Love:         {"love", "adore", "cherish", "affectionate", "devoted", "caring", "tender", "romantic"},
	Anxiety:      {"anxious", "stressed", "overwhelmed", "tense", "uneasy", "restless", "agitated", "troubled"},
}

// modifier is an intensity phrase that scales a keyword's base score when it
// immediately precedes the keyword.
type modifier struct {
	phrase string
	factor float64
}

// modifiers in fixed precedence order; only the first match applies per
// keyword, never stacked.
var modifiers = []modifier{
	{"very", 1.5},
	{"extremely", 2.0},
	{"really", 1.3},
	{"quite", 1.2},
	{"somewhat", 0.8},
	{"slightly", 0.6},
	{"a bit", 0.7},
	{"incredibly", 1.8},
	{"totally", 1.6},
	{"completely", 1.7},
}

// Valid reports whether l is one of the recognized labels.
func Valid(l Label) bool {
	for _, known := range Labels {
		if l == known {
			return true
		}
	}
	return false
}
