/*
Package suggest provides self-care suggestions, daily affirmations, and
display colors keyed by emotion label.

Suggestion selection is randomized through an injected rand source so tests
can seed it; affirmations and colors are deterministic lookups. Unknown
labels degrade to documented defaults rather than failing.
*/
package suggest

import (
	"math/rand"
	"time"

	"github.com/khanglvm/moodlog/internal/emotion"
)

// Fallbacks for labels outside the known tables.
const (
	fallbackSuggestion  = "Take a moment to acknowledge your feelings. Sometimes just recognizing how we feel is the first step to understanding ourselves better."
	fallbackAffirmation = "I am worthy of compassion, especially from myself."
	fallbackColor       = "#808080"
)

var suggestions = map[emotion.Label][]string{
	emotion.Joy: {
		"That's wonderful! Consider sharing your happiness with someone special.",
		"Great to hear you're feeling good! Maybe try a new activity while you're in this positive mood.",
		"Your joy is contagious! Consider doing something creative to express these positive feelings.",
		"Fantastic! Take a moment to appreciate what's bringing you joy today.",
		"Love the positive energy! Maybe write down what's making you happy to remember later.",
		"Wonderful news! Consider spreading some of that joy by helping someone else today.",
	},
	emotion.Sadness: {
		"It's okay to feel sad sometimes. Try reaching out to a friend or family member for support.",
		"Consider gentle activities like listening to soothing music or taking a warm bath.",
		"Remember that sadness is temporary. Try journaling about your feelings to process them.",
		"Be kind to yourself today. Maybe watch a comforting movie or read an uplifting book.",
		"Consider going for a gentle walk in nature - fresh air can help lift your spirits.",
		"It's important to acknowledge your feelings. Consider talking to someone you trust about how you're feeling.",
	},
	emotion.Anger: {
		"Take deep breaths and count to ten before reacting to anything.",
		"Try some physical exercise to channel that energy constructively - maybe a walk or workout.",
		"Consider writing down what's bothering you to help process these feelings.",
		"Step away from the situation if possible and return when you feel calmer.",
		"Try progressive muscle relaxation or meditation to help release tension.",
		"Remember that it's okay to feel angry, but focus on healthy ways to express it.",
	},
	emotion.Fear: {
		"Fear is natural. Try some deep breathing exercises to help calm your nervous system.",
		"Consider breaking down what you're afraid of into smaller, manageable parts.",
		"Remember past times when you overcame challenges - you're stronger than you think.",
		"Try grounding techniques: name 5 things you can see, 4 you can touch, 3 you can hear.",
		"Consider talking to someone you trust about your fears - sharing can help reduce their power.",
		"Focus on what you can control in the situation, rather than what you can't.",
	},
	emotion.Anxiety: {
		"Try the 4-7-8 breathing technique: breathe in for 4, hold for 7, exhale for 8.",
		"Ground yourself by focusing on your physical senses - what can you see, hear, feel right now?",
		"Consider gentle movement like stretching or yoga to help release physical tension.",
		"Remember that anxiety often involves worrying about future events - try to focus on the present moment.",
		"Consider limiting caffeine today and make sure you're staying hydrated.",
		"Progressive muscle relaxation can help - tense and release each muscle group slowly.",
	},
	emotion.Surprise: {
		"Embrace the unexpected! Sometimes surprises lead to wonderful new experiences.",
		"Take a moment to process what just happened before making any big decisions.",
		"Surprise can be energizing - consider channeling that energy into something positive.",
		"It's okay to feel unsettled by unexpected events. Give yourself time to adjust.",
		"Consider sharing your surprise with someone - sometimes talking it through helps.",
		"Use this moment of surprise as an opportunity to practice adaptability.",
	},
	emotion.Disgust: {
		"It's okay to feel disgusted by things that don't align with your values.",
		"Consider removing yourself from the situation if possible, at least temporarily.",
		"Try to understand what specifically is bothering you about this situation.",
		"Focus on things that align with your values and bring you peace.",
		"Consider whether this feeling is pointing to something important about your boundaries.",
		"Sometimes disgust helps us identify what we don't want - use it as guidance.",
	},
	emotion.Anticipation: {
		"Channel that excited energy into preparation for what's coming!",
		"Try to stay present while also looking forward to what's ahead.",
		"Consider making a plan for the thing you're anticipating to feel more prepared.",
		"Use this positive energy to tackle other tasks while you're feeling motivated.",
		"Share your excitement with someone who will celebrate with you!",
		"Remember to enjoy the anticipation itself - it's part of the joy of the experience.",
	},
	emotion.Trust: {
		"It's wonderful that you're feeling secure and confident. Embrace that feeling!",
		"Consider using this sense of trust to try something new or take a positive risk.",
		"Your trust in yourself and others is a strength - acknowledge that about yourself.",
		"Maybe use this confident feeling to reach out to someone or strengthen a relationship.",
		"Trust is built over time - appreciate the relationships and experiences that have led to this feeling.",
		"Consider how you can extend this trust and confidence to other areas of your life.",
	},
	emotion.Love: {
		"Love is a beautiful emotion! Consider expressing your love to those who matter to you.",
		"Take time to appreciate the relationships and experiences that bring love into your life.",
		"Consider doing something kind for the person or thing you love.",
		"Self-love is important too - make sure you're being kind and compassionate to yourself.",
		"Love multiplies when shared - consider how you can spread more love today.",
		"Cherish this feeling and maybe write down what you love and why.",
	},
	emotion.Neutral: {
		"A calm, neutral state can be very peaceful. Enjoy this moment of balance.",
		"Consider using this stable emotional state to plan or organize something important.",
		"Neutral feelings are completely valid - not every moment needs to be intense.",
		"Maybe this is a good time for reflection or meditation.",
		"Consider doing something small that usually brings you joy.",
		"Use this calm moment to check in with yourself - how are you really doing overall?",
	},
}

var affirmations = map[emotion.Label]string{
	emotion.Joy:          "I deserve happiness and allow myself to fully experience joy.",
	emotion.Sadness:      "My feelings are valid, and it's okay to experience sadness as part of being human.",
	emotion.Anger:        "I can feel anger without being controlled by it, and I choose healthy ways to express it.",
	emotion.Fear:         "I am brave enough to face my fears, and I have overcome challenges before.",
	emotion.Anxiety:      "I am safe in this moment, and I have the tools to manage my anxiety.",
	emotion.Surprise:     "I am adaptable and can handle unexpected situations with grace.",
	emotion.Disgust:      "I trust my instincts and honor my values and boundaries.",
	emotion.Anticipation: "I embrace the future with hope and excitement for what's to come.",
	emotion.Trust:        "I am worthy of trust and capable of making good decisions.",
	emotion.Love:         "I am deserving of love and capable of giving love freely.",
	emotion.Neutral:      "I appreciate this moment of calm and use it to center myself.",
}

var colors = map[emotion.Label]string{
	emotion.Joy:          "#FFD700",
	emotion.Sadness:      "#4169E1",
	emotion.Anger:        "#FF4500",
	emotion.Fear:         "#9370DB",
	emotion.Surprise:     "#FF69B4",
	emotion.Disgust:      "#8FBC8F",
	emotion.Anticipation: "#FFA500",
	emotion.Trust:        "#20B2AA",
	emotion.Love:         "#FF1493",
	emotion.Anxiety:      "#DC143C",
	emotion.Neutral:      "#808080",
}

// Suggestor picks suggestions for detected emotions.
type Suggestor struct {
	rng *rand.Rand
}

// NewSuggestor creates a Suggestor seeded from the current time.
func NewSuggestor() *Suggestor {
	return NewSeededSuggestor(time.Now().UnixNano())
}

// NewSeededSuggestor creates a Suggestor with a fixed seed, for
// deterministic tests.
func NewSeededSuggestor(seed int64) *Suggestor {
	return &Suggestor{rng: rand.New(rand.NewSource(seed))}
}

// Suggestion returns one suggestion for the emotion, or the generic fallback
// for unknown labels.
func (s *Suggestor) Suggestion(label emotion.Label) string {
	options, ok := suggestions[label]
	if !ok {
		return fallbackSuggestion
	}
	return options[s.rng.Intn(len(options))]
}

// Suggestions returns up to n distinct suggestions for the emotion, in
// shuffled order.
func (s *Suggestor) Suggestions(label emotion.Label, n int) []string {
	options, ok := suggestions[label]
	if !ok {
		return []string{fallbackSuggestion}
	}

	shuffled := make([]string, len(options))
	copy(shuffled, options)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// Affirmation returns the daily affirmation for the emotion, or the generic
// fallback for unknown labels.
func Affirmation(label emotion.Label) string {
	if a, ok := affirmations[label]; ok {
		return a
	}
	return fallbackAffirmation
}

// Color returns the display color for the emotion, or gray for unknown
// labels.
func Color(label emotion.Label) string {
	if c, ok := colors[label]; ok {
		return c
	}
	return fallbackColor
}
