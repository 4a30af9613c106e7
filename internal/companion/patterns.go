package companion

import "regexp"

// FactKind labels a single extracted biographical or emotional datum.
type FactKind string

const (
	FactName           FactKind = "name"
	FactEmotion        FactKind = "emotion"
	FactSituation      FactKind = "situation"
	FactPerson         FactKind = "person"
	FactCopingStrategy FactKind = "coping_strategy"
	FactGoal           FactKind = "goal"
	FactPreference     FactKind = "preference"
	FactStrength       FactKind = "strength"
	FactChallenge      FactKind = "challenge"
	FactAchievement    FactKind = "achievement"
)

// extractionRule is one match rule for a fact kind. Person rules capture two
// groups (relationship, name); every other rule captures one.
type extractionRule struct {
	kind    FactKind
	pattern *regexp.Regexp
}

// extractionRules is tried in order for every inbound message. Compiled once
// at startup and shared read-only across sessions.
var extractionRules = []extractionRule{
	{FactName, regexp.MustCompile(`(?i)my name is (\w+)`)},
	{FactName, regexp.MustCompile(`(?i)i'm (\w+)`)},
	{FactName, regexp.MustCompile(`(?i)i am (\w+)`)},
	{FactName, regexp.MustCompile(`(?i)call me (\w+)`)},
	{FactName, regexp.MustCompile(`(?i)(\w+) is my name`)},

	{FactEmotion, regexp.MustCompile(`(?i)i feel (\w+)`)},
	{FactEmotion, regexp.MustCompile(`(?i)i'm feeling (\w+)`)},
	{FactEmotion, regexp.MustCompile(`(?i)i am (\w+)`)},
	{FactEmotion, regexp.MustCompile(`(?i)i've been (\w+)`)},
	{FactEmotion, regexp.MustCompile(`(?i)i've been feeling (\w+)`)},
	{FactEmotion, regexp.MustCompile(`(?i)i feel so (\w+)`)},

	{FactSituation, regexp.MustCompile(`(?i)dealing with ([\w\s]+)`)},
	{FactSituation, regexp.MustCompile(`(?i)struggling with ([\w\s]+)`)},
	{FactSituation, regexp.MustCompile(`(?i)going through ([\w\s]+)`)},
	{FactSituation, regexp.MustCompile(`(?i)experiencing ([\w\s]+)`)},
	{FactSituation, regexp.MustCompile(`(?i)having ([\w\s]+) problems`)},
	{FactSituation, regexp.MustCompile(`(?i)having trouble with ([\w\s]+)`)},
	{FactSituation, regexp.MustCompile(`(?i)having a hard time with ([\w\s]+)`)},
	{FactSituation, regexp.MustCompile(`(?i)having difficulty with ([\w\s]+)`)},

	{FactPerson, regexp.MustCompile(`(?i)my (\w+) is ([\w\s]+)`)},
	{FactPerson, regexp.MustCompile(`(?i)my (\w+) and i`)},
	{FactPerson, regexp.MustCompile(`(?i)with my (\w+)`)},

	{FactCopingStrategy, regexp.MustCompile(`(?i)helps me ([\w\s]+)`)},
	{FactCopingStrategy, regexp.MustCompile(`(?i)i cope by ([\w\s]+)`)},
	{FactCopingStrategy, regexp.MustCompile(`(?i)i find ([\w\s]+) helpful`)},
	{FactCopingStrategy, regexp.MustCompile(`(?i)i like to ([\w\s]+) when`)},
	{FactCopingStrategy, regexp.MustCompile(`(?i)i try to ([\w\s]+) when`)},
	{FactCopingStrategy, regexp.MustCompile(`(?i)([\w\s]+) makes me feel better`)},

	{FactGoal, regexp.MustCompile(`(?i)i want to ([\w\s]+)`)},
	{FactGoal, regexp.MustCompile(`(?i)i'm trying to ([\w\s]+)`)},
	{FactGoal, regexp.MustCompile(`(?i)i hope to ([\w\s]+)`)},
	{FactGoal, regexp.MustCompile(`(?i)my goal is to ([\w\s]+)`)},
	{FactGoal, regexp.MustCompile(`(?i)i wish i could ([\w\s]+)`)},

	{FactPreference, regexp.MustCompile(`(?i)i prefer ([\w\s]+)`)},
	{FactPreference, regexp.MustCompile(`(?i)i like ([\w\s]+)`)},
	{FactPreference, regexp.MustCompile(`(?i)i enjoy ([\w\s]+)`)},
	{FactPreference, regexp.MustCompile(`(?i)i love ([\w\s]+)`)},
	{FactPreference, regexp.MustCompile(`(?i)i don't like ([\w\s]+)`)},
	{FactPreference, regexp.MustCompile(`(?i)i hate ([\w\s]+)`)},

	{FactStrength, regexp.MustCompile(`(?i)i'm good at ([\w\s]+)`)},
	{FactStrength, regexp.MustCompile(`(?i)i excel at ([\w\s]+)`)},
	{FactStrength, regexp.MustCompile(`(?i)my strength is ([\w\s]+)`)},
	{FactStrength, regexp.MustCompile(`(?i)i can ([\w\s]+) well`)},

	{FactChallenge, regexp.MustCompile(`(?i)i struggle with ([\w\s]+)`)},
	{FactChallenge, regexp.MustCompile(`(?i)i find it hard to ([\w\s]+)`)},
	{FactChallenge, regexp.MustCompile(`(?i)i have trouble ([\w\s]+)`)},
	{FactChallenge, regexp.MustCompile(`(?i)it's difficult for me to ([\w\s]+)`)},
	{FactChallenge, regexp.MustCompile(`(?i)i can't seem to ([\w\s]+)`)},

	{FactAchievement, regexp.MustCompile(`(?i)i managed to ([\w\s]+)`)},
	{FactAchievement, regexp.MustCompile(`(?i)i was able to ([\w\s]+)`)},
	{FactAchievement, regexp.MustCompile(`(?i)i succeeded in ([\w\s]+)`)},
	{FactAchievement, regexp.MustCompile(`(?i)i accomplished ([\w\s]+)`)},
	{FactAchievement, regexp.MustCompile(`(?i)i'm proud that i ([\w\s]+)`)},
}

// Direct emotion-word lexicons. Any message word found here is recorded as an
// emotion fact in addition to pattern-based extraction.
var positiveEmotionWords = map[string]struct{}{
	"happy": {}, "glad": {}, "joyful": {}, "excited": {}, "content": {},
	"peaceful": {}, "calm": {}, "relaxed": {}, "grateful": {}, "thankful": {},
	"proud": {}, "confident": {}, "hopeful": {}, "optimistic": {}, "relieved": {},
}

var negativeEmotionWords = map[string]struct{}{
	"sad": {}, "upset": {}, "depressed": {}, "anxious": {}, "worried": {},
	"stressed": {}, "angry": {}, "frustrated": {}, "disappointed": {},
	"hurt": {}, "lonely": {}, "afraid": {}, "scared": {}, "overwhelmed": {},
	"exhausted": {}, "tired": {}, "hopeless": {}, "helpless": {}, "guilty": {},
	"ashamed": {}, "embarrassed": {}, "jealous": {}, "envious": {},
}

// Category keyword sets for the classifier. Matching is substring containment
// on the lowercased message, not word-boundary aware.
var categoryKeywords = map[string][]string{
	"sadness": {
		"sad", "unhappy", "depressed", "down", "blue", "crying", "tears",
		"upset", "miserable", "heartbroken", "grief", "mourning", "gloomy",
		"hopeless", "despair", "melancholy", "sorrow", "hurt",
	},
	"anxiety": {
		"anxious", "worried", "nervous", "stress", "panic", "fear", "scared",
		"afraid", "uneasy", "tense", "overwhelmed", "overthinking", "restless",
		"apprehensive", "dread", "jittery", "on edge",
	},
	"anger": {
		"angry", "mad", "frustrated", "annoyed", "irritated", "furious",
		"rage", "resentment", "hostile", "bitter", "enraged", "outraged",
		"hate", "dislike", "fed up", "bothered", "irked",
	},
	"fear": {
		"afraid", "scared", "terrified", "fearful", "frightened", "alarmed",
		"panicked", "threatened", "worried", "concerned", "dreading", "horror",
		"terror", "phobia", "intimidated",
	},
	"joy": {
		"happy", "good", "great", "wonderful", "amazing", "joy", "excited",
		"pleased", "delighted", "content", "cheerful", "thrilled", "elated",
		"glad", "satisfied", "positive", "fantastic", "excellent",
	},
	"gratitude": {
		"grateful", "thankful", "appreciate", "blessed", "fortunate", "lucky",
		"appreciative", "moved", "touched", "honored", "indebted",
		"recognition", "acknowledgment",
	},
	"coping": {
		"cope", "deal", "manage", "handle", "strategy", "technique", "method",
		"way", "approach", "solution", "help", "advice", "suggestion", "tip",
		"guidance", "direction", "support", "resource",
	},
	"selfCare": {
		"self-care", "care", "rest", "sleep", "eat", "food", "exercise",
		"move", "break", "pause", "relax", "calm", "soothe", "comfort",
		"nurture", "nourish", "recharge", "restore", "replenish",
	},
}

// keywordCategoryOrder fixes the scan order so classification output is
// deterministic for a given message.
var keywordCategoryOrder = []string{
	"sadness", "anxiety", "anger", "fear", "joy", "gratitude", "coping", "selfCare",
}

var crisisKeywords = []string{
	"suicide", "kill", "die", "death", "end", "harm", "hurt", "pain",
	"emergency", "crisis", "helpline", "hotline", "lifeline", "danger",
	"unsafe", "desperate", "hopeless", "pointless", "worthless",
}

var greetingKeywords = []string{
	"hello", "hi", "hey", "greetings", "good morning", "good afternoon",
	"good evening", "howdy", "what's up", "how are you", "how's it going",
	"how do you do",
}

var interrogativePrefixes = []string{
	"how", "what", "why", "when", "where", "can", "could", "would",
}

// importanceForKind maps a fact kind to the weight the extractor records it
// with. Person facts are recorded at 7 by the extractor directly.
func importanceForKind(kind FactKind) int {
	switch kind {
	case FactName:
		return 10
	case FactEmotion:
		return 8
	case FactSituation:
		return 7
	default:
		return 5
	}
}
