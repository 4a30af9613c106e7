package companion

import (
	"math/rand"
	"strings"
)

const (
	responseTruncateLen = 300
	responseMinLen      = 10
)

var emotionCategoryOrder = []string{
	"sadness", "anxiety", "anger", "fear", "joy", "gratitude",
}

// Composer assembles replies from template fragments. It holds only an
// injected random source, so a fixed seed makes composition deterministic.
type Composer struct {
	rng *rand.Rand
}

// NewComposer wires a composer to the given random source.
func NewComposer(rng *rand.Rand) *Composer {
	return &Composer{rng: rng}
}

func (c *Composer) pick(pool string) string {
	templates := responseTemplates[pool]
	if len(templates) == 0 {
		templates = responseTemplates[CategoryFallback]
	}
	return templates[c.rng.Intn(len(templates))]
}

func (c *Composer) chance(p float64) bool {
	return c.rng.Float64() < p
}

// Compose builds the reply for one classified message against the session
// store. Crisis and short greetings return immediately; everything else goes
// through conditional assembly with a length-bounded refocusing fallback.
func (c *Composer) Compose(categories []string, message string, store *Store) string {
	if containsCategory(categories, CategoryCrisis) {
		return c.pick(CategoryCrisis)
	}

	userName := store.UserName()
	returning := store.IsReturningUser()
	recentEmotion := store.MostRecentEmotion()

	if containsCategory(categories, CategoryGreeting) && len(message) < shortGreetingMaxLen {
		switch {
		case returning && userName != "":
			return strings.ReplaceAll(c.pick("returning_user_with_name"), "{name}", userName)
		case returning:
			return c.pick("returning_user")
		case userName != "":
			return strings.ReplaceAll(c.pick("greeting_with_name"), "{name}", userName)
		default:
			return c.pick("greeting")
		}
	}

	var b strings.Builder

	if userName != "" && c.chance(0.3) {
		b.WriteString(userName + ", ")
	}

	if recentEmotion != "" && c.chance(0.2) && !containsCategory(categories, recentEmotion) {
		b.WriteString(strings.ReplaceAll(c.pick("emotion_follow_up"), "{emotion}", recentEmotion) + " ")
	}

	if memories := store.RelevantMemories(message, 3); len(memories) > 0 && c.chance(0.3) {
		top := memories[0]
		if top.Kind == FactSituation {
			b.WriteString(strings.ReplaceAll(c.pick("situation_follow_up"), "{situation}", top.Content) + " ")
		} else if top.Kind == FactCopingStrategy && c.chance(0.5) {
			b.WriteString(strings.ReplaceAll(c.pick("coping_strategy_reminder"), "{strategy}", top.Content) + " ")
		}
	}

	if b.Len() < responseMinLen {
		if containsCategory(categories, CategoryReflection) && c.chance(0.5) {
			b.WriteString(c.pick(CategoryReflection) + " ")
		} else if containsCategory(categories, CategoryValidation) {
			b.WriteString(c.pick(CategoryValidation) + " ")
		}
	}

	// Only one emotion is addressed per reply, in fixed priority order.
	for _, emotion := range emotionCategoryOrder {
		if containsCategory(categories, emotion) {
			b.WriteString(c.pick(emotion) + " ")
			break
		}
	}

	if b.Len() < responseMinLen {
		b.WriteString(c.pick(CategoryFallback) + " ")
	}

	if containsCategory(categories, "coping") {
		b.WriteString(c.pick("coping") + " ")
	} else if containsCategory(categories, "selfCare") {
		b.WriteString(c.pick("selfCare") + " ")
	}

	if c.chance(0.3) {
		b.WriteString(c.pick("encouragement"))
	}

	response := b.String()

	if !strings.HasSuffix(strings.TrimSpace(response), "?") && c.chance(0.5) {
		response += " " + c.pick(CategoryOpenQuestions)
	}

	if len(response) > responseTruncateLen {
		response = c.pick(primaryCategory(categories))
		if !strings.HasSuffix(response, "?") {
			response += " " + c.pick(CategoryOpenQuestions)
		}
	}

	return strings.TrimSpace(response)
}

// primaryCategory resolves the focused pool used when an assembled reply gets
// discarded for length: index 0, skipping reflection/validation in favor of
// index 1, defaulting to fallback.
func primaryCategory(categories []string) string {
	if len(categories) == 0 {
		return CategoryFallback
	}
	if categories[0] == CategoryReflection || categories[0] == CategoryValidation {
		if len(categories) > 1 {
			return categories[1]
		}
		return CategoryFallback
	}
	return categories[0]
}
