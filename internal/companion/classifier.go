package companion

import "strings"

// Response categories emitted by Classify.
const (
	CategoryCrisis        = "crisis"
	CategoryGreeting      = "greeting"
	CategoryOpenQuestions = "openQuestions"
	CategoryValidation    = "validation"
	CategoryReflection    = "reflection"
	CategoryFallback      = "fallback"
)

const shortGreetingMaxLen = 20

// Classify maps one message to an ordered, deduplicated category list.
// Crisis keywords short-circuit everything else; validation and reflection
// are always appended, and a message that matched nothing else collapses to
// the fallback category. The list is never empty.
func Classify(message string) []string {
	lower := strings.ToLower(message)

	for _, word := range crisisKeywords {
		if strings.Contains(lower, word) {
			return []string{CategoryCrisis}
		}
	}

	var categories []string

	if len(lower) < shortGreetingMaxLen {
		for _, word := range greetingKeywords {
			if strings.Contains(lower, word) {
				categories = append(categories, CategoryGreeting)
				break
			}
		}
	}

	for _, category := range keywordCategoryOrder {
		for _, word := range categoryKeywords[category] {
			if strings.Contains(lower, word) {
				categories = append(categories, category)
				break
			}
		}
	}

	if isQuestion(lower) {
		categories = append(categories, CategoryOpenQuestions)
	}

	categories = append(categories, CategoryValidation, CategoryReflection)

	if len(categories) == 2 {
		return []string{CategoryFallback}
	}
	return categories
}

func isQuestion(lower string) bool {
	if strings.Contains(lower, "?") {
		return true
	}
	for _, prefix := range interrogativePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

func containsCategory(categories []string, target string) bool {
	for _, category := range categories {
		if category == target {
			return true
		}
	}
	return false
}
