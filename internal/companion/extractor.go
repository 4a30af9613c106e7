package companion

import (
	"fmt"
	"strings"
)

// Fact is one candidate memory produced by extraction, before it is merged
// into a session store.
type Fact struct {
	Kind       FactKind
	Content    string
	Importance int
}

// ExtractFacts scans one message against every extraction rule and the direct
// emotion lexicons. Multiple rules may fire for the same message; each match
// yields its own fact. Returns nil when nothing matches.
func ExtractFacts(message string) []Fact {
	var facts []Fact

	for _, rule := range extractionRules {
		match := rule.pattern.FindStringSubmatch(message)
		if match == nil || len(match) < 2 || match[1] == "" {
			continue
		}
		if rule.kind == FactPerson && len(match) > 2 && match[2] != "" {
			facts = append(facts, Fact{
				Kind:       FactPerson,
				Content:    fmt.Sprintf("%s: %s", match[1], match[2]),
				Importance: 7,
			})
			continue
		}
		facts = append(facts, Fact{
			Kind:       rule.kind,
			Content:    match[1],
			Importance: importanceForKind(rule.kind),
		})
	}

	for _, word := range strings.Fields(strings.ToLower(message)) {
		_, positive := positiveEmotionWords[word]
		_, negative := negativeEmotionWords[word]
		if positive || negative {
			facts = append(facts, Fact{
				Kind:       FactEmotion,
				Content:    word,
				Importance: 8,
			})
		}
	}

	return facts
}
