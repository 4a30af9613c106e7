package companion

import (
	"log"
	"math/rand"
	"strings"
)

// genericFallback is the only user-visible failure mode: any internal fault
// during composition degrades to this supportive line.
const genericFallback = "I'm here to listen and support you. Would you like to share more about how you're feeling?"

// ChatTurn is one message of a conversation history.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session binds one conversation's memory store to a composer.
type Session struct {
	ID       string
	store    *Store
	composer *Composer
}

// NewSession creates a session with the real clock and the given random
// source. Tests pass a seeded source for deterministic composition.
func NewSession(id string, rng *rand.Rand) *Session {
	return &Session{
		ID:       id,
		store:    NewStore(),
		composer: NewComposer(rng),
	}
}

// Store exposes the session's memory store.
func (s *Session) Store() *Store {
	return s.store
}

// Respond runs the full pipeline for the latest user message in history:
// extraction, classification, composition. An empty or absent user message
// falls back to a greeting; any panic is converted to the generic supportive
// fallback rather than propagated.
func (s *Session) Respond(history []ChatTurn) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("companion: response generation failed: %v", r)
			reply = genericFallback
		}
	}()

	message := latestUserMessage(history)
	if message == "" {
		return s.composer.pick(CategoryGreeting)
	}

	s.store.Apply(ExtractFacts(message))
	categories := Classify(message)
	return s.composer.Compose(categories, message, s.store)
}

// Snapshot returns the session's diagnostic memory view.
func (s *Session) Snapshot() MemorySnapshot {
	return s.store.Snapshot()
}

// Wipe clears all session memory. Idempotent.
func (s *Session) Wipe() {
	s.store.Clear()
}

func latestUserMessage(history []ChatTurn) string {
	for i := len(history) - 1; i >= 0; i-- {
		if strings.EqualFold(strings.TrimSpace(history[i].Role), "user") {
			return strings.TrimSpace(history[i].Content)
		}
	}
	return ""
}
