package companion

import (
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	memoryCapacity           = 50
	recentEmotionWindow      = time.Hour
	memoryDecayHours         = 24.0
	returningUserMinDuration = 30 * time.Minute
)

// MemoryItem is one extracted fact. Items are immutable after creation; the
// store only drops them in bulk on clear or capacity eviction.
type MemoryItem struct {
	Kind       FactKind
	Content    string
	CreatedAt  time.Time
	Importance int
}

// MemorySnapshot is the read-only diagnostic view exposed to the hosting
// application. It never carries raw memory content.
type MemorySnapshot struct {
	HasName                bool `json:"has_name"`
	EmotionCount           int  `json:"emotion_count"`
	SessionDurationMinutes int  `json:"session_duration_minutes"`
	IsReturningUser        bool `json:"is_returning_user"`
	HasPreferredStrategies bool `json:"has_preferred_strategies"`
}

// Store holds one session's conversation memory. All mutations take the store
// lock so append+sort+truncate stays a single critical section.
type Store struct {
	mu           sync.Mutex
	items        []MemoryItem
	userName     string
	emotionTimes map[string]time.Time
	strategies   map[string]struct{}
	sessionStart time.Time
	now          func() time.Time
}

// NewStore creates an empty session store with the real clock.
func NewStore() *Store {
	return NewStoreWithClock(time.Now)
}

// NewStoreWithClock creates a store whose notion of time comes from now.
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{
		emotionTimes: make(map[string]time.Time),
		strategies:   make(map[string]struct{}),
		sessionStart: now(),
		now:          now,
	}
}

// Record adds one fact. The first name fact pins the user's name at
// importance 10; later name facts never overwrite it. Emotion facts upsert
// the lowercased emotion timestamp; coping strategies join the preferred set.
func (s *Store) Record(kind FactKind, content string, importance int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(kind, content, importance)
}

func (s *Store) record(kind FactKind, content string, importance int) {
	if kind == FactName && s.userName == "" {
		s.userName = content
		importance = 10
	}
	if kind == FactEmotion {
		s.emotionTimes[strings.ToLower(content)] = s.now()
	}
	if kind == FactCopingStrategy {
		s.strategies[strings.ToLower(content)] = struct{}{}
	}

	s.items = append(s.items, MemoryItem{
		Kind:       kind,
		Content:    content,
		CreatedAt:  s.now(),
		Importance: importance,
	})
	sort.SliceStable(s.items, func(i, j int) bool {
		return s.items[i].Importance > s.items[j].Importance
	})
	if len(s.items) > memoryCapacity {
		s.items = s.items[:memoryCapacity]
	}
}

// Apply merges a batch of extracted facts in order.
func (s *Store) Apply(facts []Fact) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range facts {
		s.record(f.Kind, f.Content, f.Importance)
	}
}

// UserName returns the pinned name, or "" if none has been observed.
func (s *Store) UserName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userName
}

// RecentEmotions returns every emotion observed within the last hour,
// a sliding window against the current clock.
func (s *Store) RecentEmotions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-recentEmotionWindow)
	emotions := make([]string, 0, len(s.emotionTimes))
	for emotion, at := range s.emotionTimes {
		if at.After(cutoff) {
			emotions = append(emotions, emotion)
		}
	}
	sort.Strings(emotions)
	return emotions
}

// MostRecentEmotion returns the latest observed emotion regardless of how
// long ago it was recorded, or "" if none exists.
func (s *Store) MostRecentEmotion() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var best string
	var bestAt time.Time
	for emotion, at := range s.emotionTimes {
		if best == "" || at.After(bestAt) || (at.Equal(bestAt) && emotion < best) {
			best = emotion
			bestAt = at
		}
	}
	return best
}

// PreferredStrategies returns the deduplicated coping strategies observed so
// far, in sorted order.
func (s *Store) PreferredStrategies() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	strategies := make([]string, 0, len(s.strategies))
	for strategy := range s.strategies {
		strategies = append(strategies, strategy)
	}
	sort.Strings(strategies)
	return strategies
}

// RelevantMemories scores every stored item against the query: word-overlap
// count (containment counts as a match) scaled by importance/5 and by a decay
// factor that fades to 1x over 24 hours. Zero-score items are dropped and the
// top limit items are returned, ties resolved by stored order.
func (s *Store) RelevantMemories(query string, limit int) []MemoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = 3
	}
	queryWords := strings.Fields(strings.ToLower(query))
	now := s.now()

	type scored struct {
		item  MemoryItem
		score float64
	}
	candidates := make([]scored, 0, len(s.items))
	for _, item := range s.items {
		content := strings.ToLower(item.Content)
		memoryWords := make(map[string]struct{})
		for _, w := range strings.Fields(content) {
			memoryWords[w] = struct{}{}
		}

		score := 0.0
		for _, word := range queryWords {
			if _, ok := memoryWords[word]; ok {
				score++
			} else if strings.Contains(content, word) {
				score++
			}
		}

		score *= float64(item.Importance) / 5.0

		hoursSince := now.Sub(item.CreatedAt).Hours()
		recency := 1.0 - hoursSince/memoryDecayHours
		if recency < 0 {
			recency = 0
		}
		score *= 1.0 + recency

		if score > 0 {
			candidates = append(candidates, scored{item: item, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	result := make([]MemoryItem, 0, len(candidates))
	for _, c := range candidates {
		result = append(result, c.item)
	}
	return result
}

// SessionDuration reports how long this session has existed.
func (s *Store) SessionDuration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now().Sub(s.sessionStart)
}

// IsReturningUser is true when the store holds any memory and the session is
// older than 30 minutes. The rule deliberately conflates "has history" with
// "long session"; see DESIGN.md.
func (s *Store) IsReturningUser() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items) > 0 && s.now().Sub(s.sessionStart) > returningUserMinDuration
}

// Len reports how many memory items are held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Clear wipes every substructure. Idempotent; the session start time is kept.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.userName = ""
	s.emotionTimes = make(map[string]time.Time)
	s.strategies = make(map[string]struct{})
}

// Snapshot builds the diagnostic view without exposing stored content.
func (s *Store) Snapshot() MemorySnapshot {
	recent := s.RecentEmotions()

	s.mu.Lock()
	defer s.mu.Unlock()
	return MemorySnapshot{
		HasName:                s.userName != "",
		EmotionCount:           len(recent),
		SessionDurationMinutes: int(s.now().Sub(s.sessionStart).Minutes()),
		IsReturningUser:        len(s.items) > 0 && s.now().Sub(s.sessionStart) > returningUserMinDuration,
		HasPreferredStrategies: len(s.strategies) > 0,
	}
}
