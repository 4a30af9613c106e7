package companion

import (
	"fmt"
	"testing"
	"time"
)

func newClockedStore(start time.Time) (*Store, *time.Time) {
	current := start
	store := NewStoreWithClock(func() time.Time { return current })
	return store, &current
}

func TestRecordPinsFirstName(t *testing.T) {
	store := NewStore()
	store.Record(FactName, "Alex", 5)
	store.Record(FactName, "Sam", 5)

	if got := store.UserName(); got != "Alex" {
		t.Fatalf("expected first name to stay pinned, got %q", got)
	}
}

func TestRecordCapsAtFiftyHighestImportance(t *testing.T) {
	store := NewStore()
	for i := 0; i < 30; i++ {
		store.Record(FactPreference, fmt.Sprintf("low-%d", i), 2)
	}
	for i := 0; i < 30; i++ {
		store.Record(FactSituation, fmt.Sprintf("high-%d", i), 9)
	}

	if got := store.Len(); got != 50 {
		t.Fatalf("expected store capped at 50, got %d", got)
	}

	// All 30 high-importance items must survive; only 20 low ones fit.
	high := 0
	for _, item := range store.RelevantMemories("high", 50) {
		if item.Importance == 9 {
			high++
		}
	}
	if high != 30 {
		t.Fatalf("expected all 30 high-importance items retained, got %d", high)
	}
}

func TestRecentEmotionsSlidingWindow(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store, clock := newClockedStore(start)

	store.Record(FactEmotion, "Anxious", 8)
	*clock = start.Add(2 * time.Minute)
	store.Record(FactEmotion, "calm", 8)

	*clock = start.Add(61 * time.Minute)
	emotions := store.RecentEmotions()
	if len(emotions) != 1 || emotions[0] != "calm" {
		t.Fatalf("expected only the 59-minute-old emotion, got %v", emotions)
	}

	*clock = start.Add(63 * time.Minute)
	if got := store.RecentEmotions(); len(got) != 0 {
		t.Fatalf("expected empty window after both aged out, got %v", got)
	}
}

func TestMostRecentEmotionIgnoresWindow(t *testing.T) {
	start := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)
	store, clock := newClockedStore(start)

	store.Record(FactEmotion, "sad", 8)
	*clock = start.Add(5 * time.Minute)
	store.Record(FactEmotion, "hopeful", 8)

	// Hours later the stale emotion is still the most recent one.
	*clock = start.Add(9 * time.Hour)
	if got := store.MostRecentEmotion(); got != "hopeful" {
		t.Fatalf("expected hopeful, got %q", got)
	}

	empty := NewStore()
	if got := empty.MostRecentEmotion(); got != "" {
		t.Fatalf("expected empty string for empty store, got %q", got)
	}
}

func TestRelevantMemoriesPrefersWordOverlap(t *testing.T) {
	store := NewStore()
	store.Record(FactName, "Zelda", 10)
	store.Record(FactSituation, "moving to a new city", 7)

	memories := store.RelevantMemories("how is moving to the new city going", 3)
	if len(memories) == 0 {
		t.Fatalf("expected at least one relevant memory")
	}
	if memories[0].Kind != FactSituation {
		t.Fatalf("expected situation memory first despite lower importance, got %s", memories[0].Kind)
	}
	for _, item := range memories {
		if item.Content == "Zelda" {
			t.Fatalf("zero-overlap memory should have been dropped")
		}
	}
}

func TestRelevantMemoriesRecencyBoost(t *testing.T) {
	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	store, clock := newClockedStore(start)

	store.Record(FactPreference, "walking outside", 5)
	*clock = start.Add(12 * time.Hour)
	store.Record(FactGoal, "walking every morning", 5)

	memories := store.RelevantMemories("walking", 3)
	if len(memories) != 2 {
		t.Fatalf("expected both walking memories, got %d", len(memories))
	}
	if memories[0].Kind != FactGoal {
		t.Fatalf("expected fresher memory to outrank the older one, got %s", memories[0].Kind)
	}
}

func TestIsReturningUser(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	store, clock := newClockedStore(start)

	if store.IsReturningUser() {
		t.Fatalf("empty store must not report returning user")
	}
	store.Record(FactEmotion, "tired", 8)
	if store.IsReturningUser() {
		t.Fatalf("young session must not report returning user")
	}
	*clock = start.Add(31 * time.Minute)
	if !store.IsReturningUser() {
		t.Fatalf("non-empty store past 30 minutes must report returning user")
	}
}

func TestClearIsIdempotent(t *testing.T) {
	store := NewStore()
	store.Record(FactName, "Alex", 5)
	store.Record(FactEmotion, "sad", 8)
	store.Record(FactCopingStrategy, "journaling", 5)

	store.Clear()
	store.Clear()

	if store.Len() != 0 {
		t.Fatalf("expected no items after clear, got %d", store.Len())
	}
	if store.UserName() != "" {
		t.Fatalf("expected name cleared")
	}
	if len(store.RecentEmotions()) != 0 {
		t.Fatalf("expected emotions cleared")
	}
	if len(store.PreferredStrategies()) != 0 {
		t.Fatalf("expected strategies cleared")
	}
}

func TestSnapshotHidesContent(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	store, clock := newClockedStore(start)

	store.Record(FactName, "Alex", 5)
	store.Record(FactEmotion, "worried", 8)
	store.Record(FactCopingStrategy, "deep breathing", 5)
	*clock = start.Add(45 * time.Minute)

	snap := store.Snapshot()
	if !snap.HasName {
		t.Fatalf("expected has_name true")
	}
	if snap.EmotionCount != 1 {
		t.Fatalf("expected one recent emotion, got %d", snap.EmotionCount)
	}
	if snap.SessionDurationMinutes != 45 {
		t.Fatalf("expected 45 minutes, got %d", snap.SessionDurationMinutes)
	}
	if !snap.IsReturningUser {
		t.Fatalf("expected returning user")
	}
	if !snap.HasPreferredStrategies {
		t.Fatalf("expected preferred strategies flag")
	}
}
