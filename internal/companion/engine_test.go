package companion

import (
	"math/rand"
	"strings"
	"testing"
	"time"
)

func newSeededSession(seed int64) *Session {
	return NewSession("test-session", rand.New(rand.NewSource(seed)))
}

func TestRespondEmptyHistoryGreets(t *testing.T) {
	session := newSeededSession(1)
	got := session.Respond(nil)
	if !poolContains("greeting", got) {
		t.Fatalf("expected greeting for empty history, got %q", got)
	}
}

func TestRespondUsesLatestUserMessage(t *testing.T) {
	session := newSeededSession(3)
	got := session.Respond([]ChatTurn{
		{Role: "system", Content: "be supportive"},
		{Role: "user", Content: "I feel anxious about my exam"},
		{Role: "assistant", Content: "previous reply"},
		{Role: "user", Content: "I want to die"},
	})
	if !poolContains("crisis", got) {
		t.Fatalf("expected crisis reply for latest user turn, got %q", got)
	}
}

func TestRespondRemembersNameAcrossTurns(t *testing.T) {
	session := newSeededSession(7)

	first := session.Respond([]ChatTurn{{Role: "user", Content: "my name is Jordan"}})
	if first == "" {
		t.Fatalf("expected a reply for the introduction turn")
	}

	// Fresh session, so isReturningUser is false and the named greeting
	// pool applies.
	second := session.Respond([]ChatTurn{{Role: "user", Content: "hello"}})
	if !strings.Contains(second, "Jordan") {
		t.Fatalf("expected greeting interpolated with Jordan, got %q", second)
	}
	matched := false
	for _, template := range responseTemplates["greeting_with_name"] {
		if second == strings.ReplaceAll(template, "{name}", "Jordan") {
			matched = true
			break
		}
	}
	if !matched {
		t.Fatalf("expected reply from greeting_with_name pool, got %q", second)
	}
}

func TestRespondExtractionMutatesStore(t *testing.T) {
	session := newSeededSession(11)
	session.Respond([]ChatTurn{{Role: "user", Content: "I feel overwhelmed by work"}})

	snap := session.Snapshot()
	if snap.EmotionCount == 0 {
		t.Fatalf("expected extraction to record an emotion, snapshot %+v", snap)
	}
}

func TestWipeIsIdempotent(t *testing.T) {
	session := newSeededSession(13)
	session.Respond([]ChatTurn{{Role: "user", Content: "my name is Alex and I feel sad"}})

	session.Wipe()
	session.Wipe()

	snap := session.Snapshot()
	if snap.HasName || snap.EmotionCount != 0 || snap.HasPreferredStrategies {
		t.Fatalf("expected empty snapshot after wipe, got %+v", snap)
	}
}

func TestManagerIsolatesSessions(t *testing.T) {
	manager := NewManager(0)

	a := manager.Get("session-a")
	b := manager.Get("session-b")
	if a == b {
		t.Fatalf("expected distinct sessions per id")
	}

	a.Respond([]ChatTurn{{Role: "user", Content: "my name is Jordan"}})
	if got := b.Store().UserName(); got != "" {
		t.Fatalf("expected no leakage into other session, got %q", got)
	}
	if again := manager.Get("session-a"); again != a {
		t.Fatalf("expected same session instance on repeat access")
	}
}

func TestManagerEvictsIdleSessionsViaEngine(t *testing.T) {
	manager := NewManager(10 * time.Minute)
	current := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	manager.now = func() time.Time { return current }

	manager.Get("stale")
	current = current.Add(11 * time.Minute)
	manager.Get("fresh")

	if manager.Len() != 1 {
		t.Fatalf("expected stale session evicted, got %d live sessions", manager.Len())
	}
	current = current.Add(5 * time.Minute)
	manager.Get("fresh")
	if manager.Len() != 1 {
		t.Fatalf("expected fresh session retained, got %d", manager.Len())
	}
}
