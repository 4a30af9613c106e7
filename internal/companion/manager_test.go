package companion

import (
	"testing"
	"time"
)

func newClockedManager(ttl time.Duration, start time.Time) (*Manager, *time.Time) {
	m := NewManager(ttl)
	current := start
	m.now = func() time.Time { return current }
	return m, &current
}

func TestManagerGetCreatesOnce(t *testing.T) {
	m := NewManager(time.Hour)

	first := m.Get("alpha")
	second := m.Get("alpha")
	if first != second {
		t.Fatalf("expected same session for repeated Get")
	}
	if m.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", m.Len())
	}
}

func TestManagerSessionsAreIsolated(t *testing.T) {
	m := NewManager(time.Hour)

	a := m.Get("alpha")
	b := m.Get("beta")
	a.Respond([]ChatTurn{{Role: "user", Content: "my name is Jordan"}})

	if b.Snapshot().HasName {
		t.Fatalf("session beta must not see alpha's memory")
	}
	if !a.Snapshot().HasName {
		t.Fatalf("session alpha should have recorded the name")
	}
}

func TestManagerEvictsIdleSessions(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m, clock := newClockedManager(30*time.Minute, start)

	m.Get("stale")
	*clock = start.Add(10 * time.Minute)
	m.Get("fresh")

	*clock = start.Add(35 * time.Minute)
	m.Get("fresh")
	if m.Len() != 1 {
		t.Fatalf("expected stale session evicted, got %d sessions", m.Len())
	}

	// A re-created session starts empty.
	if m.Get("stale").Snapshot().HasName {
		t.Fatalf("expected fresh session after eviction")
	}
}

func TestManagerZeroTTLDisablesEviction(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m, clock := newClockedManager(0, start)

	m.Get("alpha")
	*clock = start.Add(48 * time.Hour)
	m.Get("beta")
	if m.Len() != 2 {
		t.Fatalf("expected no eviction with zero ttl, got %d", m.Len())
	}
}

func TestManagerRemove(t *testing.T) {
	m := NewManager(time.Hour)
	m.Get("alpha")
	m.Remove("alpha")
	if m.Len() != 0 {
		t.Fatalf("expected empty manager after Remove, got %d", m.Len())
	}
}
