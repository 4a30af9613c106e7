package companion

import (
	"reflect"
	"testing"
)

func TestClassifyCrisisOverridesEverything(t *testing.T) {
	got := Classify("I want to die but I feel happy")
	if !reflect.DeepEqual(got, []string{CategoryCrisis}) {
		t.Fatalf("expected crisis to suppress all other categories, got %v", got)
	}
}

func TestClassifyShortGreeting(t *testing.T) {
	got := Classify("hello")
	if !containsCategory(got, CategoryGreeting) {
		t.Fatalf("expected greeting category, got %v", got)
	}

	long := Classify("hello, today I am going to walk you through my whole week")
	if containsCategory(long, CategoryGreeting) {
		t.Fatalf("expected no greeting for long message, got %v", long)
	}
}

func TestClassifyEmotionKeywords(t *testing.T) {
	got := Classify("I feel anxious about my exam")
	if !containsCategory(got, "anxiety") {
		t.Fatalf("expected anxiety category, got %v", got)
	}
	if !containsCategory(got, CategoryValidation) || !containsCategory(got, CategoryReflection) {
		t.Fatalf("expected validation and reflection always present, got %v", got)
	}
}

func TestClassifySubstringContainment(t *testing.T) {
	// Keyword matching is containment, not word-boundary aware, so "mad"
	// inside "madrigal" counts.
	got := Classify("we sang a madrigal together")
	if !containsCategory(got, "anger") {
		t.Fatalf("expected anger via substring match, got %v", got)
	}
}

func TestClassifyQuestionMarkers(t *testing.T) {
	if got := Classify("what should I tell my boss tomorrow"); !containsCategory(got, CategoryOpenQuestions) {
		t.Fatalf("expected openQuestions for interrogative prefix, got %v", got)
	}
	if got := Classify("my boss was unfair today, was I wrong?"); !containsCategory(got, CategoryOpenQuestions) {
		t.Fatalf("expected openQuestions for question mark, got %v", got)
	}
}

func TestClassifyFallbackWhenNothingMatches(t *testing.T) {
	got := Classify("zzz qqq vvv")
	if !reflect.DeepEqual(got, []string{CategoryFallback}) {
		t.Fatalf("expected fallback collapse, got %v", got)
	}
}

func TestClassifyNeverEmpty(t *testing.T) {
	for _, message := range []string{"", "ok", "hello", "I feel sad", "why"} {
		if got := Classify(message); len(got) == 0 {
			t.Fatalf("classification must never be empty for %q", message)
		}
	}
}

func TestClassifyCategoryOrderIsStable(t *testing.T) {
	got := Classify("I feel sad and anxious")
	want := []string{"sadness", "anxiety", CategoryValidation, CategoryReflection}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
