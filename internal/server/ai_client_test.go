package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Mabotse-Mosima/serene/internal/companion"
	"github.com/Mabotse-Mosima/serene/internal/config"
)

func newHFTestClient(baseURL string) *HuggingFaceClient {
	return NewHuggingFaceClient(config.Config{
		HFBaseURL:        baseURL,
		HFModel:          "test-model",
		AITimeoutSeconds: 5,
	})
}

func TestHuggingFaceQuery(t *testing.T) {
	var gotPath string
	var gotPayload map[string]any

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode inference payload: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"generated_text":"  That sounds really hard.  "}]`))
	}))
	defer upstream.Close()

	client := newHFTestClient(upstream.URL)
	resp, err := client.Query(context.Background(), AIModelRequest{
		Conversation: []companion.ChatTurn{
			{Role: "user", Content: "I had a rough day"},
		},
	})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if resp.Text != "That sounds really hard." {
		t.Fatalf("expected trimmed answer, got %q", resp.Text)
	}
	if resp.Model != "test-model" {
		t.Fatalf("expected model echoed back, got %q", resp.Model)
	}
	if gotPath != "/models/test-model" {
		t.Fatalf("expected inference path /models/test-model, got %q", gotPath)
	}

	inputs, _ := gotPayload["inputs"].(string)
	if !strings.Contains(inputs, "Human: I had a rough day") {
		t.Fatalf("expected prompt to carry the conversation, got %q", inputs)
	}
	options, _ := gotPayload["options"].(map[string]any)
	if waitForModel, _ := options["wait_for_model"].(bool); !waitForModel {
		t.Fatalf("expected wait_for_model option, got %v", gotPayload["options"])
	}
}

func TestHuggingFaceQueryUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model is loading", http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	client := newHFTestClient(upstream.URL)
	_, err := client.Query(context.Background(), AIModelRequest{})
	if err == nil {
		t.Fatalf("expected error on upstream failure")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Fatalf("expected status code in error, got %v", err)
	}
}

func TestHuggingFaceQueryRequiresConfig(t *testing.T) {
	client := NewHuggingFaceClient(config.Config{})
	if _, err := client.Query(context.Background(), AIModelRequest{}); err == nil {
		t.Fatalf("expected error for missing base URL")
	}
}

func TestBuildHFPrompt(t *testing.T) {
	prompt := buildHFPrompt(AIModelRequest{
		SystemPrompt: "Be kind.",
		Conversation: []companion.ChatTurn{
			{Role: "system", Content: "ignored"},
			{Role: "user", Content: "hello"},
			{Role: "assistant", Content: "hi there"},
			{Role: "user", Content: "  "},
		},
	})
	if !strings.HasPrefix(prompt, "Instructions: Be kind.\n\n") {
		t.Fatalf("expected instructions prefix, got %q", prompt)
	}
	if !strings.HasSuffix(prompt, "Assistant:") {
		t.Fatalf("expected trailing assistant cue, got %q", prompt)
	}
	if strings.Contains(prompt, "ignored") {
		t.Fatalf("system turns must not appear in the prompt: %q", prompt)
	}
	if !strings.Contains(prompt, "Human: hello\nAssistant: hi there\n") {
		t.Fatalf("unexpected turn rendering: %q", prompt)
	}
}

func TestBuildHFPromptTruncatesHistory(t *testing.T) {
	conversation := make([]companion.ChatTurn, 0, 10)
	for i := 0; i < 10; i++ {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		conversation = append(conversation, companion.ChatTurn{
			Role:    role,
			Content: "turn " + string(rune('a'+i)),
		})
	}
	prompt := buildHFPrompt(AIModelRequest{Conversation: conversation})
	if strings.Contains(prompt, "turn a") || strings.Contains(prompt, "turn d") {
		t.Fatalf("expected old turns dropped, got %q", prompt)
	}
	if !strings.Contains(prompt, "turn e") || !strings.Contains(prompt, "turn j") {
		t.Fatalf("expected recent turns kept, got %q", prompt)
	}
}

func TestBuildHFPromptDefaultsSystemPrompt(t *testing.T) {
	prompt := buildHFPrompt(AIModelRequest{})
	if !strings.Contains(prompt, defaultSupportPrompt) {
		t.Fatalf("expected default support prompt, got %q", prompt)
	}
}

func TestExtractHFAnswer(t *testing.T) {
	if got := extractHFAnswer([]byte(`{"generated_text":"hello"}`)); got != "hello" {
		t.Fatalf("object form: got %q", got)
	}
	if got := extractHFAnswer([]byte(`[{"generated_text":" hi "}]`)); got != "hi" {
		t.Fatalf("array form: got %q", got)
	}
	if got := extractHFAnswer([]byte(`[]`)); got != "" {
		t.Fatalf("empty array: got %q", got)
	}
	if got := extractHFAnswer([]byte(`not json`)); got != "" {
		t.Fatalf("garbage body: got %q", got)
	}
}
