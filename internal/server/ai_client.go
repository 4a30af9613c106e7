package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Mabotse-Mosima/serene/internal/companion"
	"github.com/Mabotse-Mosima/serene/internal/config"
)

// AIModelRequest is a conversation handed to an external language-model
// backend.
type AIModelRequest struct {
	SystemPrompt string
	Conversation []companion.ChatTurn
}

// AIModelResponse carries the backend's answer.
type AIModelResponse struct {
	Text  string
	Model string
}

// AIClient is the alternate responder backend. The scripted companion engine
// is the default; an AIClient is only consulted when explicitly configured,
// and any failure falls back to the scripted engine.
type AIClient interface {
	Query(ctx context.Context, req AIModelRequest) (AIModelResponse, error)
}

const defaultSupportPrompt = "You are a supportive, empathetic companion designed to provide emotional support. " +
	"Be warm, compassionate, and non-judgmental. Listen actively and validate feelings. " +
	"Offer gentle encouragement and positive reinforcement. Suggest simple coping strategies when appropriate. " +
	"Use a calm, reassuring tone. Never diagnose medical conditions."

// hfHistoryTurns bounds how much conversation is sent to stay within the
// model's context window.
const hfHistoryTurns = 6

// HuggingFaceClient talks to the Hugging Face inference API.
type HuggingFaceClient struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewHuggingFaceClient(cfg config.Config) *HuggingFaceClient {
	timeoutSeconds := cfg.AITimeoutSeconds
	if timeoutSeconds <= 0 {
		timeoutSeconds = 20
	}
	return &HuggingFaceClient{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.HFBaseURL), "/"),
		model:   strings.TrimSpace(cfg.HFModel),
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
	}
}

func (c *HuggingFaceClient) Query(ctx context.Context, req AIModelRequest) (AIModelResponse, error) {
	if c.baseURL == "" {
		return AIModelResponse{}, errors.New("HF_BASE_URL is not configured")
	}
	if c.model == "" {
		return AIModelResponse{}, errors.New("HF_MODEL is not configured")
	}

	payload := map[string]any{
		"inputs": buildHFPrompt(req),
		"options": map[string]any{
			"wait_for_model": true,
		},
	}
	bodyRaw, err := json.Marshal(payload)
	if err != nil {
		return AIModelResponse{}, err
	}

	request, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/models/"+c.model,
		bytes.NewReader(bodyRaw),
	)
	if err != nil {
		return AIModelResponse{}, err
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return AIModelResponse{}, err
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return AIModelResponse{}, err
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return AIModelResponse{}, fmt.Errorf(
			"huggingface inference error (%d): %s",
			response.StatusCode,
			strings.TrimSpace(string(responseBody)),
		)
	}

	answer := extractHFAnswer(responseBody)
	if answer == "" {
		return AIModelResponse{}, errors.New("huggingface response text is empty")
	}
	return AIModelResponse{Text: answer, Model: c.model}, nil
}

// buildHFPrompt flattens a conversation into the Instructions/Human/Assistant
// prompt format conversational models expect, keeping only the most recent
// turns.
func buildHFPrompt(req AIModelRequest) string {
	systemPrompt := strings.TrimSpace(req.SystemPrompt)
	if systemPrompt == "" {
		systemPrompt = defaultSupportPrompt
	}

	turns := req.Conversation
	if len(turns) > hfHistoryTurns {
		turns = turns[len(turns)-hfHistoryTurns:]
	}

	var b strings.Builder
	b.WriteString("Instructions: " + systemPrompt + "\n\n")
	for _, turn := range turns {
		role := strings.ToLower(strings.TrimSpace(turn.Role))
		content := strings.TrimSpace(turn.Content)
		if content == "" || role == "system" {
			continue
		}
		speaker := "Assistant"
		if role == "user" {
			speaker = "Human"
		}
		b.WriteString(speaker + ": " + content + "\n")
	}
	b.WriteString("Assistant:")
	return b.String()
}

func extractHFAnswer(body []byte) string {
	var single struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(body, &single); err == nil && strings.TrimSpace(single.GeneratedText) != "" {
		return strings.TrimSpace(single.GeneratedText)
	}

	var list []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(body, &list); err == nil && len(list) > 0 {
		return strings.TrimSpace(list[0].GeneratedText)
	}
	return ""
}
