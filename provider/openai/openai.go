package openai_provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/arash-karimi/moodreel/internal/helpers"
	"github.com/arash-karimi/moodreel/models"
)

const (
	// maxPromptTitles bounds prompt size and cost; candidates arrive in
	// popularity order so the head of the list is the interesting part.
	maxPromptTitles = 18
	// maxPicks caps how many picks one ranking call may return.
	maxPicks = 5

	systemPrompt = "You are a concise movie recommendation assistant."
)

// client implements the provider interface using OpenAI's chat completions API
type client struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
}

// Message represents a message in a conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// request represents a request to the OpenAI API
type request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

// response represents a response from the OpenAI API
type response struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewClient creates a new OpenAI client
func NewClient(apiKey, baseURL, model string, temperature float64, maxTokens int, timeout time.Duration) *client {
	return &client{
		apiKey:      apiKey,
		baseURL:     strings.TrimRight(baseURL, "/"),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// RankMovies asks the model to pick the best titles for the mood. The reply
// is free text; whatever JSON can be dug out of it becomes structured picks,
// and anything unparseable degrades to the raw-fallback variant instead of
// an error.
func (c *client) RankMovies(ctx context.Context, mood string, candidates []models.Movie) (models.RankResult, error) {
	if len(candidates) > maxPromptTitles {
		candidates = candidates[:maxPromptTitles]
	}
	var titles []string
	for _, m := range candidates {
		if m.Title != "" {
			titles = append(titles, m.Title)
		}
	}

	titleList, err := json.Marshal(titles)
	if err != nil {
		return models.RankResult{}, fmt.Errorf("failed to marshal titles: %w", err)
	}
	userPrompt := fmt.Sprintf(`Pick the %d best movies for the mood: %q from this list:
%s

Return ONLY JSON list of objects with keys "title" and "reason" (one sentence).`, maxPicks, mood, titleList)

	messages := []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	}

	raw, err := c.sendRequest(ctx, messages)
	if err != nil {
		return models.RankResult{}, err
	}
	return parseReply(raw), nil
}

// parseReply turns a free-text reply into picks. Extraction order: fenced
// code block, first balanced JSON segment, full trimmed text. A single
// object is wrapped into a one-element list. Unparseable replies become the
// raw-fallback variant.
func parseReply(raw string) models.RankResult {
	block, _ := helpers.ExtractJSON(raw)

	var entries []models.Pick
	if err := json.Unmarshal([]byte(block), &entries); err != nil {
		var single models.Pick
		if err := json.Unmarshal([]byte(block), &single); err != nil {
			return models.RawFallback(raw)
		}
		entries = []models.Pick{single}
	}

	var picks []models.Pick
	for _, e := range entries {
		title := strings.TrimSpace(e.Title)
		if title == "" {
			continue
		}
		picks = append(picks, models.Pick{Title: title, Reason: strings.TrimSpace(e.Reason)})
		if len(picks) == maxPicks {
			break
		}
	}
	return models.RankResult{Picks: picks}
}

// sendRequest sends a request to the OpenAI API
func (c *client) sendRequest(ctx context.Context, messages []Message) (string, error) {
	requestBody := request{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status: %d", resp.StatusCode)
	}

	var openaiResp response
	if err := json.NewDecoder(resp.Body).Decode(&openaiResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(openaiResp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return openaiResp.Choices[0].Message.Content, nil
}
