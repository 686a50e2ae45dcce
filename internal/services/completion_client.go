package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// CompletionClient calls an OpenAI-compatible chat completion endpoint.
// One request per question: a system instruction plus the user's message,
// no prior turns replayed.
type CompletionClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewCompletionClient creates a completion client with a hard request timeout.
// Timeout errors surface to the caller as service failures.
func NewCompletionClient(baseURL, apiKey, model string, timeout time.Duration) *CompletionClient {
	return &CompletionClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Complete sends one chat completion request. The returned text may be empty
// when the response carried no usable content; the caller decides the fallback.
func (c *CompletionClient) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	requestBody := map[string]interface{}{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userMessage},
		},
		"stream": false,
	}

	bodyBytes, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("completion request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to parse completion response: %w", err)
	}

	text, _ := ExtractResponseText(result)
	return text, nil
}

// ExtractResponseText pulls the answer text out of an OpenAI-style response
// body. Providers vary in which field carries the content, so a few shapes are
// checked before giving up.
func ExtractResponseText(result map[string]interface{}) (string, bool) {
	choices, ok := result["choices"].([]interface{})
	if !ok || len(choices) == 0 {
		return "", false
	}

	choice, ok := choices[0].(map[string]interface{})
	if !ok {
		return "", false
	}

	if message, ok := choice["message"].(map[string]interface{}); ok {
		if content, ok := message["content"].(string); ok && strings.TrimSpace(content) != "" {
			return content, true
		}
	}

	// Some providers put the content directly on the choice
	if content, ok := choice["content"].(string); ok && strings.TrimSpace(content) != "" {
		return content, true
	}

	// Streaming-style delta shape, seen on partially compatible providers
	if delta, ok := choice["delta"].(map[string]interface{}); ok {
		if content, ok := delta["content"].(string); ok && strings.TrimSpace(content) != "" {
			return content, true
		}
	}

	return "", false
}
