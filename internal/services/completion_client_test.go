package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCompleteSendsOpenAIStyleRequest(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "- the answer"}},
			},
		})
	}))
	defer server.Close()

	client := NewCompletionClient(server.URL, "test-key", "test-model", 5*time.Second)
	answer, err := client.Complete(context.Background(), "system instruction", "user question")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	if answer != "- the answer" {
		t.Errorf("Unexpected answer: %q", answer)
	}
	if gotPath != "/chat/completions" {
		t.Errorf("Unexpected request path: %q", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Unexpected Authorization header: %q", gotAuth)
	}
	if gotBody["model"] != "test-model" {
		t.Errorf("Unexpected model: %v", gotBody["model"])
	}
	messages, ok := gotBody["messages"].([]interface{})
	if !ok || len(messages) != 2 {
		t.Fatalf("Expected exactly 2 messages, got %v", gotBody["messages"])
	}
	first := messages[0].(map[string]interface{})
	second := messages[1].(map[string]interface{})
	if first["role"] != "system" || first["content"] != "system instruction" {
		t.Errorf("Unexpected system message: %v", first)
	}
	if second["role"] != "user" || second["content"] != "user question" {
		t.Errorf("Unexpected user message: %v", second)
	}
}

func TestCompleteEmptyContentIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": ""}},
			},
		})
	}))
	defer server.Close()

	client := NewCompletionClient(server.URL, "key", "model", 5*time.Second)
	answer, err := client.Complete(context.Background(), "system", "question")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if answer != "" {
		t.Errorf("Expected empty answer, got %q", answer)
	}
}

func TestCompleteNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewCompletionClient(server.URL, "key", "model", 5*time.Second)
	if _, err := client.Complete(context.Background(), "system", "question"); err == nil {
		t.Error("Expected error for non-200 status")
	}
}

func TestExtractResponseText(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		expected string
		found    bool
	}{
		{
			name:     "message content",
			body:     `{"choices":[{"message":{"content":"- hi"}}]}`,
			expected: "- hi",
			found:    true,
		},
		{
			name:     "content on choice",
			body:     `{"choices":[{"content":"- direct"}]}`,
			expected: "- direct",
			found:    true,
		},
		{
			name:     "delta content",
			body:     `{"choices":[{"delta":{"content":"- streamed"}}]}`,
			expected: "- streamed",
			found:    true,
		},
		{
			name:  "no choices",
			body:  `{"choices":[]}`,
			found: false,
		},
		{
			name:  "whitespace content",
			body:  `{"choices":[{"message":{"content":"   "}}]}`,
			found: false,
		},
		{
			name:  "missing content",
			body:  `{"choices":[{"message":{}}]}`,
			found: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var result map[string]interface{}
			if err := json.Unmarshal([]byte(tc.body), &result); err != nil {
				t.Fatalf("bad test body: %v", err)
			}
			text, found := ExtractResponseText(result)
			if found != tc.found {
				t.Fatalf("found = %v, want %v", found, tc.found)
			}
			if text != tc.expected {
				t.Errorf("text = %q, want %q", text, tc.expected)
			}
		})
	}
}
