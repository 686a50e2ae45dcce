package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MONGODB_URI", "")
	t.Setenv("COMPLETION_BASE_URL", "")
	t.Setenv("COMPLETION_MODEL", "")
	t.Setenv("COMPLETION_TIMEOUT_SECONDS", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.CompletionBaseURL != "https://api.ai21.com/studio/v1" {
		t.Errorf("CompletionBaseURL = %q", cfg.CompletionBaseURL)
	}
	if cfg.CompletionModel != "jamba-large-1.7" {
		t.Errorf("CompletionModel = %q", cfg.CompletionModel)
	}
	if cfg.CompletionTimeout != 120 {
		t.Errorf("CompletionTimeout = %d, want 120", cfg.CompletionTimeout)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017/testdb")
	t.Setenv("COMPLETION_TIMEOUT_SECONDS", "30")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.MongoURI != "mongodb://localhost:27017/testdb" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.CompletionTimeout != 30 {
		t.Errorf("CompletionTimeout = %d, want 30", cfg.CompletionTimeout)
	}
}

func TestInvalidIntFallsBackToDefault(t *testing.T) {
	t.Setenv("COMPLETION_TIMEOUT_SECONDS", "not a number")

	cfg := Load()
	if cfg.CompletionTimeout != 120 {
		t.Errorf("CompletionTimeout = %d, want default 120", cfg.CompletionTimeout)
	}
}
