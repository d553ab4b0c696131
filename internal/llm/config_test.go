package llm

import (
	"errors"
	"testing"
)

func TestConfigFromEnv_PrimaryKeyWins(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "primary")
	t.Setenv("key", "legacy")

	cfg := ConfigFromEnv()

	if cfg.Provider != "groq" {
		t.Errorf("provider = %q, want groq", cfg.Provider)
	}
	if cfg.Groq.APIKey != "primary" {
		t.Errorf("API key = %q, want primary", cfg.Groq.APIKey)
	}
}

func TestConfigFromEnv_LegacyFallback(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("key", "legacy")

	cfg := ConfigFromEnv()

	if cfg.Groq.APIKey != "legacy" {
		t.Errorf("API key = %q, want legacy", cfg.Groq.APIKey)
	}
}

func TestValidate_MissingKeyIsConfigError(t *testing.T) {
	cfg := DefaultConfig()

	err := cfg.Validate()

	var missing *ErrMissingAPIKey
	if !errors.As(err, &missing) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
	if len(missing.Vars) != 2 {
		t.Errorf("expected both recognized variable names, got %v", missing.Vars)
	}
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "quantum"

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestValidate_MockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDefaultConfig_GroqDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Groq.Model != "openai/gpt-oss-20b" {
		t.Errorf("model = %q", cfg.Groq.Model)
	}
	if cfg.Groq.BaseURL != "https://api.groq.com/openai/v1" {
		t.Errorf("base URL = %q", cfg.Groq.BaseURL)
	}
}
