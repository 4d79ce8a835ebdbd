package llm

import "testing"

func TestConfigFromEnvOverridesDefaults(t *testing.T) {
	t.Setenv("REVU_LLM_PROVIDER", "openai")
	t.Setenv("REVU_OPENAI_API_KEY", "sk-test")
	t.Setenv("REVU_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("OpenAI config = %+v", cfg.OpenAI)
	}
	// Untouched sections keep defaults.
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("Anthropic model = %q", cfg.Anthropic.Model)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("Retry.MaxAttempts = %d", cfg.Retry.MaxAttempts)
	}
}

func TestValidateRequiresAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing anthropic key")
	}

	cfg.Anthropic.APIKey = "key"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateMockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateRejectsUnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "oracle"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "gemini" {
		t.Errorf("Provider = %q, gemini should win", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "g-key" {
		t.Errorf("Gemini key = %q", cfg.Gemini.APIKey)
	}
}

func TestLookupCostKnownModel(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("expected pricing for gpt-4o-mini")
	}
	got := c.Cost(1_000_000, 1_000_000)
	if got != 0.75 {
		t.Errorf("Cost = %v, want 0.75", got)
	}
}

func TestLookupCostUnknownModel(t *testing.T) {
	if c := LookupCost("made-up-model"); c != nil {
		t.Errorf("expected nil for unknown model, got %+v", c)
	}
}
