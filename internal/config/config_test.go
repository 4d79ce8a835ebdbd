package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Learner != "default" {
		t.Errorf("Learner = %q", cfg.Learner)
	}
	if cfg.Policy != "coverage-first" {
		t.Errorf("Policy = %q", cfg.Policy)
	}
	if cfg.Session.CallTimeout != 5*time.Second {
		t.Errorf("CallTimeout = %v", cfg.Session.CallTimeout)
	}
	if !cfg.Explain.Enabled {
		t.Error("Explain should default to enabled")
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := writeConfig(t, `
learner: sam
policy: hard-first
session:
  call_timeout: 10s
explain:
  enabled: false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Learner != "sam" {
		t.Errorf("Learner = %q", cfg.Learner)
	}
	if cfg.Policy != "hard-first" {
		t.Errorf("Policy = %q", cfg.Policy)
	}
	if cfg.Session.CallTimeout != 10*time.Second {
		t.Errorf("CallTimeout = %v", cfg.Session.CallTimeout)
	}
	if cfg.Explain.Enabled {
		t.Error("Explain should be disabled by file")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "learner: sam\n")
	t.Setenv("REVU_LEARNER", "alex")
	t.Setenv("REVU_SESSION__CALL_TIMEOUT", "2s")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Learner != "alex" {
		t.Errorf("Learner = %q, env should win", cfg.Learner)
	}
	if cfg.Session.CallTimeout != 2*time.Second {
		t.Errorf("CallTimeout = %v", cfg.Session.CallTimeout)
	}
}

func TestMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Learner != "default" {
		t.Errorf("Learner = %q", cfg.Learner)
	}
}

func TestMalformedFileErrors(t *testing.T) {
	path := writeConfig(t, "learner: [unclosed\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
