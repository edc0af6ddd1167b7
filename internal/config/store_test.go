// ABOUTME: Tests for the hot-reloadable configuration store

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestStoreLoadsConfigAndRules(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", "ai_provider:\n  type: openai\n")
	rulesPath := writeFile(t, dir, "rules.md", "Always answer in haiku.")

	s, err := NewStore(cfgPath, rulesPath)
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}

	if got := s.Config().AIProvider.Type; got != "openai" {
		t.Errorf("provider type = %q, want openai", got)
	}
	if got := s.PromptRules(); got != "Always answer in haiku." {
		t.Errorf("rules = %q", got)
	}
}

func TestStoreMissingRulesFallsBackToDefault(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", "ai_provider:\n  type: openai\n")

	s, err := NewStore(cfgPath, filepath.Join(dir, "absent.md"))
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	if got := s.PromptRules(); got != DefaultPromptRules {
		t.Errorf("rules = %q, want the built-in defaults", got)
	}
}

func TestStoreReloadKeepsPreviousOnError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", "ai_provider:\n  type: openai\n")

	s, err := NewStore(cfgPath, "")
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}

	// Break the file, then reload.
	writeFile(t, dir, "config.yaml", "ai_provider:\n  type: unknown-backend\n")
	if err := s.Reload(); err == nil {
		t.Fatal("Reload succeeded with invalid config")
	}
	if got := s.Config().AIProvider.Type; got != "openai" {
		t.Errorf("provider type after failed reload = %q, want openai", got)
	}

	// Fix it and reload again.
	writeFile(t, dir, "config.yaml", "ai_provider:\n  type: google_gemini\n")
	if err := s.Reload(); err != nil {
		t.Fatalf("Reload returned error: %v", err)
	}
	if got := s.Config().AIProvider.Type; got != "google_gemini" {
		t.Errorf("provider type after reload = %q, want google_gemini", got)
	}
}

func TestStoreSetAssistant(t *testing.T) {
	t.Parallel()

	s := NewStaticStore(Default(), "")
	a := s.Assistant()
	a.Verbosity = "detailed"
	s.SetAssistant(a)

	if got := s.Assistant().Verbosity; got != "detailed" {
		t.Errorf("Verbosity = %q, want detailed", got)
	}
}
