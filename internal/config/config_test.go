// ABOUTME: Tests for YAML config parsing, defaulting, and enum validation

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/overhearhq/overhear/pkg/ai"
)

func TestParseAppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte("ai_provider:\n  type: openai\n"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if cfg.Assistant.ActivationMode != ActivationManual {
		t.Errorf("ActivationMode = %q, want manual", cfg.Assistant.ActivationMode)
	}
	if cfg.Assistant.Verbosity != ai.VerbosityStandard {
		t.Errorf("Verbosity = %q, want standard", cfg.Assistant.Verbosity)
	}
	if cfg.Assistant.ResponseStyle != StyleProfessional {
		t.Errorf("ResponseStyle = %q, want professional", cfg.Assistant.ResponseStyle)
	}
	if cfg.Assistant.InputPrioritization != PrioritySystemAudio {
		t.Errorf("InputPrioritization = %q, want system_audio", cfg.Assistant.InputPrioritization)
	}
	if cfg.TopicGraph.MatchingThreshold != 0.6 {
		t.Errorf("MatchingThreshold = %v, want 0.6", cfg.TopicGraph.MatchingThreshold)
	}
	if cfg.TopicGraph.MaxMatches != 3 {
		t.Errorf("MaxMatches = %d, want 3", cfg.TopicGraph.MaxMatches)
	}
	if cfg.ResponseTimeoutSeconds != 30 {
		t.Errorf("ResponseTimeoutSeconds = %d, want 30", cfg.ResponseTimeoutSeconds)
	}
}

func TestParseFullConfig(t *testing.T) {
	t.Parallel()

	yml := `
ai_provider:
  type: azure_openai
  azure_openai:
    endpoint: https://example.openai.azure.com
    api_key: secret
    deployment_name: gpt-4o-prod
    api_version: "2024-06-01"
    model: gpt-4o
assistant:
  activation_mode: auto
  verbosity: detailed
  response_style: technical
  input_prioritization: balanced
context:
  response_settings:
    temperature: 0.5
    max_tokens: 1000
topic_graph:
  graph_path: graph.txt
  matching_threshold: 0.8
  max_matches: 5
user_profile:
  resume_path: me.md
log_file: overhear.log
response_timeout_seconds: 60
`
	cfg, err := Parse([]byte(yml))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	s := cfg.AIProvider.Settings()
	if s.Type != ai.TypeAzureOpenAI {
		t.Errorf("Type = %q, want azure_openai", s.Type)
	}
	if s.Endpoint != "https://example.openai.azure.com" {
		t.Errorf("Endpoint = %q", s.Endpoint)
	}
	if s.APIKey != "secret" {
		t.Errorf("APIKey = %q", s.APIKey)
	}
	if s.Deployment != "gpt-4o-prod" {
		t.Errorf("Deployment = %q", s.Deployment)
	}
	if s.APIVersion != "2024-06-01" {
		t.Errorf("APIVersion = %q", s.APIVersion)
	}
	if s.Model != "gpt-4o" {
		t.Errorf("Model = %q", s.Model)
	}

	rs := cfg.Context.ResponseSettings
	if rs.Temperature == nil || *rs.Temperature != 0.5 {
		t.Errorf("Temperature = %v, want 0.5", rs.Temperature)
	}
	if rs.MaxTokens == nil || *rs.MaxTokens != 1000 {
		t.Errorf("MaxTokens = %v, want 1000", rs.MaxTokens)
	}
	if cfg.Assistant.InputPrioritization != PriorityBalanced {
		t.Errorf("InputPrioritization = %q, want balanced", cfg.Assistant.InputPrioritization)
	}
}

func TestParseRejectsBadEnums(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yml     string
		wantSub string
	}{
		{"bad provider type", "ai_provider:\n  type: anthropic\n", "ai_provider.type"},
		{"bad activation", "ai_provider:\n  type: openai\nassistant:\n  activation_mode: always\n", "activation_mode"},
		{"bad verbosity", "ai_provider:\n  type: openai\nassistant:\n  verbosity: chatty\n", "verbosity"},
		{"bad style", "ai_provider:\n  type: openai\nassistant:\n  response_style: sarcastic\n", "response_style"},
		{"bad priority", "ai_provider:\n  type: openai\nassistant:\n  input_prioritization: loudest\n", "input_prioritization"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.yml))
			if err == nil {
				t.Fatal("Parse succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not name %q", err, tt.wantSub)
			}
		})
	}
}

func TestSettingsResolvesPerProviderBlocks(t *testing.T) {
	t.Parallel()

	p := AIProvider{
		Type:         string(ai.TypeGoogleGemini),
		GoogleGemini: map[string]string{"api_key": "g-key", "model": "gemini-pro"},
		OpenAI:       map[string]string{"api_key": "wrong"},
	}
	s := p.Settings()
	if s.APIKey != "g-key" {
		t.Errorf("APIKey = %q, want the gemini block's key", s.APIKey)
	}
	if s.Model != "gemini-pro" {
		t.Errorf("Model = %q, want gemini-pro from the provider block", s.Model)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("Load succeeded for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error %v does not wrap os.ErrNotExist", err)
	}
}
