// ABOUTME: Tests for system prompt assembly: preamble, rules block, settings block

package prompt

import (
	"strings"
	"testing"

	"github.com/overhearhq/overhear/internal/config"
)

func TestBuildSystemStructure(t *testing.T) {
	t.Parallel()

	a := config.Assistant{
		ActivationMode:      config.ActivationAuto,
		Verbosity:           "detailed",
		ResponseStyle:       config.StyleTechnical,
		InputPrioritization: config.PriorityBalanced,
	}
	got := BuildSystem(a, "Never mention internal tools.")

	if !strings.HasPrefix(got, "You are an intelligent AI assistant") {
		t.Errorf("preamble missing: %q", firstLine(got))
	}

	rulesIdx := strings.Index(got, "CUSTOM RULES AND GUIDELINES:\nNever mention internal tools.")
	if rulesIdx < 0 {
		t.Fatalf("custom rules block missing:\n%s", got)
	}
	cfgIdx := strings.Index(got, "ASSISTANT CONFIGURATION:")
	if cfgIdx < 0 {
		t.Fatalf("configuration block missing:\n%s", got)
	}
	if cfgIdx < rulesIdx {
		t.Error("configuration block precedes the rules block")
	}

	for _, want := range []string{
		"- Activation Mode: auto",
		"- Verbosity: detailed",
		"- Response Style: technical",
		"- Input Priority: balanced",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q", want)
		}
	}
	if !strings.HasSuffix(got, "Adjust your responses according to these settings.") {
		t.Error("closing instruction missing")
	}
}

func TestBuildSystemOmitsEmptyRules(t *testing.T) {
	t.Parallel()

	got := BuildSystem(config.DefaultAssistant(), "   ")
	if strings.Contains(got, "CUSTOM RULES AND GUIDELINES") {
		t.Error("rules block rendered for blank rules")
	}
	if !strings.Contains(got, "ASSISTANT CONFIGURATION:") {
		t.Error("configuration block missing")
	}
}
