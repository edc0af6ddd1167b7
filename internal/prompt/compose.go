// ABOUTME: Composes the user-role context prompt from transcript, screen, and profile
// ABOUTME: Every slot is resolved before rendering so missing input cannot fail

package prompt

import (
	"fmt"
	"strings"

	"github.com/overhearhq/overhear/internal/config"
	"github.com/overhearhq/overhear/internal/topics"
	"github.com/overhearhq/overhear/internal/transcript"
)

const (
	clipboardLimit   = 200
	topicRecentCount = 3
	maxSuggestions   = 3
)

// TopicSource provides ranked topic guidance.
type TopicSource interface {
	Match(text string) []topics.Match
	Suggestions(matches []topics.Match) []string
}

// ProfileSource provides the user profile summary.
type ProfileSource interface {
	Summary() string
}

// Request is the per-call context handed to the composer. It is immutable
// for the duration of one analysis.
type Request struct {
	Transcript []string
	Screen     string
	Clipboard  string
	Scenario   Scenario
}

// Composer builds prompt pairs. Topic and profile sources are optional;
// absence resolves to the documented placeholders.
type Composer struct {
	Topics  TopicSource
	Profile ProfileSource
}

// Build composes the user-role context prompt and the system-role
// instruction prompt for one request, using the assistant configuration
// snapshot and custom rules captured at call start.
func (c *Composer) Build(req Request, assistant config.Assistant, rules string) (user, system string) {
	in := Inputs{
		Transcript: req.Transcript,
		Screen:     req.Screen,
		Clipboard:  req.Clipboard,
		Scenario:   req.Scenario,
		Assistant:  assistant,
	}
	if c.Profile != nil {
		in.ProfileSummary = c.Profile.Summary()
	}
	if c.Topics != nil && len(req.Transcript) > 0 {
		recent := transcript.Recent(req.Transcript, topicRecentCount)
		matches := c.Topics.Match(recent)
		suggestions := c.Topics.Suggestions(matches)
		if len(suggestions) > maxSuggestions {
			suggestions = suggestions[:maxSuggestions]
		}
		in.TopicGuidance = strings.Join(suggestions, "\n")
	}
	return BuildUser(in), BuildSystem(assistant, rules)
}

// Inputs are the fully gathered slot values for one user prompt.
type Inputs struct {
	Transcript     []string
	Screen         string
	Clipboard      string
	Scenario       Scenario
	ProfileSummary string
	TopicGuidance  string
	Assistant      config.Assistant
}

// BuildUser renders the scenario template. The dual-stream variant is
// selected when the transcript carries both channel tags; its content slot
// holds the prioritized merge, while the single-stream variant holds the
// formatted recent transcript.
func BuildUser(in Inputs) string {
	t := templateFor(in.Scenario)
	dual := transcript.IsDualStream(in.Transcript)

	var content, contentLabel string
	if dual {
		userSide, systemSide := transcript.Split(in.Transcript)
		content = transcript.Prioritize(userSide, systemSide, in.Assistant.InputPrioritization)
		contentLabel = "Prioritized Content"
	} else {
		content = transcript.Format(in.Transcript)
		contentLabel = t.contentLabel
	}

	header := t.header
	if dual {
		header += " (Dual Audio Stream)"
	}

	var b strings.Builder
	b.WriteString(header + ":\n")
	b.WriteString("User Profile: " + fallback(in.ProfileSummary, PlaceholderProfile) + "\n")
	b.WriteString(contentLabel + ": " + fallback(content, PlaceholderTranscript) + "\n")
	b.WriteString(t.screenLabel + ": " + fallback(in.Screen, PlaceholderScreen) + "\n")
	if t.withClipboard {
		b.WriteString("Clipboard: " + fallback(clip(in.Clipboard), PlaceholderClipboard) + "\n")
	}
	b.WriteString("Topic Guidance: " + fallback(in.TopicGuidance, PlaceholderTopics) + "\n\n")

	intro, steps := t.singleIntro, t.singleSteps
	if dual {
		intro, steps = t.dualIntro, t.dualSteps
	}
	b.WriteString(intro + "\n")
	for i, step := range steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	fmt.Fprintf(&b, "4. %s\n\n", t.finalStep)

	b.WriteString("Response Style: " + fallback(in.Assistant.ResponseStyle, config.StyleProfessional) + "\n")
	return b.String()
}

// fallback resolves a slot value, substituting the placeholder for empty
// input so rendering never produces a blank slot.
func fallback(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

// clip bounds clipboard content so a large paste cannot blow up the prompt.
func clip(s string) string {
	if len(s) > clipboardLimit {
		return s[:clipboardLimit]
	}
	return s
}
