// ABOUTME: System-role instruction prompt assembly
// ABOUTME: Fixed preamble + verbatim custom rules + live assistant settings block

package prompt

import (
	"fmt"
	"strings"

	"github.com/overhearhq/overhear/internal/config"
)

const systemPreamble = `You are an intelligent AI assistant providing real-time contextual help. You analyze conversation transcripts, screen context, and user profiles to provide relevant, actionable assistance.

Key Capabilities:
- Real-time conversation analysis with dual audio stream support
- Context-aware suggestions based on user background
- Topic-guided assistance using knowledge graphs
- Meeting, coding, and learning context specialization

Response Guidelines:
- Be concise but comprehensive
- Provide actionable next steps
- Consider user's expertise level
- Prioritize system audio content in dual-stream scenarios
- Use structured formatting for clarity`

// BuildSystem assembles the system prompt. Custom rules are appended
// verbatim when non-empty; the assistant settings block reflects the
// snapshot captured at call start, so behavior changes at runtime without
// template changes.
func BuildSystem(assistant config.Assistant, customRules string) string {
	var b strings.Builder
	b.WriteString(systemPreamble)

	if strings.TrimSpace(customRules) != "" {
		b.WriteString("\n\nCUSTOM RULES AND GUIDELINES:\n")
		b.WriteString(customRules)
	}

	fmt.Fprintf(&b, `

ASSISTANT CONFIGURATION:
- Activation Mode: %s
- Verbosity: %s
- Response Style: %s
- Input Priority: %s

Adjust your responses according to these settings.`,
		assistant.ActivationMode,
		assistant.Verbosity,
		assistant.ResponseStyle,
		assistant.InputPrioritization)

	return b.String()
}
