// ABOUTME: Custom prompt rules loading for system-prompt injection
// ABOUTME: The rules file is opaque text appended verbatim by the composer

package config

import "os"

// DefaultPromptRules is used when no prompt_rules.md exists alongside the
// configuration.
const DefaultPromptRules = `You are an intelligent AI meeting assistant designed to provide helpful, contextual responses based on real-time audio transcription and user interactions.

**Core Behavior:**
- Be concise yet comprehensive in your responses
- Provide actionable insights and suggestions
- Adapt your tone to the context (professional for meetings, casual for general chat)
- Focus on being helpful rather than just informative

**Response Guidelines:**
- Keep responses under 200 words unless detailed explanation is needed
- Use bullet points for lists and actionable items
- Include relevant examples when helpful
- Ask clarifying questions when context is unclear`

// LoadPromptRules reads the custom rules file. A missing file yields the
// default rules; any other read failure yields the empty string so prompt
// composition simply omits the block.
func LoadPromptRules(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultPromptRules
		}
		return ""
	}
	return string(data)
}
