// ABOUTME: Scenario template skeletons for meeting, coding, and general contexts
// ABOUTME: Each scenario has a dual-stream and a single-stream instruction variant

package prompt

// Scenario selects the prompt template category.
type Scenario string

const (
	ScenarioMeeting Scenario = "meeting"
	ScenarioCoding  Scenario = "coding"
	ScenarioGeneral Scenario = "general"
)

// Slot placeholders. Optional inputs always resolve to one of these rather
// than leaving a template slot blank.
const (
	PlaceholderProfile    = "No profile information"
	PlaceholderTranscript = "No recent audio"
	PlaceholderScreen     = "Unknown"
	PlaceholderClipboard  = "Empty"
	PlaceholderTopics     = "No specific topic guidance"
)

// template is one fixed-structure scenario skeleton. The dual and single
// instruction sets share the final topic-guidance step.
type template struct {
	header        string
	contentLabel  string // single-stream content slot label
	screenLabel   string
	withClipboard bool
	dualIntro     string
	dualSteps     [3]string
	singleIntro   string
	singleSteps   [3]string
	finalStep     string
}

var templates = map[Scenario]template{
	ScenarioMeeting: {
		header:       "MEETING CONTEXT",
		contentLabel: "Recent Conversation",
		screenLabel:  "Active Window",
		dualIntro:    "DUAL STREAM ANALYSIS - System audio (meeting) prioritized:",
		dualSteps: [3]string{
			"Focus on system audio content (what others are saying) for primary context",
			"Use user voice to understand questions, reactions, or intended responses",
			"Provide meeting assistance based on combined understanding",
		},
		singleIntro: "Provide brief, actionable meeting assistance:",
		singleSteps: [3]string{
			"Summarize key points from the conversation",
			"Suggest 2-3 relevant responses or questions based on user's background",
			"Identify any action items or decisions needed",
		},
		finalStep: "Consider topic guidance for conversation direction",
	},
	ScenarioCoding: {
		header:        "CODING CONTEXT",
		contentLabel:  "Recent Audio",
		screenLabel:   "Active Window",
		withClipboard: true,
		dualIntro:     "DUAL STREAM ANALYSIS - System audio prioritized for learning content:",
		dualSteps: [3]string{
			"Analyze system audio for tutorial/educational content being consumed",
			"Use user voice to understand questions or confusion points",
			"Provide coding guidance that bridges tutorial content with user's questions",
		},
		singleIntro: "Provide coding assistance based on user's skills:",
		singleSteps: [3]string{
			"Analyze current context and user's experience level",
			"Suggest code improvements or solutions",
			"Recommend next steps or debugging approaches",
		},
		finalStep: "Use knowledge of user's background in recommendations",
	},
	ScenarioGeneral: {
		header:        "GENERAL CONTEXT",
		contentLabel:  "Recent Audio",
		screenLabel:   "Screen Context",
		withClipboard: true,
		dualIntro:     "DUAL STREAM ANALYSIS - System audio prioritized:",
		dualSteps: [3]string{
			"Primary focus: System audio content (what user is listening to/watching)",
			"Secondary focus: User voice for questions, reactions, or clarifications",
			"Provide assistance that connects external content with user's needs",
		},
		singleIntro: "Provide helpful assistance:",
		singleSteps: [3]string{
			"Analyze the current situation considering user's background",
			"Suggest 2-3 practical next steps relevant to user's skills",
			"Offer relevant tips or information based on user's experience",
		},
		finalStep: "Consider topic guidance for additional context",
	},
}

// templateFor returns the scenario template, defaulting to general for
// unrecognized scenarios.
func templateFor(s Scenario) template {
	if t, ok := templates[s]; ok {
		return t
	}
	return templates[ScenarioGeneral]
}
