// ABOUTME: YAML configuration for providers, assistant behavior, and context shaping
// ABOUTME: Enum validation happens at load so misconfiguration fails before streaming

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/overhearhq/overhear/pkg/ai"
)

// Assistant enums. Unknown values are rejected at load; downstream code
// still treats the zero value as "use defaults" so a missing assistant
// block degrades instead of failing.
const (
	ActivationManual = "manual"
	ActivationAuto   = "auto"

	StyleProfessional = "professional"
	StyleCasual       = "casual"
	StyleTechnical    = "technical"

	PriorityMic         = "mic"
	PrioritySystemAudio = "system_audio"
	PriorityBalanced    = "balanced"
)

// Assistant is the hot-reloadable behavior settings record. It is passed by
// value: an in-flight analysis keeps the snapshot it captured at call start.
type Assistant struct {
	ActivationMode      string `yaml:"activation_mode"`
	Verbosity           string `yaml:"verbosity"`
	ResponseStyle       string `yaml:"response_style"`
	InputPrioritization string `yaml:"input_prioritization"`
}

// DefaultAssistant returns the documented defaults.
func DefaultAssistant() Assistant {
	return Assistant{
		ActivationMode:      ActivationManual,
		Verbosity:           ai.VerbosityStandard,
		ResponseStyle:       StyleProfessional,
		InputPrioritization: PrioritySystemAudio,
	}
}

// AIProvider selects and addresses the active backend.
type AIProvider struct {
	Type         string            `yaml:"type"`
	Model        string            `yaml:"model"`
	AzureOpenAI  map[string]string `yaml:"azure_openai"`
	OpenAI       map[string]string `yaml:"openai"`
	GoogleGemini map[string]string `yaml:"google_gemini"`
}

// Settings resolves the provider block into pkg/ai settings.
func (p AIProvider) Settings() ai.Settings {
	s := ai.Settings{
		Type:  ai.ProviderType(p.Type),
		Model: p.Model,
	}
	switch s.Type {
	case ai.TypeAzureOpenAI:
		s.Endpoint = p.AzureOpenAI["endpoint"]
		s.APIKey = p.AzureOpenAI["api_key"]
		s.APIVersion = p.AzureOpenAI["api_version"]
		s.Deployment = p.AzureOpenAI["deployment_name"]
		if m := p.AzureOpenAI["model"]; m != "" && s.Model == "" {
			s.Model = m
		}
	case ai.TypeOpenAI:
		s.Endpoint = p.OpenAI["endpoint"]
		s.APIKey = p.OpenAI["api_key"]
		if m := p.OpenAI["model"]; m != "" && s.Model == "" {
			s.Model = m
		}
	case ai.TypeGoogleGemini:
		s.Endpoint = p.GoogleGemini["endpoint"]
		s.APIKey = p.GoogleGemini["api_key"]
		if m := p.GoogleGemini["model"]; m != "" && s.Model == "" {
			s.Model = m
		}
	}
	return s
}

// ResponseSettings optionally override the verbosity-derived generation
// parameters. Pointers distinguish "absent" from zero.
type ResponseSettings struct {
	Temperature *float64 `yaml:"temperature"`
	MaxTokens   *int     `yaml:"max_tokens"`
}

// Context groups request-shaping knobs.
type Context struct {
	ResponseSettings ResponseSettings `yaml:"response_settings"`
}

// TopicGraph bounds topic matcher output.
type TopicGraph struct {
	GraphPath         string  `yaml:"graph_path"`
	MatchingThreshold float64 `yaml:"matching_threshold"`
	MaxMatches        int     `yaml:"max_matches"`
}

// UserProfile points at the resume used for profile summaries.
type UserProfile struct {
	ResumePath string `yaml:"resume_path"`
}

// Config is the full recognized configuration surface.
type Config struct {
	AIProvider             AIProvider  `yaml:"ai_provider"`
	Assistant              Assistant   `yaml:"assistant"`
	Context                Context     `yaml:"context"`
	TopicGraph             TopicGraph  `yaml:"topic_graph"`
	UserProfile            UserProfile `yaml:"user_profile"`
	LogFile                string      `yaml:"log_file"`
	ResponseTimeoutSeconds int         `yaml:"response_timeout_seconds"`
}

// Default returns a configuration with all documented defaults applied.
func Default() *Config {
	return &Config{
		AIProvider: AIProvider{Type: string(ai.TypeAzureOpenAI)},
		Assistant:  DefaultAssistant(),
		TopicGraph: TopicGraph{
			GraphPath:         "data/topic_graph.txt",
			MatchingThreshold: 0.6,
			MaxMatches:        3,
		},
		UserProfile:            UserProfile{ResumePath: "data/resume.md"},
		ResponseTimeoutSeconds: 30,
	}
}

// Load reads, defaults, and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes onto the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := DefaultAssistant()
	if c.Assistant.ActivationMode == "" {
		c.Assistant.ActivationMode = def.ActivationMode
	}
	if c.Assistant.Verbosity == "" {
		c.Assistant.Verbosity = def.Verbosity
	}
	if c.Assistant.ResponseStyle == "" {
		c.Assistant.ResponseStyle = def.ResponseStyle
	}
	if c.Assistant.InputPrioritization == "" {
		c.Assistant.InputPrioritization = def.InputPrioritization
	}
	if c.TopicGraph.MatchingThreshold == 0 {
		c.TopicGraph.MatchingThreshold = 0.6
	}
	if c.TopicGraph.MaxMatches == 0 {
		c.TopicGraph.MaxMatches = 3
	}
}

// Validate rejects unrecognized enum values.
func (c *Config) Validate() error {
	switch ai.ProviderType(c.AIProvider.Type) {
	case ai.TypeAzureOpenAI, ai.TypeOpenAI, ai.TypeGoogleGemini:
	default:
		return fmt.Errorf("invalid ai_provider.type: %q", c.AIProvider.Type)
	}
	if err := validateEnum("assistant.activation_mode", c.Assistant.ActivationMode,
		ActivationManual, ActivationAuto); err != nil {
		return err
	}
	if err := validateEnum("assistant.verbosity", c.Assistant.Verbosity,
		ai.VerbosityConcise, ai.VerbosityStandard, ai.VerbosityDetailed); err != nil {
		return err
	}
	if err := validateEnum("assistant.response_style", c.Assistant.ResponseStyle,
		StyleProfessional, StyleCasual, StyleTechnical); err != nil {
		return err
	}
	return validateEnum("assistant.input_prioritization", c.Assistant.InputPrioritization,
		PriorityMic, PrioritySystemAudio, PriorityBalanced)
}

func validateEnum(key, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid %s: %q", key, value)
}
