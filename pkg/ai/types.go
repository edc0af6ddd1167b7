// ABOUTME: Core streaming types shared by all AI backends
// ABOUTME: Fragments, requests, and provider settings are wire-format agnostic

package ai

// ProviderType identifies an AI backend.
type ProviderType string

const (
	TypeAzureOpenAI  ProviderType = "azure_openai"
	TypeOpenAI       ProviderType = "openai"
	TypeGoogleGemini ProviderType = "google_gemini"
)

// Fragment is one incremental chunk of assistant text. The fragments of one
// stream, concatenated in emission order, form the full answer. A terminal
// failure is delivered as a final fragment whose Err is non-nil and whose
// Text carries the human-readable "<Provider> Error: <message>" form.
type Fragment struct {
	Text string
	Err  error
}

// Request is one unit of work handed to a provider: a system-role
// instruction prompt, a user-role content prompt, and generation parameters.
// Backends without a separate system channel flatten the two prompts.
type Request struct {
	System string
	User   string
	Params GenerationParams
}

// FlatPrompt joins the system and user prompts with a blank line, for
// backends that accept only a single prompt string.
func (r Request) FlatPrompt() string {
	if r.System == "" {
		return r.User
	}
	return r.System + "\n\n" + r.User
}

// Settings carries the credentials and addressing needed to construct one
// provider client. Fields not used by a given backend are ignored by it.
type Settings struct {
	Type       ProviderType
	Model      string
	Endpoint   string
	APIKey     string
	APIVersion string // Azure OpenAI
	Deployment string // Azure OpenAI deployment name
}
