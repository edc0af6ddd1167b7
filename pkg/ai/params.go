// ABOUTME: Generation parameter derivation from assistant verbosity
// ABOUTME: Fixed temperature and token tables with a standard-row fallback

package ai

// GenerationParams tune one streaming call.
type GenerationParams struct {
	Temperature float64
	MaxTokens   int
}

// Verbosity levels recognized by ParamsForVerbosity.
const (
	VerbosityConcise  = "concise"
	VerbosityStandard = "standard"
	VerbosityDetailed = "detailed"
)

var verbosityParams = map[string]GenerationParams{
	VerbosityConcise:  {Temperature: 0.3, MaxTokens: 200},
	VerbosityStandard: {Temperature: 0.7, MaxTokens: 500},
	VerbosityDetailed: {Temperature: 0.9, MaxTokens: 800},
}

// ParamsForVerbosity maps an assistant verbosity setting to generation
// parameters. Unrecognized values, including the empty string when no
// assistant configuration is present, fall back to the standard row.
func ParamsForVerbosity(verbosity string) GenerationParams {
	if p, ok := verbosityParams[verbosity]; ok {
		return p
	}
	return verbosityParams[VerbosityStandard]
}
