// ABOUTME: Tests for verbosity to generation parameter mapping

package ai

import "testing"

func TestParamsForVerbosity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		verbosity string
		wantTemp  float64
		wantMax   int
	}{
		{"concise", VerbosityConcise, 0.3, 200},
		{"standard", VerbosityStandard, 0.7, 500},
		{"detailed", VerbosityDetailed, 0.9, 800},
		{"unknown falls back to standard", "chatty", 0.7, 500},
		{"empty falls back to standard", "", 0.7, 500},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ParamsForVerbosity(tt.verbosity)
			if got.Temperature != tt.wantTemp {
				t.Errorf("Temperature = %v, want %v", got.Temperature, tt.wantTemp)
			}
			if got.MaxTokens != tt.wantMax {
				t.Errorf("MaxTokens = %v, want %v", got.MaxTokens, tt.wantMax)
			}
		})
	}
}
