// ABOUTME: Google Generative Language (Gemini) streaming provider
// ABOUTME: Single-prompt backend; system and user prompts are flattened

package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	ovlog "github.com/overhearhq/overhear/internal/log"
	"github.com/overhearhq/overhear/pkg/ai"
	"github.com/overhearhq/overhear/pkg/ai/internal/httputil"
	"github.com/overhearhq/overhear/pkg/ai/internal/sse"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-pro"
)

// Provider implements the Google Generative Language streaming API. Gemini
// has no separate system-role channel here: the system prompt and user
// prompt are concatenated with one blank line into a single content part.
type Provider struct {
	client *httputil.Client
	model  string
	apiKey string
}

// New creates a Gemini provider. The API key falls back to GOOGLE_API_KEY.
func New(s ai.Settings) *Provider {
	apiKey := s.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	baseURL := s.Endpoint
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := s.Model
	if model == "" {
		model = defaultModel
	}

	headers := map[string]string{"Content-Type": "application/json"}

	return &Provider{
		client: httputil.NewClient(httputil.NormalizeBaseURL(baseURL), headers),
		model:  model,
		apiKey: apiKey,
	}
}

// Name returns the label used in inline error fragments.
func (p *Provider) Name() string { return "Google Gemini" }

// Type returns the provider's configuration identifier.
func (p *Provider) Type() ai.ProviderType { return ai.TypeGoogleGemini }

// Stream initiates a streaming generation request.
func (p *Provider) Stream(ctx context.Context, req ai.Request) *ai.FragmentStream {
	stream := ai.NewFragmentStream(p.Name(), 64)

	go func() {
		if err := p.doStream(ctx, req, stream); err != nil {
			stream.Fail(err)
		}
	}()

	return stream
}

func (p *Provider) doStream(ctx context.Context, req ai.Request, stream *ai.FragmentStream) error {
	body, err := json.Marshal(buildGenerateBody(req))
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	path := fmt.Sprintf("/models/%s:streamGenerateContent?alt=sse&key=%s",
		url.PathEscape(p.model), url.QueryEscape(p.apiKey))

	ovlog.Debug("gemini: POST %s/models/%s:streamGenerateContent", p.client.BaseURL(), p.model)
	reader, resp, err := p.client.StreamSSE(ctx, path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, errBody)
	}

	return forwardParts(reader, stream)
}

func forwardParts(reader *sse.Reader, stream *ai.FragmentStream) error {
	for {
		event, err := reader.Next()
		if err != nil {
			if err != io.EOF {
				return fmt.Errorf("reading stream: %w", err)
			}
			break
		}

		var chunk generateResponse
		if err := json.Unmarshal([]byte(event.Data), &chunk); err != nil {
			continue
		}

		for _, cand := range chunk.Candidates {
			for _, part := range cand.Content.Parts {
				if part.Text != "" {
					stream.Send(part.Text)
				}
			}
		}
	}

	stream.Finish()
	return nil
}

func buildGenerateBody(req ai.Request) generateRequest {
	return generateRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: req.FlatPrompt()}},
		}},
		GenerationConfig: &generationConfig{
			Temperature:     req.Params.Temperature,
			MaxOutputTokens: req.Params.MaxTokens,
		},
	}
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
}
