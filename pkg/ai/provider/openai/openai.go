// ABOUTME: OpenAI-compatible Chat Completions streaming provider
// ABOUTME: Maps SSE delta chunks 1:1 onto response fragments

package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	ovlog "github.com/overhearhq/overhear/internal/log"
	"github.com/overhearhq/overhear/pkg/ai"
	"github.com/overhearhq/overhear/pkg/ai/internal/httputil"
	"github.com/overhearhq/overhear/pkg/ai/internal/sse"
)

const (
	defaultBaseURL     = "https://api.openai.com"
	chatCompletionPath = "/v1/chat/completions"
)

// Provider implements the OpenAI Chat Completions API. It also serves any
// OpenAI-compatible endpoint reachable through the Endpoint setting.
type Provider struct {
	client *httputil.Client
	model  string
}

// New creates an OpenAI provider from settings. The API key falls back to
// OPENAI_API_KEY when unset.
func New(s ai.Settings) *Provider {
	apiKey := s.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	baseURL := s.Endpoint
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = httputil.NormalizeBaseURL(baseURL)

	headers := map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer " + apiKey,
	}

	return &Provider{
		client: httputil.NewClient(baseURL, headers),
		model:  s.Model,
	}
}

// Name returns the label used in inline error fragments.
func (p *Provider) Name() string { return "OpenAI" }

// Type returns the provider's configuration identifier.
func (p *Provider) Type() ai.ProviderType { return ai.TypeOpenAI }

// Stream initiates a streaming chat completion.
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
	body, err := json.Marshal(buildChatBody(p.model, req))
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	ovlog.Debug("openai: POST %s%s model=%s", p.client.BaseURL(), chatCompletionPath, p.model)
	reader, resp, err := p.client.StreamSSE(ctx, chatCompletionPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, errBody)
	}

	return forwardChatDeltas(reader, stream)
}

// forwardChatDeltas maps every non-empty delta onto one fragment, preserving
// backend order. Mid-stream transport errors end the stream with the uniform
// error fragment so already-forwarded text stays delivered.
func forwardChatDeltas(reader *sse.Reader, stream *ai.FragmentStream) error {
	for {
		event, err := reader.Next()
		if err != nil {
			if err != io.EOF {
				return fmt.Errorf("reading stream: %w", err)
			}
			break
		}
		if event.Data == "[DONE]" {
			break
		}

		var chunk chatChunk
		if err := json.Unmarshal([]byte(event.Data), &chunk); err != nil {
			// Skip malformed keep-alive payloads.
			continue
		}

		for _, choice := range chunk.Choices {
			if choice.Delta.Content != "" {
				stream.Send(choice.Delta.Content)
			}
		}
	}

	stream.Finish()
	return nil
}

func buildChatBody(model string, req ai.Request) map[string]any {
	return map[string]any{
		"model": model,
		"messages": []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		"temperature": req.Params.Temperature,
		"max_tokens":  req.Params.MaxTokens,
		"stream":      true,
	}
}
