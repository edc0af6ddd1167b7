// ABOUTME: Azure OpenAI streaming provider with deployment-scoped endpoints
// ABOUTME: Same delta mapping as Chat Completions, api-key auth and api-version query

package azure

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

const defaultAPIVersion = "2024-02-01"

// Provider implements the Azure OpenAI chat completions API. Requests go to
// a deployment-scoped path on the resource endpoint.
type Provider struct {
	client     *httputil.Client
	deployment string
	model      string
	apiVersion string
}

// New creates an Azure OpenAI provider. The API key falls back to
// AZURE_OPENAI_API_KEY; the deployment name falls back to the model name.
func New(s ai.Settings) *Provider {
	apiKey := s.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("AZURE_OPENAI_API_KEY")
	}
	apiVersion := s.APIVersion
	if apiVersion == "" {
		apiVersion = defaultAPIVersion
	}
	deployment := s.Deployment
	if deployment == "" {
		deployment = s.Model
	}

	headers := map[string]string{
		"Content-Type": "application/json",
		"api-key":      apiKey,
	}

	return &Provider{
		client:     httputil.NewClient(httputil.NormalizeBaseURL(s.Endpoint), headers),
		deployment: deployment,
		model:      s.Model,
		apiVersion: apiVersion,
	}
}

// Name returns the label used in inline error fragments.
func (p *Provider) Name() string { return "Azure OpenAI" }

// Type returns the provider's configuration identifier.
func (p *Provider) Type() ai.ProviderType { return ai.TypeAzureOpenAI }

// Stream initiates a streaming chat completion against the deployment.
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

	path := fmt.Sprintf("/openai/deployments/%s/chat/completions?api-version=%s",
		url.PathEscape(p.deployment), url.QueryEscape(p.apiVersion))

	ovlog.Debug("azure: POST %s%s deployment=%s", p.client.BaseURL(), path, p.deployment)
	reader, resp, err := p.client.StreamSSE(ctx, path, bytes.NewReader(body))
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
	body := map[string]any{
		"messages": []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		"temperature": req.Params.Temperature,
		"max_tokens":  req.Params.MaxTokens,
		"stream":      true,
	}
	// Some Azure-hosted models require the model name in the body as well.
	if model != "" {
		body["model"] = model
	}
	return body
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content,omitempty"`
		} `json:"delta"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}
