// ABOUTME: Analysis engine: composes prompts, drives provider streams, forwards fragments
// ABOUTME: Snapshots provider and assistant settings per call; updates affect later calls only

package assist

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/overhearhq/overhear/internal/config"
	"github.com/overhearhq/overhear/internal/log"
	"github.com/overhearhq/overhear/internal/prompt"
	"github.com/overhearhq/overhear/pkg/ai"
)

// Scenario aliases the prompt template category for callers.
type Scenario = prompt.Scenario

// Request is one analysis unit of work.
type Request struct {
	Transcript []string
	Screen     string
	Clipboard  string
	Scenario   Scenario
}

// Probe supplies a context string (active window title, clipboard text) on
// demand. Probes may be slow; the engine gathers them concurrently and a
// probe failure degrades to an empty value.
type Probe func(ctx context.Context) (string, error)

// Engine is the exposed analysis interface. One engine serializes provider
// swaps against call starts; callers serialize distinct streaming requests
// themselves, or use independent engines for true concurrency.
type Engine struct {
	mu        sync.Mutex
	provider  ai.Provider
	assistant config.Assistant
	rules     string
	overrides config.ResponseSettings

	composer *prompt.Composer
	throttle time.Duration

	screenProbe    Probe
	clipboardProbe Probe
}

// Option configures an Engine.
type Option func(*Engine)

// WithThrottle inserts a pacing delay between forwarded fragments. This is
// a display-smoothing device only; correctness never depends on it.
func WithThrottle(d time.Duration) Option {
	return func(e *Engine) { e.throttle = d }
}

// WithProbes installs screen and clipboard probes used when a request does
// not carry those values itself.
func WithProbes(screen, clipboard Probe) Option {
	return func(e *Engine) {
		e.screenProbe = screen
		e.clipboardProbe = clipboard
	}
}

// WithProfile sets the profile summary source.
func WithProfile(p prompt.ProfileSource) Option {
	return func(e *Engine) { e.composer.Profile = p }
}

// WithTopics sets the topic guidance source.
func WithTopics(t prompt.TopicSource) Option {
	return func(e *Engine) { e.composer.Topics = t }
}

// New constructs an engine from configuration. An unsupported provider type
// fails here, never at stream time.
func New(cfg *config.Config, rules string, opts ...Option) (*Engine, error) {
	provider, err := ai.New(cfg.AIProvider.Settings())
	if err != nil {
		return nil, err
	}

	e := &Engine{
		provider:  provider,
		assistant: cfg.Assistant,
		rules:     rules,
		overrides: cfg.Context.ResponseSettings,
		composer:  &prompt.Composer{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// snapshot captures everything one call needs under the lock, so a
// concurrent configuration update cannot partially affect it.
type snapshot struct {
	provider  ai.Provider
	assistant config.Assistant
	rules     string
	overrides config.ResponseSettings
}

func (e *Engine) snapshot() snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshot{
		provider:  e.provider,
		assistant: e.assistant,
		rules:     e.rules,
		overrides: e.overrides,
	}
}

// Analyze runs one streaming analysis. The returned channel yields text
// fragments in backend order and closes when the sequence ends; a backend
// failure appears as one inline error fragment, never as a panic or an
// error value. Cancelling ctx stops forwarding and releases the underlying
// stream.
func (e *Engine) Analyze(ctx context.Context, req Request) <-chan string {
	snap := e.snapshot()
	out := make(chan string, 16)

	go func() {
		defer close(out)

		screen, clipboard := e.gather(ctx, req)
		user, system := e.composer.Build(prompt.Request{
			Transcript: req.Transcript,
			Screen:     screen,
			Clipboard:  clipboard,
			Scenario:   req.Scenario,
		}, snap.assistant, snap.rules)

		stream := snap.provider.Stream(ctx, ai.Request{
			System: system,
			User:   user,
			Params: e.params(snap),
		})

		for frag := range stream.Fragments() {
			if frag.Err != nil {
				log.Warn("assist: %s stream failed: %v", snap.provider.Name(), frag.Err)
			}
			select {
			case out <- frag.Text:
			case <-ctx.Done():
				return
			}
			if e.throttle > 0 {
				select {
				case <-time.After(e.throttle):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// gather fills missing screen/clipboard values from the installed probes,
// concurrently. Probe errors degrade to empty strings.
func (e *Engine) gather(ctx context.Context, req Request) (screen, clipboard string) {
	screen, clipboard = req.Screen, req.Clipboard

	g, ctx := errgroup.WithContext(ctx)
	if screen == "" && e.screenProbe != nil {
		g.Go(func() error {
			v, err := e.screenProbe(ctx)
			if err != nil {
				log.Warn("assist: screen probe: %v", err)
				return nil
			}
			screen = v
			return nil
		})
	}
	if clipboard == "" && e.clipboardProbe != nil {
		g.Go(func() error {
			v, err := e.clipboardProbe(ctx)
			if err != nil {
				log.Warn("assist: clipboard probe: %v", err)
				return nil
			}
			clipboard = v
			return nil
		})
	}
	_ = g.Wait()
	return screen, clipboard
}

// params derives generation parameters from the verbosity tables, then
// applies explicit response-settings overrides.
func (e *Engine) params(snap snapshot) ai.GenerationParams {
	p := ai.ParamsForVerbosity(snap.assistant.Verbosity)
	if snap.overrides.Temperature != nil {
		p.Temperature = *snap.overrides.Temperature
	}
	if snap.overrides.MaxTokens != nil {
		p.MaxTokens = *snap.overrides.MaxTokens
	}
	return p
}

// UpdateProviderConfig rebuilds the provider client. Construction errors
// surface immediately; in-flight streams keep the client they snapshotted.
func (e *Engine) UpdateProviderConfig(p config.AIProvider) error {
	provider, err := ai.New(p.Settings())
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.provider = provider
	e.mu.Unlock()
	log.Info("assist: provider switched to %s", provider.Name())
	return nil
}

// UpdateAssistantConfig replaces the assistant settings for subsequent
// calls.
func (e *Engine) UpdateAssistantConfig(a config.Assistant) {
	e.mu.Lock()
	e.assistant = a
	e.mu.Unlock()
}

// UpdateRules replaces the custom prompt rules for subsequent calls.
func (e *Engine) UpdateRules(rules string) {
	e.mu.Lock()
	e.rules = rules
	e.mu.Unlock()
}
