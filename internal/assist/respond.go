// ABOUTME: Non-streaming convenience call with a bounded response cache
// ABOUTME: The streaming Analyze path never caches; freshness beats reuse there

package assist

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/overhearhq/overhear/internal/log"
	"github.com/overhearhq/overhear/internal/prompt"
	"github.com/overhearhq/overhear/pkg/ai"
)

const (
	respondCacheTTL     = 5 * time.Minute
	respondCacheCleanup = 10 * time.Minute
)

// Responder wraps an Engine with a blocking call that returns the full
// concatenated answer. Identical prompt/provider pairs within the TTL are
// served from cache, which only ever holds successful responses.
type Responder struct {
	engine *Engine
	cache  *gocache.Cache
}

// NewResponder creates a responder over the engine.
func NewResponder(e *Engine) *Responder {
	return &Responder{
		engine: e,
		cache:  gocache.New(respondCacheTTL, respondCacheCleanup),
	}
}

// Respond runs one analysis to completion and returns the concatenated
// text. A stream that ended with the inline error fragment returns the
// partial text together with the error.
func (r *Responder) Respond(ctx context.Context, req Request) (string, error) {
	snap := r.engine.snapshot()

	user, system := r.engine.composer.Build(prompt.Request{
		Transcript: req.Transcript,
		Screen:     req.Screen,
		Clipboard:  req.Clipboard,
		Scenario:   req.Scenario,
	}, snap.assistant, snap.rules)

	key := cacheKey(snap.provider.Type(), system, user)
	if cached, ok := r.cache.Get(key); ok {
		log.Debug("assist: respond cache hit")
		return cached.(string), nil
	}

	stream := snap.provider.Stream(ctx, ai.Request{
		System: system,
		User:   user,
		Params: r.engine.params(snap),
	})

	var b strings.Builder
	var streamErr error
	for frag := range stream.Fragments() {
		b.WriteString(frag.Text)
		if frag.Err != nil {
			streamErr = frag.Err
		}
	}
	if streamErr != nil {
		return b.String(), streamErr
	}

	text := b.String()
	r.cache.Set(key, text, gocache.DefaultExpiration)
	return text, nil
}

func cacheKey(t ai.ProviderType, system, user string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s\x00%s\x00%s", t, system, user)))
	return hex.EncodeToString(sum[:])
}
