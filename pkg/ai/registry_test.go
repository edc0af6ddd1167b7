// ABOUTME: Tests for the provider registry and construction-time failures
// ABOUTME: Unknown provider types must fail in New, never at stream time

package ai

import (
	"context"
	"errors"
	"testing"
)

type fakeProvider struct {
	settings Settings
}

func (p *fakeProvider) Name() string       { return "Fake" }
func (p *fakeProvider) Type() ProviderType { return p.settings.Type }

func (p *fakeProvider) Stream(ctx context.Context, req Request) *FragmentStream {
	s := NewFragmentStream(p.Name(), 1)
	s.Finish()
	return s
}

func TestRegistryNew(t *testing.T) {
	const fakeType = ProviderType("fake")
	Register(fakeType, func(s Settings) Provider { return &fakeProvider{settings: s} })

	p, err := New(Settings{Type: fakeType, Model: "m"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if p.Type() != fakeType {
		t.Errorf("got type %q, want %q", p.Type(), fakeType)
	}
	if !Registered(fakeType) {
		t.Error("Registered returned false for installed factory")
	}
}

func TestRegistryNewUnknownType(t *testing.T) {
	_, err := New(Settings{Type: "no-such-provider"})
	if err == nil {
		t.Fatal("New succeeded for unknown provider type")
	}
	if !errors.Is(err, ErrUnsupportedProvider) {
		t.Errorf("got error %v, want ErrUnsupportedProvider", err)
	}
}
