// ABOUTME: Tests for request flattening used by single-prompt backends

package ai

import "testing"

func TestRequestFlatPrompt(t *testing.T) {
	t.Parallel()

	r := Request{System: "be brief", User: "what is Go?"}
	if got, want := r.FlatPrompt(), "be brief\n\nwhat is Go?"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	r = Request{User: "what is Go?"}
	if got := r.FlatPrompt(); got != "what is Go?" {
		t.Errorf("got %q, want user prompt alone", got)
	}
}
