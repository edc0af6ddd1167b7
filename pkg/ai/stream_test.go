// ABOUTME: Tests for FragmentStream send/receive, finish, and failure behavior
// ABOUTME: Validates the channel lifecycle and the terminal error fragment

package ai

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestFragmentStreamSendAndReceive(t *testing.T) {
	t.Parallel()

	stream := NewFragmentStream("OpenAI", 10)

	ok := stream.Send("hello")
	if !ok {
		t.Fatal("Send returned false; expected true")
	}

	select {
	case got := <-stream.Fragments():
		if got.Text != "hello" {
			t.Errorf("got Text %q, want %q", got.Text, "hello")
		}
		if got.Err != nil {
			t.Errorf("got Err %v, want nil", got.Err)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for fragment")
	}
}

func TestFragmentStreamFinishClosesChannel(t *testing.T) {
	t.Parallel()

	stream := NewFragmentStream("OpenAI", 10)
	stream.Send("one")
	stream.Send("two")
	stream.Finish()

	var got []string
	for f := range stream.Fragments() {
		got = append(got, f.Text)
	}
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Errorf("got fragments %v, want [one two]", got)
	}

	// Send after Finish must be rejected.
	if stream.Send("three") {
		t.Error("Send succeeded after Finish")
	}
}

func TestFragmentStreamFailEmitsErrorFragment(t *testing.T) {
	t.Parallel()

	stream := NewFragmentStream("Google Gemini", 10)
	stream.Send("partial ")
	stream.Fail(errors.New("connection reset"))

	var got []Fragment
	for f := range stream.Fragments() {
		got = append(got, f)
	}
	if len(got) != 2 {
		t.Fatalf("got %d fragments, want 2", len(got))
	}
	if got[0].Text != "partial " || got[0].Err != nil {
		t.Errorf("first fragment = %+v, want plain text", got[0])
	}

	last := got[1]
	if last.Err == nil {
		t.Error("terminal fragment carries no error")
	}
	want := "Google Gemini Error: connection reset"
	if last.Text != want {
		t.Errorf("got terminal text %q, want %q", last.Text, want)
	}
	if !strings.HasPrefix(last.Text, "Google Gemini Error: ") {
		t.Errorf("terminal text %q missing provider error prefix", last.Text)
	}
}

func TestFragmentStreamFailAfterFinishIsNoop(t *testing.T) {
	t.Parallel()

	stream := NewFragmentStream("OpenAI", 10)
	stream.Finish()
	stream.Fail(errors.New("too late"))

	for f := range stream.Fragments() {
		t.Errorf("unexpected fragment after Finish: %+v", f)
	}
}

func TestFragmentStreamDoneChannel(t *testing.T) {
	t.Parallel()

	stream := NewFragmentStream("OpenAI", 10)

	select {
	case <-stream.Done():
		t.Fatal("Done() closed before Finish")
	default:
		// expected
	}

	stream.Finish()
	stream.Finish() // idempotent

	select {
	case <-stream.Done():
		// expected
	case <-time.After(time.Second):
		t.Fatal("Done() not closed after Finish")
	}
}
