// ABOUTME: Channel-based fragment streaming for LLM responses
// ABOUTME: FragmentStream provides async iteration with a race-free finish protocol

package ai

import (
	"fmt"
	"sync"
)

// FragmentStream is a lazy, finite, non-restartable sequence of fragments.
// Consumers range over Fragments(); the channel closes when the stream ends.
//
// Send writes to an internal channel that is never closed externally.
// Finish closes only the done channel; a drainer goroutine forwards
// fragments to the consumer-facing channel and closes it once done fires
// and the buffer is empty. This removes the send-on-closed-channel race
// between a producing goroutine and whoever ends the stream.
type FragmentStream struct {
	provider string
	frags    chan Fragment
	out      chan Fragment
	done     chan struct{}
	once     sync.Once
}

// NewFragmentStream creates a stream for the named provider with the given
// buffer size. The name is used to label the terminal error fragment.
func NewFragmentStream(provider string, bufSize int) *FragmentStream {
	s := &FragmentStream{
		provider: provider,
		frags:    make(chan Fragment, bufSize),
		out:      make(chan Fragment, bufSize),
		done:     make(chan struct{}),
	}
	go s.drain()
	return s
}

func (s *FragmentStream) drain() {
	defer close(s.out)
	for {
		select {
		case f := <-s.frags:
			s.out <- f
		case <-s.done:
			for {
				select {
				case f := <-s.frags:
					s.out <- f
				default:
					return
				}
			}
		}
	}
}

// Fragments returns the read-only fragment channel. It is closed when the
// stream completes, whether normally or via Fail.
func (s *FragmentStream) Fragments() <-chan Fragment {
	return s.out
}

// Send emits one text fragment. Returns false if the stream already ended.
func (s *FragmentStream) Send(text string) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.frags <- Fragment{Text: text}:
		return true
	case <-s.done:
		return false
	}
}

// Finish ends the stream normally. Idempotent.
func (s *FragmentStream) Finish() {
	s.once.Do(func() {
		close(s.done)
	})
}

// Fail ends the stream with exactly one terminal error fragment. The
// fragment's text is the uniform "<Provider> Error: <message>" rendering so
// callers can display it inline after whatever text already streamed.
func (s *FragmentStream) Fail(err error) {
	select {
	case <-s.done:
	default:
		select {
		case s.frags <- Fragment{Text: fmt.Sprintf("%s Error: %v", s.provider, err), Err: err}:
		case <-s.done:
		}
	}
	s.Finish()
}

// Done returns a channel closed when the stream has completed.
func (s *FragmentStream) Done() <-chan struct{} {
	return s.done
}
