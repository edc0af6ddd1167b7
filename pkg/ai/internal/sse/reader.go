// ABOUTME: Server-Sent Events parser reading from an io.Reader
// ABOUTME: Handles data/event fields, multi-line data, and comment lines

package sse

import (
	"bufio"
	"io"
	"strings"
)

// Event is a single Server-Sent Event.
type Event struct {
	Type string
	Data string
}

// Reader parses SSE events from a stream.
type Reader struct {
	scanner *bufio.Scanner
}

const maxLineSize = 1024 * 1024

// NewReader wraps r in an SSE parser.
func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{scanner: s}
}

// Next returns the next event, or io.EOF when the stream ends.
func (r *Reader) Next() (*Event, error) {
	var ev Event
	var data []string
	var seen bool

	flush := func() *Event {
		ev.Data = strings.Join(data, "\n")
		return &ev
	}

	for r.scanner.Scan() {
		line := r.scanner.Text()

		// Blank line terminates the pending event.
		if line == "" {
			if seen {
				return flush(), nil
			}
			continue
		}
		if strings.HasPrefix(line, ":") {
			continue
		}

		field, value := splitField(line)
		switch field {
		case "event":
			ev.Type = value
			seen = true
		case "data":
			data = append(data, value)
			seen = true
		}
	}

	if err := r.scanner.Err(); err != nil {
		return nil, err
	}
	if seen {
		return flush(), nil
	}
	return nil, io.EOF
}

func splitField(line string) (string, string) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return line, ""
	}
	value := line[idx+1:]
	if len(value) > 0 && value[0] == ' ' {
		value = value[1:]
	}
	return line[:idx], value
}
