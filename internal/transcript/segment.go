// ABOUTME: Transcript segments with channel tags from dual-stream capture
// ABOUTME: Wire form is "[USER] text" / "[SYSTEM] text"; untagged lines pass through

package transcript

import "strings"

// Channel identifies which audio stream produced a segment.
type Channel string

const (
	ChannelUser      Channel = "user-voice"
	ChannelSystem    Channel = "system-audio"
	ChannelUnlabeled Channel = "unlabeled"
)

const (
	tagUser   = "[USER]"
	tagSystem = "[SYSTEM]"
)

// Segment is one ordered text unit. Segments arrive chronologically and are
// never merged or mutated after creation.
type Segment struct {
	Text    string
	Channel Channel
}

// Parse decodes the wire form of one transcript entry.
func Parse(entry string) Segment {
	switch {
	case strings.HasPrefix(entry, tagUser):
		return Segment{Text: strings.TrimSpace(strings.TrimPrefix(entry, tagUser)), Channel: ChannelUser}
	case strings.HasPrefix(entry, tagSystem):
		return Segment{Text: strings.TrimSpace(strings.TrimPrefix(entry, tagSystem)), Channel: ChannelSystem}
	default:
		return Segment{Text: entry, Channel: ChannelUnlabeled}
	}
}

// Split separates tagged entries into user-voice and system-audio text,
// dropping the tags. Untagged entries land in neither bucket.
func Split(entries []string) (user, system []string) {
	for _, e := range entries {
		seg := Parse(e)
		switch seg.Channel {
		case ChannelUser:
			user = append(user, seg.Text)
		case ChannelSystem:
			system = append(system, seg.Text)
		}
	}
	return user, system
}

// IsDualStream reports whether the transcript carries both channel tags.
// This decides which template variant the composer selects.
func IsDualStream(entries []string) bool {
	var hasUser, hasSystem bool
	for _, e := range entries {
		switch Parse(e).Channel {
		case ChannelUser:
			hasUser = true
		case ChannelSystem:
			hasSystem = true
		}
		if hasUser && hasSystem {
			return true
		}
	}
	return false
}

// StripTags returns the plain text of each entry, tags removed.
func StripTags(entries []string) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = Parse(e).Text
	}
	return out
}

// Recent joins the last n entries, tags stripped, for topic matching.
func Recent(entries []string, n int) string {
	return strings.Join(StripTags(tail(entries, n)), " ")
}

// Format renders the last 5 entries one per line with speaker labels, for
// single-stream template slots.
func Format(entries []string) string {
	if len(entries) == 0 {
		return ""
	}
	var lines []string
	for _, e := range tail(entries, 5) {
		seg := Parse(e)
		switch seg.Channel {
		case ChannelUser:
			lines = append(lines, "User: "+seg.Text)
		case ChannelSystem:
			lines = append(lines, "System: "+seg.Text)
		default:
			lines = append(lines, seg.Text)
		}
	}
	return strings.Join(lines, "\n")
}

func tail(entries []string, n int) []string {
	if len(entries) <= n {
		return entries
	}
	return entries[len(entries)-n:]
}
