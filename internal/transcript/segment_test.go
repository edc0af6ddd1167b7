// ABOUTME: Tests for transcript segment parsing and dual-stream detection

package transcript

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry string
		want  Segment
	}{
		{"user tag", "[USER] can you hear me", Segment{Text: "can you hear me", Channel: ChannelUser}},
		{"system tag", "[SYSTEM] let's review the roadmap", Segment{Text: "let's review the roadmap", Channel: ChannelSystem}},
		{"untagged", "plain dictation text", Segment{Text: "plain dictation text", Channel: ChannelUnlabeled}},
		{"tag without space", "[USER]hello", Segment{Text: "hello", Channel: ChannelUser}},
		{"empty", "", Segment{Text: "", Channel: ChannelUnlabeled}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Parse(tt.entry); got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.entry, got, tt.want)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	entries := []string{
		"[SYSTEM] welcome everyone",
		"[USER] thanks for joining",
		"untagged noise",
		"[USER] one question",
	}
	user, system := Split(entries)

	if want := []string{"thanks for joining", "one question"}; !reflect.DeepEqual(user, want) {
		t.Errorf("user = %v, want %v", user, want)
	}
	if want := []string{"welcome everyone"}; !reflect.DeepEqual(system, want) {
		t.Errorf("system = %v, want %v", system, want)
	}
}

func TestIsDualStream(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []string
		want    bool
	}{
		{"both tags", []string{"[USER] a", "[SYSTEM] b"}, true},
		{"user only", []string{"[USER] a", "[USER] b"}, false},
		{"system only", []string{"[SYSTEM] a"}, false},
		{"untagged only", []string{"a", "b"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsDualStream(tt.entries); got != tt.want {
				t.Errorf("IsDualStream(%v) = %v, want %v", tt.entries, got, tt.want)
			}
		})
	}
}

func TestRecent(t *testing.T) {
	t.Parallel()

	entries := []string{"[USER] one", "[SYSTEM] two", "[USER] three", "four"}
	if got, want := Recent(entries, 3), "two three four"; got != want {
		t.Errorf("Recent = %q, want %q", got, want)
	}
	if got := Recent(nil, 3); got != "" {
		t.Errorf("Recent(nil) = %q, want empty", got)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	entries := []string{
		"[SYSTEM] shall we start",
		"[USER] yes",
		"untagged line",
	}
	want := "System: shall we start\nUser: yes\nuntagged line"
	if got := Format(entries); got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}

	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}

	// Only the last five entries appear.
	many := []string{"[USER] 1", "[USER] 2", "[USER] 3", "[USER] 4", "[USER] 5", "[USER] 6"}
	got := Format(many)
	if want := "User: 2\nUser: 3\nUser: 4\nUser: 5\nUser: 6"; got != want {
		t.Errorf("Format kept %q, want last five", got)
	}
}
