// ABOUTME: Merges the two audio streams into one labeled, bounded content block
// ABOUTME: Priority mode decides ordering; caps bound prompt growth

package transcript

import (
	"strings"

	"github.com/overhearhq/overhear/internal/config"
)

const (
	// perStreamCap bounds each side in a prioritized merge.
	perStreamCap = 3
	// interleaveCap bounds the total entries in the balanced merge.
	interleaveCap = 6
)

// Prioritize merges user-voice and system-audio content into a single
// string with explicit source labels, ordered by the configured input
// priority. Either stream may be empty; the result degrades to whichever
// side has content, or to "" when both are empty.
func Prioritize(user, system []string, mode string) string {
	switch mode {
	case config.PrioritySystemAudio:
		return labeledMerge("System Audio (Primary)", system, "User Voice", user)
	case config.PriorityMic:
		return labeledMerge("User Voice (Primary)", user, "System Audio", system)
	default:
		return interleave(user, system)
	}
}

func labeledMerge(primaryLabel string, primary []string, secondaryLabel string, secondary []string) string {
	var parts []string
	if len(primary) > 0 {
		parts = append(parts, primaryLabel+": "+strings.Join(tail(primary, perStreamCap), " "))
	}
	if len(secondary) > 0 {
		parts = append(parts, secondaryLabel+": "+strings.Join(tail(secondary, perStreamCap), " "))
	}
	return strings.Join(parts, " | ")
}

// interleave pairs the two streams index-for-index, system entry before
// user entry at each index, then keeps only the last interleaveCap entries.
// When lengths differ the unpaired entries still join the sequence, so the
// longer stream is exhausted and the total cap drops the oldest entries.
func interleave(user, system []string) string {
	n := len(user)
	if len(system) > n {
		n = len(system)
	}

	var combined []string
	for i := 0; i < n; i++ {
		if i < len(system) {
			combined = append(combined, "System: "+system[i])
		}
		if i < len(user) {
			combined = append(combined, "User: "+user[i])
		}
	}
	return strings.Join(tail(combined, interleaveCap), " | ")
}
