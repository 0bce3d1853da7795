package encoding

import "strings"

// benignPrefixes matches the encoder's verbose informational chatter. Lines
// starting with one of these are dropped from diagnostics so genuine errors
// stand out; nothing else is suppressed.
var benignPrefixes = []string{
	"Svt[info]",
	"Svt[warn]",
	"frame=",
	"size=",
	"Input #",
	"Output #",
	"Stream mapping",
	"Press [q]",
	"[libsvtav1",
	"Metadata:",
	"Duration:",
	"Stream #",
	"Side data:",
	"video:",
	"Last message repeated",
}

// FilterNoise strips known-benign encoder output lines, returning what remains
// for diagnostics.
func FilterNoise(output string) string {
	lines := strings.Split(output, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if isBenign(trimmed) {
			continue
		}
		kept = append(kept, trimmed)
	}
	return strings.Join(kept, "\n")
}

func isBenign(line string) bool {
	for _, prefix := range benignPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
