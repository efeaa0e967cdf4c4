package normalize

import "strings"

// InstructionsSeparator delimits segments of the canonical
// operational-hours-special-instructions string.
const InstructionsSeparator = "|"

// SplitInstructions splits the canonical string into trimmed segments.
// Returns nil for an empty input.
func SplitInstructions(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, InstructionsSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// JoinInstructions is the inverse of SplitInstructions up to whitespace
// around the separator.
func JoinInstructions(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	return strings.Join(segments, " "+InstructionsSeparator+" ")
}
