package engine

import "strings"

// SplitLines splits content on LF. A CR directly before the LF is dropped, a
// terminator at the very end does not open another line, and empty content is
// a single empty line. Bare CRs are kept as line content.
func SplitLines(content string) []string {
	if content == "" {
		return []string{""}
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
