package aoc

import (
	"strings"
	"unicode"
)

// blank reports whether r is dropped when deciding if a line is empty. A byte
// order mark counts as blank.
func blank(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// Records splits text on newlines and drops the lines that are empty once
// surrounding whitespace is trimmed. The kept lines are returned unmodified
// and in order.
func Records(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimFunc(line, blank) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
