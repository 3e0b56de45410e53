package analytics

import "strings"

// Tokenize splits a line on whitespace runs into an ordered token sequence.
// Pure function of the input; original casing is preserved. strings.Fields
// handles multiple spaces, tabs and newlines.
func Tokenize(line string) []string {
	return strings.Fields(line)
}
