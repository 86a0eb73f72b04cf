package constants

import "strings"

const commentDelimiter = ';'

// Normalize strips the comment and surrounding whitespace of a raw source line.
// A comment starts at the first ';' that is not part of a quoted string.
// The returned bool is false if nothing is left to process.
func Normalize(line string) (string, bool) {
	inQuote := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '"' {
			inQuote = !inQuote
		} else if c == commentDelimiter && !inQuote {
			line = line[:i]
			break
		}
	}

	line = strings.TrimSpace(line)
	return line, line != ""
}
