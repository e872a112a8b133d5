// Package csvcodec converts raw delimited text to rectangular string rows
// and back. There is no quoting or escaping: broker case exports contain no
// embedded commas or line breaks, and Serialize(Parse(x)) == x holds exactly
// for conforming text.
package csvcodec

import "strings"

const (
	fieldSeparator = ","
	lineBreak      = "\n"
)

// Parse splits text into rows of fields. Every line, including a header or
// an empty line, produces a row.
func Parse(text string) [][]string {
	lines := strings.Split(text, lineBreak)
	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = strings.Split(line, fieldSeparator)
	}
	return rows
}

// Serialize joins rows back into delimited text with no trailing line break.
func Serialize(rows [][]string) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, fieldSeparator)
	}
	return strings.Join(lines, lineBreak)
}
