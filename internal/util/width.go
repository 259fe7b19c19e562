package util

import (
	"strings"

	"golang.org/x/text/width"
)

// DisplayWidth returns the number of terminal cells s occupies. Wide and fullwidth runes count as 2.
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}

	return n
}

// PadRight pads s with spaces up to column. When s already reaches column a single space is appended
// so the text that follows never runs into s.
func PadRight(s string, column int) string {
	w := DisplayWidth(s)
	if w >= column {
		return s + " "
	}

	return s + strings.Repeat(" ", column-w)
}
