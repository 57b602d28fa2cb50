package pipeline

import (
	"html"
	"regexp"
)

// Emphasis patterns. Bold runs first so its delimiters are consumed before
// single asterisks are read as italics. Both are non-greedy.
var (
	boldPattern   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.+?)\*`)
)

// FormatInline escapes HTML metacharacters and converts **bold** and
// *italic* to <b> and <i> markup. Unbalanced asterisks stay literal.
// Overlapping markers such as *a**b*c**d* follow leftmost non-greedy
// matching, not CommonMark.
func FormatInline(text string) string {
	text = html.EscapeString(text)
	text = boldPattern.ReplaceAllString(text, "<b>$1</b>")
	return italicPattern.ReplaceAllString(text, "<i>$1</i>")
}
