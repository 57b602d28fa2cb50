package pipeline

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// glyphReplacer swaps glyphs that PDF core fonts render as black boxes.
var glyphReplacer = strings.NewReplacer(
	"\u2013", "-", // en dash
	"\u2014", "-", // em dash
	"\u00a0", " ", // no-break space
	"\u202f", " ", // narrow no-break space
	"\u00ad", "-", // soft hyphen
	"\u2060", "", // word joiner
)

// entityDecoder runs last, after control characters are gone.
var entityDecoder = strings.NewReplacer(
	"&nbsp;", " ",
	"&quot;", `"`,
	"&amp;", "&",
)

// assignedCategories is every general category except C. A rune outside all
// of them is unassigned (Cn), which counts as C.
var assignedCategories = []*unicode.RangeTable{
	unicode.L, unicode.M, unicode.N, unicode.P, unicode.S, unicode.Z,
}

// isOther reports whether r is in Unicode category C. Newline and tab are
// exempt.
func isOther(r rune) bool {
	if r == '\n' || r == '\t' {
		return false
	}
	if unicode.Is(unicode.C, r) {
		return true
	}
	return !unicode.IsOneOf(assignedCategories, r)
}

// Sanitize normalizes one line of input before it is classified.
// It replaces problem glyphs, strips category C runes except newline and tab,
// then decodes &nbsp;, &quot; and &amp;. It never fails.
func Sanitize(line string) string {
	line = glyphReplacer.Replace(line)
	if out, _, err := transform.String(runes.Remove(runes.Predicate(isOther)), line); err == nil {
		line = out
	}
	return entityDecoder.Replace(line)
}
