package render

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/reflow/wrap"
)

// Code block defaults.
const (
	// DefaultCodeStyle is a monochrome chroma style that prints well.
	DefaultCodeStyle = "bw"

	// monoGlyphWidth is the advance of a Courier glyph as a fraction of
	// the font size.
	monoGlyphWidth = 0.6

	codeTabWidth = 4
)

// CodeOptions configures code block formatting.
type CodeOptions struct {
	// Highlight guesses a lexer from the content. The fence language tag is
	// not kept, so detection is content based. When false, code is set as
	// plain text.
	Highlight bool

	// Wrap hard-wraps lines longer than this many columns. Zero derives the
	// column count from the content width and code font size; negative
	// disables wrapping.
	Wrap int

	// Style names a chroma style. Empty means DefaultCodeStyle.
	Style string
}

// codeFormatter renders code lines to HTML through chroma.
type codeFormatter struct {
	highlight bool
	wrap      int
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// IsCodeStyle reports whether name is a registered chroma style. The empty
// name selects DefaultCodeStyle and is accepted.
func IsCodeStyle(name string) bool {
	return name == "" || slices.Contains(styles.Names(), name)
}

func newCodeFormatter(opts CodeOptions, codeStyle ParagraphStyle, contentWidth float64) *codeFormatter {
	name := opts.Style
	if name == "" {
		name = DefaultCodeStyle
	}

	width := opts.Wrap
	if width == 0 {
		width = autoWrapColumns(codeStyle.FontSize, contentWidth)
	}

	return &codeFormatter{
		highlight: opts.Highlight,
		wrap:      width,
		style:     styles.Get(name),
		formatter: chromahtml.New(
			chromahtml.WithClasses(false),
			chromahtml.TabWidth(codeTabWidth),
		),
	}
}

// autoWrapColumns returns how many monospace glyphs fit the content width,
// or -1 when either measure is unknown.
func autoWrapColumns(fontSize, contentWidth float64) int {
	if fontSize <= 0 || contentWidth <= 0 {
		return -1
	}
	return int(contentWidth / (fontSize * monoGlyphWidth))
}

// Format writes lines as a chroma <pre> block.
func (f *codeFormatter) Format(w io.Writer, lines []string) error {
	code := strings.Join(f.wrapLines(lines), "\n")

	lexer := lexers.Fallback
	if f.highlight {
		if guessed := lexers.Analyse(code); guessed != nil {
			lexer = guessed
		}
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return fmt.Errorf("tokenising code block: %w", err)
	}
	if err := f.formatter.Format(w, f.style, it); err != nil {
		return fmt.Errorf("formatting code block: %w", err)
	}
	return nil
}

func (f *codeFormatter) wrapLines(lines []string) []string {
	if f.wrap <= 0 {
		return lines
	}
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if len(l) <= f.wrap {
			out = append(out, l)
			continue
		}
		out = append(out, wrap.String(l, f.wrap))
	}
	return out
}
