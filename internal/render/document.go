package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/alnah/go-mdreport/internal/pipeline"
)

// pointsPerInch converts inches to CSS points.
const pointsPerInch = 72

// spacerHeight is the gap emitted for blank lines and after tables.
const spacerHeight = 0.15 * pointsPerInch

// htmlTemplate wraps the laid-out body in a complete HTML5 document.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
%s</style>
</head>
<body>
%s</body>
</html>`

// baseCSS applies to every document regardless of style sheet.
const baseCSS = `html, body {
  margin: 0;
  padding: 0;
  color: #000;
  background: #fff;
}
.spacer {
  margin: 0;
}
pre {
  margin: 0;
  white-space: pre-wrap;
  overflow-wrap: anywhere;
}
.p-code pre, .p-code code {
  font-family: inherit;
  font-size: inherit;
  line-height: inherit;
}
h1, h2, h3, .p-h1, .p-h2, .p-h3 {
  break-after: avoid;
}
`

// Options configures a Document.
type Options struct {
	Title  string
	Styles StyleSheet
	Table  TableStyle
	Code   CodeOptions

	// ContentWidth is the printable width in points (page width minus
	// margins). It drives code wrapping and table width hints; zero
	// disables both.
	ContentWidth float64

	// CSS is appended after the generated styles so it can override them.
	CSS string
}

// DefaultOptions returns the default style sheet and table style with no
// known content width.
func DefaultOptions() Options {
	return Options{
		Title:  "Document",
		Styles: DefaultStyleSheet(),
		Table:  DefaultTableStyle(),
	}
}

// Document accumulates laid-out primitives. It is not safe for concurrent
// use; build one Document per conversion.
type Document struct {
	title        string
	styles       StyleSheet
	table        TableStyle
	contentWidth float64
	css          string
	code         *codeFormatter
	body         strings.Builder
}

// NewDocument creates an empty document. Zero-valued style fields fall back
// to the defaults.
func NewDocument(opts Options) (*Document, error) {
	if opts.Styles == nil {
		opts.Styles = DefaultStyleSheet()
	}
	if opts.Table == (TableStyle{}) {
		opts.Table = DefaultTableStyle()
	}
	if opts.Title == "" {
		opts.Title = "Document"
	}

	codeStyle, err := opts.Styles.Get(StyleCode)
	if err != nil {
		return nil, err
	}

	return &Document{
		title:        opts.Title,
		styles:       opts.Styles,
		table:        opts.Table,
		contentWidth: opts.ContentWidth,
		css:          opts.CSS,
		code:         newCodeFormatter(opts.Code, codeStyle, opts.ContentWidth),
	}, nil
}

// Paragraph sets markup in the named style. Markup is trusted: callers
// escape text and only add <b> and <i>.
func (d *Document) Paragraph(markup, style string) error {
	p, err := d.styles.Get(style)
	if err != nil {
		return err
	}
	fmt.Fprintf(&d.body, "<p class=\"%s\">%s</p>\n", p.className(), markup)
	return nil
}

// Spacer adds vertical whitespace of the given height in points.
func (d *Document) Spacer(height float64) {
	fmt.Fprintf(&d.body, "<div class=\"spacer\" style=\"height: %.1fpt\"></div>\n", height)
}

// Code sets lines verbatim in the Code style.
func (d *Document) Code(lines []string) error {
	p, err := d.styles.Get(StyleCode)
	if err != nil {
		return err
	}
	fmt.Fprintf(&d.body, "<div class=\"%s\">", p.className())
	if err := d.code.Format(&d.body, lines); err != nil {
		return err
	}
	d.body.WriteString("</div>\n")
	return nil
}

// Add lays out one block using the document's styles.
func (d *Document) Add(b pipeline.Block) error {
	switch b.Kind {
	case pipeline.KindHeading:
		return d.Paragraph(b.Text, HeadingStyle(b.Level))
	case pipeline.KindParagraph, pipeline.KindListItem:
		return d.Paragraph(b.Text, StyleBody)
	case pipeline.KindSpacer:
		d.Spacer(spacerHeight)
		return nil
	case pipeline.KindCodeBlock:
		return d.Code(b.Lines)
	case pipeline.KindTable:
		return d.Table(b.Rows, d.table)
	default:
		return fmt.Errorf("unsupported block kind %s", b.Kind)
	}
}

// HTML returns the complete document.
func (d *Document) HTML() string {
	css := baseCSS + d.styles.css() + d.table.css()
	if d.css != "" {
		css += sanitizeCSS(d.css) + "\n"
	}
	return fmt.Sprintf(htmlTemplate, html.EscapeString(d.title), css, d.body.String())
}

// Build lays out blocks in order and returns the HTML document.
func Build(blocks []pipeline.Block, opts Options) (string, error) {
	doc, err := NewDocument(opts)
	if err != nil {
		return "", err
	}
	for i, b := range blocks {
		if err := doc.Add(b); err != nil {
			return "", fmt.Errorf("block %d (%s): %w", i, b.Kind, err)
		}
	}
	return doc.HTML(), nil
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
