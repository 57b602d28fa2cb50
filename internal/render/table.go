package render

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/alnah/go-mdreport/internal/pipeline"
)

// Column width estimation.
const (
	// avgGlyphWidth approximates the advance of a proportional glyph as a
	// fraction of the font size.
	avgGlyphWidth = 0.5

	// maxColumnCells caps one column's share so a single long cell cannot
	// starve the others.
	maxColumnCells = 60

	minColumnCells = 3
)

var markupTag = regexp.MustCompile(`<[^>]*>`)

// TableStyle holds the directives applied to every table. Sizes are in
// points, colors are CSS colors.
type TableStyle struct {
	GridWidth        float64
	GridColor        string
	HeaderBackground string
	HeaderBold       bool
	VerticalAlign    string
	PaddingLeft      float64
	PaddingRight     float64
	Alignment        Alignment
	SpaceAfter       float64
	CellStyle        string
	AutoWidths       bool
}

// DefaultTableStyle returns grid lines, a shaded bold header, top-aligned
// cells and 4pt horizontal padding.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		GridWidth:        0.5,
		GridColor:        "grey",
		HeaderBackground: "lightgrey",
		HeaderBold:       true,
		VerticalAlign:    "top",
		PaddingLeft:      4,
		PaddingRight:     4,
		Alignment:        AlignLeft,
		SpaceAfter:       spacerHeight,
		CellStyle:        StyleBody,
		AutoWidths:       true,
	}
}

func (t TableStyle) css() string {
	margin := "0 auto 0 0"
	switch t.Alignment {
	case AlignCenter:
		margin = "0 auto"
	case AlignRight:
		margin = "0 0 0 auto"
	}
	headerWeight := "normal"
	if t.HeaderBold {
		headerWeight = "bold"
	}
	return fmt.Sprintf(`table.grid {
  border-collapse: collapse;
  margin: %s;
  margin-bottom: %.1fpt;
  max-width: 100%%;
  break-inside: auto;
}
table.grid td {
  border: %.1fpt solid %s;
  vertical-align: %s;
  padding: 0 %.1fpt 0 %.1fpt;
}
table.grid td p {
  margin: 0;
  overflow-wrap: anywhere;
}
table.grid tr.header td {
  background-color: %s;
}
table.grid tr.header td p {
  font-weight: %s;
}
table.grid tr {
  break-inside: avoid;
}
`, margin, t.SpaceAfter, t.GridWidth, t.GridColor, t.VerticalAlign, t.PaddingRight, t.PaddingLeft, t.HeaderBackground, headerWeight)
}

// Table lays out rows as a grid. Each cell is wrapped in a paragraph of the
// cell style so row height follows its content; the first row is the
// header. Cell markup is written as is.
func (d *Document) Table(rows []pipeline.Row, style TableStyle) error {
	if len(rows) == 0 {
		return nil
	}
	cell, err := d.styles.Get(style.CellStyle)
	if err != nil {
		return err
	}

	var widths []float64
	if style.AutoWidths {
		widths = columnWidths(rows, cell.FontSize, style, d.contentWidth)
	}

	b := &d.body
	if widths != nil {
		b.WriteString(`<table class="grid" style="width: 100%">` + "\n")
		writeColGroup(b, widths)
	} else {
		b.WriteString(`<table class="grid">` + "\n")
	}
	for i, row := range rows {
		if i == 0 {
			b.WriteString(`<tr class="header">`)
		} else {
			b.WriteString("<tr>")
		}
		for _, c := range row {
			fmt.Fprintf(b, `<td><p class="%s">%s</p></td>`, cell.className(), c)
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n")
	return nil
}

// columnWidths returns percentage hints for each column, or nil when the
// table fits the content width at natural size and the browser can size it.
func columnWidths(rows []pipeline.Row, fontSize float64, style TableStyle, contentWidth float64) []float64 {
	cols := 0
	for _, r := range rows {
		cols = max(cols, len(r))
	}
	if cols == 0 {
		return nil
	}

	cells := make([]int, cols)
	for _, r := range rows {
		for i, c := range r {
			cells[i] = max(cells[i], displayWidth(c))
		}
	}

	total := 0
	for i := range cells {
		cells[i] = min(max(cells[i], minColumnCells), maxColumnCells)
		total += cells[i]
	}

	natural := float64(total)*fontSize*avgGlyphWidth + float64(cols)*(style.PaddingLeft+style.PaddingRight)
	if contentWidth <= 0 || natural <= contentWidth {
		return nil
	}

	widths := make([]float64, cols)
	for i, n := range cells {
		widths[i] = float64(n) / float64(total) * 100
	}
	return widths
}

// displayWidth measures the visible text of a cell in terminal cells, which
// tracks glyph count for Latin text and doubles for wide CJK glyphs.
func displayWidth(markup string) int {
	text := html.UnescapeString(markupTag.ReplaceAllString(markup, ""))
	return runewidth.StringWidth(strings.TrimSpace(text))
}

func writeColGroup(b *strings.Builder, widths []float64) {
	if len(widths) == 0 {
		return
	}
	b.WriteString("<colgroup>")
	for _, w := range widths {
		fmt.Fprintf(b, `<col style="width: %.1f%%">`, w)
	}
	b.WriteString("</colgroup>\n")
}
