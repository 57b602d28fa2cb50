package pipeline

// Kind identifies the type of a layout block.
type Kind int

// Block kinds produced by ToBlocks.
const (
	KindParagraph Kind = iota
	KindHeading
	KindListItem
	KindCodeBlock
	KindTable
	KindSpacer
)

var kindNames = [...]string{
	KindParagraph: "paragraph",
	KindHeading:   "heading",
	KindListItem:  "list-item",
	KindCodeBlock: "code",
	KindTable:     "table",
	KindSpacer:    "spacer",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Row is one table row of inline-formatted cells.
type Row []string

// Block is one finalized layout unit.
//
// Only the fields relevant to Kind are set:
//   - heading: Level (1-3) and Text
//   - paragraph, list item: Text
//   - code block: Lines (sanitized, not escaped)
//   - table: Rows (first row is the header)
//   - spacer: nothing
type Block struct {
	Kind  Kind
	Level int
	Text  string
	Lines []string
	Rows  []Row
}

// Heading returns a heading block.
func Heading(level int, text string) Block {
	return Block{Kind: KindHeading, Level: level, Text: text}
}

// Paragraph returns a paragraph block.
func Paragraph(text string) Block {
	return Block{Kind: KindParagraph, Text: text}
}

// ListItem returns a list item block. text already carries the bullet glyph.
func ListItem(text string) Block {
	return Block{Kind: KindListItem, Text: text}
}

// CodeBlock returns a code block holding lines.
func CodeBlock(lines []string) Block {
	return Block{Kind: KindCodeBlock, Lines: lines}
}

// Table returns a table block holding rows.
func Table(rows []Row) Block {
	return Block{Kind: KindTable, Rows: rows}
}

// Spacer returns a vertical whitespace block.
func Spacer() Block {
	return Block{Kind: KindSpacer}
}

// Columns returns the cell count of the widest row.
func (b Block) Columns() int {
	n := 0
	for _, r := range b.Rows {
		if len(r) > n {
			n = len(r)
		}
	}
	return n
}
