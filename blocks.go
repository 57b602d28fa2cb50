package mdreport

import "github.com/alnah/go-mdreport/internal/pipeline"

// Block is one layout unit produced from Markdown source.
type Block = pipeline.Block

// Kind identifies the layout role of a Block.
type Kind = pipeline.Kind

// Row is one table row of formatted cells.
type Row = pipeline.Row

// Block kinds.
const (
	KindParagraph = pipeline.KindParagraph
	KindHeading   = pipeline.KindHeading
	KindListItem  = pipeline.KindListItem
	KindCodeBlock = pipeline.KindCodeBlock
	KindTable     = pipeline.KindTable
	KindSpacer    = pipeline.KindSpacer
)

// Bullet prefixes the text of every list item block.
const Bullet = pipeline.Bullet

// ToBlocks converts Markdown source into an ordered list of layout blocks.
// It never fails: any input yields a (possibly empty) list.
func ToBlocks(markdown string) []Block {
	return pipeline.ToBlocks(markdown)
}

// Sanitize replaces typographic glyphs with ASCII stand-ins, removes
// control and unassigned characters, and decodes a few HTML entities.
func Sanitize(line string) string {
	return pipeline.Sanitize(line)
}

// FormatInline escapes markup-significant characters and converts **bold**
// and *italic* spans into <b> and <i> tags.
func FormatInline(text string) string {
	return pipeline.FormatInline(text)
}
