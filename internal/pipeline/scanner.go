package pipeline

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	codeFence = "```"

	// Bullet is prepended to list item text.
	Bullet = "\u2022 "
)

var (
	// Line terminators: CRLF, CR, VT, FF, the file/group/record separators,
	// NEL and the Unicode line and paragraph separators.
	lineTerminator = regexp.MustCompile(`\r\n|[\r\x0b\x0c\x1c-\x1e\x{85}\x{2028}\x{2029}]`)

	// A GFM separator cell once internal spaces are removed
	separatorCell = regexp.MustCompile(`^-+$`)
)

// headingPrefixes are tested longest first.
var headingPrefixes = [...]struct {
	prefix string
	level  int
}{
	{"### ", 3},
	{"## ", 2},
	{"# ", 1},
}

// scanState is allocated per ToBlocks call and never shared.
type scanState struct {
	inCode bool
	code   []string
	table  []Row
	blocks []Block
}

// classifier inspects one sanitized line and reports whether it consumed it.
type classifier func(s *scanState, line string) bool

// classifiers run top to bottom for every line; the first to consume wins.
var classifiers = [...]classifier{
	(*scanState).fenceToggle,
	(*scanState).fencedLine,
	(*scanState).tableRow,
	(*scanState).heading,
	(*scanState).listItem,
	(*scanState).blank,
	(*scanState).paragraph,
}

// ToBlocks converts Markdown into an ordered list of layout blocks.
//
// The input is trimmed, split into lines and each line is sanitized before
// classification. Code and table rows are buffered and flushed into a
// single block when their run ends. An unterminated fence swallows the rest
// of the input as code. ToBlocks never fails; empty input returns nil.
func ToBlocks(markdown string) []Block {
	s := &scanState{}

	text := strings.TrimFunc(normalizeLineEndings(markdown), isTrimSpace)
	if text != "" {
		for _, raw := range strings.Split(text, "\n") {
			s.scan(Sanitize(raw))
		}
	}

	s.flushTable()
	s.flushCode()
	return s.blocks
}

// normalizeLineEndings converts every line terminator to \n.
func normalizeLineEndings(content string) string {
	return lineTerminator.ReplaceAllString(content, "\n")
}

// isTrimSpace reports whitespace stripped from the ends of the document.
// The unit separator counts as whitespace there but never ends a line.
func isTrimSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\x1f'
}

func (s *scanState) scan(line string) {
	for _, classify := range classifiers {
		if classify(s, line) {
			return
		}
	}
}

// fenceToggle handles ``` lines. The fence line and its language tag are
// never part of a block.
func (s *scanState) fenceToggle(line string) bool {
	if !strings.HasPrefix(strings.TrimSpace(line), codeFence) {
		return false
	}
	if s.inCode {
		s.inCode = false
		s.flushCode()
		return true
	}
	s.flushTable()
	s.inCode = true
	return true
}

func (s *scanState) fencedLine(line string) bool {
	if !s.inCode {
		return false
	}
	s.code = append(s.code, line)
	return true
}

// tableRow buffers pipe rows and drops GFM separator rows. Any other line
// ends the table run.
func (s *scanState) tableRow(line string) bool {
	if !isTableLine(line) {
		s.flushTable()
		return false
	}

	cells := splitCells(line)
	if isSeparatorRow(cells) {
		return true
	}

	row := make(Row, len(cells))
	for i, cell := range cells {
		row[i] = FormatInline(cell)
	}
	s.table = append(s.table, row)
	return true
}

func (s *scanState) heading(line string) bool {
	for _, h := range headingPrefixes {
		if rest, ok := strings.CutPrefix(line, h.prefix); ok {
			s.blocks = append(s.blocks, Heading(h.level, FormatInline(rest)))
			return true
		}
	}
	return false
}

func (s *scanState) listItem(line string) bool {
	rest, ok := strings.CutPrefix(line, "- ")
	if !ok {
		rest, ok = strings.CutPrefix(line, "* ")
	}
	if !ok {
		return false
	}
	s.blocks = append(s.blocks, ListItem(Bullet+FormatInline(rest)))
	return true
}

func (s *scanState) blank(line string) bool {
	if strings.TrimSpace(line) != "" {
		return false
	}
	s.blocks = append(s.blocks, Spacer())
	return true
}

func (s *scanState) paragraph(line string) bool {
	s.blocks = append(s.blocks, Paragraph(FormatInline(line)))
	return true
}

func (s *scanState) flushCode() {
	if len(s.code) == 0 {
		return
	}
	s.blocks = append(s.blocks, CodeBlock(s.code))
	s.code = nil
}

func (s *scanState) flushTable() {
	if len(s.table) == 0 {
		return
	}
	s.blocks = append(s.blocks, Table(padRows(s.table)))
	s.table = nil
}

// isTableLine reports whether line is a table row candidate. Headings may
// contain pipes and are excluded.
func isTableLine(line string) bool {
	if !strings.Contains(line, "|") {
		return false
	}
	return !strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), "#")
}

// splitCells strips one leading and one trailing pipe, splits on the rest
// and trims every cell.
func splitCells(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")

	cells := strings.Split(line, "|")
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

func isSeparatorRow(cells []string) bool {
	for _, c := range cells {
		if !separatorCell.MatchString(strings.ReplaceAll(c, " ", "")) {
			return false
		}
	}
	return true
}

// padRows extends short rows with empty cells so every row has the width
// of the widest one. Long rows are never truncated.
func padRows(rows []Row) []Row {
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	for i, r := range rows {
		if len(r) < width {
			padded := make(Row, width)
			copy(padded, r)
			rows[i] = padded
		}
	}
	return rows
}
