package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownStyle is returned when a primitive names a style that is not in
// the style sheet.
var ErrUnknownStyle = errors.New("unknown paragraph style")

// Style names used by Build.
const (
	StyleH1   = "H1"
	StyleH2   = "H2"
	StyleH3   = "H3"
	StyleBody = "Body"
	StyleCode = "Code"
)

// Font stacks for the generated CSS.
const (
	FontSans = "Helvetica, Arial, sans-serif"
	FontMono = "Courier, 'Courier New', monospace"
)

// Alignment is the horizontal alignment of a paragraph.
type Alignment int

// Paragraph alignments.
const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

func (a Alignment) css() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// ParagraphStyle describes how a paragraph is set. Sizes are in points.
type ParagraphStyle struct {
	Name        string
	FontFamily  string
	FontSize    float64
	Leading     float64
	SpaceBefore float64
	SpaceAfter  float64
	Alignment   Alignment
	Bold        bool
}

// className is the CSS class carried by paragraphs in this style.
func (p ParagraphStyle) className() string {
	return "p-" + strings.ToLower(p.Name)
}

func (p ParagraphStyle) css() string {
	weight := "normal"
	if p.Bold {
		weight = "bold"
	}
	return fmt.Sprintf(`.%s {
  font-family: %s;
  font-size: %.1fpt;
  line-height: %.1fpt;
  font-weight: %s;
  margin: %.1fpt 0 %.1fpt 0;
  text-align: %s;
}
`, p.className(), p.FontFamily, p.FontSize, p.Leading, weight, p.SpaceBefore, p.SpaceAfter, p.Alignment.css())
}

// StyleSheet holds paragraph styles by name.
type StyleSheet map[string]ParagraphStyle

// DefaultStyleSheet returns the built-in heading, body and code styles.
func DefaultStyleSheet() StyleSheet {
	return StyleSheet{
		StyleH1: {
			Name: StyleH1, FontFamily: FontSans, FontSize: 14, Leading: 18,
			SpaceBefore: 18, SpaceAfter: 12, Alignment: AlignCenter, Bold: true,
		},
		StyleH2: {
			Name: StyleH2, FontFamily: FontSans, FontSize: 12, Leading: 16,
			SpaceBefore: 12, SpaceAfter: 8, Bold: true,
		},
		StyleH3: {
			Name: StyleH3, FontFamily: FontSans, FontSize: 11, Leading: 15,
			SpaceBefore: 10, SpaceAfter: 6, Bold: true,
		},
		StyleBody: {
			Name: StyleBody, FontFamily: FontSans, FontSize: 10, Leading: 14,
			SpaceAfter: 4,
		},
		StyleCode: {
			Name: StyleCode, FontFamily: FontMono, FontSize: 8, Leading: 10,
			SpaceAfter: 6,
		},
	}
}

// Get looks a style up by name.
func (s StyleSheet) Get(name string) (ParagraphStyle, error) {
	p, ok := s[name]
	if !ok {
		return ParagraphStyle{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	if p.Name == "" {
		p.Name = name
	}
	return p, nil
}

// css renders every style in name order so output is deterministic.
func (s StyleSheet) css() string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		p := s[name]
		if p.Name == "" {
			p.Name = name
		}
		b.WriteString(p.css())
	}
	return b.String()
}

// HeadingStyle returns the style name for a heading level. Levels outside
// 1-3 fall back to H3.
func HeadingStyle(level int) string {
	switch level {
	case 1:
		return StyleH1
	case 2:
		return StyleH2
	default:
		return StyleH3
	}
}
