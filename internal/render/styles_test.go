package render

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultStyleSheet(t *testing.T) {
	t.Parallel()

	sheet := DefaultStyleSheet()

	tests := []struct {
		name      string
		fontSize  float64
		leading   float64
		bold      bool
		alignment Alignment
		family    string
	}{
		{StyleH1, 14, 18, true, AlignCenter, FontSans},
		{StyleH2, 12, 16, true, AlignLeft, FontSans},
		{StyleH3, 11, 15, true, AlignLeft, FontSans},
		{StyleBody, 10, 14, false, AlignLeft, FontSans},
		{StyleCode, 8, 10, false, AlignLeft, FontMono},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := sheet.Get(tt.name)
			if err != nil {
				t.Fatalf("Get(%q) error: %v", tt.name, err)
			}
			if p.FontSize != tt.fontSize || p.Leading != tt.leading {
				t.Errorf("size/leading = %v/%v, want %v/%v", p.FontSize, p.Leading, tt.fontSize, tt.leading)
			}
			if p.Bold != tt.bold {
				t.Errorf("Bold = %v, want %v", p.Bold, tt.bold)
			}
			if p.Alignment != tt.alignment {
				t.Errorf("Alignment = %v, want %v", p.Alignment, tt.alignment)
			}
			if p.FontFamily != tt.family {
				t.Errorf("FontFamily = %q, want %q", p.FontFamily, tt.family)
			}
		})
	}
}

func TestStyleSheetGet_Unknown(t *testing.T) {
	t.Parallel()

	_, err := DefaultStyleSheet().Get("Caption")
	if !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("Get(unknown) error = %v, want ErrUnknownStyle", err)
	}
}

func TestStyleSheetGet_FillsName(t *testing.T) {
	t.Parallel()

	sheet := StyleSheet{"Note": {FontSize: 9}}
	p, err := sheet.Get("Note")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if p.className() != "p-note" {
		t.Errorf("className() = %q, want %q", p.className(), "p-note")
	}
}

func TestStyleSheetCSS(t *testing.T) {
	t.Parallel()

	css := DefaultStyleSheet().css()

	wantContains := []string{
		".p-h1 {",
		"text-align: center;",
		"font-size: 14.0pt;",
		"line-height: 18.0pt;",
		"margin: 18.0pt 0 12.0pt 0;",
		".p-body {",
		".p-code {",
		"font-family: " + FontMono + ";",
	}
	for _, want := range wantContains {
		if !strings.Contains(css, want) {
			t.Errorf("css missing %q", want)
		}
	}

	if css != DefaultStyleSheet().css() {
		t.Error("css output is not deterministic")
	}
	if strings.Index(css, ".p-body") > strings.Index(css, ".p-h1") {
		t.Error("styles not sorted by name")
	}
}

func TestHeadingStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level int
		want  string
	}{
		{1, StyleH1},
		{2, StyleH2},
		{3, StyleH3},
		{4, StyleH3},
		{0, StyleH3},
	}

	for _, tt := range tests {
		if got := HeadingStyle(tt.level); got != tt.want {
			t.Errorf("HeadingStyle(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestAlignmentCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a    Alignment
		want string
	}{
		{AlignLeft, "left"},
		{AlignCenter, "center"},
		{AlignRight, "right"},
		{AlignJustify, "justify"},
		{Alignment(99), "left"},
	}

	for _, tt := range tests {
		if got := tt.a.css(); got != tt.want {
			t.Errorf("Alignment(%d).css() = %q, want %q", tt.a, got, tt.want)
		}
	}
}
