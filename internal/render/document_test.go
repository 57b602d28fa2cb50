package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-mdreport/internal/pipeline"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	blocks := []pipeline.Block{
		pipeline.Heading(1, "Title"),
		pipeline.Heading(3, "Demo"),
		pipeline.Paragraph("Some <b>bold</b> text"),
		pipeline.ListItem(pipeline.Bullet + "item"),
		pipeline.Spacer(),
		pipeline.CodeBlock([]string{"x := 1"}),
		pipeline.Table([]pipeline.Row{{"h"}, {"v"}}),
	}

	out, err := Build(blocks, DefaultOptions())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	wantInOrder := []string{
		"<!DOCTYPE html>",
		"<style>",
		".p-h1 {",
		"</style>",
		`<p class="p-h1">Title</p>`,
		`<p class="p-h3">Demo</p>`,
		`<p class="p-body">Some <b>bold</b> text</p>`,
		`<p class="p-body">` + pipeline.Bullet + `item</p>`,
		`<div class="spacer" style="height: 10.8pt"></div>`,
		`<div class="p-code">`,
		"x := 1",
		`<table class="grid">`,
		"</body>",
	}

	pos := 0
	for _, want := range wantInOrder {
		idx := strings.Index(out[pos:], want)
		if idx == -1 {
			t.Fatalf("missing %q after position %d\ngot: %s", want, pos, out)
		}
		pos += idx + len(want)
	}
}

func TestBuild_Empty(t *testing.T) {
	t.Parallel()

	out, err := Build(nil, DefaultOptions())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if !strings.Contains(out, "<body>\n</body>") {
		t.Errorf("expected empty body, got: %s", out)
	}
}

func TestBuild_UnknownKind(t *testing.T) {
	t.Parallel()

	_, err := Build([]pipeline.Block{{Kind: pipeline.Kind(99)}}, DefaultOptions())
	if err == nil {
		t.Fatal("expected error for unknown block kind")
	}
	if !strings.Contains(err.Error(), "block 0") {
		t.Errorf("error should name the block index: %v", err)
	}
}

func TestNewDocument_MissingCodeStyle(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.Styles = StyleSheet{StyleBody: DefaultStyleSheet()[StyleBody]}

	_, err := NewDocument(opts)
	if !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("NewDocument error = %v, want ErrUnknownStyle", err)
	}
}

func TestNewDocument_Defaults(t *testing.T) {
	t.Parallel()

	doc, err := NewDocument(Options{})
	if err != nil {
		t.Fatalf("NewDocument error: %v", err)
	}
	if doc.title != "Document" {
		t.Errorf("title = %q, want %q", doc.title, "Document")
	}
	if doc.table != DefaultTableStyle() {
		t.Errorf("table style not defaulted: %+v", doc.table)
	}
	if len(doc.styles) != len(DefaultStyleSheet()) {
		t.Errorf("styles not defaulted: %d", len(doc.styles))
	}
}

func TestDocumentParagraph_UnknownStyle(t *testing.T) {
	t.Parallel()

	doc, err := NewDocument(DefaultOptions())
	if err != nil {
		t.Fatalf("NewDocument error: %v", err)
	}
	if err := doc.Paragraph("x", "Caption"); !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("Paragraph error = %v, want ErrUnknownStyle", err)
	}
}

func TestDocumentHTML_TitleAndCSS(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.Title = "Q&A <draft>"
	opts.CSS = "body { color: red; }</style><script>"

	doc, err := NewDocument(opts)
	if err != nil {
		t.Fatalf("NewDocument error: %v", err)
	}
	out := doc.HTML()

	if !strings.Contains(out, "<title>Q&amp;A &lt;draft&gt;</title>") {
		t.Errorf("title not escaped: %s", out)
	}
	if !strings.Contains(out, `body { color: red; }<\/style><script>`) {
		t.Errorf("user CSS not sanitized: %s", out)
	}
	if strings.Index(out, "table.grid {") > strings.Index(out, "color: red") {
		t.Error("user CSS must come after generated styles")
	}
}

func TestSanitizeCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"body { color: red; }", "body { color: red; }"},
		{"</style>", `<\/style>`},
		{"</a></b>", `<\/a><\/b>`},
	}

	for _, tt := range tests {
		if got := sanitizeCSS(tt.input); got != tt.expected {
			t.Errorf("sanitizeCSS(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
