package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	mdreport "github.com/alnah/go-mdreport"
)

func TestBlockSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		block mdreport.Block
		want  string
	}{
		{"heading", mdreport.Block{Kind: mdreport.KindHeading, Level: 2, Text: "Scope"}, "H2 Scope"},
		{"paragraph", mdreport.Block{Kind: mdreport.KindParagraph, Text: "<b>hi</b>"}, "<b>hi</b>"},
		{"list item", mdreport.Block{Kind: mdreport.KindListItem, Text: mdreport.Bullet + "one"}, mdreport.Bullet + "one"},
		{"code", mdreport.Block{Kind: mdreport.KindCodeBlock, Lines: []string{"x := 1", "y := 2"}}, "2 lines: x := 1"},
		{"empty code", mdreport.Block{Kind: mdreport.KindCodeBlock}, "0 lines"},
		{"table", mdreport.Block{Kind: mdreport.KindTable, Rows: []mdreport.Row{{"A", "B"}, {"1", "2"}}}, "2x2: A | B"},
		{"spacer", mdreport.Block{Kind: mdreport.KindSpacer}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := blockSummary(tt.block); got != tt.want {
				t.Errorf("blockSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteBlockList(t *testing.T) {
	t.Parallel()

	blocks := mdreport.ToBlocks("# Title\n\nSome text")
	var buf bytes.Buffer
	writeBlockList(&buf, blocks, 80)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != len(blocks) {
		t.Fatalf("got %d lines for %d blocks:\n%s", len(lines), len(blocks), buf.String())
	}
	if !strings.Contains(lines[0], "heading") || !strings.Contains(lines[0], "H1 Title") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if strings.TrimSpace(lines[1]) != "1  spacer" {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestWriteBlockList_Truncates(t *testing.T) {
	t.Parallel()

	blocks := []mdreport.Block{{Kind: mdreport.KindParagraph, Text: strings.Repeat("表", 100)}}
	var buf bytes.Buffer
	writeBlockList(&buf, blocks, 40)

	line := strings.TrimSuffix(buf.String(), "\n")
	if w := runewidth.StringWidth(line); w > 40 {
		t.Errorf("line width = %d, want <= 40", w)
	}
	if !strings.HasSuffix(line, "…") {
		t.Errorf("line should end with ellipsis: %q", line)
	}
}

func TestPrintBlockListings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "# A")
	writeFile(t, filepath.Join(dir, "b.md"), "- item")
	files := []FileToConvert{
		{InputPath: filepath.Join(dir, "a.md")},
		{InputPath: filepath.Join(dir, "b.md")},
	}

	env := newTestEnv(t, nil)
	if err := printBlockListings(files, env.Environment); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := env.stdout.String()
	for _, want := range []string{"== " + files[0].InputPath + " ==", "H1 A", "list-item", mdreport.Bullet + "item"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
