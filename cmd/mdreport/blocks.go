package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"

	mdreport "github.com/alnah/go-mdreport"
)

// blockPrefixWidth is the width of the "index  kind  " columns.
const blockPrefixWidth = 16

// printBlockListings writes the block list of every file to stdout.
// A header line separates files when there is more than one.
func printBlockListings(files []FileToConvert, env *Environment) error {
	width := env.TermWidth()
	for i, f := range files {
		content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		}
		if len(files) > 1 {
			if i > 0 {
				fmt.Fprintln(env.Stdout)
			}
			fmt.Fprintf(env.Stdout, "== %s ==\n", f.InputPath)
		}
		writeBlockList(env.Stdout, mdreport.ToBlocks(string(content)), width)
	}
	return nil
}

// writeBlockList prints one line per block, truncated to width columns.
func writeBlockList(w io.Writer, blocks []mdreport.Block, width int) {
	room := max(width-blockPrefixWidth, 10)
	for i, b := range blocks {
		line := fmt.Sprintf("%3d  %-9s  %s", i, b.Kind, runewidth.Truncate(blockSummary(b), room, "…"))
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

// blockSummary describes the content of a block on a single line.
func blockSummary(b mdreport.Block) string {
	switch b.Kind {
	case mdreport.KindHeading:
		return fmt.Sprintf("H%d %s", b.Level, b.Text)
	case mdreport.KindParagraph, mdreport.KindListItem:
		return b.Text
	case mdreport.KindCodeBlock:
		if len(b.Lines) == 0 {
			return "0 lines"
		}
		return fmt.Sprintf("%d lines: %s", len(b.Lines), b.Lines[0])
	case mdreport.KindTable:
		cols := 0
		if len(b.Rows) > 0 {
			cols = len(b.Rows[0])
		}
		header := ""
		if len(b.Rows) > 0 {
			header = strings.Join(b.Rows[0], " | ")
		}
		return fmt.Sprintf("%dx%d: %s", len(b.Rows), cols, header)
	default:
		return ""
	}
}
