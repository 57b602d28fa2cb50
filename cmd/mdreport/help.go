package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdreport [flags] <input> [output]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to paginated PDF reports.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input     Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w, "  output    Output .pdf file or directory (default: next to each source)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Code blocks:")
	fmt.Fprintln(w, "      --highlight           Syntax-highlight code blocks")
	fmt.Fprintln(w, "      --code-wrap <n>       Wrap at N columns (0 = fit page, -1 = off)")
	fmt.Fprintln(w, "      --code-style <s>      Highlighting style (default: bw)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           HTML title (default: file name)")
	fmt.Fprintln(w, "      --css <path>          Extra CSS appended after generated styles")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --html                Write HTML alongside PDF")
	fmt.Fprintln(w, "      --html-only           Write HTML only, skip PDF")
	fmt.Fprintln(w, "      --blocks              Print layout blocks, write nothing")
	fmt.Fprintln(w, "      --print-config        Print the effective config as YAML")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tools:")
	fmt.Fprintln(w, "      --doctor              Check Chrome and the environment")
	fmt.Fprintln(w, "      --json                Print --doctor results as JSON")
	fmt.Fprintln(w, "      --completion <shell>  Print completion script: bash, zsh, fish")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0  success    1  general error    2  usage or config")
	fmt.Fprintln(w, "  3  file I/O   4  browser")
}
