package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags that shape CLI behavior rather than output.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	version bool
	help    bool
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// codeFlags holds fenced code block flags.
type codeFlags struct {
	highlight    bool
	highlightSet bool // --highlight given explicitly (false is meaningful)
	wrap         int
	wrapSet      bool // --code-wrap given explicitly (0 is meaningful)
	style        string
}

// documentFlags holds document-level HTML flags.
type documentFlags struct {
	title string
	css   string
}

// outputFlags holds output mode flags.
type outputFlags struct {
	html        bool // Write HTML alongside PDF
	htmlOnly    bool // Write HTML only, skip PDF
	blocks      bool // Print the block list, write nothing
	printConfig bool // Print the effective config, write nothing
}

// toolFlags holds flags that run a helper instead of converting.
type toolFlags struct {
	doctor     bool
	json       bool
	completion string
}

// cliFlags holds every flag accepted by mdreport.
type cliFlags struct {
	common     commonFlags
	workers    int
	timeout    string
	page       pageFlags
	code       codeFlags
	document   documentFlags
	outputMode outputFlags
	tools      toolFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
	fs.BoolVar(&f.version, "version", false, "show version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show help and exit")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

// addCodeFlags adds code block flags to a FlagSet.
func addCodeFlags(fs *flag.FlagSet, f *codeFlags) {
	fs.BoolVar(&f.highlight, "highlight", false, "syntax-highlight code blocks")
	fs.IntVar(&f.wrap, "code-wrap", 0, "wrap code at N columns (0 = fit page, -1 = off)")
	fs.StringVar(&f.style, "code-style", "", "code highlighting style")
}

// addDocumentFlags adds document flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "HTML document title (default: file name)")
	fs.StringVar(&f.css, "css", "", "extra CSS file appended after generated styles")
}

// addOutputFlags adds output mode flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.html, "html", false, "write HTML alongside PDF")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write HTML only, skip PDF")
	fs.BoolVar(&f.blocks, "blocks", false, "print layout blocks instead of rendering")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective config as YAML")
}

// addToolFlags adds helper flags to a FlagSet.
func addToolFlags(fs *flag.FlagSet, f *toolFlags) {
	fs.BoolVar(&f.doctor, "doctor", false, "check Chrome and the environment, then exit")
	fs.BoolVar(&f.json, "json", false, "print --doctor results as JSON")
	fs.StringVar(&f.completion, "completion", "", "print a shell completion script: bash, zsh, fish")
}

// newFlagSet builds the FlagSet bound to f.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("mdreport", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false

	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")

	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	addCodeFlags(fs, &f.code)
	addDocumentFlags(fs, &f.document)
	addOutputFlags(fs, &f.outputMode)
	addToolFlags(fs, &f.tools)

	return fs
}

// parseFlags parses command-line arguments (without the program name) and
// returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}
	fs := newFlagSet(f)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.code.highlightSet = fs.Changed("highlight")
	f.code.wrapSet = fs.Changed("code-wrap")

	return f, fs.Args(), nil
}
