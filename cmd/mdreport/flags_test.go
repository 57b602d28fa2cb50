package main

import (
	"testing"
)

func TestParseFlags_Defaults(t *testing.T) {
	t.Parallel()

	f, args, err := parseFlags([]string{"doc.md"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(args) != 1 || args[0] != "doc.md" {
		t.Errorf("args = %v, want [doc.md]", args)
	}
	if f.workers != 0 || f.timeout != "" || f.common.config != "" {
		t.Errorf("unexpected non-zero defaults: %+v", f)
	}
	if f.code.highlightSet || f.code.wrapSet {
		t.Error("highlight/wrap should not be marked as set")
	}
}

func TestParseFlags_Values(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, f *cliFlags)
	}{
		{
			name: "shorthands",
			args: []string{"-c", "work", "-q", "-v", "-w", "3", "-t", "45s", "-p", "a4"},
			check: func(t *testing.T, f *cliFlags) {
				if f.common.config != "work" || !f.common.quiet || !f.common.verbose {
					t.Errorf("common = %+v", f.common)
				}
				if f.workers != 3 || f.timeout != "45s" || f.page.size != "a4" {
					t.Errorf("workers=%d timeout=%q size=%q", f.workers, f.timeout, f.page.size)
				}
			},
		},
		{
			name: "page flags",
			args: []string{"--orientation", "landscape", "--margin", "1.25"},
			check: func(t *testing.T, f *cliFlags) {
				if f.page.orientation != "landscape" || f.page.margin != 1.25 {
					t.Errorf("page = %+v", f.page)
				}
			},
		},
		{
			name: "explicit false highlight is recorded",
			args: []string{"--highlight=false", "--code-wrap", "0"},
			check: func(t *testing.T, f *cliFlags) {
				if !f.code.highlightSet || f.code.highlight {
					t.Errorf("highlight = %v set = %v", f.code.highlight, f.code.highlightSet)
				}
				if !f.code.wrapSet || f.code.wrap != 0 {
					t.Errorf("wrap = %d set = %v", f.code.wrap, f.code.wrapSet)
				}
			},
		},
		{
			name: "document and output flags",
			args: []string{"--title", "Q3", "--css", "extra.css", "--html", "--blocks", "--print-config"},
			check: func(t *testing.T, f *cliFlags) {
				if f.document.title != "Q3" || f.document.css != "extra.css" {
					t.Errorf("document = %+v", f.document)
				}
				if !f.outputMode.html || !f.outputMode.blocks || !f.outputMode.printConfig {
					t.Errorf("output = %+v", f.outputMode)
				}
			},
		},
		{
			name: "help and version",
			args: []string{"-h", "--version"},
			check: func(t *testing.T, f *cliFlags) {
				if !f.common.help || !f.common.version {
					t.Errorf("common = %+v", f.common)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, _, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, f)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--nope"}},
		{"bad int", []string{"-w", "many"}},
		{"bad float", []string{"--margin", "wide"}},
		{"missing value", []string{"--page-size"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, _, err := parseFlags(tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}
