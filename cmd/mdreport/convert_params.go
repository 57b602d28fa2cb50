package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mdreport "github.com/alnah/go-mdreport"
	"github.com/alnah/go-mdreport/internal/config"
)

// conversionParams holds the per-run settings shared by every file.
type conversionParams struct {
	page       *mdreport.PageSettings
	title      string
	css        string
	htmlOnly   bool
	htmlOutput bool
}

// documentTitle returns the configured title, or the input file name
// without extension.
func (p *conversionParams) documentTitle(inputPath string) string {
	if p.title != "" {
		return p.title
	}
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// mergeFlags overlays explicitly set CLI flags onto cfg. Flags win.
func mergeFlags(f *cliFlags, cfg *config.Config) {
	if f.workers != 0 {
		cfg.Workers = f.workers
	}
	if f.timeout != "" {
		cfg.Timeout = f.timeout
	}
	if f.page.size != "" {
		cfg.Page.Size = f.page.size
	}
	if f.page.orientation != "" {
		cfg.Page.Orientation = f.page.orientation
	}
	if f.page.margin != 0 {
		cfg.Page.Margin = f.page.margin
	}
	if f.code.highlightSet {
		cfg.Code.Highlight = f.code.highlight
	}
	if f.code.wrapSet {
		cfg.Code.Wrap = f.code.wrap
	}
	if f.code.style != "" {
		cfg.Code.Style = f.code.style
	}
	if f.document.title != "" {
		cfg.Document.Title = f.document.title
	}
	if f.document.css != "" {
		cfg.Document.CSS = f.document.css
	}
}

// buildPageSettings overlays non-zero config values onto the default page.
func buildPageSettings(cfg *config.Config) (*mdreport.PageSettings, error) {
	page := mdreport.DefaultPageSettings()
	if cfg.Page.Size != "" {
		page.Size = cfg.Page.Size
	}
	if cfg.Page.Orientation != "" {
		page.Orientation = cfg.Page.Orientation
	}
	if cfg.Page.Margin != 0 {
		page.Margin = cfg.Page.Margin
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return page, nil
}

// buildConverterOptions maps config values onto converter options.
func buildConverterOptions(cfg *config.Config) ([]mdreport.Option, error) {
	var opts []mdreport.Option

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		opts = append(opts, mdreport.WithTimeout(timeout))
	}

	opts = append(opts,
		mdreport.WithHighlight(cfg.Code.Highlight),
		mdreport.WithCodeWrap(cfg.Code.Wrap),
	)
	if cfg.Code.Style != "" {
		opts = append(opts, mdreport.WithCodeStyle(cfg.Code.Style))
	}

	return opts, nil
}

// readCSS loads the extra stylesheet, if any.
func readCSS(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	return string(data), nil
}

// buildParams assembles the conversion parameters from the merged config.
func buildParams(cfg *config.Config, out outputFlags) (*conversionParams, error) {
	page, err := buildPageSettings(cfg)
	if err != nil {
		return nil, err
	}
	css, err := readCSS(cfg.Document.CSS)
	if err != nil {
		return nil, err
	}
	return &conversionParams{
		page:       page,
		title:      cfg.Document.Title,
		css:        css,
		htmlOnly:   out.htmlOnly,
		htmlOutput: out.html,
	}, nil
}
