package mdreport

import (
	"context"
	"fmt"
	"os"

	"github.com/alnah/go-mdreport/internal/pipeline"
	"github.com/alnah/go-mdreport/internal/render"
)

// Compile-time interface implementation checks.
var (
	_ pdfConverter = (*rodConverter)(nil)
	_ pdfRenderer  = (*rodRenderer)(nil)
)

// requiredStyles must be present in every style sheet.
var requiredStyles = [...]string{
	render.StyleH1,
	render.StyleH2,
	render.StyleH3,
	render.StyleBody,
	render.StyleCode,
}

// Converter turns Markdown into laid-out HTML and PDF.
// Create with NewConverter(), use Convert() or RenderToFile(), and Close() when done.
// A Converter owns one browser and is not safe for concurrent use; use
// ConverterPool for parallel work.
type Converter struct {
	cfg          converterConfig
	pdfConverter pdfConverter
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithHighlight).
// Returns an error if the configured style sheet is incomplete, the table
// cell style is missing from it, or the code style is unknown.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			timeout: defaultTimeout,
			styles:  render.DefaultStyleSheet(),
			table:   render.DefaultTableStyle(),
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	for _, name := range requiredStyles {
		if _, err := c.cfg.styles.Get(name); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidStyleSheet, err)
		}
	}
	if _, err := c.cfg.styles.Get(c.cfg.table.CellStyle); err != nil {
		return nil, fmt.Errorf("%w: table cell style: %v", ErrInvalidStyleSheet, err)
	}
	if !render.IsCodeStyle(c.cfg.code.Style) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCodeStyle, c.cfg.code.Style)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

// Convert runs the full pipeline and returns blocks, HTML and PDF.
// The context is used for cancellation and timeout.
// If input.HTMLOnly is true, PDF generation is skipped.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	blocks := pipeline.ToBlocks(input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	page := resolvePage(input.Page)
	htmlContent, err := render.Build(blocks, c.renderOptions(input, page))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLBuild, err)
	}

	res := &ConvertResult{
		Blocks: blocks,
		HTML:   []byte(htmlContent),
	}

	if input.HTMLOnly {
		return res, nil
	}

	pdfBytes, err := c.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{Page: page})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	res.PDF = pdfBytes
	return res, nil
}

// RenderToFile converts markdown with default page settings and writes the
// PDF to path, replacing any existing file.
func (c *Converter) RenderToFile(ctx context.Context, markdown, path string) error {
	result, err := c.Convert(ctx, Input{Markdown: markdown})
	if err != nil {
		return err
	}
	return writePDF(path, result.PDF)
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// RenderToFile is a one-shot convenience that creates a Converter, writes
// the PDF for markdown to path, and releases the browser.
func RenderToFile(ctx context.Context, markdown, path string, opts ...Option) (err error) {
	conv, err := NewConverter(opts...)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := conv.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return conv.RenderToFile(ctx, markdown, path)
}

// renderOptions maps converter settings and page geometry to layout options.
func (c *Converter) renderOptions(input Input, page *PageSettings) render.Options {
	return render.Options{
		Title:        input.Title,
		Styles:       c.cfg.styles,
		Table:        c.cfg.table,
		Code:         c.cfg.code,
		ContentWidth: page.ContentWidth(),
		CSS:          input.CSS,
	}
}

// validateInput checks the page settings. Empty Markdown is valid and
// renders a blank page.
//
// Library users who build Input manually and CLI users (whose config was
// already validated) both pass through here.
func validateInput(input Input) error {
	return input.Page.Validate()
}

// writePDF writes PDF bytes with 0644 permissions.
func writePDF(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 -- PDFs are meant to be shared
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	return nil
}
