package mdreport

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-mdreport/internal/render"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// pageDimensions holds portrait width and height in inches.
var pageDimensions = map[string][2]float64{
	PageSizeLetter: {8.5, 11},
	PageSizeA4:     {8.27, 11.69},
	PageSizeLegal:  {8.5, 14},
}

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns US Letter, portrait, half-inch margins.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if _, ok := pageDimensions[strings.ToLower(p.Size)]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	switch strings.ToLower(p.Orientation) {
	case OrientationPortrait, OrientationLandscape:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// resolvePage returns p or the defaults when p is nil.
func resolvePage(p *PageSettings) *PageSettings {
	if p == nil {
		return DefaultPageSettings()
	}
	return p
}

// Dimensions returns paper width and height in inches after orientation.
// Unknown sizes fall back to letter.
func (p *PageSettings) Dimensions() (width, height float64) {
	p = resolvePage(p)
	dims, ok := pageDimensions[strings.ToLower(p.Size)]
	if !ok {
		dims = pageDimensions[PageSizeLetter]
	}
	width, height = dims[0], dims[1]
	if strings.EqualFold(p.Orientation, OrientationLandscape) {
		width, height = height, width
	}
	return width, height
}

// ContentWidth returns the printable width in points.
func (p *PageSettings) ContentWidth() float64 {
	p = resolvePage(p)
	width, _ := p.Dimensions()
	return (width - 2*p.Margin) * pointsPerInch
}

// pointsPerInch converts page inches to points.
const pointsPerInch = 72

// Input contains conversion parameters.
type Input struct {
	Markdown string        // Markdown content (required)
	Title    string        // HTML document title (optional, default "Document")
	CSS      string        // Extra CSS appended after generated styles (optional)
	Page     *PageSettings // Page settings (optional, nil = defaults)
	HTMLOnly bool          // Skip PDF generation, return only blocks and HTML
}

// ConvertResult contains the outputs of a conversion.
type ConvertResult struct {
	Blocks []Block // Layout blocks in document order
	HTML   []byte  // Laid-out HTML (always populated)
	PDF    []byte  // PDF bytes (nil when Input.HTMLOnly is true)
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout time.Duration
	styles  render.StyleSheet
	table   render.TableStyle
	code    render.CodeOptions
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdreport: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithStyleSheet replaces the paragraph styles. The sheet must define
// H1, H2, H3, Body and Code.
func WithStyleSheet(s render.StyleSheet) Option {
	return func(c *Converter) {
		c.cfg.styles = s
	}
}

// WithTableStyle replaces the table directives.
func WithTableStyle(t render.TableStyle) Option {
	return func(c *Converter) {
		c.cfg.table = t
	}
}

// WithHighlight enables content-based syntax highlighting of code blocks.
func WithHighlight(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.code.Highlight = enabled
	}
}

// WithCodeWrap sets the column at which long code lines are hard-wrapped.
// Zero derives it from the page width; negative disables wrapping.
func WithCodeWrap(columns int) Option {
	return func(c *Converter) {
		c.cfg.code.Wrap = columns
	}
}

// WithCodeStyle selects a chroma style for code blocks.
func WithCodeStyle(name string) Option {
	return func(c *Converter) {
		c.cfg.code.Style = name
	}
}
