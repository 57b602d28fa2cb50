package mdreport

import "errors"

// Sentinel errors for library operations.
var (
	ErrHTMLBuild      = errors.New("HTML layout failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrWritePDF       = errors.New("failed to write PDF file")

	// ErrInvalidStyleSheet is returned when a style sheet lacks a required style.
	ErrInvalidStyleSheet = errors.New("invalid style sheet")

	// ErrInvalidCodeStyle is returned for a code style chroma does not know.
	ErrInvalidCodeStyle = errors.New("unknown code style")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")
)
