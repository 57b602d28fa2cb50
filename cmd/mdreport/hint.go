package main

import (
	"context"
	"errors"

	mdreport "github.com/alnah/go-mdreport"
	"github.com/alnah/go-mdreport/internal/config"
	"github.com/alnah/go-mdreport/internal/hints"
)

// configAppDir matches the per-user config directory searched by config.LoadConfig.
const configAppDir = "go-mdreport"

// errorHint returns an actionable hint for err, or "".
func errorHint(err error) string {
	switch {
	case errors.Is(err, mdreport.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(configAppDir)
	case errors.Is(err, mdreport.ErrWritePDF), errors.Is(err, ErrWriteHTML):
		return hints.ForOutputDirectory()
	case errors.Is(err, mdreport.ErrInvalidPageSize),
		errors.Is(err, mdreport.ErrInvalidOrientation),
		errors.Is(err, mdreport.ErrInvalidMargin):
		return hints.ForPageSettings(
			[]string{mdreport.PageSizeLetter, mdreport.PageSizeA4, mdreport.PageSizeLegal},
			mdreport.MinMargin, mdreport.MaxMargin)
	case errors.Is(err, ErrInvalidExtension), errors.Is(err, ErrNoMarkdownFiles):
		return hints.ForMarkdownExtension()
	}
	return ""
}
