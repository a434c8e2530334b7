package main

import (
	"errors"
	"os"

	svg2pdf "github.com/alnah/go-svg2pdf"
	"github.com/alnah/go-svg2pdf/internal/config"
	"github.com/alnah/go-svg2pdf/internal/pagekey"
	"github.com/alnah/go-svg2pdf/internal/source"
)

// Exit codes for the svg2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, bad input type
	ExitRender  = 4 // Browser/Chrome rendering errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Rendering errors (exit 4)
	if errors.Is(err, svg2pdf.ErrBrowserConnect) ||
		errors.Is(err, svg2pdf.ErrPageCreate) ||
		errors.Is(err, svg2pdf.ErrPageLoad) ||
		errors.Is(err, svg2pdf.ErrPDFGeneration) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrWritePDF) ||
		errors.Is(err, source.ErrUnsupportedInput) ||
		errors.Is(err, source.ErrNoSVGFiles) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, pagekey.ErrInvalidPattern) ||
		errors.Is(err, svg2pdf.ErrEmptySVG) ||
		errors.Is(err, svg2pdf.ErrInvalidPageSize) ||
		errors.Is(err, svg2pdf.ErrInvalidOrientation) ||
		errors.Is(err, svg2pdf.ErrInvalidMargin) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidTimeout) {
		return ExitUsage
	}

	return ExitGeneral
}
