package svg2pdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptySVG       = errors.New("svg content cannot be empty")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Merge errors.
	ErrNoPages = errors.New("no pages to merge")
	ErrMerge   = errors.New("PDF merge failed")
)
