package svg2pdf

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// configOnce guards the one-time pdfcpu setup.
var configOnce sync.Once

// mergeConfiguration returns a pdfcpu configuration for in-memory merging.
// The config dir is disabled so pdfcpu never touches the user's home
// directory (relevant for containers and CI).
func mergeConfiguration() *model.Configuration {
	configOnce.Do(api.DisableConfigDir)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// MergeOrdered concatenates single-page PDF buffers into one document,
// preserving the order of the pages slice, and writes the result to w.
// Ordering by page number is the caller's responsibility.
func MergeOrdered(pages [][]byte, w io.Writer) error {
	if len(pages) == 0 {
		return ErrNoPages
	}

	readers := make([]io.ReadSeeker, len(pages))
	for i, page := range pages {
		readers[i] = bytes.NewReader(page)
	}

	if err := api.MergeRaw(readers, w, false, mergeConfiguration()); err != nil {
		return fmt.Errorf("%w: %v", ErrMerge, err)
	}
	return nil
}

// PageCount returns the number of pages in a PDF buffer.
func PageCount(pdf []byte) (int, error) {
	count, err := api.PageCount(bytes.NewReader(pdf), mergeConfiguration())
	if err != nil {
		return 0, fmt.Errorf("counting pages: %w", err)
	}
	return count, nil
}
