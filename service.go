package svg2pdf

import (
	"context"
	"fmt"
)

// Service renders single SVG documents to single-page PDFs.
type Service struct {
	cfg          serviceConfig
	wrapper      svgWrapper
	pdfConverter pdfConverter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:     serviceConfig{timeout: defaultTimeout},
		wrapper: &shellWrapper{},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if s.pdfConverter == nil {
		s.pdfConverter = newRodConverter(s.cfg.timeout)
	}

	return s
}

// Convert renders one SVG buffer to one single-page PDF.
// The context is used for cancellation and timeout.
func (s *Service) Convert(ctx context.Context, input Input) ([]byte, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	htmlContent := s.wrapper.Wrap(ctx, input.SVG)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	pdfBytes, err := s.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{Page: input.Page})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	return pdfBytes, nil
}

// validateInput checks conversion parameters before rendering.
func (s *Service) validateInput(input Input) error {
	if len(input.SVG) == 0 {
		return ErrEmptySVG
	}
	if err := input.Page.Validate(); err != nil {
		return err
	}
	return nil
}

// Close releases browser resources.
func (s *Service) Close() error {
	if s.pdfConverter != nil {
		return s.pdfConverter.Close()
	}
	return nil
}
