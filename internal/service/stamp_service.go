// Package service implements the QR stamping pipeline: validate the
// upload, compute placement geometry from the first page, render the
// QR overlay, and merge it onto page one.
package service

import (
	"strings"

	"pdf-qr-stamper/internal/domain"
	apperrors "pdf-qr-stamper/pkg/errors"
)

// StampService chains the processing pipeline behind domain.Stamper.
// Strictly linear per request; no state is shared between requests.
type StampService struct {
	validator  domain.PDFValidator
	geometry   *GeometryCalculator
	renderer   domain.QRRenderer
	compositor domain.Compositor
	logger     domain.Logger
}

// NewStampService creates a new stamping pipeline instance
func NewStampService(
	validator domain.PDFValidator,
	renderer domain.QRRenderer,
	compositor domain.Compositor,
	logger domain.Logger,
) *StampService {
	return &StampService{
		validator:  validator,
		geometry:   NewGeometryCalculator(),
		renderer:   renderer,
		compositor: compositor,
		logger:     logger,
	}
}

// Compose validates pdfBytes against declaredMIME, then returns a new
// document whose first page carries a QR code encoding qrContent in the
// top-right corner. Pages after the first are untouched.
func (s *StampService) Compose(pdfBytes []byte, declaredMIME string, qrContent string) ([]byte, error) {
	if strings.TrimSpace(qrContent) == "" {
		return nil, apperrors.NewValidationError("qr_content must not be empty", domain.ErrEmptyQRContent)
	}

	if err := s.validator.Validate(pdfBytes, declaredMIME); err != nil {
		return nil, err
	}

	page, err := s.compositor.FirstPageDims(pdfBytes)
	if err != nil {
		return nil, err
	}

	placement := s.geometry.PlacementFor(page)

	overlay, err := s.renderer.Render(domain.QRSpec{Content: qrContent, Side: placement.Side})
	if err != nil {
		return nil, err
	}

	out, err := s.compositor.Merge(pdfBytes, overlay, placement)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Stamped qr onto first page",
		"page_width", page.Width,
		"page_height", page.Height,
		"qr_side", placement.Side,
		"bytes_in", len(pdfBytes),
		"bytes_out", len(out),
	)
	return out, nil
}
