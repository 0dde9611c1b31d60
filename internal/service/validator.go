package service

import (
	"bytes"
	"mime"
	"strings"

	"pdf-qr-stamper/internal/domain"
	apperrors "pdf-qr-stamper/pkg/errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// acceptedMIMETypes are the declared content types accepted for uploads.
var acceptedMIMETypes = map[string]bool{
	"application/pdf":   true,
	"application/x-pdf": true,
}

// PDFValidator rejects malformed uploads before any processing work
type PDFValidator struct {
	logger domain.Logger
}

// NewPDFValidator creates a new validator instance
func NewPDFValidator(logger domain.Logger) *PDFValidator {
	return &PDFValidator{logger: logger}
}

// Validate confirms that the declared content type matches an accepted
// PDF MIME signature, that the sniffed content really is a PDF, and
// that the byte stream parses as a structurally valid document with at
// least one page. Each rejection is logged once with its reason.
func (v *PDFValidator) Validate(pdfBytes []byte, declaredMIME string) error {
	if len(pdfBytes) == 0 {
		v.logger.Warn("Upload rejected: empty body")
		return apperrors.NewValidationError("uploaded file is empty", domain.ErrEmptyBody)
	}

	mediaType := strings.ToLower(strings.TrimSpace(declaredMIME))
	if parsed, _, err := mime.ParseMediaType(declaredMIME); err == nil {
		mediaType = parsed
	}
	if !acceptedMIMETypes[mediaType] {
		v.logger.Warn("Upload rejected: declared content type is not PDF", "content_type", declaredMIME)
		return apperrors.NewValidationError("uploaded file must be a PDF", domain.ErrUnsupportedType)
	}

	if detected := mimetype.Detect(pdfBytes); !detected.Is("application/pdf") {
		v.logger.Warn("Upload rejected: content does not look like a PDF", "detected", detected.String())
		return apperrors.NewValidationError("uploaded file is not a valid PDF", domain.ErrNotPDF)
	}

	conf := relaxedConfiguration()
	if err := api.Validate(bytes.NewReader(pdfBytes), conf); err != nil {
		v.logger.Warn("Upload rejected: PDF failed structural validation", "reason", err.Error())
		return apperrors.NewValidationError("invalid or corrupted PDF file", domain.ErrMalformedPDF)
	}

	pageCount, err := api.PageCount(bytes.NewReader(pdfBytes), conf)
	if err != nil {
		v.logger.Warn("Upload rejected: could not determine page count", "reason", err.Error())
		return apperrors.NewValidationError("invalid or corrupted PDF file", domain.ErrMalformedPDF)
	}
	if pageCount == 0 {
		v.logger.Warn("Upload rejected: PDF has no pages")
		return apperrors.NewValidationError("PDF file is empty", domain.ErrNoPages)
	}

	return nil
}
