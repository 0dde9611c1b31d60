package domain

import "errors"

// Domain errors
var (
	ErrEmptyBody        = errors.New("uploaded file is empty")
	ErrUnsupportedType  = errors.New("declared content type is not PDF")
	ErrNotPDF           = errors.New("file content is not a PDF")
	ErrMalformedPDF     = errors.New("PDF structure is invalid")
	ErrNoPages          = errors.New("document has no pages")
	ErrEmptyQRContent   = errors.New("qr content is empty")
	ErrQRContentTooLong = errors.New("qr content exceeds capacity")
)
