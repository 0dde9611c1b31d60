package domain

// Stamper is the single inbound operation the HTTP layer depends on:
// validate the upload, then return the document with a QR code stamped
// onto its first page. All-or-nothing; no partial output.
type Stamper interface {
	Compose(pdfBytes []byte, declaredMIME string, qrContent string) ([]byte, error)
}

// PDFValidator checks an upload before any further work is done
type PDFValidator interface {
	Validate(pdfBytes []byte, declaredMIME string) error
}

// QRRenderer produces the QR overlay image (PNG) for a spec
type QRRenderer interface {
	Render(spec QRSpec) ([]byte, error)
}

// Compositor reads page geometry and merges the overlay onto page one
type Compositor interface {
	FirstPageDims(pdfBytes []byte) (Page, error)
	Merge(pdfBytes []byte, overlayPNG []byte, placement Placement) ([]byte, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetCORSOrigins() []string
}
