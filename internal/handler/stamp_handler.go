// Package handler provides HTTP handlers for the API.
package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"pdf-qr-stamper/internal/domain"
)

// multipartMemoryLimit caps how much of the form is held in memory
// before spilling to disk; the request body itself is bounded by
// MaxBytesReader.
const multipartMemoryLimit = 32 << 20

// StampHandler handles the QR stamping endpoint
type StampHandler struct {
	stamper domain.Stamper
	config  domain.Config
	logger  domain.Logger
}

// NewStampHandler creates a new stamp handler
func NewStampHandler(stamper domain.Stamper, config domain.Config, logger domain.Logger) *StampHandler {
	return &StampHandler{
		stamper: stamper,
		config:  config,
		logger:  logger,
	}
}

// StampQR accepts a multipart PDF upload plus qr_content and responds
// with the stamped document as a PDF attachment. qr_content may arrive
// as a query parameter or a form field; the query parameter wins.
func (h *StampHandler) StampQR(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.config.GetMaxFileSize())

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "uploaded file is too large")
			return
		}
		writeError(w, http.StatusBadRequest, "request must be a multipart form with a \"file\" part")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file part \"file\"")
		return
	}
	defer file.Close()

	qrContent := r.URL.Query().Get("qr_content")
	if qrContent == "" {
		qrContent = r.FormValue("qr_content")
	}
	if qrContent == "" {
		writeError(w, http.StatusBadRequest, "qr_content is required")
		return
	}

	h.logger.Info("Processing file", "filename", header.Filename, "size", header.Size)

	pdfBytes, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read uploaded file", err, "filename", header.Filename)
		writeTypedError(w, http.StatusInternalServerError, "internal", "failed to read uploaded file")
		return
	}

	out, err := h.stamper.Compose(pdfBytes, header.Header.Get("Content-Type"), qrContent)
	if err != nil {
		writeAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", stampedFilename(header.Filename)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out); err != nil {
		h.logger.Error("Failed to write response", err, "filename", header.Filename)
	}
}
