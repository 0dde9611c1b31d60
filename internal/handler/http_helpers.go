package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	apperrors "pdf-qr-stamper/pkg/errors"
)

// errorResponse is the JSON body for all error replies.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeTypedError(w, statusCode, string(apperrors.ErrorTypeValidation), message)
}

// writeAppError maps an AppError onto its HTTP status and error type.
func writeAppError(w http.ResponseWriter, err error) {
	statusCode := apperrors.GetStatusCode(err)
	errType := string(apperrors.ErrorTypeInternal)
	message := "internal server error"

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		errType = string(appErr.Type)
		message = appErr.Message
	}
	writeTypedError(w, statusCode, errType, message)
}

func writeTypedError(w http.ResponseWriter, statusCode int, errType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: errorBody{Type: errType, Message: message}})
}

// stampedFilename derives the attachment filename from the uploaded
// one, stripping any path components and characters that would break
// the Content-Disposition header.
func stampedFilename(uploaded string) string {
	base := filepath.Base(strings.TrimSpace(uploaded))
	base = strings.Map(func(r rune) rune {
		if r < 0x20 || r == '"' || r == '\\' || r == '/' {
			return -1
		}
		return r
	}, base)
	if base == "" || base == "." || base == ".." {
		base = "document.pdf"
	}
	return "stamped_" + base
}
