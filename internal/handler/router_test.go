package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pdf-qr-stamper/internal/config"
)

func newTestRouter(stamper *mockStamper) http.Handler {
	container := &config.Container{
		Config:  &mockConfig{maxFileSize: 1 << 20},
		Logger:  NewMockHandlerLogger(),
		Stamper: stamper,
	}
	return NewRouter(container)
}

func TestNewRouter_Health(t *testing.T) {
	router := newTestRouter(&mockStamper{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestNewRouter_StampRouteWired(t *testing.T) {
	stamper := &mockStamper{out: []byte("%PDF-1.4 stamped")}
	router := newTestRouter(stamper)

	req := newStampRequest(t, "doc.pdf", "application/pdf", []byte("%PDF-1.4"), "https://example.com")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}
	if stamper.gotContent != "https://example.com" {
		t.Fatalf("expected stamper invoked with qr content, got %q", stamper.gotContent)
	}
}

func TestNewRouter_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(&mockStamper{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents/qr", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status %d, got %d", http.StatusMethodNotAllowed, rr.Code)
	}
}
