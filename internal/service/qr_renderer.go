package service

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"strings"

	"pdf-qr-stamper/internal/domain"
	apperrors "pdf-qr-stamper/pkg/errors"

	"github.com/skip2/go-qrcode"
)

// qrRecoveryLevel is a fixed policy constant. Medium tolerates partial
// occlusion and print degradation without giving up too much capacity.
const qrRecoveryLevel = qrcode.Medium

// QRRenderer renders the QR overlay as a PNG at 1 pixel per point,
// drawn onto a white backing canvas expanded by the backing pad so the
// code keeps contrast against arbitrary page content.
type QRRenderer struct{}

// NewQRRenderer creates a new QR renderer
func NewQRRenderer() *QRRenderer {
	return &QRRenderer{}
}

// Render encodes spec.Content into a square PNG of
// spec.Side + 2*backingPad pixels. Deterministic for a fixed spec.
// Content that exceeds QR capacity at the fixed recovery level is a
// render error, never a truncated code.
func (r *QRRenderer) Render(spec domain.QRSpec) ([]byte, error) {
	if strings.TrimSpace(spec.Content) == "" {
		return nil, apperrors.NewRenderError("qr content must not be empty", domain.ErrEmptyQRContent)
	}

	side := int(math.Round(spec.Side))
	if side < 1 {
		side = 1
	}

	code, err := qrcode.New(spec.Content, qrRecoveryLevel)
	if err != nil {
		if strings.Contains(err.Error(), "content too long") {
			return nil, apperrors.NewRenderError("qr content exceeds the maximum QR capacity", domain.ErrQRContentTooLong)
		}
		return nil, apperrors.NewRenderError("failed to encode qr content", err)
	}
	// The backing canvas replaces the library's quiet-zone border.
	code.DisableBorder = true

	qrImg := code.Image(side)

	pad := int(backingPad)
	canvas := image.NewRGBA(image.Rect(0, 0, side+2*pad, side+2*pad))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(canvas, qrImg.Bounds().Add(image.Pt(pad, pad)), qrImg, qrImg.Bounds().Min, draw.Over)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, apperrors.NewRenderError("failed to encode qr image", err)
	}
	return buf.Bytes(), nil
}
