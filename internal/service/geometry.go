package service

import (
	"math"

	"pdf-qr-stamper/internal/domain"
)

// Placement constants, in points. scaleFactor is tuned so letter/A4
// pages land at the 100pt floor; tests pin these values.
const (
	scaleFactor = 0.10 // side target = sqrt(page area) * scaleFactor
	minQRSide   = 100.0
	maxSideFrac = 0.20 // ceiling = 20% of the smaller page dimension
	edgeMargin  = 20.0
	backingPad  = 2.0
)

// GeometryCalculator computes where the QR square lands on a page.
// Pure and deterministic: identical dimensions yield identical output.
type GeometryCalculator struct{}

// NewGeometryCalculator creates a new geometry calculator
func NewGeometryCalculator() *GeometryCalculator {
	return &GeometryCalculator{}
}

// PlacementFor returns the QR placement for a page, anchored to the
// top-right corner inset by edgeMargin. Pages too small for the 100pt
// minimum get a shrunk-to-fit square rather than an error; the code may
// be harder to scan but the backing rectangle stays inside the page.
func (g *GeometryCalculator) PlacementFor(page domain.Page) domain.Placement {
	w, h := page.Width, page.Height
	minDim := math.Min(w, h)

	target := math.Sqrt(w*h) * scaleFactor
	ceiling := minDim * maxSideFrac
	side := math.Max(minQRSide, math.Min(target, ceiling))

	// Small-page degradation: shrink until the backing pad fits.
	if fit := minDim - edgeMargin - backingPad; side > fit {
		side = math.Max(fit, 1)
	}

	x := w - edgeMargin - side
	y := h - edgeMargin - side
	if x < backingPad {
		x = backingPad
	}
	if y < backingPad {
		y = backingPad
	}

	return domain.Placement{X: x, Y: y, Side: side, Pad: backingPad}
}
