package service

import (
	"math"
	"testing"

	"pdf-qr-stamper/internal/domain"
)

const geomTolerance = 1e-9

func TestPlacementFor_USLetterPinsConstants(t *testing.T) {
	calc := NewGeometryCalculator()

	p := calc.PlacementFor(domain.Page{Width: 612, Height: 792})

	// sqrt(612*792)*0.10 ~= 69.6, below the 100pt floor.
	if p.Side != 100 {
		t.Fatalf("expected side 100 on US Letter, got %v", p.Side)
	}
	if p.X != 492 {
		t.Fatalf("expected anchor x 492, got %v", p.X)
	}
	if p.Y != 672 {
		t.Fatalf("expected anchor y 672, got %v", p.Y)
	}
	if p.Pad != 2 {
		t.Fatalf("expected backing pad 2, got %v", p.Pad)
	}
}

func TestPlacementFor_Sizing(t *testing.T) {
	calc := NewGeometryCalculator()

	tests := []struct {
		name     string
		w, h     float64
		wantSide float64
	}{
		{"a4 floors at minimum", 595.28, 841.89, 100},
		{"large page uses area target", 2000, 2000, 200},
		{"wide page hits ceiling", 3000, 500, 100},
		{"square 1000pt page", 1000, 1000, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := calc.PlacementFor(domain.Page{Width: tt.w, Height: tt.h})
			if math.Abs(p.Side-tt.wantSide) > geomTolerance {
				t.Fatalf("expected side %v for %vx%v, got %v", tt.wantSide, tt.w, tt.h, p.Side)
			}
		})
	}
}

func TestPlacementFor_Idempotent(t *testing.T) {
	calc := NewGeometryCalculator()
	page := domain.Page{Width: 612, Height: 792}

	first := calc.PlacementFor(page)
	second := calc.PlacementFor(page)

	if first != second {
		t.Fatalf("expected identical placements, got %+v and %+v", first, second)
	}
}

func TestPlacementFor_Invariants(t *testing.T) {
	calc := NewGeometryCalculator()

	dims := []float64{30, 80, 150, 300, 500, 612, 792, 841.89, 1200, 2500}
	for _, w := range dims {
		for _, h := range dims {
			p := calc.PlacementFor(domain.Page{Width: w, Height: h})
			minDim := math.Min(w, h)

			if p.Side <= 0 {
				t.Fatalf("page %vx%v: side must be positive, got %v", w, h, p.Side)
			}
			// Anchor plus side never crosses the edge margin, modulo
			// the clamped degradation on tiny pages.
			if p.X+p.Side > w-edgeMargin+geomTolerance && p.X > backingPad+geomTolerance {
				t.Fatalf("page %vx%v: x+side %v exceeds %v", w, h, p.X+p.Side, w-edgeMargin)
			}
			if p.Y+p.Side > h-edgeMargin+geomTolerance && p.Y > backingPad+geomTolerance {
				t.Fatalf("page %vx%v: y+side %v exceeds %v", w, h, p.Y+p.Side, h-edgeMargin)
			}
			// The backing rectangle stays inside the page bounds.
			if p.BackingX() < -geomTolerance || p.BackingY() < -geomTolerance {
				t.Fatalf("page %vx%v: backing origin (%v, %v) outside page", w, h, p.BackingX(), p.BackingY())
			}
			if p.BackingX()+p.BackingSide() > w+geomTolerance || p.BackingY()+p.BackingSide() > h+geomTolerance {
				t.Fatalf("page %vx%v: backing rectangle leaves page bounds", w, h)
			}

			// Normal pages honor both clamp bounds; pages whose 20%
			// ceiling is below the floor are the documented degraded
			// case and only need to fit.
			if minDim*maxSideFrac >= minQRSide {
				if p.Side < minQRSide-geomTolerance || p.Side > minDim*maxSideFrac+geomTolerance {
					t.Fatalf("page %vx%v: side %v outside [%v, %v]", w, h, p.Side, minQRSide, minDim*maxSideFrac)
				}
			}
		}
	}
}

func TestPlacementFor_TinyPageDegradesButFits(t *testing.T) {
	calc := NewGeometryCalculator()

	p := calc.PlacementFor(domain.Page{Width: 80, Height: 80})

	if p.Side != 80-edgeMargin-backingPad {
		t.Fatalf("expected side shrunk to %v, got %v", 80-edgeMargin-backingPad, p.Side)
	}
	if p.BackingX() < 0 || p.BackingY() < 0 {
		t.Fatalf("backing rectangle outside tiny page: (%v, %v)", p.BackingX(), p.BackingY())
	}
}
