package service

import (
	"bytes"
	"fmt"

	"pdf-qr-stamper/internal/domain"
	apperrors "pdf-qr-stamper/pkg/errors"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Compositor merges the rendered QR overlay onto the first page of a
// document using pdfcpu's image watermarking. Later pages pass through
// untouched; the merge is all-or-nothing.
type Compositor struct {
	logger domain.Logger
}

// NewCompositor creates a new compositor instance
func NewCompositor(logger domain.Logger) *Compositor {
	return &Compositor{logger: logger}
}

// FirstPageDims returns the media box dimensions of page one in points.
func (c *Compositor) FirstPageDims(pdfBytes []byte) (domain.Page, error) {
	dims, err := api.PageDims(bytes.NewReader(pdfBytes), relaxedConfiguration())
	if err != nil {
		c.logger.Error("Failed to read page dimensions", err)
		return domain.Page{}, apperrors.NewCompositionError("failed to read page dimensions", err)
	}
	if len(dims) == 0 {
		return domain.Page{}, apperrors.NewValidationError("PDF file is empty", domain.ErrNoPages)
	}
	return domain.Page{Width: dims[0].Width, Height: dims[0].Height}, nil
}

// Merge stamps the overlay PNG onto page one at the placement's backing
// origin. The PNG is rendered at 1 px = 1 pt, so an absolute scale of 1
// maps it onto the page at its intended size.
func (c *Compositor) Merge(pdfBytes []byte, overlayPNG []byte, placement domain.Placement) ([]byte, error) {
	desc := fmt.Sprintf("pos:bl, off:%.2f %.2f, scale:1 abs, rot:0, op:1",
		placement.BackingX(), placement.BackingY())

	wm, err := api.ImageWatermarkForReader(bytes.NewReader(overlayPNG), desc, true, false, types.POINTS)
	if err != nil {
		c.logger.Error("Failed to build qr overlay watermark", err)
		return nil, apperrors.NewCompositionError("failed to prepare qr overlay", err)
	}

	var out bytes.Buffer
	if err := api.AddWatermarks(bytes.NewReader(pdfBytes), &out, []string{"1"}, wm, relaxedConfiguration()); err != nil {
		c.logger.Error("Failed to merge qr overlay onto first page", err)
		return nil, apperrors.NewCompositionError("failed to merge qr overlay onto first page", err)
	}
	return out.Bytes(), nil
}

// relaxedConfiguration accepts slightly off-spec documents instead of
// rejecting them.
func relaxedConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}
