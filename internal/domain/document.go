package domain

// Page holds the dimensions of a single PDF page in points.
// It is a read-only input to the placement computation.
type Page struct {
	Width  float64
	Height float64
}

// Placement describes where the QR square lands on the first page.
// X and Y are the lower-left corner of the QR square in PDF user space
// (origin at the bottom-left of the page). The white backing rectangle
// extends Pad points beyond the square on every side.
type Placement struct {
	X    float64
	Y    float64
	Side float64
	Pad  float64
}

// BackingX returns the lower-left x of the white backing rectangle.
func (p Placement) BackingX() float64 {
	return p.X - p.Pad
}

// BackingY returns the lower-left y of the white backing rectangle.
func (p Placement) BackingY() float64 {
	return p.Y - p.Pad
}

// BackingSide returns the side length of the white backing rectangle.
func (p Placement) BackingSide() float64 {
	return p.Side + 2*p.Pad
}

// QRSpec describes the QR code to render: the caller-supplied content
// and the target side length in points. The error-correction level is
// a fixed policy constant and not caller-configurable.
type QRSpec struct {
	Content string
	Side    float64
}
