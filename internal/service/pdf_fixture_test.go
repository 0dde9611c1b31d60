package service

import (
	"bytes"
	"fmt"
)

// Mock logger used by service package tests.
type mockLogger struct{}

func (l *mockLogger) Info(msg string, fields ...interface{})             {}
func (l *mockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *mockLogger) Debug(msg string, fields ...interface{})            {}
func (l *mockLogger) Warn(msg string, fields ...interface{})             {}

// buildTestPDF writes a minimal well-formed PDF with n pages of the
// given media box, computing xref offsets as it goes. Object layout:
// 1 catalog, 2 page tree, then a page and content stream per page,
// and a shared font object last.
func buildTestPDF(n int, w, h float64) []byte {
	type object struct {
		num  int
		body string
	}

	fontNum := 3 + 2*n

	var kids bytes.Buffer
	for i := 0; i < n; i++ {
		if i > 0 {
			kids.WriteString(" ")
		}
		fmt.Fprintf(&kids, "%d 0 R", 3+2*i)
	}

	objects := []object{
		{1, "<< /Type /Catalog /Pages 2 0 R >>"},
		{2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids.String(), n)},
	}
	for i := 0; i < n; i++ {
		content := fmt.Sprintf("BT /F1 12 Tf 72 72 Td (page %d) Tj ET", i+1)
		objects = append(objects,
			object{3 + 2*i, fmt.Sprintf(
				"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %.2f %.2f] /Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>",
				w, h, fontNum, 4+2*i)},
			object{4 + 2*i, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content)},
		)
	}
	objects = append(objects, object{fontNum, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>"})

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make(map[int]int, len(objects))
	for _, o := range objects {
		offsets[o.num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", o.num, o.body)
	}

	xrefPos := buf.Len()
	size := len(objects) + 1
	fmt.Fprintf(&buf, "xref\n0 %d\n", size)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i < size; i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", size, xrefPos)
	return buf.Bytes()
}
