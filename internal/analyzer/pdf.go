package analyzer

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

var pdfMagic = []byte("%PDF-")

// ValidatePDF checks that the uploaded bytes are a readable PDF before an
// API call is spent on them. A truncated or mislabeled upload fails here
// with a local error instead of a confusing provider error.
func ValidatePDF(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("document is empty")
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		return fmt.Errorf("document is not a PDF")
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("failed to read PDF: %w", err)
	}
	if reader.NumPage() < 1 {
		return fmt.Errorf("PDF has no pages")
	}

	return nil
}
