// Package pdf implements the ports.TextExtractor interface using
// github.com/ledongthuc/pdf. Pages that fail text extraction are skipped
// rather than aborting the document; scanned-image pages simply contribute
// nothing.
package pdf

import (
	"fmt"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// Extractor extracts concatenated page text from PDF files.
type Extractor struct{}

// NewExtractor returns a stateless PDF text extractor.
func NewExtractor() Extractor { return Extractor{} }

// ExtractText returns the plain text of every readable page, newline
// separated in page order.
func (Extractor) ExtractText(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var sb strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
