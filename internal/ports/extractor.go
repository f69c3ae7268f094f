package ports

// TextExtractor pulls plain text out of a binary document format (PDF).
// Plain-text inputs bypass the extractor entirely.
type TextExtractor interface {
	// ExtractText returns the concatenated page text of the document at path.
	ExtractText(path string) (string, error)
}
