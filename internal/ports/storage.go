package ports

// TextCache stores extracted document text keyed by a content hash, so a
// corpus re-run skips expensive PDF extraction. Analysis results are never
// cached — only the raw extracted text.
//
// Writes must be transactional: a crash mid-write must not corrupt
// previously committed entries.
type TextCache interface {
	// Get returns the cached text for key. The second result is false when
	// the key has never been stored.
	Get(key string) (string, bool, error)

	// Put stores text under key, overwriting any prior entry.
	Put(key, text string) error

	// Close releases the underlying store.
	Close() error
}
