// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

// PhraseMatch is one candidate occurrence reported by a PhraseScanner.
// Offsets are byte positions into the scanned text. Candidates may overlap;
// resolving overlaps (longest-match commit, word boundaries) is the caller's
// responsibility.
type PhraseMatch struct {
	Pattern int // index into the compiled pattern set
	Start   int // byte offset, inclusive
	End     int // byte offset, exclusive
}

// PhraseScanner scans text against a fixed, pre-compiled set of literal
// phrases. Implementations must be safe for concurrent use after
// construction: Scan allocates all per-call state.
type PhraseScanner interface {
	// Scan reports every occurrence of every pattern in text, including
	// overlapping ones, in unspecified order.
	Scan(text string) []PhraseMatch

	// Pattern returns the pattern string at the given index, or "" when
	// the index is out of range.
	Pattern(idx int) string

	// PatternCount returns the number of compiled patterns.
	PatternCount() int
}

// ScannerFactory builds a PhraseScanner from literal patterns. A factory
// may reject its input (empty set, pathological size); the caller treats
// that as a recoverable degradation, not a fatal error.
type ScannerFactory func(patterns []string) (PhraseScanner, error)
