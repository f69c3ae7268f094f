// Package ahocorasick provides multi-phrase literal matching using an
// Aho-Corasick automaton. It wraps the petar-dambovaliev/aho-corasick
// library for O(n + m + z) scanning with byte offsets.
package ahocorasick

import (
	"errors"
	"fmt"

	aho "github.com/petar-dambovaliev/aho-corasick"

	"github.com/mbarros/oxossi/internal/ports"
)

// MaxPatterns caps automaton size so a pathological gazetteer cannot blow
// up compile time or memory. Low-thousands is the expected scale; the cap
// leaves two orders of magnitude of headroom.
const MaxPatterns = 200_000

// ErrNoPatterns reports an empty pattern set, which has nothing to compile.
var ErrNoPatterns = errors.New("no patterns to compile")

// Scanner implements ports.PhraseScanner over a DFA-backed automaton.
// Immutable after construction; Scan is safe for concurrent use.
type Scanner struct {
	automaton aho.AhoCorasick
	patterns  []string
}

// NewScanner compiles the automaton from the given literal patterns.
func NewScanner(patterns []string) (s *Scanner, err error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}
	if len(patterns) > MaxPatterns {
		return nil, fmt.Errorf("pattern set too large: %d > %d", len(patterns), MaxPatterns)
	}

	// The builder panics rather than returning errors; surface that as a
	// recoverable construction failure.
	defer func() {
		if r := recover(); r != nil {
			s, err = nil, fmt.Errorf("aho-corasick build: %v", r)
		}
	}()

	p := make([]string, len(patterns))
	copy(p, patterns)
	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		DFA: true,
	})
	return &Scanner{automaton: builder.Build(p), patterns: p}, nil
}

// Factory adapts NewScanner to the ports.ScannerFactory signature.
func Factory(patterns []string) (ports.PhraseScanner, error) {
	s, err := NewScanner(patterns)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Scan reports every occurrence of every pattern in text, overlapping
// included, with byte offsets into text.
func (s *Scanner) Scan(text string) []ports.PhraseMatch {
	iter := s.automaton.IterOverlappingByte([]byte(text))
	var matches []ports.PhraseMatch
	for next := iter.Next(); next != nil; next = iter.Next() {
		m := *next
		matches = append(matches, ports.PhraseMatch{
			Pattern: m.Pattern(),
			Start:   m.Start(),
			End:     m.End(),
		})
	}
	return matches
}

// PatternCount returns the number of compiled patterns.
func (s *Scanner) PatternCount() int {
	return len(s.patterns)
}

// Pattern returns the pattern string at the given index.
func (s *Scanner) Pattern(idx int) string {
	if idx < 0 || idx >= len(s.patterns) {
		return ""
	}
	return s.patterns[idx]
}
