package ahocorasick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbarros/oxossi/internal/ports"
)

func TestNewScanner_EmptyPatternsRejected(t *testing.T) {
	_, err := NewScanner(nil)
	assert.ErrorIs(t, err, ErrNoPatterns)

	_, err = Factory([]string{})
	assert.ErrorIs(t, err, ErrNoPatterns)
}

func TestScanner_FindsAllOccurrences(t *testing.T) {
	s, err := NewScanner([]string{"olinda", "recife"})
	require.NoError(t, err)

	matches := s.Scan("de olinda a recife, e de recife a olinda")

	byPattern := map[string]int{}
	for _, m := range matches {
		byPattern[s.Pattern(m.Pattern)]++
	}
	assert.Equal(t, map[string]int{"olinda": 2, "recife": 2}, byPattern)
}

func TestScanner_ReportsByteOffsets(t *testing.T) {
	s, err := NewScanner([]string{"recife"})
	require.NoError(t, err)

	text := "em recife"
	matches := s.Scan(text)
	require.Len(t, matches, 1)
	assert.Equal(t, "recife", text[matches[0].Start:matches[0].End])
}

func TestScanner_ReportsOverlappingCandidates(t *testing.T) {
	s, err := NewScanner([]string{"são paulo de piratininga", "são paulo"})
	require.NoError(t, err)

	matches := s.Scan("foi a são paulo de piratininga")

	// Both the long phrase and the embedded short phrase are candidates;
	// overlap resolution is the caller's job.
	patterns := map[string]bool{}
	for _, m := range matches {
		patterns[s.Pattern(m.Pattern)] = true
	}
	assert.True(t, patterns["são paulo de piratininga"])
	assert.True(t, patterns["são paulo"])
}

func TestScanner_SubstringInsideWordStillReported(t *testing.T) {
	// The automaton is a raw substring matcher; word-boundary filtering
	// happens above it.
	s, err := NewScanner([]string{"olinda"})
	require.NoError(t, err)

	matches := s.Scan("olindana")
	require.Len(t, matches, 1)
	assert.Equal(t, 0, matches[0].Start)
	assert.Equal(t, len("olinda"), matches[0].End)
}

func TestScanner_PatternAccessors(t *testing.T) {
	s, err := NewScanner([]string{"a", "b"})
	require.NoError(t, err)

	assert.Equal(t, 2, s.PatternCount())
	assert.Equal(t, "a", s.Pattern(0))
	assert.Equal(t, "b", s.Pattern(1))
	assert.Equal(t, "", s.Pattern(-1))
	assert.Equal(t, "", s.Pattern(2))
}

func TestFactory_SatisfiesPort(t *testing.T) {
	var _ ports.ScannerFactory = Factory
}

func TestNewScanner_PatternCap(t *testing.T) {
	patterns := make([]string, MaxPatterns+1)
	for i := range patterns {
		patterns[i] = "x"
	}
	_, err := NewScanner(patterns)
	assert.Error(t, err)
}
