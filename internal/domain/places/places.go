// Package places implements the captaincy attribution engine: compile the
// gazetteer into a reusable matcher once, then scan any number of documents
// against it. A scan counts place mentions (longest-match, word-bounded,
// case-insensitive), rolls the counts up into per-captaincy scores and
// selects the top captaincy.
package places

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mbarros/oxossi/internal/domain/gazetteer"
	"github.com/mbarros/oxossi/internal/domain/rank"
	"github.com/mbarros/oxossi/internal/ports"
)

// PlaceCount is one matched place with its occurrence count (always > 0).
type PlaceCount struct {
	Place string `json:"place"`
	Count int    `json:"count"`
}

// SearchResult is the structured outcome of one scan. AllCaptaincyScores
// always carries one entry per captaincy known to the index, zero when
// unmatched; FoundPlacesDetails omits zero-count places and is sorted by
// place name.
type SearchResult struct {
	FoundPlacesDetails []PlaceCount   `json:"found_places_details"`
	TopCaptaincy       rank.Top       `json:"top_captaincy"`
	AllCaptaincyScores map[string]int `json:"all_captaincy_scores"`
}

// CompiledIndex pairs a gazetteer index with its compiled phrase scanner.
// Build it once with Compile and share it: it is immutable and Scan is safe
// for concurrent use from multiple goroutines.
type CompiledIndex struct {
	idx     *gazetteer.Index
	scanner ports.PhraseScanner // nil when compilation degraded
	diags   []string
}

// Compile builds the matcher for idx using factory. Compilation failure
// (empty gazetteer, factory rejection) is recoverable: the returned index
// still enumerates captaincies, and Scan yields empty-match results. The
// failure reason is available via Diagnostics.
func Compile(idx *gazetteer.Index, factory ports.ScannerFactory) *CompiledIndex {
	ci := &CompiledIndex{idx: idx}

	// Lowercased patterns in length-descending order; case variants of the
	// same place collapse to one pattern.
	patterns := make([]string, 0, len(idx.PlacesByLengthDesc))
	seen := make(map[string]struct{}, len(idx.PlacesByLengthDesc))
	for _, place := range idx.PlacesByLengthDesc {
		lower := strings.ToLower(place)
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
		patterns = append(patterns, lower)
	}

	if len(patterns) == 0 {
		ci.diags = append(ci.diags, "no places in gazetteer, matcher disabled")
		return ci
	}

	scanner, err := factory(patterns)
	if err != nil {
		ci.diags = append(ci.diags, fmt.Sprintf("pattern compilation failed: %v", err))
		return ci
	}
	ci.scanner = scanner
	return ci
}

// Diagnostics reports compile-time degradations (empty gazetteer, scanner
// construction failure). Empty for a fully functional index.
func (ci *CompiledIndex) Diagnostics() []string { return ci.diags }

// Index returns the underlying gazetteer index.
func (ci *CompiledIndex) Index() *gazetteer.Index { return ci.idx }

// Scan counts place mentions in text and assembles the full SearchResult.
// Empty text, an empty gazetteer or a degraded matcher all produce the
// well-formed empty result: no details, absent top captaincy, and every
// known captaincy scored zero.
func (ci *CompiledIndex) Scan(text string) SearchResult {
	result := SearchResult{
		FoundPlacesDetails: []PlaceCount{},
		AllCaptaincyScores: zeroScores(ci.idx),
	}
	if text == "" || ci.scanner == nil {
		return result
	}

	counts := ci.countMentions(text)
	if len(counts) == 0 {
		return result
	}

	result.AllCaptaincyScores = Aggregate(counts, ci.idx)
	result.TopCaptaincy = rank.Select(result.AllCaptaincyScores)

	for place, n := range counts {
		result.FoundPlacesDetails = append(result.FoundPlacesDetails, PlaceCount{Place: place, Count: n})
	}
	sort.Slice(result.FoundPlacesDetails, func(i, j int) bool {
		return result.FoundPlacesDetails[i].Place < result.FoundPlacesDetails[j].Place
	})
	return result
}

// countMentions runs the phrase scanner over the lowercased text and
// resolves overlapping candidates: sort by start (ties: longest first),
// then commit greedily left to right, skipping candidates that overlap a
// committed match or sit inside a longer run of word characters. Committed
// matches resolve to canonical casing through the index.
func (ci *CompiledIndex) countMentions(text string) map[string]int {
	lower := strings.ToLower(text)
	matches := ci.scanner.Scan(lower)
	if len(matches) == 0 {
		return nil
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Start != matches[j].Start {
			return matches[i].Start < matches[j].Start
		}
		return matches[i].End > matches[j].End
	})

	counts := make(map[string]int)
	next := 0 // first byte position not consumed by a committed match
	for _, m := range matches {
		if m.Start < next {
			continue
		}
		if !wordBounded(lower, m.Start, m.End) {
			continue
		}
		canonical, known := ci.idx.LowerToCanonical[ci.scanner.Pattern(m.Pattern)]
		if !known {
			continue
		}
		counts[canonical]++
		next = m.End
	}
	return counts
}

// wordBounded reports whether s[start:end] is not embedded in a longer run
// of word characters. Boundaries are checked rune-wise so accented letters
// ("Maranhão", "Olindanã") bound correctly; ASCII-only \b semantics would
// misfire on them.
func wordBounded(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// Aggregate rolls per-place counts up into per-captaincy scores. Every
// captaincy known to the index appears in the output, zero-initialized;
// counts are raw mention totals, no weighting.
func Aggregate(counts map[string]int, idx *gazetteer.Index) map[string]int {
	scores := zeroScores(idx)
	for place, n := range counts {
		if captaincy, owned := idx.PlaceToCaptaincy[place]; owned {
			scores[captaincy] += n
		}
	}
	return scores
}

func zeroScores(idx *gazetteer.Index) map[string]int {
	scores := make(map[string]int, len(idx.Captaincies))
	for _, c := range idx.Captaincies {
		scores[c] = 0
	}
	return scores
}
