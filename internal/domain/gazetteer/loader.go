// Package gazetteer loads the place→captaincy reference data and builds the
// immutable lookup index the place matcher is compiled from.
//
// File format: UTF-8 text, one record per line, "Place,Captaincy" split at
// the first comma. Blank lines and lines starting with '#' are ignored.
// Place names must not contain commas; captaincy names may not either,
// since everything after the first comma is the captaincy.
package gazetteer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"
	"unicode/utf8"
)

// ErrNotFound reports a missing gazetteer resource. This is the only fatal
// condition of the load phase; malformed content is skipped with diagnostics.
var ErrNotFound = errors.New("gazetteer not found")

// Diagnostic records one skipped or ignored gazetteer line. Diagnostics are
// returned as data so callers decide how (and whether) to surface them.
type Diagnostic struct {
	Line   int    // 1-based line number
	Reason string // short machine-friendly reason
	Text   string // offending line, trimmed
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s: %q", d.Line, d.Reason, d.Text)
}

// Index is the immutable product of a successful load. It may be shared
// freely across goroutines; nothing mutates it after Load returns.
type Index struct {
	// PlaceToCaptaincy maps each canonical place name to its owning
	// captaincy. Total over all loaded places.
	PlaceToCaptaincy map[string]string

	// LowerToCanonical maps the lowercase form of a place name back to its
	// canonical casing as first seen in the file.
	LowerToCanonical map[string]string

	// PlacesByLengthDesc lists every canonical place ordered by descending
	// rune length (ties broken lexicographically). This is the order the
	// matcher considers candidates in, which guarantees longest-match
	// priority.
	PlacesByLengthDesc []string

	// Captaincies lists every known captaincy, sorted, deduplicated.
	Captaincies []string

	// Diagnostics holds one entry per skipped line.
	Diagnostics []Diagnostic
}

// Empty reports whether the index holds no places.
func (ix *Index) Empty() bool { return len(ix.PlaceToCaptaincy) == 0 }

// LoadFile opens and parses a gazetteer file. A missing file yields an
// error matching ErrNotFound; any other open failure is wrapped as-is.
func LoadFile(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open gazetteer %s: %w", path, err)
	}
	defer f.Close()
	ix, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("read gazetteer %s: %w", path, err)
	}
	return ix, nil
}

// Load parses gazetteer records from r. Malformed lines are skipped and
// recorded in Index.Diagnostics; only a read failure is an error. An empty
// (but readable) input produces an empty index.
func Load(r io.Reader) (*Index, error) {
	ix := &Index{
		PlaceToCaptaincy: make(map[string]string),
		LowerToCanonical: make(map[string]string),
	}

	captaincies := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		place, captaincy, found := strings.Cut(line, ",")
		if !found {
			ix.diag(lineNum, "malformed record, want Place,Captaincy", line)
			continue
		}
		place = strings.TrimSpace(place)
		captaincy = strings.TrimSpace(captaincy)
		if place == "" || captaincy == "" {
			ix.diag(lineNum, "empty place or captaincy", line)
			continue
		}

		// First binding wins. Later lines repeating the place string are
		// ignored even when they name a different captaincy — but the drop
		// is recorded so conflicting data is visible to the caller.
		if _, bound := ix.PlaceToCaptaincy[place]; bound {
			ix.diag(lineNum, "duplicate place, first binding kept", line)
			continue
		}

		ix.PlaceToCaptaincy[place] = captaincy
		captaincies[captaincy] = struct{}{}
		lower := strings.ToLower(place)
		if _, seen := ix.LowerToCanonical[lower]; !seen {
			ix.LowerToCanonical[lower] = place
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	ix.PlacesByLengthDesc = make([]string, 0, len(ix.PlaceToCaptaincy))
	for place := range ix.PlaceToCaptaincy {
		ix.PlacesByLengthDesc = append(ix.PlacesByLengthDesc, place)
	}
	sort.Slice(ix.PlacesByLengthDesc, func(i, j int) bool {
		a, b := ix.PlacesByLengthDesc[i], ix.PlacesByLengthDesc[j]
		la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
		if la != lb {
			return la > lb
		}
		return a < b
	})

	ix.Captaincies = make([]string, 0, len(captaincies))
	for c := range captaincies {
		ix.Captaincies = append(ix.Captaincies, c)
	}
	sort.Strings(ix.Captaincies)

	return ix, nil
}

func (ix *Index) diag(line int, reason, text string) {
	ix.Diagnostics = append(ix.Diagnostics, Diagnostic{Line: line, Reason: reason, Text: text})
}
