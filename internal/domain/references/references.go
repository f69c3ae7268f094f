// Package references turns bibliographic reference records (as produced by
// the anystyle CLI) into compact citation strings.
package references

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Person is one author entry of a parsed reference.
type Person struct {
	Family string `json:"family"`
	Given  string `json:"given"`
}

// Record is one parsed reference. anystyle emits every field as a list.
type Record struct {
	Author []Person `json:"author"`
	Title  []string `json:"title"`
	Date   []string `json:"date"`
}

// Parse decodes the JSON array anystyle prints on stdout.
func Parse(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse references: %w", err)
	}
	return records, nil
}

// titleCap is the rune length a citation title is truncated to.
const titleCap = 30

// Format renders one record as "Family,G. (Year) Title…". Records without
// a usable first author are rejected (second result false).
func Format(rec Record) (string, bool) {
	author := formatAuthor(rec.Author)
	if author == "" {
		return "", false
	}

	title := "-"
	if len(rec.Title) > 0 && rec.Title[0] != "" {
		title = strings.TrimSpace(truncateRunes(rec.Title[0], titleCap) + "...")
	}

	year := "-"
	if len(rec.Date) > 0 && rec.Date[0] != "" {
		year = strings.TrimSpace(truncateRunes(rec.Date[0], 4))
	}

	return fmt.Sprintf("%s. (%s) %s", author, year, title), true
}

// FormatAll renders every formattable record, preserving input order.
func FormatAll(records []Record) []string {
	out := make([]string, 0, len(records))
	for _, rec := range records {
		if s, ok := Format(rec); ok {
			out = append(out, s)
		}
	}
	return out
}

func formatAuthor(authors []Person) string {
	if len(authors) == 0 {
		return ""
	}
	family := strings.TrimSpace(authors[0].Family)
	given := strings.TrimSpace(authors[0].Given)
	switch {
	case family != "" && given != "":
		return family + "," + truncateRunes(given, 1)
	case family != "":
		return family
	default:
		return ""
	}
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
