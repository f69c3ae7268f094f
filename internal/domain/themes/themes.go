// Package themes scores thematic keyword groups against document text.
// Counting is whole-word over lowercased whitespace tokens; the top theme
// uses the same tagged tie-break variant as captaincy attribution.
package themes

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/mbarros/oxossi/internal/domain/rank"
)

// Groups maps a theme name to its keyword list.
type Groups map[string][]string

// LoadGroups reads theme groups from a JSON file: an object of
// theme → [keyword, ...]. Entries with a non-list value are skipped and
// reported in the diagnostics.
func LoadGroups(path string) (Groups, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read themes config %s: %w", path, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("parse themes config %s: %w", path, err)
	}

	groups := make(Groups, len(raw))
	var diags []string
	for theme, val := range raw {
		var keywords []string
		if err := json.Unmarshal(val, &keywords); err != nil {
			diags = append(diags, fmt.Sprintf("theme %q skipped: value is not a string list", theme))
			continue
		}
		groups[theme] = keywords
	}
	return groups, diags, nil
}

// Result is the theme analysis for one document. ThemeCounts carries every
// theme (zero included); KeywordCounts only keywords that occurred.
type Result struct {
	ThemeCounts        map[string]int     `json:"theme_counts"`
	KeywordCounts      map[string]int     `json:"keyword_counts"`
	TopTheme           rank.Top           `json:"top_theme"`
	ThemePercentages   map[string]float64 `json:"theme_percentages"`
	TotalKeywordsFound int                `json:"total_keywords_found"`
}

// Analyze counts theme keyword occurrences in text. Empty text or empty
// groups produce the well-formed zero result.
func Analyze(text string, groups Groups) Result {
	result := Result{
		ThemeCounts:      map[string]int{},
		KeywordCounts:    map[string]int{},
		ThemePercentages: map[string]float64{},
	}
	if text == "" || len(groups) == 0 {
		return result
	}

	wordCounts := make(map[string]int)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = strings.Trim(w, `.,;!?()[]{}":'`)
		if w == "" {
			continue
		}
		wordCounts[w]++
	}

	total := 0
	for theme, keywords := range groups {
		themeTotal := 0
		for _, kw := range keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			if n := wordCounts[kw]; n > 0 {
				result.KeywordCounts[kw] = n
				themeTotal += n
				total += n
			}
		}
		result.ThemeCounts[theme] = themeTotal
	}
	result.TotalKeywordsFound = total
	if total == 0 {
		return result
	}

	result.TopTheme = rank.Select(result.ThemeCounts)
	for theme, n := range result.ThemeCounts {
		pct := float64(n) / float64(total) * 100
		result.ThemePercentages[theme] = math.Round(pct*100) / 100
	}
	return result
}
