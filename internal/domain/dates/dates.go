package dates

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Interval is an inclusive year range. Marshals as [start, end].
type Interval struct {
	Start int
	End   int
}

func (iv Interval) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("[%d,%d]", iv.Start, iv.End)), nil
}

func (iv *Interval) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	iv.Start, iv.End = pair[0], pair[1]
	return nil
}

// Result is the full date analysis for one document. Statistics fields are
// nil when no representative years were found. StandardDeviation is the
// sample deviation (zero for a single year).
type Result struct {
	DirectNumericYears          []int      `json:"direct_numeric_years"`
	CalculatedTextualIntervals  []Interval `json:"calculated_textual_intervals"`
	CombinedRepresentativeYears []int      `json:"combined_representative_years"`
	Count                       int        `json:"count"`
	Mean                        *float64   `json:"mean"`
	Median                      *float64   `json:"median"`
	Minimum                     *int       `json:"minimum"`
	Maximum                     *int       `json:"maximum"`
	StandardDeviation           *float64   `json:"standard_deviation"`
	FullRange                   *string    `json:"full_range"`
	DenseRangeStdDev            *Interval  `json:"dense_range_stddev"`
}

func emptyResult() Result {
	return Result{
		DirectNumericYears:          []int{},
		CalculatedTextualIntervals:  []Interval{},
		CombinedRepresentativeYears: []int{},
	}
}

var centuryPrefixRe = regexp.MustCompile(`s[ée]culos?\s+`)

// Analyze extracts years and textual century phrases from text and computes
// the summary statistics. The second return value carries diagnostics for
// skipped matches (unknown century, unparseable year); these never abort
// the analysis.
func (a *Analyzer) Analyze(text string) (Result, []string) {
	result := emptyResult()
	if text == "" {
		return result, nil
	}

	var diags []string

	yearSet := make(map[int]struct{})
	yearGroup := a.yearRe.SubexpIndex("year")
	for _, m := range a.yearRe.FindAllStringSubmatch(text, -1) {
		raw := m[0]
		if yearGroup > 0 && m[yearGroup] != "" {
			raw = m[yearGroup]
		}
		year, err := strconv.Atoi(raw)
		if err != nil {
			diags = append(diags, fmt.Sprintf("unparseable year %q", raw))
			continue
		}
		yearSet[year] = struct{}{}
	}

	intervalSet := make(map[Interval]struct{})
	centuryGroup := a.textualRe.SubexpIndex("century")
	partGroup := a.textualRe.SubexpIndex("part")
	for _, m := range a.textualRe.FindAllStringSubmatch(text, -1) {
		var century, part string
		if centuryGroup > 0 {
			century = m[centuryGroup]
		}
		if partGroup > 0 {
			part = m[partGroup]
		}
		iv, ok, diag := a.intervalFor(century, part)
		if diag != "" {
			diags = append(diags, diag)
		}
		if ok {
			intervalSet[iv] = struct{}{}
		}
	}

	result.DirectNumericYears = sortedYears(yearSet)
	result.CalculatedTextualIntervals = sortedIntervals(intervalSet)

	combined := make(map[int]struct{}, len(yearSet)+len(intervalSet))
	for y := range yearSet {
		combined[y] = struct{}{}
	}
	for iv := range intervalSet {
		mid := int(math.Round(float64(iv.Start+iv.End) / 2))
		combined[mid] = struct{}{}
	}
	result.CombinedRepresentativeYears = sortedYears(combined)
	result.Count = len(result.CombinedRepresentativeYears)
	if result.Count == 0 {
		return result, diags
	}

	years := make([]float64, result.Count)
	for i, y := range result.CombinedRepresentativeYears {
		years[i] = float64(y)
	}

	mean := stat.Mean(years, nil)
	// Median averages the two middle values for an even count; years is
	// already sorted.
	median := years[result.Count/2]
	if result.Count%2 == 0 {
		median = (years[result.Count/2-1] + years[result.Count/2]) / 2
	}
	min := result.CombinedRepresentativeYears[0]
	max := result.CombinedRepresentativeYears[result.Count-1]
	stdDev := 0.0
	if result.Count > 1 {
		stdDev = stat.StdDev(years, nil)
	}
	fullRange := fmt.Sprintf("%d - %d", min, max)
	dense := Interval{
		Start: int(math.Round(mean - stdDev)),
		End:   int(math.Round(mean + stdDev)),
	}

	result.Mean = &mean
	result.Median = &median
	result.Minimum = &min
	result.Maximum = &max
	result.StandardDeviation = &stdDev
	result.FullRange = &fullRange
	result.DenseRangeStdDev = &dense
	return result, diags
}

// intervalFor resolves a century token plus optional part phrase into a
// year interval. Unknown centuries are skipped; an unknown part phrase
// falls back to the whole century, as the original tool did.
func (a *Analyzer) intervalFor(century, part string) (Interval, bool, string) {
	if century == "" {
		return Interval{}, false, ""
	}
	norm := centuryPrefixRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(century)), "")
	base, known := a.cfg.CenturyMap[norm]
	if !known {
		return Interval{}, false, fmt.Sprintf("unrecognized century %q", century)
	}
	if part == "" {
		return Interval{Start: base, End: base + 100}, true, ""
	}

	partNorm := strings.ToLower(strings.TrimSpace(part))
	partNorm = strings.NewReplacer("í", "i", "ç", "c", "finais", "final").Replace(partNorm)
	offsets, known := a.cfg.PartMap[partNorm]
	if !known || len(offsets) != 2 {
		return Interval{Start: base, End: base + 100}, true,
			fmt.Sprintf("unrecognized part phrase %q, using whole century", part)
	}

	start, end := clampOffset(offsets[0]), clampOffset(offsets[1])
	if start > end {
		start, end = end, start
	}
	return Interval{Start: base + start, End: base + end}, true, ""
}

func clampOffset(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func sortedYears(set map[int]struct{}) []int {
	years := make([]int, 0, len(set))
	for y := range set {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

func sortedIntervals(set map[Interval]struct{}) []Interval {
	ivs := make([]Interval, 0, len(set))
	for iv := range set {
		ivs = append(ivs, iv)
	}
	sort.Slice(ivs, func(i, j int) bool {
		if ivs[i].Start != ivs[j].Start {
			return ivs[i].Start < ivs[j].Start
		}
		return ivs[i].End < ivs[j].End
	})
	return ivs
}
