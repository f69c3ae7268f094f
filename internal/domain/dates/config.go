// Package dates extracts historical date evidence from document text:
// direct numeric years plus textual century phrases ("século XVII",
// optionally qualified by a part phrase like "primeira metade"), resolved
// to year intervals through a configurable century/part table, with summary
// statistics over the combined representative years.
package dates

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
)

// ErrInvalidConfig reports a structurally broken date configuration file.
var ErrInvalidConfig = errors.New("invalid date config")

// Config is the JSON date configuration. CenturyMap keys are normalized
// century tokens (lowercase roman numerals, "século " prefix stripped)
// mapping to the century's base year; PartMap keys are normalized part
// phrases mapping to [startOffset, endOffset] within the century (0–100).
type Config struct {
	CenturyMap    map[string]int   `json:"century_map"`
	PartMap       map[string][]int `json:"part_map"`
	RegexPatterns struct {
		Year          string `json:"year"`
		TextualPhrase string `json:"textual_phrase"`
	} `json:"regex_patterns"`
}

// LoadConfig reads and validates the date configuration at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read date config %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if len(cfg.CenturyMap) == 0 || len(cfg.PartMap) == 0 {
		return nil, fmt.Errorf("%w: %s: century_map and part_map are required", ErrInvalidConfig, path)
	}
	if cfg.RegexPatterns.Year == "" || cfg.RegexPatterns.TextualPhrase == "" {
		return nil, fmt.Errorf("%w: %s: regex_patterns.year and regex_patterns.textual_phrase are required", ErrInvalidConfig, path)
	}
	return &cfg, nil
}

// Analyzer holds a validated config with its patterns compiled once.
// Immutable after construction; Analyze is safe for concurrent use.
type Analyzer struct {
	cfg       *Config
	yearRe    *regexp.Regexp
	textualRe *regexp.Regexp
}

// NewAnalyzer compiles the config's patterns (case-insensitively).
func NewAnalyzer(cfg *Config) (*Analyzer, error) {
	yearRe, err := regexp.Compile("(?i)" + cfg.RegexPatterns.Year)
	if err != nil {
		return nil, fmt.Errorf("%w: year pattern: %v", ErrInvalidConfig, err)
	}
	textualRe, err := regexp.Compile("(?i)" + cfg.RegexPatterns.TextualPhrase)
	if err != nil {
		return nil, fmt.Errorf("%w: textual_phrase pattern: %v", ErrInvalidConfig, err)
	}
	return &Analyzer{cfg: cfg, yearRe: yearRe, textualRe: textualRe}, nil
}
