// Package names extracts potential personal names from document text with
// a dictionary heuristic: a name is a run of known given names and
// surnames, optionally joined by lowercase prepositions ("da", "de", …).
// A run must have at least two parts and must not end in a preposition.
package names

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// defaultPrepositions joins name parts when the config omits its own list.
var defaultPrepositions = []string{"da", "das", "do", "dos", "de"}

// Config holds the name dictionaries, normalized: given names and surnames
// capitalized, prepositions lowercased.
type Config struct {
	FirstNames   map[string]struct{}
	SecondNames  map[string]struct{}
	Prepositions map[string]struct{}
}

type configJSON struct {
	FirstNames   []string `json:"first_names"`
	SecondNames  []string `json:"second_names"`
	Prepositions []string `json:"prepositions"`
}

// LoadConfig reads the name dictionaries from a JSON file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read names config %s: %w", path, err)
	}
	var raw configJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse names config %s: %w", path, err)
	}

	cfg := &Config{
		FirstNames:   make(map[string]struct{}, len(raw.FirstNames)),
		SecondNames:  make(map[string]struct{}, len(raw.SecondNames)),
		Prepositions: make(map[string]struct{}),
	}
	for _, n := range raw.FirstNames {
		if n = strings.TrimSpace(n); n != "" {
			cfg.FirstNames[capitalize(n)] = struct{}{}
		}
	}
	for _, n := range raw.SecondNames {
		if n = strings.TrimSpace(n); n != "" {
			cfg.SecondNames[capitalize(n)] = struct{}{}
		}
	}
	preps := raw.Prepositions
	if len(preps) == 0 {
		preps = defaultPrepositions
	}
	for _, p := range preps {
		if p = strings.TrimSpace(p); p != "" {
			cfg.Prepositions[strings.ToLower(p)] = struct{}{}
		}
	}
	return cfg, nil
}

// Empty reports whether both name dictionaries are empty, which makes
// extraction a no-op.
func (c *Config) Empty() bool {
	return len(c.FirstNames) == 0 && len(c.SecondNames) == 0
}

// Extract walks the text word by word, accumulating name runs. Results are
// deduplicated preserving first-seen order.
func Extract(text string, cfg *Config) []string {
	if text == "" || cfg == nil {
		return nil
	}

	words := strings.Fields(text)
	var found []string
	var run []string

	flush := func() {
		if len(run) >= 2 {
			if _, endsInPrep := cfg.Prepositions[strings.ToLower(run[len(run)-1])]; !endsInPrep {
				found = append(found, strings.Join(run, " "))
			}
		}
		run = nil
	}

	for _, word := range words {
		cleaned := strings.Trim(word, `.,;!?()[]{}":'`)
		if cleaned == "" {
			flush()
			continue
		}

		capWord := capitalize(cleaned)
		lower := strings.ToLower(cleaned)
		_, isFirst := cfg.FirstNames[capWord]
		_, isSecond := cfg.SecondNames[capWord]
		_, isPrep := cfg.Prepositions[lower]

		if len(run) == 0 {
			if isFirst {
				run = append(run, capWord)
			}
			continue
		}

		_, lastWasPrep := cfg.Prepositions[strings.ToLower(run[len(run)-1])]
		switch {
		case isFirst && !lastWasPrep:
			run = append(run, capWord)
		case isPrep && !lastWasPrep:
			run = append(run, lower)
		case isSecond:
			run = append(run, capWord)
		default:
			// A preposition with nothing after it never completes a name.
			if !lastWasPrep {
				flush()
			} else {
				run = nil
			}
			if isFirst {
				run = append(run, capWord)
			}
		}
	}
	flush()

	seen := make(map[string]struct{}, len(found))
	unique := found[:0]
	for _, name := range found {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	return unique
}

// capitalize uppercases the first rune and lowercases the rest, mirroring
// how the dictionaries themselves are normalized.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
