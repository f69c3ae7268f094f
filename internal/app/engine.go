// Package app wires configuration, adapters and domain analyzers into the
// engine the CLI commands call. The engine owns the cross-cutting
// resources (logger, text cache, PDF extractor); each analyzer entrypoint
// is otherwise a thin composition of domain calls.
package app

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mbarros/oxossi/internal/adapters/ahocorasick"
	"github.com/mbarros/oxossi/internal/adapters/anystyle"
	bboltstore "github.com/mbarros/oxossi/internal/adapters/bbolt"
	"github.com/mbarros/oxossi/internal/adapters/pdf"
	"github.com/mbarros/oxossi/internal/config"
	"github.com/mbarros/oxossi/internal/domain/dates"
	"github.com/mbarros/oxossi/internal/domain/gazetteer"
	"github.com/mbarros/oxossi/internal/domain/names"
	"github.com/mbarros/oxossi/internal/domain/places"
	"github.com/mbarros/oxossi/internal/domain/references"
	"github.com/mbarros/oxossi/internal/domain/themes"
	"github.com/mbarros/oxossi/internal/ports"
)

// Engine is the per-invocation application object.
type Engine struct {
	cfg       config.Config
	log       *zap.Logger
	cache     ports.TextCache // nil when caching is disabled or unavailable
	extractor ports.TextExtractor
}

// New builds an engine from resolved configuration. A cache that fails to
// open is logged and disabled, never fatal.
func New(cfg config.Config, log *zap.Logger) *Engine {
	e := &Engine{cfg: cfg, log: log, extractor: pdf.NewExtractor()}

	if cfg.CachePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.CachePath), 0755); err != nil {
			log.Warn("text cache directory unavailable, caching disabled",
				zap.String("path", cfg.CachePath), zap.Error(err))
			return e
		}
		store, err := bboltstore.NewStore(cfg.CachePath)
		if err != nil {
			log.Warn("text cache unavailable, caching disabled",
				zap.String("path", cfg.CachePath), zap.Error(err))
			return e
		}
		e.cache = store
	}
	return e
}

// Close releases engine resources.
func (e *Engine) Close() {
	if e.cache != nil {
		if err := e.cache.Close(); err != nil {
			e.log.Warn("text cache close failed", zap.Error(err))
		}
	}
}

// Config returns the engine's resolved configuration.
func (e *Engine) Config() config.Config { return e.cfg }

// CompilePlaces loads the gazetteer and compiles the place matcher. The
// compiled index is immutable and reusable across any number of scans.
func (e *Engine) CompilePlaces(gazetteerPath string) (*places.CompiledIndex, error) {
	idx, err := gazetteer.LoadFile(gazetteerPath)
	if err != nil {
		return nil, err
	}
	for _, d := range idx.Diagnostics {
		e.log.Warn("gazetteer line skipped", zap.Int("line", d.Line),
			zap.String("reason", d.Reason), zap.String("text", d.Text))
	}
	e.log.Info("gazetteer loaded",
		zap.String("path", gazetteerPath),
		zap.Int("places", len(idx.PlaceToCaptaincy)),
		zap.Int("captaincies", len(idx.Captaincies)))

	ci := places.Compile(idx, ahocorasick.Factory)
	for _, d := range ci.Diagnostics() {
		e.log.Warn("place matcher degraded", zap.String("reason", d))
	}
	return ci, nil
}

// AnalyzePlaces runs the full attribution pipeline for one document.
func (e *Engine) AnalyzePlaces(inputPath, gazetteerPath string) (places.SearchResult, error) {
	ci, err := e.CompilePlaces(gazetteerPath)
	if err != nil {
		return places.SearchResult{}, err
	}
	text, err := e.ReadDocument(inputPath)
	if err != nil {
		return places.SearchResult{}, err
	}
	return ci.Scan(text), nil
}

// AnalyzeDates extracts and summarizes date evidence in one document.
func (e *Engine) AnalyzeDates(inputPath, configPath string) (dates.Result, error) {
	cfg, err := dates.LoadConfig(configPath)
	if err != nil {
		return dates.Result{}, err
	}
	analyzer, err := dates.NewAnalyzer(cfg)
	if err != nil {
		return dates.Result{}, err
	}
	text, err := e.ReadDocument(inputPath)
	if err != nil {
		return dates.Result{}, err
	}
	result, diags := analyzer.Analyze(text)
	for _, d := range diags {
		e.log.Warn("date match skipped", zap.String("reason", d))
	}
	return result, nil
}

// NamesResult wraps the extracted names for envelope output.
type NamesResult struct {
	PotentialNamesFound []string `json:"potential_names_found"`
	Count               int      `json:"count"`
}

// AnalyzeNames extracts potential personal names from one document.
func (e *Engine) AnalyzeNames(inputPath, configPath string) (NamesResult, error) {
	cfg, err := names.LoadConfig(configPath)
	if err != nil {
		return NamesResult{}, err
	}
	if cfg.Empty() {
		e.log.Warn("name dictionaries are empty, extraction will find nothing",
			zap.String("config", configPath))
	}
	text, err := e.ReadDocument(inputPath)
	if err != nil {
		return NamesResult{}, err
	}
	found := names.Extract(text, cfg)
	if found == nil {
		found = []string{}
	}
	return NamesResult{PotentialNamesFound: found, Count: len(found)}, nil
}

// AnalyzeThemes scores theme keyword groups against one document.
func (e *Engine) AnalyzeThemes(inputPath, configPath string) (themes.Result, error) {
	groups, diags, err := themes.LoadGroups(configPath)
	if err != nil {
		return themes.Result{}, err
	}
	for _, d := range diags {
		e.log.Warn("theme group skipped", zap.String("reason", d))
	}
	text, err := e.ReadDocument(inputPath)
	if err != nil {
		return themes.Result{}, err
	}
	return themes.Analyze(text, groups), nil
}

// ReferencesResult wraps formatted citations for envelope output.
type ReferencesResult struct {
	References []string `json:"references"`
	Count      int      `json:"count"`
}

// AnalyzeReferences extracts bibliographic references from a PDF via the
// anystyle CLI and formats them as compact citations.
func (e *Engine) AnalyzeReferences(ctx context.Context, inputPath string) (ReferencesResult, error) {
	raw, err := anystyle.Find(ctx, inputPath)
	if err != nil {
		return ReferencesResult{}, err
	}
	records, err := references.Parse(raw)
	if err != nil {
		return ReferencesResult{}, err
	}
	formatted := references.FormatAll(records)
	e.log.Info("references parsed",
		zap.Int("raw", len(records)),
		zap.Int("formatted", len(formatted)))
	return ReferencesResult{References: formatted, Count: len(formatted)}, nil
}
