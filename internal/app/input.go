package app

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ErrUnsupportedInput reports a document extension the engine cannot read.
var ErrUnsupportedInput = errors.New("unsupported input type (want .txt, .csv or .pdf)")

// ErrInputNotFound reports a missing input document.
var ErrInputNotFound = errors.New("input file not found")

// ReadDocument returns the plain text of the document at path. Text files
// are read directly; PDFs go through the extractor, with the result cached
// by content hash so corpus re-runs skip extraction.
func (e *Engine) ReadDocument(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return "", fmt.Errorf("read input %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".csv":
		return string(raw), nil
	case ".pdf":
		return e.extractPDF(path, raw)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedInput, path)
	}
}

func (e *Engine) extractPDF(path string, raw []byte) (string, error) {
	sum := sha256.Sum256(raw)
	key := hex.EncodeToString(sum[:])

	if e.cache != nil {
		if text, hit, err := e.cache.Get(key); err == nil && hit {
			e.log.Debug("pdf text cache hit", zap.String("path", path))
			return text, nil
		}
	}

	text, err := e.extractor.ExtractText(path)
	if err != nil {
		return "", err
	}
	e.log.Debug("pdf text extracted",
		zap.String("path", path),
		zap.Int("chars", len(text)))

	if e.cache != nil {
		if err := e.cache.Put(key, text); err != nil {
			e.log.Warn("pdf text cache write failed", zap.Error(err))
		}
	}
	return text, nil
}
