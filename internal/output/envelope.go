// Package output renders the JSON envelope every command emits:
// {"status": ..., "message": ..., "results": ...}, printed to a writer and
// optionally persisted to a file.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Envelope statuses.
const (
	StatusOK      = "ok"
	StatusWarning = "warning"
	StatusError   = "error"
)

// Envelope wraps an analysis result with its outcome status.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Results any    `json:"results"`
}

// Render marshals the envelope with indentation.
func (e Envelope) Render() ([]byte, error) {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal envelope: %w", err)
	}
	return data, nil
}

// Emit writes the envelope to w and, when outputFile is non-empty, to that
// file as well.
func Emit(w io.Writer, outputFile string, e Envelope) error {
	data, err := e.Render()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
		return err
	}
	if outputFile != "" {
		if err := os.WriteFile(outputFile, data, 0644); err != nil {
			return fmt.Errorf("write output %s: %w", outputFile, err)
		}
	}
	return nil
}
