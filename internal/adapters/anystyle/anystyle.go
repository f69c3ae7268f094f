// Package anystyle shells out to the anystyle CLI (a Ruby reference
// parser) and returns its raw JSON output. Decoding and formatting live in
// the references domain package; this adapter only runs the tool.
package anystyle

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
)

// ErrNotFound reports a missing input document.
var ErrNotFound = errors.New("input file not found")

// ErrUnavailable reports that the anystyle binary is not installed.
var ErrUnavailable = errors.New("anystyle CLI not available")

// Find runs `anystyle find <pdfPath>` and returns its stdout (a JSON array
// of reference records). Stderr is folded into the error on failure.
func Find(ctx context.Context, pdfPath string) ([]byte, error) {
	if _, err := os.Stat(pdfPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, pdfPath)
		}
		return nil, fmt.Errorf("stat %s: %w", pdfPath, err)
	}

	if _, err := exec.LookPath("anystyle"); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	cmd := exec.CommandContext(ctx, "anystyle", "find", pdfPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("anystyle find %s: %w: %s", pdfPath, err, bytes.TrimSpace(stderr.Bytes()))
	}
	return stdout.Bytes(), nil
}
