package dataset

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/banshee-data/scenario.report/internal/scenario"
)

// Writer appends scenarios to an NDJSON stream, one per line.
type Writer struct {
	enc     *json.Encoder
	closers []io.Closer
}

// Create creates a dataset file for writing, gzip-compressed when the
// filename ends in .gz.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create dataset: %w", err)
	}
	var w io.Writer = f
	closers := []io.Closer{f}
	if strings.HasSuffix(path, ".gz") {
		gz := gzip.NewWriter(f)
		w = gz
		closers = append(closers, gz)
	}
	return NewWriter(w, closers...), nil
}

// NewWriter wraps an already-open stream. Any closers given are closed by
// Close, last first.
func NewWriter(w io.Writer, closers ...io.Closer) *Writer {
	return &Writer{enc: json.NewEncoder(w), closers: closers}
}

// Write appends one scenario. json.Encoder terminates each document with
// a newline, which is exactly the NDJSON framing.
func (w *Writer) Write(s *scenario.Scenario) error {
	if err := w.enc.Encode(encodeScenario(s)); err != nil {
		return fmt.Errorf("encode scenario %s: %w", s.ID, err)
	}
	return nil
}

// Close flushes and releases the underlying stream.
func (w *Writer) Close() error {
	var firstErr error
	for i := len(w.closers) - 1; i >= 0; i-- {
		if err := w.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
