package dataset

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/banshee-data/scenario.report/internal/scenario"
)

// maxLineBytes bounds a single scenario line. Scenario documents with
// large roadgraphs run to several megabytes of JSON.
const maxLineBytes = 256 << 20

// Iterator yields scenarios from an NDJSON stream, one per line. Next
// returns io.EOF after the last scenario.
type Iterator struct {
	scanner *bufio.Scanner
	line    int
	closers []io.Closer
}

// Open opens a dataset file for iteration. Filenames ending in .gz are
// transparently decompressed.
func Open(path string) (*Iterator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	var r io.Reader = f
	closers := []io.Closer{f}
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open gzip dataset: %w", err)
		}
		r = gz
		closers = append(closers, gz)
	}
	return NewIterator(r, closers...), nil
}

// NewIterator wraps an already-open NDJSON stream. Any closers given are
// closed by Close, last first.
func NewIterator(r io.Reader, closers ...io.Closer) *Iterator {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1<<20), maxLineBytes)
	return &Iterator{scanner: scanner, closers: closers}
}

// Next decodes and validates the next scenario. Blank lines are skipped;
// malformed documents and invalid scenarios fail with their line number.
func (it *Iterator) Next() (*scenario.Scenario, error) {
	for it.scanner.Scan() {
		it.line++
		text := strings.TrimSpace(it.scanner.Text())
		if text == "" {
			continue
		}
		var w scenarioJSON
		if err := json.Unmarshal([]byte(text), &w); err != nil {
			return nil, fmt.Errorf("dataset line %d: decode: %w", it.line, err)
		}
		s, err := decodeScenario(w)
		if err != nil {
			return nil, fmt.Errorf("dataset line %d: %w", it.line, err)
		}
		if result := scenario.Validate(s); !result.Valid {
			return nil, fmt.Errorf("dataset line %d: invalid scenario: %s",
				it.line, strings.Join(result.Issues, "; "))
		}
		return s, nil
	}
	if err := it.scanner.Err(); err != nil {
		return nil, fmt.Errorf("dataset line %d: read: %w", it.line, err)
	}
	return nil, io.EOF
}

// Close releases the underlying stream.
func (it *Iterator) Close() error {
	var firstErr error
	for i := len(it.closers) - 1; i >= 0; i-- {
		if err := it.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// ReadAll drains an iterator into a slice. Intended for small fixture
// datasets; production callers should stream via Next.
func ReadAll(it *Iterator) ([]*scenario.Scenario, error) {
	var out []*scenario.Scenario
	for {
		s, err := it.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
}
