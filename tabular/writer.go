// Package tabular serializes generated datasets to delimited text: one
// header line followed by one comma-separated line per row, UTF-8, with
// rendering delegated to the schema (integers as bare digits, ppm floats
// at two decimals, label as its {0,1} sentinel).
//
// Error policy: the only failure mode is the output destination being
// unwritable (permissions, disk full, invalid path). Every such failure is
// wrapped around ErrWrite with the path attached; a partially written file
// may remain — no cleanup is attempted.
//
// Errors:
//
//	ErrWrite - the destination could not be created or written.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/PenyelamatPangan/Models/sensor"
)

// ErrWrite indicates that the output destination could not be created or
// written to. Terminal for the run; not retried.
// Usage: if errors.Is(err, ErrWrite) { /* report and exit */ }.
var ErrWrite = errors.New("tabular: output write failed")

// Write serializes the dataset to a CSV file at path: the schema's exact
// header, then every row in sequence order. Returns the number of data
// rows written and, on any I/O failure, an error wrapping ErrWrite.
// Complexity: O(rows × fields).
func Write(path string, schema sensor.Schema, rows []sensor.Row) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %v: %w", path, err, ErrWrite)
	}

	n, werr := WriteTo(f, schema, rows)
	cerr := f.Close()

	if werr != nil {
		return n, fmt.Errorf("write %s: %w", path, werr)
	}
	if cerr != nil {
		// A failed close can swallow buffered data; treat it as a write failure.
		return n, fmt.Errorf("close %s: %v: %w", path, cerr, ErrWrite)
	}

	return n, nil
}

// WriteTo serializes header and rows to an arbitrary destination.
// Returns the number of data rows written before the first failure.
// Complexity: O(rows × fields).
func WriteTo(w io.Writer, schema sensor.Schema, rows []sensor.Row) (int, error) {
	if err := schema.Validate(); err != nil {
		return 0, err
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(schema.Header()); err != nil {
		return 0, fmt.Errorf("header: %v: %w", err, ErrWrite)
	}

	for i, row := range rows {
		cells, err := schema.Render(row)
		if err != nil {
			// Row/schema mismatch is a programmer error surfaced as-is,
			// not an I/O failure.
			return i, fmt.Errorf("row %d: %w", i, err)
		}
		if err = cw.Write(cells); err != nil {
			return i, fmt.Errorf("row %d: %v: %w", i, err, ErrWrite)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return len(rows), fmt.Errorf("flush: %v: %w", err, ErrWrite)
	}

	return len(rows), nil
}
