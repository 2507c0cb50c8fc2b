package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mlscomp/models"
	"mlscomp/utils"
)

// Reader turns an MLS CSV export into raw rows for the engine. Cell
// contents are not validated here — that's the normalizer's job — but
// a structurally broken file (unreadable, empty, ragged quoting) is
// reported as a single error carrying the first failure encountered.
type Reader struct {
	logger *utils.Logger
}

// NewReader creates a Reader with the given logger.
func NewReader(logger *utils.Logger) *Reader {
	return &Reader{logger: logger}
}

// ReadFile reads the CSV at path and returns the header row plus one
// RawRecord per data row. Cells beyond the header width are dropped;
// short rows leave the remaining columns absent.
func (r *Reader) ReadFile(path string) ([]string, []models.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("ingest: open %q: %w", path, err)
	}
	defer f.Close()

	header, rows, err := r.Read(f)
	if err != nil {
		return nil, nil, fmt.Errorf("ingest: parse %q: %w", path, err)
	}
	return header, rows, nil
}

// Read parses CSV text from src.
func (r *Reader) Read(src io.Reader) ([]string, []models.RawRecord, error) {
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, errors.New("empty file")
	}
	if err != nil {
		return nil, nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []models.RawRecord
	for {
		cells, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// First structural failure aborts the whole read; the
			// engine never sees rows from a half-parsed file.
			return nil, nil, err
		}

		row := make(models.RawRecord, len(header))
		for i, col := range header {
			if col == "" || i >= len(cells) {
				continue
			}
			row[col] = cells[i]
		}
		rows = append(rows, row)
	}

	if r.logger != nil {
		r.logger.Info("[ingest] Parsed %d rows (%d columns)", len(rows), len(header))
	}
	return header, rows, nil
}
