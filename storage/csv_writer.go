package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"mlscomp/models"
)

// exportColumns is the fixed leading column order for exports. The
// internal listing-link field is exported as "Web Link" so re-imports
// never mistake it for a source column.
var exportColumns = []string{
	models.ColMLSNumber,
	models.ColAddress,
	models.ColCity,
	models.ColStatus,
	models.ColListPrice,
	models.ColClosePrice,
	models.ColAboveGradeSQFT,
	models.ColBelowGradeSQFT,
	"Total SQFT",
	"Price Per SQFT",
	models.ColBeds,
	models.ColBaths,
	models.ColYearBuilt,
	models.ColDOM,
	models.ColCDOM,
	"Lot SF",
	"Garage Spaces",
	"Price Difference",
	"Price Difference %",
	"SQFT vs Reference",
	"Lot SF vs Reference",
	"Price vs Reference",
	"Price vs Reference %",
	"Reference",
	models.ColRating,
	models.ColBestComp,
	models.ColComparison,
	models.ColSubdivision,
	models.ColCondition,
	models.ColParking,
	models.ColRemarks,
	"Web Link",
}

// CSVWriter exports a processed dataset back to CSV. Derived and
// reference-delta fields come out as plain values, with nil rendered
// as an empty cell.
type CSVWriter struct {
	file      *os.File
	writer    *csv.Writer
	extraCols []string
}

// NewCSVWriter creates (or truncates) the CSV file at the given path
// and writes the header row. extraCols lists the uninterpreted source
// columns to append after the canonical export set; intermediate
// directories are created automatically.
func NewCSVWriter(path string, extraCols []string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	header := append(append([]string{}, exportColumns...), extraCols...)
	if err := w.Write(header); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w, extraCols: extraCols}, nil
}

// Write appends one row per record.
func (c *CSVWriter) Write(records []*models.PropertyRecord) error {
	for _, rec := range records {
		row := []string{
			rec.MLSNumber,
			rec.Address,
			rec.City,
			rec.Status,
			numCell(rec.ListPrice),
			numCell(rec.ClosePrice),
			numCell(rec.AboveGradeArea),
			numCell(rec.BelowGradeArea),
			formatNum(rec.TotalArea),
			formatNum(rec.PricePerArea),
			numCell(rec.Beds),
			numCell(rec.Baths),
			numCell(rec.YearBuilt),
			numCell(rec.DaysOnMarket),
			numCell(rec.CumulativeDOM),
			formatNum(rec.LotAreaSqFt),
			numCell(rec.GarageSpaces),
			numCell(rec.PriceDifference),
			numCell(rec.PriceDifferencePct),
			numCell(rec.AreaDiffVsReference),
			numCell(rec.LotDiffVsReference),
			numCell(rec.PriceDiffVsReference),
			numCell(rec.PriceDiffVsReferencePct),
			boolCell(rec.IsReference),
			strconv.Itoa(rec.Rating),
			rec.BestComp,
			rec.ComparisonVerdict,
			rec.Subdivision,
			rec.Condition,
			rec.Parking,
			rec.Remarks,
			rec.ExternalListingLink,
		}
		for _, col := range c.extraCols {
			row = append(row, rec.Extra[col])
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}

// ExtraColumns returns the source columns from header that the engine
// does not interpret, in header order — the pass-through tail for an
// export.
func ExtraColumns(header []string) []string {
	var extras []string
	for _, col := range header {
		if col == "" || models.Interpreted(col) {
			continue
		}
		extras = append(extras, col)
	}
	return extras
}

func numCell(v *float64) string {
	if v == nil {
		return ""
	}
	return formatNum(*v)
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func boolCell(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}
