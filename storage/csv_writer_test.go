package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlscomp/models"
)

func fp(v float64) *float64 { return &v }

func readBack(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVWriterExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "comps.csv")

	w, err := NewCSVWriter(path, []string{"Roof Type"})
	require.NoError(t, err)

	records := []*models.PropertyRecord{
		{
			MLSNumber:           "12345",
			Address:             "123 Main St",
			City:                "Vienna",
			Status:              models.StatusClosed,
			ListPrice:           fp(500000),
			ClosePrice:          fp(490000),
			TotalArea:           2400,
			PricePerArea:        208.33,
			LotAreaSqFt:         9365,
			PriceDifference:     fp(-10000),
			PriceDifferencePct:  fp(-2),
			IsReference:         true,
			Rating:              4,
			BestComp:            models.BestCompYes,
			ComparisonVerdict:   models.VerdictSame,
			ExternalListingLink: "https://www.zillow.com/homes/123-main-st-vienna_rb/",
			Extra:               map[string]string{"Roof Type": "Shingle"},
		},
		{
			MLSNumber: "67890",
			Address:   "456 Oak Ave",
			BestComp:  models.BestCompNo,
		},
	}

	require.NoError(t, w.Write(records))
	require.NoError(t, w.Close())

	rows := readBack(t, path)
	require.Len(t, rows, 3)
	header := rows[0]

	col := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		t.Fatalf("column %q missing from export header", name)
		return -1
	}

	// The listing link travels under its export-only name.
	assert.Equal(t, "https://www.zillow.com/homes/123-main-st-vienna_rb/", rows[1][col("Web Link")])
	for _, h := range header {
		assert.NotEqual(t, "External Listing Link", h)
	}

	assert.Equal(t, "500000", rows[1][col(models.ColListPrice)])
	assert.Equal(t, "-10000", rows[1][col("Price Difference")])
	assert.Equal(t, "YES", rows[1][col("Reference")])
	assert.Equal(t, "Shingle", rows[1][col("Roof Type")])

	// Absent values export as empty cells, never "NaN" or "<nil>".
	assert.Equal(t, "", rows[2][col(models.ColListPrice)])
	assert.Equal(t, "", rows[2][col("Price Difference")])
	assert.Equal(t, "NO", rows[2][col("Reference")])
	assert.Equal(t, "0", rows[2][col("Lot SF")])
}

func TestExtraColumns(t *testing.T) {
	header := []string{
		models.ColMLSNumber, models.ColAddress, models.ColAcresLotSF,
		models.ColAttachedGarage, "Roof Type", "", "School District",
	}

	// Interpreted source columns (even ones that export under a
	// different name, like the lot and garage cells) are not extras.
	assert.Equal(t, []string{"Roof Type", "School District"}, ExtraColumns(header))
}
