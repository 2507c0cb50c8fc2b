package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"mlscomp/models"
)

// PrintStats renders the market summary as a terminal table.
func PrintStats(w io.Writer, stats *models.MarketStats) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Market Summary")

	t.AppendRows([]table.Row{
		{"Total properties", stats.TotalProperties},
		{"Closed (with close price)", stats.ClosedWithPrice},
		{"Active", stats.ActiveListings},
		{"Pending", stats.PendingListings},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Avg list price", money(stats.AvgListPrice)},
		{"Avg close price", money(stats.AvgClosePrice)},
		{"Avg price / SQFT", money(stats.AvgPricePerArea)},
		{"Avg days on market", stats.AvgDaysOnMarket},
		{"Avg sale vs list", money(stats.AvgSaleToListGap)},
	})

	t.Render()
}

// PrintComps renders the dataset with its reference-relative deltas.
// The reference record, when present, is marked with a star.
func PrintComps(w io.Writer, records []*models.PropertyRecord) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{
		"", "MLS #", "Address", "Status", "List Price",
		"SQFT", "Δ SQFT", "Δ Lot SF", "Δ Price", "Δ Price %", "Rating",
	})

	for _, rec := range records {
		mark := ""
		if rec.IsReference {
			mark = "★"
		}
		t.AppendRow(table.Row{
			mark,
			rec.MLSNumber,
			rec.Address,
			rec.Status,
			numCell(rec.ListPrice),
			fmt.Sprintf("%.0f", rec.TotalArea),
			numCell(rec.AreaDiffVsReference),
			numCell(rec.LotDiffVsReference),
			numCell(rec.PriceDiffVsReference),
			numCell(rec.PriceDiffVsReferencePct),
			rec.Rating,
		})
	}

	t.Render()
	fmt.Fprintf(w, "(%d records)\n", len(records))
}

func numCell(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *v)
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
