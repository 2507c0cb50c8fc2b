package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mlscomp/models"
)

func statsDataset() []*models.PropertyRecord {
	records := []*models.PropertyRecord{
		{MLSNumber: "1", Status: models.StatusClosed, ListPrice: fp(500000), ClosePrice: fp(490000), DaysOnMarket: fp(12)},
		{MLSNumber: "2", Status: models.StatusClosed, ListPrice: fp(600000), ClosePrice: fp(612000), DaysOnMarket: fp(30)},
		{MLSNumber: "3", Status: models.StatusActive, ListPrice: fp(450000), DaysOnMarket: fp(5)},
		{MLSNumber: "4", Status: models.StatusPending, ListPrice: fp(520000)},
		{MLSNumber: "5", Status: models.StatusClosed}, // closed but no close price
	}
	for _, rec := range records {
		Synthesize(rec)
	}
	return records
}

func TestSummarizeCounts(t *testing.T) {
	stats := NewStatsService(nil).Summarize(statsDataset())

	assert.Equal(t, 5, stats.TotalProperties)
	assert.Equal(t, 2, stats.ClosedWithPrice)
	assert.Equal(t, 1, stats.ActiveListings)
	assert.Equal(t, 1, stats.PendingListings)
}

func TestSummarizeAverages(t *testing.T) {
	stats := NewStatsService(nil).Summarize(statsDataset())

	// List price averages over everything, absent = 0:
	// (500000+600000+450000+520000+0)/5
	assert.Equal(t, 414000.0, stats.AvgListPrice)

	// Close price averages over the closed-with-price subset only.
	assert.Equal(t, 551000.0, stats.AvgClosePrice)

	// Sale-vs-list gap over the same subset: (-10000 + 12000) / 2.
	assert.Equal(t, 1000.0, stats.AvgSaleToListGap)

	// DOM averages over everything, absent = 0: (12+30+5+0+0)/5 = 9.4 → 9.
	assert.Equal(t, 9, stats.AvgDaysOnMarket)
}

func TestSummarizeNullListPriceCountsAsZero(t *testing.T) {
	records := []*models.PropertyRecord{
		{MLSNumber: "1", ListPrice: fp(500000)},
		{MLSNumber: "2", ListPrice: fp(600000)},
		{MLSNumber: "3"},
	}
	stats := NewStatsService(nil).Summarize(records)

	assert.Equal(t, 3, stats.TotalProperties)
	assert.Equal(t, 366666.67, stats.AvgListPrice)
}

func TestSummarizeNoClosedSales(t *testing.T) {
	records := []*models.PropertyRecord{
		{MLSNumber: "1", Status: models.StatusActive, ListPrice: fp(400000)},
	}
	stats := NewStatsService(nil).Summarize(records)

	assert.Equal(t, 0, stats.ClosedWithPrice)
	assert.Equal(t, 0.0, stats.AvgClosePrice)
	assert.Equal(t, 0.0, stats.AvgSaleToListGap)
}

func TestSummarizeEmptyDataset(t *testing.T) {
	stats := NewStatsService(nil).Summarize(nil)

	assert.Equal(t, 0, stats.TotalProperties)
	assert.Equal(t, 0.0, stats.AvgListPrice)
	assert.Equal(t, 0.0, stats.AvgClosePrice)
	assert.Equal(t, 0.0, stats.AvgPricePerArea)
	assert.Equal(t, 0, stats.AvgDaysOnMarket)
}

func TestSummarizePricePerArea(t *testing.T) {
	records := []*models.PropertyRecord{
		{MLSNumber: "1", ListPrice: fp(400000), AboveGradeArea: fp(2000)},
		{MLSNumber: "2"},
	}
	for _, rec := range records {
		Synthesize(rec)
	}
	stats := NewStatsService(nil).Summarize(records)

	// (200 + 0) / 2 — records without price-per-area contribute 0.
	assert.Equal(t, 100.0, stats.AvgPricePerArea)
}
