package services

import (
	"math"

	"mlscomp/models"
	"mlscomp/utils"
)

// StatsService reduces a dataset into its market summary.
type StatsService struct {
	logger *utils.Logger
}

// NewStatsService creates a StatsService with the given logger.
func NewStatsService(logger *utils.Logger) *StatsService {
	return &StatsService{logger: logger}
}

// Summarize computes counts and averages over records. An empty
// dataset yields all-zero stats — never a division by zero.
//
// List price, price per area and days on market average over the full
// dataset with absent values counted as 0. Close price and the
// sale-vs-list gap average over the closed-with-price subset only.
func (s *StatsService) Summarize(records []*models.PropertyRecord) *models.MarketStats {
	stats := &models.MarketStats{TotalProperties: len(records)}
	if len(records) == 0 {
		return stats
	}

	var listSum, ppaSum, domSum float64
	var closeSum, gapSum float64

	for _, rec := range records {
		switch rec.Status {
		case models.StatusClosed:
			if rec.ClosePrice != nil {
				stats.ClosedWithPrice++
				closeSum += *rec.ClosePrice
				if rec.PriceDifference != nil {
					gapSum += *rec.PriceDifference
				}
			}
		case models.StatusActive:
			stats.ActiveListings++
		case models.StatusPending:
			stats.PendingListings++
		}

		listSum += orZero(rec.ListPrice)
		ppaSum += rec.PricePerArea
		domSum += orZero(rec.DaysOnMarket)
	}

	total := float64(len(records))
	stats.AvgListPrice = round2(listSum / total)
	stats.AvgPricePerArea = round2(ppaSum / total)
	stats.AvgDaysOnMarket = int(math.Round(domSum / total))

	if stats.ClosedWithPrice > 0 {
		closed := float64(stats.ClosedWithPrice)
		stats.AvgClosePrice = round2(closeSum / closed)
		stats.AvgSaleToListGap = round2(gapSum / closed)
	}

	if s.logger != nil {
		s.logger.Debug("[stats] Summarized %d records (%d closed w/ price, %d active, %d pending)",
			stats.TotalProperties, stats.ClosedWithPrice, stats.ActiveListings, stats.PendingListings)
	}

	return stats
}
