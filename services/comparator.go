package services

import (
	"mlscomp/models"
)

// CompareToReference recomputes every record's deltas against the
// record whose MLS number is referenceMLS. The reference is always an
// explicit argument — nothing here remembers a selection between
// calls. An empty or unknown referenceMLS clears all deltas rather
// than guessing a fallback record.
//
// Records are updated in place, the reference included: it compares
// against itself and lands on all-zero deltas.
func CompareToReference(records []*models.PropertyRecord, referenceMLS string) {
	ref := findByMLS(records, referenceMLS)
	if ref == nil {
		for _, rec := range records {
			rec.AreaDiffVsReference = nil
			rec.LotDiffVsReference = nil
			rec.PriceDiffVsReference = nil
			rec.PriceDiffVsReferencePct = nil
			rec.IsReference = false
		}
		return
	}

	for _, rec := range records {
		areaDiff := orZero(rec.AboveGradeArea) - orZero(ref.AboveGradeArea)
		rec.AreaDiffVsReference = &areaDiff

		// Lot sizes normalize to 0 rather than nil, so this delta is
		// always present once a reference exists.
		lotDiff := rec.LotAreaSqFt - ref.LotAreaSqFt
		rec.LotDiffVsReference = &lotDiff

		rec.PriceDiffVsReference = nil
		rec.PriceDiffVsReferencePct = nil
		if rec.ListPrice != nil && ref.ListPrice != nil {
			priceDiff := *rec.ListPrice - *ref.ListPrice
			rec.PriceDiffVsReference = &priceDiff
			if *ref.ListPrice != 0 {
				pct := round2(priceDiff / *ref.ListPrice * 100)
				rec.PriceDiffVsReferencePct = &pct
			}
		}

		rec.IsReference = rec.MLSNumber == ref.MLSNumber
	}
}

func findByMLS(records []*models.PropertyRecord, mls string) *models.PropertyRecord {
	if mls == "" {
		return nil
	}
	for _, rec := range records {
		if rec.MLSNumber == mls {
			return rec
		}
	}
	return nil
}
