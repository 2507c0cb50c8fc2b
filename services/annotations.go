package services

import (
	"fmt"

	"mlscomp/models"
)

// Annotation setters: the user-entered fields that survive every
// recomputation. All of them key on MLS number and touch nothing
// derived, so no re-synthesis is needed afterwards.

// SetRating stores a 0–5 star rating on the record with the given
// MLS number.
func SetRating(records []*models.PropertyRecord, mls string, rating int) error {
	if rating < 0 || rating > 5 {
		return fmt.Errorf("annotations: rating %d out of range 0-5", rating)
	}
	rec := findByMLS(records, mls)
	if rec == nil {
		return fmt.Errorf("annotations: no record with MLS %q", mls)
	}
	rec.Rating = rating
	return nil
}

// SetBestComp flags or unflags a record as the best comparable.
func SetBestComp(records []*models.PropertyRecord, mls string, best bool) error {
	rec := findByMLS(records, mls)
	if rec == nil {
		return fmt.Errorf("annotations: no record with MLS %q", mls)
	}
	if best {
		rec.BestComp = models.BestCompYes
	} else {
		rec.BestComp = models.BestCompNo
	}
	return nil
}

// SetVerdict stores the user's worth-comparison verdict.
func SetVerdict(records []*models.PropertyRecord, mls, verdict string) error {
	switch verdict {
	case models.VerdictNotSet, models.VerdictWorthMore, models.VerdictSame, models.VerdictWorthLess:
	default:
		return fmt.Errorf("annotations: unknown verdict %q", verdict)
	}
	rec := findByMLS(records, mls)
	if rec == nil {
		return fmt.Errorf("annotations: no record with MLS %q", mls)
	}
	rec.ComparisonVerdict = verdict
	return nil
}
