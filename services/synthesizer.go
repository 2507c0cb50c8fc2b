package services

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"mlscomp/models"
)

const listingLinkTemplate = "https://www.zillow.com/homes/%s-%s_rb/"

var nonSlugRegexp = regexp.MustCompile(`[^a-z0-9 ]+`)

// Synthesize recomputes every derived field on rec from its base
// fields. It must run again for the whole dataset whenever any base
// field changes: totalArea feeds pricePerArea, which the aggregator
// consumes.
func Synthesize(rec *models.PropertyRecord) {
	rec.TotalArea = orZero(rec.AboveGradeArea) + orZero(rec.BelowGradeArea)

	rec.PricePerArea = 0
	if rec.ListPrice != nil && *rec.ListPrice > 0 && rec.TotalArea > 0 {
		rec.PricePerArea = *rec.ListPrice / rec.TotalArea
	}

	rec.PriceDifference = nil
	rec.PriceDifferencePct = nil
	if rec.ClosePrice != nil && rec.ListPrice != nil {
		diff := *rec.ClosePrice - *rec.ListPrice
		rec.PriceDifference = &diff
		if *rec.ListPrice != 0 {
			pct := round2(diff / *rec.ListPrice * 100)
			rec.PriceDifferencePct = &pct
		}
	}

	rec.ExternalListingLink = ""
	if rec.Address != "" && rec.City != "" {
		rec.ExternalListingLink = fmt.Sprintf(listingLinkTemplate,
			slugify(rec.Address), slugify(rec.City))
	}
}

// slugify lowercases s, drops everything but letters, digits and
// spaces, and joins the remaining words with hyphens.
func slugify(s string) string {
	s = strings.ToLower(s)
	s = nonSlugRegexp.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), "-")
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
