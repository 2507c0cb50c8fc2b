package services

import (
	"regexp"
	"strconv"
	"strings"

	"mlscomp/models"
	"mlscomp/utils"
)

// lotRegexp captures the square-footage half of an "acres / sqft"
// compound cell, e.g. "0.21 / 9365" → "9365".
var lotRegexp = regexp.MustCompile(`[\d.,]+\s*/\s*([\d.,]+)`)

// Normalizer converts raw CSV rows into typed PropertyRecords.
// Malformed cell data never produces an error: unreadable numerics
// resolve to nil (or 0 for lot size and garage spaces).
type Normalizer struct {
	logger *utils.Logger
}

// NewNormalizer creates a Normalizer with the given logger.
func NewNormalizer(logger *utils.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// Normalize maps one raw row onto the canonical schema. Derived and
// reference-delta fields are left at their zero values; the
// synthesizer and comparator own those.
func (n *Normalizer) Normalize(raw models.RawRecord) *models.PropertyRecord {
	rec := &models.PropertyRecord{
		MLSNumber: strings.TrimSpace(raw[models.ColMLSNumber]),
		Address:   strings.TrimSpace(raw[models.ColAddress]),
		City:      strings.TrimSpace(raw[models.ColCity]),
		Status:    strings.TrimSpace(raw[models.ColStatus]),

		ListPrice:      opt(parseCurrency(raw[models.ColListPrice])),
		ClosePrice:     opt(parseCurrency(raw[models.ColClosePrice])),
		AboveGradeArea: opt(parseNumber(raw[models.ColAboveGradeSQFT])),
		BelowGradeArea: opt(parseNumber(raw[models.ColBelowGradeSQFT])),
		Beds:           opt(parseNumber(raw[models.ColBeds])),
		Baths:          opt(parseBaths(raw[models.ColBaths])),
		YearBuilt:      opt(parseNumber(raw[models.ColYearBuilt])),
		DaysOnMarket:   opt(parseNumber(raw[models.ColDOM])),
		CumulativeDOM:  opt(parseNumber(raw[models.ColCDOM])),

		LotAreaSqFt: parseLotSqFt(raw[models.ColAcresLotSF]),

		Rating:            parseRating(raw[models.ColRating]),
		BestComp:          defaultText(raw[models.ColBestComp], models.BestCompNo),
		ComparisonVerdict: defaultText(raw[models.ColComparison], models.VerdictNotSet),

		Remarks:     raw[models.ColRemarks],
		Condition:   raw[models.ColCondition],
		Subdivision: raw[models.ColSubdivision],
		Parking:     raw[models.ColParking],
	}

	rec.GarageSpaces = combineGarage(
		raw[models.ColAttachedGarage], raw[models.ColDetachedGarage])

	for col, val := range raw {
		if models.Interpreted(col) {
			continue
		}
		if rec.Extra == nil {
			rec.Extra = make(map[string]string)
		}
		rec.Extra[col] = val
	}

	if rec.Address == "" && n.logger != nil {
		n.logger.Warn("[normalizer] Record %s has no address — unusable for merge dedup", rec.MLSNumber)
	}

	return rec
}

// parseCurrency reads a dollar amount such as "$1,250,000".
// The bool result is false when the cell is empty or unreadable.
func parseCurrency(raw string) (float64, bool) {
	cleaned := strings.ReplaceAll(raw, "$", "")
	return parseNumber(cleaned)
}

// parseNumber reads a plain numeric cell, tolerating thousands
// separators.
func parseNumber(raw string) (float64, bool) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if cleaned == "" {
		return 0, false
	}
	val, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return val, true
}

// parseBaths reads a bath count. MLS exports encode half baths as a
// hyphenated pair: "2-1" means 2 full + 1 half → 2.5. Plain numerics
// and anything else fall back to generic numeric parsing, so
// non-numeric hyphenated tokens resolve to absent rather than a
// guessed value.
func parseBaths(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if parts := strings.Split(trimmed, "-"); len(parts) == 2 {
		whole, okW := parseNumber(parts[0])
		half, okH := parseNumber(parts[1])
		if okW && okH {
			return whole + half*0.5, true
		}
	}
	return parseNumber(trimmed)
}

// parseLotSqFt extracts the square-footage group from an
// "acres / sqft" cell. No match → 0, deliberately not absent: lot
// size feeds subtraction in the comparator and must stay arithmetic.
func parseLotSqFt(raw string) float64 {
	match := lotRegexp.FindStringSubmatch(raw)
	if len(match) < 2 {
		return 0
	}
	val, ok := parseNumber(match[1])
	if !ok {
		return 0
	}
	return val
}

// combineGarage sums attached and detached garage spaces, treating a
// missing cell as 0. A combined total of 0 collapses to nil — the
// source format does not distinguish "no garage" from "not recorded".
func combineGarage(attached, detached string) *float64 {
	a, _ := parseNumber(attached)
	d, _ := parseNumber(detached)
	total := a + d
	if total == 0 {
		return nil
	}
	return &total
}

// parseRating reads a saved 0–5 star rating, defaulting to 0.
func parseRating(raw string) int {
	val, ok := parseNumber(raw)
	if !ok {
		return 0
	}
	r := int(val)
	if r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}

func defaultText(raw, fallback string) string {
	if strings.TrimSpace(raw) == "" {
		return fallback
	}
	return raw
}

// opt collapses a tagged parse result to the nullable form stored on
// PropertyRecord. The tagged form exists so parse failures stay
// testable before they flatten into nil.
func opt(val float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &val
}
