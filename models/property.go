package models

// RawRecord is one unprocessed row from a source CSV export: column
// name → raw cell text. A missing key means the cell was absent.
type RawRecord map[string]string

// Expected source column vocabulary. Exports that omit columns still
// parse — a missing column simply yields the field's default — and
// columns outside this list ride along in PropertyRecord.Extra.
const (
	ColMLSNumber      = "MLS #"
	ColAddress        = "Address"
	ColCity           = "City"
	ColStatus         = "Status"
	ColListPrice      = "List Price"
	ColClosePrice     = "Close Price"
	ColAboveGradeSQFT = "Above Grade Finished SQFT"
	ColBelowGradeSQFT = "Below Grade Finished SQFT"
	ColBeds           = "Beds"
	ColBaths          = "Baths"
	ColYearBuilt      = "Year Built"
	ColDOM            = "DOM"
	ColCDOM           = "CDOM"
	ColAcresLotSF     = "Acres/Lot SF"
	ColAttachedGarage = "Attached Garage # of Spaces"
	ColDetachedGarage = "Detached Garage # of Spaces"
	ColSubdivision    = "Subdivision/Neighborhood"
	ColRemarks        = "Remarks"
	ColCondition      = "Condition"
	ColParking        = "Parking"
	ColRating         = "Rating"
	ColBestComp       = "Best Comp"
	ColComparison     = "Comparison"
)

// interpretedColumns lists every source column the engine maps onto a
// typed PropertyRecord field. Anything else a row carries is preserved
// verbatim in PropertyRecord.Extra.
var interpretedColumns = map[string]struct{}{
	ColMLSNumber:      {},
	ColAddress:        {},
	ColCity:           {},
	ColStatus:         {},
	ColListPrice:      {},
	ColClosePrice:     {},
	ColAboveGradeSQFT: {},
	ColBelowGradeSQFT: {},
	ColBeds:           {},
	ColBaths:          {},
	ColYearBuilt:      {},
	ColDOM:            {},
	ColCDOM:           {},
	ColAcresLotSF:     {},
	ColAttachedGarage: {},
	ColDetachedGarage: {},
	ColSubdivision:    {},
	ColRemarks:        {},
	ColCondition:      {},
	ColParking:        {},
	ColRating:         {},
	ColBestComp:       {},
	ColComparison:     {},
}

// Interpreted reports whether the engine maps the given source column
// onto a typed field.
func Interpreted(col string) bool {
	_, ok := interpretedColumns[col]
	return ok
}

// Listing status short codes. Anything else in the Status column is
// passed through untouched.
const (
	StatusExpired    = "EXP"
	StatusClosed     = "CLS"
	StatusActive     = "ACT"
	StatusPending    = "PND"
	StatusComingSoon = "CS"
)

// Comparison verdict values for PropertyRecord.ComparisonVerdict.
const (
	VerdictNotSet    = "Not Set"
	VerdictWorthMore = "Worth More"
	VerdictSame      = "About the Same"
	VerdictWorthLess = "Worth Less"
)

// BestComp flag values.
const (
	BestCompYes = "YES"
	BestCompNo  = "NO"
)

// PropertyRecord is the canonical, typed form of one listing.
// Nullable numerics are *float64: nil means the source cell was
// absent or unreadable; a stored value is always finite, never NaN.
type PropertyRecord struct {
	MLSNumber string
	Address   string
	City      string
	Status    string

	ListPrice      *float64
	ClosePrice     *float64
	AboveGradeArea *float64
	BelowGradeArea *float64
	Beds           *float64
	Baths          *float64
	YearBuilt      *float64
	DaysOnMarket   *float64
	CumulativeDOM  *float64
	GarageSpaces   *float64

	// LotAreaSqFt defaults to 0 (not nil) when the compound
	// "acres / sqft" cell is missing or malformed, so comparison
	// arithmetic never has to null-check it.
	LotAreaSqFt float64

	// Derived per-record fields, owned by the synthesizer.
	TotalArea           float64
	PricePerArea        float64
	PriceDifference     *float64
	PriceDifferencePct  *float64
	ExternalListingLink string

	// Reference-relative deltas, owned by the comparator. All nil
	// (and IsReference false) when no reference record is designated.
	AreaDiffVsReference     *float64
	LotDiffVsReference      *float64
	PriceDiffVsReference    *float64
	PriceDiffVsReferencePct *float64
	IsReference             bool

	// User-entered annotations: never touched by recomputation.
	Rating            int
	BestComp          string
	ComparisonVerdict string

	// Pass-through free text.
	Remarks     string
	Condition   string
	Subdivision string
	Parking     string

	// Extra holds source columns the engine does not interpret,
	// preserved verbatim for round-trip export.
	Extra map[string]string
}

// MarketStats is the aggregate summary over one dataset.
type MarketStats struct {
	TotalProperties int
	ClosedWithPrice int
	ActiveListings  int
	PendingListings int

	AvgListPrice     float64
	AvgClosePrice    float64
	AvgPricePerArea  float64
	AvgDaysOnMarket  int
	AvgSaleToListGap float64
}
