package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlscomp/models"
)

func compDataset() []*models.PropertyRecord {
	return []*models.PropertyRecord{
		{MLSNumber: "100", AboveGradeArea: fp(2000), LotAreaSqFt: 9000, ListPrice: fp(500000)},
		{MLSNumber: "200", AboveGradeArea: fp(2400), LotAreaSqFt: 10500, ListPrice: fp(550000)},
		{MLSNumber: "300", AboveGradeArea: nil, LotAreaSqFt: 0, ListPrice: nil},
	}
}

func TestCompareNoReference(t *testing.T) {
	records := compDataset()
	CompareToReference(records, "")

	for _, rec := range records {
		assert.Nil(t, rec.AreaDiffVsReference, "MLS %s", rec.MLSNumber)
		assert.Nil(t, rec.LotDiffVsReference, "MLS %s", rec.MLSNumber)
		assert.Nil(t, rec.PriceDiffVsReference, "MLS %s", rec.MLSNumber)
		assert.Nil(t, rec.PriceDiffVsReferencePct, "MLS %s", rec.MLSNumber)
		assert.False(t, rec.IsReference, "MLS %s", rec.MLSNumber)
	}
}

func TestCompareUnknownReferenceClearsDeltas(t *testing.T) {
	records := compDataset()

	// Designate, then point at an MLS number that no longer exists:
	// an unknown reference behaves exactly like no reference.
	CompareToReference(records, "100")
	CompareToReference(records, "does-not-exist")

	for _, rec := range records {
		assert.Nil(t, rec.AreaDiffVsReference)
		assert.Nil(t, rec.PriceDiffVsReference)
		assert.False(t, rec.IsReference)
	}
}

func TestCompareAgainstReference(t *testing.T) {
	records := compDataset()
	CompareToReference(records, "100")

	ref, other, sparse := records[0], records[1], records[2]

	assert.True(t, ref.IsReference)
	assert.False(t, other.IsReference)
	assert.False(t, sparse.IsReference)

	// The reference compares against itself: zero everywhere, with a
	// real 0.00 percent because its own list price is present.
	require.NotNil(t, ref.AreaDiffVsReference)
	assert.Equal(t, 0.0, *ref.AreaDiffVsReference)
	require.NotNil(t, ref.LotDiffVsReference)
	assert.Equal(t, 0.0, *ref.LotDiffVsReference)
	require.NotNil(t, ref.PriceDiffVsReference)
	assert.Equal(t, 0.0, *ref.PriceDiffVsReference)
	require.NotNil(t, ref.PriceDiffVsReferencePct)
	assert.Equal(t, 0.0, *ref.PriceDiffVsReferencePct)

	require.NotNil(t, other.AreaDiffVsReference)
	assert.Equal(t, 400.0, *other.AreaDiffVsReference)
	require.NotNil(t, other.LotDiffVsReference)
	assert.Equal(t, 1500.0, *other.LotDiffVsReference)
	require.NotNil(t, other.PriceDiffVsReference)
	assert.Equal(t, 50000.0, *other.PriceDiffVsReference)
	require.NotNil(t, other.PriceDiffVsReferencePct)
	assert.Equal(t, 10.0, *other.PriceDiffVsReferencePct)

	// Absent area counts as 0; absent price keeps the price deltas nil
	// while the always-present lot size still yields a number.
	require.NotNil(t, sparse.AreaDiffVsReference)
	assert.Equal(t, -2000.0, *sparse.AreaDiffVsReference)
	require.NotNil(t, sparse.LotDiffVsReference)
	assert.Equal(t, -9000.0, *sparse.LotDiffVsReference)
	assert.Nil(t, sparse.PriceDiffVsReference)
	assert.Nil(t, sparse.PriceDiffVsReferencePct)
}

func TestCompareSwitchingReference(t *testing.T) {
	records := compDataset()
	CompareToReference(records, "100")
	CompareToReference(records, "200")

	assert.False(t, records[0].IsReference)
	assert.True(t, records[1].IsReference)
	require.NotNil(t, records[0].AreaDiffVsReference)
	assert.Equal(t, -400.0, *records[0].AreaDiffVsReference)
}

func TestCompareReferenceWithoutListPrice(t *testing.T) {
	records := compDataset()
	CompareToReference(records, "300")

	// No reference list price → every price delta is nil, even for
	// records that have one.
	for _, rec := range records {
		assert.Nil(t, rec.PriceDiffVsReference, "MLS %s", rec.MLSNumber)
		assert.Nil(t, rec.PriceDiffVsReferencePct, "MLS %s", rec.MLSNumber)
	}
	assert.True(t, records[2].IsReference)
}
