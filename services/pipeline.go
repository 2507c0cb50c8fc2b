package services

import (
	"mlscomp/models"
	"mlscomp/utils"
)

// Pipeline runs raw rows through normalization and synthesis, and
// recomputes derived state for a live dataset. It holds no data of
// its own: every method takes a collection and the caller keeps the
// result.
type Pipeline struct {
	normalizer *Normalizer
	logger     *utils.Logger
}

// NewPipeline creates a Pipeline with the given logger.
func NewPipeline(logger *utils.Logger) *Pipeline {
	return &Pipeline{normalizer: NewNormalizer(logger), logger: logger}
}

// Ingest converts a raw batch into PropertyRecords with all
// per-record derived fields populated. Reference deltas stay unset
// until the caller designates a reference via Recompute.
func (p *Pipeline) Ingest(raws []models.RawRecord) []*models.PropertyRecord {
	records := make([]*models.PropertyRecord, 0, len(raws))
	for _, raw := range raws {
		rec := p.normalizer.Normalize(raw)
		Synthesize(rec)
		records = append(records, rec)
	}
	if p.logger != nil {
		p.logger.Info("[pipeline] Ingested %d raw rows", len(raws))
	}
	return records
}

// Recompute re-derives every dependent field across the dataset:
// per-record synthesis first, then reference deltas. Call it after
// any base-field edit or whenever the designated reference changes —
// a record is never updated without its derived fields following.
func (p *Pipeline) Recompute(records []*models.PropertyRecord, referenceMLS string) {
	for _, rec := range records {
		Synthesize(rec)
	}
	CompareToReference(records, referenceMLS)
}
