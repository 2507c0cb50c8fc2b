package services

import (
	"strings"

	"mlscomp/models"
	"mlscomp/utils"
)

// Merger folds a second raw batch into an already-normalized dataset
// without creating duplicate properties.
type Merger struct {
	normalizer *Normalizer
	logger     *utils.Logger
}

// NewMerger creates a Merger with the given logger.
func NewMerger(logger *utils.Logger) *Merger {
	return &Merger{normalizer: NewNormalizer(logger), logger: logger}
}

// Merge appends the novel rows of incoming to existing. Duplicates
// are detected by normalized address and always resolve in favor of
// the record already present (or the earlier row within incoming) —
// existing records keep their positions, annotations and MLS numbers
// untouched. Novel rows pass through normalization and synthesis
// only; reference deltas for the merged set are the caller's next
// pipeline stage.
//
// Rows without an address can never dedup-match and are appended
// as-is, in source order like every other survivor.
func (m *Merger) Merge(existing []*models.PropertyRecord, incoming []models.RawRecord) []*models.PropertyRecord {
	seen := make(map[string]struct{}, len(existing))
	for _, rec := range existing {
		if key := dedupKey(rec.Address); key != "" {
			seen[key] = struct{}{}
		}
	}

	merged := make([]*models.PropertyRecord, len(existing), len(existing)+len(incoming))
	copy(merged, existing)

	added := 0
	for _, raw := range incoming {
		key := dedupKey(raw[models.ColAddress])
		if key != "" {
			if _, dup := seen[key]; dup {
				if m.logger != nil {
					m.logger.Debug("[merger] Duplicate address skipped: %s", raw[models.ColAddress])
				}
				continue
			}
			seen[key] = struct{}{}
		}

		rec := m.normalizer.Normalize(raw)
		Synthesize(rec)
		merged = append(merged, rec)
		added++
	}

	if m.logger != nil {
		m.logger.Info("[merger] Merged %d incoming rows: %d added, %d duplicates dropped",
			len(incoming), added, len(incoming)-added)
	}
	return merged
}

// dedupKey normalizes an address for duplicate detection: trimmed and
// lowercased, so "123 Main St" and "  123 MAIN ST " collide.
func dedupKey(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}
