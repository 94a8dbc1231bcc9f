// Package algo has pure ranking and statistics helpers used by core.
package algo

import (
	"sort"

	"github.com/shriyae/ladderboard/schema"
)

// RankByScore sorts records by descending score and rewrites their ranks to
// match. Ties break alphabetically by country so ordering is deterministic.
// The input slice is not modified.
func RankByScore(records []schema.HappinessRecord) []schema.HappinessRecord {
	ranked := make([]schema.HappinessRecord, len(records))
	copy(ranked, records)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Country < ranked[j].Country
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// TopN returns the first limit records of an already-ranked slice.
// A non-positive limit returns the slice unchanged.
func TopN(records []schema.HappinessRecord, limit int) []schema.HappinessRecord {
	if limit > 0 && len(records) > limit {
		return records[:limit]
	}
	return records
}
