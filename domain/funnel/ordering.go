// Package funnel holds the rules that decide what a reader sees and where a
// click goes. Nothing here touches storage.
package funnel

import (
	"sort"

	"search-funnel/domain/models"
)

// SortWebResults returns results in display order: sponsored first, then
// ascending OrderIndex within each group. Equal OrderIndex keeps input order.
// The input slice is not modified.
func SortWebResults(results []models.WebResult) []models.WebResult {
	sorted := make([]models.WebResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].IsSponsored != sorted[j].IsSponsored {
			return sorted[i].IsSponsored
		}
		return sorted[i].OrderIndex < sorted[j].OrderIndex
	})
	return sorted
}
