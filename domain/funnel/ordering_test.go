package funnel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"search-funnel/domain/models"
)

func TestSortWebResults_SponsoredFirstThenOrderIndex(t *testing.T) {
	in := []models.WebResult{
		{Title: "organic-2", OrderIndex: 2},
		{Title: "sponsored-3", OrderIndex: 3, IsSponsored: true},
		{Title: "organic-1", OrderIndex: 1},
		{Title: "sponsored-1", OrderIndex: 1, IsSponsored: true},
	}

	got := SortWebResults(in)

	var titles []string
	for _, r := range got {
		titles = append(titles, r.Title)
	}
	assert.Equal(t, []string{"sponsored-1", "sponsored-3", "organic-1", "organic-2"}, titles)
	assert.Equal(t, "organic-2", in[0].Title, "input must not be reordered")
}

func TestSortWebResults_Properties(t *testing.T) {
	in := []models.WebResult{
		{Title: "a", OrderIndex: 4}, {Title: "b", OrderIndex: 1, IsSponsored: true},
		{Title: "c", OrderIndex: 0}, {Title: "d", OrderIndex: 4, IsSponsored: true},
		{Title: "e", OrderIndex: 2}, {Title: "f", OrderIndex: 2, IsSponsored: true},
	}

	got := SortWebResults(in)

	seenOrganic := false
	for i, r := range got {
		if !r.IsSponsored {
			seenOrganic = true
		} else {
			assert.False(t, seenOrganic, "sponsored result %q after an organic one", r.Title)
		}
		if i > 0 && got[i-1].IsSponsored == r.IsSponsored {
			assert.LessOrEqual(t, got[i-1].OrderIndex, r.OrderIndex)
		}
	}
}

func TestSortWebResults_TiesKeepInsertionOrder(t *testing.T) {
	in := []models.WebResult{
		{Title: "first", OrderIndex: 1},
		{Title: "second", OrderIndex: 1},
	}
	got := SortWebResults(in)
	assert.Equal(t, "first", got[0].Title)
	assert.Equal(t, "second", got[1].Title)
}

func TestSortWebResults_Empty(t *testing.T) {
	assert.Empty(t, SortWebResults(nil))
}
