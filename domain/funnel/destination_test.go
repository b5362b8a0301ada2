package funnel

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"search-funnel/domain/models"
)

func strPtr(s string) *string { return &s }

func TestResolveVisit_WithPreLandingCarriesOverride(t *testing.T) {
	result := models.WebResult{ID: uuid.New(), RelatedSearchID: uuid.New(), URL: "https://u.example"}
	cfg := &models.PreLandingConfig{RelatedSearchID: result.RelatedSearchID, DestinationURL: strPtr("https://d.example")}

	decision := ResolveVisit(result, cfg)

	assert.Equal(t, VisitPreLanding, decision.Kind)
	assert.Equal(t, "https://u.example", decision.Override)
	assert.Equal(t, result.ID, decision.WebResultID)

	url, ok := ResolveSubmissionRedirect(decision.Override, cfg)
	assert.True(t, ok)
	assert.Equal(t, "https://u.example", url, "override wins over stored destination")
}

func TestResolveVisit_WithoutPreLandingGoesDirect(t *testing.T) {
	result := models.WebResult{ID: uuid.New(), URL: "https://u.example"}

	decision := ResolveVisit(result, nil)

	assert.Equal(t, VisitDirect, decision.Kind)
	assert.Equal(t, "https://u.example", decision.URL)
	assert.Empty(t, decision.Override)
}

func TestResolveSubmissionRedirect_Tiers(t *testing.T) {
	tests := []struct {
		name     string
		override string
		cfg      *models.PreLandingConfig
		want     string
		wantOK   bool
	}{
		{"override", "https://u.example", &models.PreLandingConfig{DestinationURL: strPtr("https://d.example")}, "https://u.example", true},
		{"stored default", "", &models.PreLandingConfig{DestinationURL: strPtr("https://d.example")}, "https://d.example", true},
		{"empty stored default", "", &models.PreLandingConfig{DestinationURL: strPtr("")}, "", false},
		{"no destination", "", &models.PreLandingConfig{}, "", false},
		{"no config", "", nil, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveSubmissionRedirect(tt.override, tt.cfg)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
