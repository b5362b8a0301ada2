package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"search-funnel/domain/funnel"
	"search-funnel/domain/models"
	"search-funnel/domain/repositories"
	"search-funnel/domain/services"
)

// stubGeneration answers every call with deterministic content.
type stubGeneration struct {
	services.GenerationService
	fail error
}

func (g *stubGeneration) GenerateContent(_ context.Context, title, _ string) (*services.GeneratedContent, error) {
	if g.fail != nil {
		return nil, g.fail
	}
	phrases := make([]funnel.Phrase, funnel.CandidatePhrases)
	for i := range phrases {
		phrases[i] = funnel.Phrase{Text: fmt.Sprintf("phrase %d", i)}
	}
	return &services.GeneratedContent{Body: "body of " + title, ImageURL: "https://cdn.example.com/hero.png", Phrases: phrases}, nil
}

func (g *stubGeneration) GenerateWebResults(_ context.Context, searchText string) ([]services.GeneratedWebResult, error) {
	if g.fail != nil {
		return nil, g.fail
	}
	out := make([]services.GeneratedWebResult, funnel.CandidateWebResults)
	for i := range out {
		out[i] = services.GeneratedWebResult{
			Title: fmt.Sprintf("%s result %d", searchText, i),
			URL:   fmt.Sprintf("https://example.com/%d", i),
		}
	}
	return out, nil
}

func (g *stubGeneration) GeneratePreLanding(_ context.Context, resultTitle string) (*services.GeneratedPreLanding, error) {
	if g.fail != nil {
		return nil, g.fail
	}
	return &services.GeneratedPreLanding{Headline: "Get " + resultTitle, ButtonText: "Go"}, nil
}

type wizardFixture struct {
	drafts     *memoryDrafts
	generation *stubGeneration
	categories *MockCategoryRepository
	blogs      *MockBlogRepository
	funnelRepo *MockFunnelRepository
	svc        services.WizardService
}

func newWizardFixture() *wizardFixture {
	f := &wizardFixture{
		drafts:     newMemoryDrafts(),
		generation: &stubGeneration{},
		categories: new(MockCategoryRepository),
		blogs:      new(MockBlogRepository),
		funnelRepo: new(MockFunnelRepository),
	}
	f.categories.On("GetByID", mock.Anything, uint(7)).Return(&models.Category{ID: 7, Name: "Finance"}, nil)
	f.categories.On("GetByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
	f.svc = NewWizardService(f.drafts, f.generation, f.categories, f.blogs, f.funnelRepo)
	return f
}

func (f *wizardFixture) startWithContent(t *testing.T) *services.WizardDraft {
	ctx := context.Background()
	draft, err := f.svc.Start(ctx, services.StartDraftInput{Title: "  Saving Money  ", CategoryID: 7, Author: "Ana"})
	require.NoError(t, err)
	draft, err = f.svc.GenerateContent(ctx, draft.ID)
	require.NoError(t, err)
	return draft
}

func TestWizardService_StartValidates(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()

	_, err := f.svc.Start(ctx, services.StartDraftInput{Title: "   ", CategoryID: 7})
	assert.Error(t, err)

	_, err = f.svc.Start(ctx, services.StartDraftInput{Title: "Ok", CategoryID: 99})
	assert.ErrorIs(t, err, services.ErrNotFound)

	draft, err := f.svc.Start(ctx, services.StartDraftInput{Title: "  Saving Money  ", CategoryID: 7})
	require.NoError(t, err)
	assert.Equal(t, "Saving Money", draft.Title)
	assert.Equal(t, "Finance", draft.CategoryName)
	assert.Equal(t, funnel.SearchSlots, draft.Searches.Capacity)
}

func TestWizardService_FailedGenerationLeavesDraftUntouched(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	draft := f.startWithContent(t)

	f.generation.fail = fmt.Errorf("%w: upstream timeout", services.ErrGenerationFailed)
	_, err := f.svc.GenerateContent(ctx, draft.ID)
	assert.ErrorIs(t, err, services.ErrGenerationFailed)

	stored, err := f.svc.Get(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "body of Saving Money", stored.Content)
	assert.Len(t, stored.Candidates, funnel.CandidatePhrases)
}

func TestWizardService_SearchSelectionRules(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	draft := f.startWithContent(t)

	for _, c := range []int{4, 1, 0, 2} {
		var err error
		draft, err = f.svc.ToggleSearch(ctx, draft.ID, c)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{4, 1, 0, 2}, draft.Searches.Items)
	assert.True(t, draft.Searches.Complete())

	_, err := f.svc.ToggleSearch(ctx, draft.ID, 3)
	assert.ErrorIs(t, err, services.ErrSelectionFull)

	_, err = f.svc.ToggleSearch(ctx, draft.ID, 6)
	assert.ErrorIs(t, err, services.ErrInvalidCandidate)

	// deselect then reselect moves the phrase to the last rank
	_, err = f.svc.ToggleSearch(ctx, draft.ID, 1)
	require.NoError(t, err)
	draft, err = f.svc.ToggleSearch(ctx, draft.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 0, 2, 1}, draft.Searches.Items)
}

func TestWizardService_WebResultsNeedCompleteSelection(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	draft := f.startWithContent(t)

	_, err := f.svc.ToggleSearch(ctx, draft.ID, 0)
	require.NoError(t, err)

	_, err = f.svc.GenerateWebResults(ctx, draft.ID, 1)
	assert.ErrorIs(t, err, services.ErrSelectionIncomplete)

	_, err = f.svc.Save(ctx, draft.ID, models.BlogStatusDraft)
	assert.ErrorIs(t, err, services.ErrSelectionIncomplete)
	f.funnelRepo.AssertNotCalled(t, "SaveBundle", mock.Anything, mock.Anything)
}

func TestWizardService_PreLandingNeedsSelectedResult(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	draft := f.startWithContent(t)

	_, err := f.svc.SetSearchOrder(ctx, draft.ID, []int{0, 1, 2, 3})
	require.NoError(t, err)
	_, err = f.svc.GenerateWebResults(ctx, draft.ID, 2)
	require.NoError(t, err)

	_, err = f.svc.GeneratePreLanding(ctx, draft.ID, 2)
	assert.ErrorIs(t, err, services.ErrNoWebResultSelected)

	_, err = f.svc.ToggleWebResult(ctx, draft.ID, 2, 3)
	require.NoError(t, err)
	draft, err = f.svc.GeneratePreLanding(ctx, draft.ID, 2)
	require.NoError(t, err)

	_, slot, ok := draft.SlotForWR(2)
	require.True(t, ok)
	assert.Equal(t, "Get phrase 1 result 3", slot.PreLanding.Headline)
}

func TestWizardService_SaveBuildsBundleInOrder(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	draft := f.startWithContent(t)

	_, err := f.svc.SetSearchOrder(ctx, draft.ID, []int{5, 3, 1, 0})
	require.NoError(t, err)

	// WR-1 is phrase 5: pick results 4 then 2, and add a pre-landing page
	_, err = f.svc.GenerateWebResults(ctx, draft.ID, 1)
	require.NoError(t, err)
	_, err = f.svc.ToggleWebResult(ctx, draft.ID, 1, 4)
	require.NoError(t, err)
	_, err = f.svc.ToggleWebResult(ctx, draft.ID, 1, 2)
	require.NoError(t, err)
	_, err = f.svc.GeneratePreLanding(ctx, draft.ID, 1)
	require.NoError(t, err)

	f.blogs.On("SlugExists", mock.Anything, "saving-money").Return(false, nil)

	var bundle *repositories.FunnelBundle
	f.funnelRepo.On("SaveBundle", mock.Anything, mock.AnythingOfType("*repositories.FunnelBundle")).
		Run(func(args mock.Arguments) { bundle = args.Get(1).(*repositories.FunnelBundle) }).
		Return(nil)

	blog, err := f.svc.Save(ctx, draft.ID, models.BlogStatusPublished)
	require.NoError(t, err)

	assert.Equal(t, "saving-money", blog.Slug)
	assert.Equal(t, models.BlogStatusPublished, blog.Status)
	assert.NotNil(t, blog.PublishedAt)
	assert.Equal(t, "https://cdn.example.com/hero.png", *blog.FeaturedImageURL)

	require.NotNil(t, bundle)
	require.Len(t, bundle.Searches, 4)
	texts := []string{}
	for i, sb := range bundle.Searches {
		texts = append(texts, sb.Search.SearchText)
		require.NotNil(t, sb.Search.WR)
		assert.Equal(t, i+1, *sb.Search.WR)
		assert.Equal(t, i+1, sb.Search.OrderIndex)
	}
	assert.Equal(t, []string{"phrase 5", "phrase 3", "phrase 1", "phrase 0"}, texts)

	first := bundle.Searches[0]
	require.Len(t, first.WebResults, 2)
	assert.Equal(t, "https://example.com/4", first.WebResults[0].URL)
	assert.Equal(t, 1, first.WebResults[0].OrderIndex)
	assert.Equal(t, "https://example.com/2", first.WebResults[1].URL)
	assert.Equal(t, 2, first.WebResults[1].OrderIndex)
	require.NotNil(t, first.PreLanding)
	assert.Equal(t, "https://example.com/4", *first.PreLanding.DestinationURL)
	assert.Equal(t, "Go", first.PreLanding.ButtonText)
	assert.Equal(t, "#ffffff", first.PreLanding.BackgroundColor)

	assert.Empty(t, bundle.Searches[1].WebResults)
	assert.Nil(t, bundle.Searches[1].PreLanding)

	_, err = f.svc.Get(ctx, draft.ID)
	assert.ErrorIs(t, err, services.ErrDraftNotFound)
}

func TestWizardService_SaveFailureKeepsDraft(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	draft := f.startWithContent(t)

	_, err := f.svc.SetSearchOrder(ctx, draft.ID, []int{0, 1, 2, 3})
	require.NoError(t, err)

	f.blogs.On("SlugExists", mock.Anything, "saving-money").Return(false, nil)
	f.funnelRepo.On("SaveBundle", mock.Anything, mock.Anything).
		Return(&repositories.SaveError{Step: "related_search", WR: 3, Err: errors.New("value too long")})

	_, err = f.svc.Save(ctx, draft.ID, models.BlogStatusDraft)
	var saveErr *repositories.SaveError
	require.True(t, errors.As(err, &saveErr))
	assert.Equal(t, 3, saveErr.WR)

	_, err = f.svc.Get(ctx, draft.ID)
	assert.NoError(t, err)
}

func TestWizardService_EditingPhrasesResetsSelection(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	draft := f.startWithContent(t)

	_, err := f.svc.SetSearchOrder(ctx, draft.ID, []int{0, 1, 2, 3})
	require.NoError(t, err)

	draft, err = f.svc.UpdateContent(ctx, draft.ID, services.DraftContentInput{
		Phrases: []string{"one two three four five six", "alpha", "beta", "gamma", "delta"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, draft.Searches.Len())
	require.Len(t, draft.Candidates, 5)
	assert.Equal(t, "one two three four five", draft.Candidates[0].Text)
}
