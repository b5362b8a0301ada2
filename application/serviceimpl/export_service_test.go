package serviceimpl

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"search-funnel/domain/models"
	"search-funnel/domain/services"
)

func newExportFixture(categories *MockCategoryRepository) services.ExportService {
	return newBlogExportFixture(categories, new(MockBlogRepository))
}

func newBlogExportFixture(categories *MockCategoryRepository, blogs *MockBlogRepository) services.ExportService {
	return NewExportService(categories, blogs, new(MockRelatedSearchRepository),
		new(MockWebResultRepository), new(MockPreLandingRepository), nil, nil)
}

func TestExportService_CategoriesQuoteText(t *testing.T) {
	ctx := context.Background()
	categories := new(MockCategoryRepository)
	categories.On("List", ctx).Return([]models.Category{
		{ID: 1, Name: `Travel "Deals"`, Slug: "travel-deals", CodeRange: "A-1", CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
		{ID: 2, Name: "Food, Drink", Slug: "food-drink", CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)

	var buf bytes.Buffer
	rows, err := newExportFixture(categories).Export(ctx, services.ExportCategories, &buf)

	require.NoError(t, err)
	assert.Equal(t, 2, rows)
	assert.Equal(t, `"id","name","slug","code_range","created_at"
1,"Travel ""Deals""","travel-deals","A-1",2024-01-02T03:04:05Z
2,"Food, Drink","food-drink","",2024-02-01T00:00:00Z
`, buf.String())
}

func TestExportService_BlogsQuoteText(t *testing.T) {
	ctx := context.Background()
	id := uuid.MustParse("6f1c1a2e-4b6d-4c1e-9a51-0d6a1b2c3d4e")
	published := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	blogs := new(MockBlogRepository)
	blogs.On("ListAll", ctx).Return([]models.Blog{{
		ID:          id,
		Title:       `Say "hi"`,
		Slug:        "say-hi",
		Category:    &models.Category{Name: "Travel"},
		Author:      "Ann, Editor",
		Status:      models.BlogStatusPublished,
		PublishedAt: &published,
		Content:     "line1\nline \"2\"",
		CreatedAt:   time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
	}}, nil)

	var buf bytes.Buffer
	rows, err := newBlogExportFixture(new(MockCategoryRepository), blogs).Export(ctx, services.ExportBlogs, &buf)

	require.NoError(t, err)
	assert.Equal(t, 1, rows)
	assert.Equal(t, `"id","title","slug","category","author","status","featured_image_url","published_at","content","created_at"
`+id.String()+`,"Say ""hi""","say-hi","Travel","Ann, Editor",published,"",2024-03-01T09:00:00Z,"line1
line ""2""",2024-02-28T00:00:00Z
`, buf.String())
}

func TestExportService_UnknownEntity(t *testing.T) {
	var buf bytes.Buffer
	_, err := newExportFixture(new(MockCategoryRepository)).Export(context.Background(), "users", &buf)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Empty(t, buf.String())
}
