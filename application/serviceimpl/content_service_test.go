package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"search-funnel/domain/dto"
	"search-funnel/domain/models"
	"search-funnel/domain/repositories"
	"search-funnel/domain/services"
)

func TestCategoryService_DeleteRefusesWhileBlogsReferenceIt(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCategoryRepository)
	repo.On("GetByID", ctx, uint(3)).Return(&models.Category{ID: 3, Name: "Travel"}, nil)
	repo.On("CountBlogs", ctx, uint(3)).Return(int64(2), nil)

	svc := NewCategoryService(repo)
	err := svc.Delete(ctx, 3)

	assert.ErrorIs(t, err, services.ErrCategoryInUse)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCategoryService_DeleteUnusedCategory(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCategoryRepository)
	repo.On("GetByID", ctx, uint(3)).Return(&models.Category{ID: 3}, nil)
	repo.On("CountBlogs", ctx, uint(3)).Return(int64(0), nil)
	repo.On("Delete", ctx, uint(3)).Return(nil)

	require.NoError(t, NewCategoryService(repo).Delete(ctx, 3))
	repo.AssertExpectations(t)
}

func TestCategoryService_DeleteMissing(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCategoryRepository)
	repo.On("GetByID", ctx, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	err := NewCategoryService(repo).Delete(ctx, 9)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCategoryService_CreateRejectsTakenSlug(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCategoryRepository)
	repo.On("GetBySlug", ctx, "health-fitness").Return(&models.Category{ID: 1}, nil)

	_, err := NewCategoryService(repo).Create(ctx, &dto.CategoryRequest{Name: "Health & Fitness"})
	assert.ErrorIs(t, err, services.ErrSlugTaken)
}

func TestBlogService_CreateSuffixesTakenSlug(t *testing.T) {
	ctx := context.Background()
	blogs := new(MockBlogRepository)
	categories := new(MockCategoryRepository)

	categories.On("GetByID", ctx, uint(1)).Return(&models.Category{ID: 1, Name: "Finance", Slug: "finance"}, nil)
	blogs.On("SlugExists", ctx, "saving-money").Return(true, nil)
	blogs.On("SlugExists", ctx, "saving-money-2").Return(true, nil)
	blogs.On("SlugExists", ctx, "saving-money-3").Return(false, nil)
	blogs.On("Create", ctx, mock.AnythingOfType("*models.Blog")).Return(nil)

	svc := NewBlogService(blogs, categories, new(MockCascadeRepository))
	blog, err := svc.Create(ctx, &dto.CreateBlogRequest{Title: "Saving Money", CategoryID: 1, Status: "published"})

	require.NoError(t, err)
	assert.Equal(t, "saving-money-3", blog.Slug)
	assert.Equal(t, models.BlogStatusPublished, blog.Status)
	assert.NotNil(t, blog.PublishedAt)
	assert.Equal(t, "Finance", blog.Category.Name)
}

func TestBlogService_CreateWithExplicitTakenSlug(t *testing.T) {
	ctx := context.Background()
	blogs := new(MockBlogRepository)
	categories := new(MockCategoryRepository)

	categories.On("GetByID", ctx, uint(1)).Return(&models.Category{ID: 1}, nil)
	blogs.On("SlugExists", ctx, "taken").Return(true, nil)

	svc := NewBlogService(blogs, categories, new(MockCascadeRepository))
	_, err := svc.Create(ctx, &dto.CreateBlogRequest{Title: "Anything", Slug: "Taken", CategoryID: 1})

	assert.ErrorIs(t, err, services.ErrSlugTaken)
	blogs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBlogService_UpdateBackToDraftClearsPublishedAt(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	blogs := new(MockBlogRepository)

	published := &models.Blog{ID: id, Slug: "post", Status: models.BlogStatusDraft}
	applyStatus(published, models.BlogStatusPublished, published.CreatedAt)
	require.NotNil(t, published.PublishedAt)

	blogs.On("GetByID", ctx, id).Return(published, nil)
	blogs.On("Update", ctx, published).Return(nil)

	draft := "draft"
	svc := NewBlogService(blogs, new(MockCategoryRepository), new(MockCascadeRepository))
	blog, err := svc.Update(ctx, id, &dto.UpdateBlogRequest{Status: &draft})

	require.NoError(t, err)
	assert.Equal(t, models.BlogStatusDraft, blog.Status)
	assert.Nil(t, blog.PublishedAt)
}

func TestBlogService_DeleteMapsMissingBlog(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	cascade := new(MockCascadeRepository)
	cascade.On("DeleteBlog", ctx, id).Return(nil, gorm.ErrRecordNotFound)

	svc := NewBlogService(new(MockBlogRepository), new(MockCategoryRepository), cascade)
	_, err := svc.Delete(ctx, id)

	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestBlogService_BulkDeleteKeepsGoingAfterFailure(t *testing.T) {
	ctx := context.Background()
	ok1, bad, ok2 := uuid.New(), uuid.New(), uuid.New()

	cascade := new(MockCascadeRepository)
	cascade.On("DeleteBlog", ctx, ok1).Return(&repositories.CascadeReport{Blogs: 1, RelatedSearches: 4}, nil)
	cascade.On("DeleteBlog", ctx, bad).Return(nil, errors.New("deadlock detected"))
	cascade.On("DeleteBlog", ctx, ok2).Return(&repositories.CascadeReport{Blogs: 1}, nil)

	svc := NewBlogService(new(MockBlogRepository), new(MockCategoryRepository), cascade)
	result := svc.BulkDelete(ctx, []uuid.UUID{ok1, bad, ok2})

	assert.Equal(t, []uuid.UUID{ok1, ok2}, result.Deleted)
	require.Contains(t, result.Failed, bad)
	assert.Contains(t, result.Failed[bad], "deadlock detected")
	cascade.AssertNumberOfCalls(t, "DeleteBlog", 3)
}
