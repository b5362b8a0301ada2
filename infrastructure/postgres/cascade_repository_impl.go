package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"search-funnel/domain/models"
	"search-funnel/domain/repositories"
)

type CascadeRepositoryImpl struct {
	db *gorm.DB
}

func NewCascadeRepository(db *gorm.DB) repositories.CascadeRepository {
	return &CascadeRepositoryImpl{db: db}
}

// DeleteBlog removes, in order: dependents of every owned search, analytics
// rows pointing at the blog, the searches, then the blog.
func (r *CascadeRepositoryImpl) DeleteBlog(ctx context.Context, id uuid.UUID) (*repositories.CascadeReport, error) {
	report := &repositories.CascadeReport{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &models.Blog{}, id); err != nil {
			return err
		}

		var searchIDs []uuid.UUID
		if err := tx.Model(&models.RelatedSearch{}).Where("blog_id = ?", id).Pluck("id", &searchIDs).Error; err != nil {
			return err
		}

		if err := deleteSearchDependents(tx, searchIDs, report); err != nil {
			return err
		}

		res := tx.Where("blog_id = ?", id).Delete(&models.AnalyticsEvent{})
		if res.Error != nil {
			return res.Error
		}
		report.AnalyticsEvents += res.RowsAffected

		res = tx.Where("blog_id = ?", id).Delete(&models.RelatedSearch{})
		if res.Error != nil {
			return res.Error
		}
		report.RelatedSearches += res.RowsAffected

		res = tx.Where("id = ?", id).Delete(&models.Blog{})
		if res.Error != nil {
			return res.Error
		}
		report.Blogs += res.RowsAffected
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (r *CascadeRepositoryImpl) DeleteRelatedSearch(ctx context.Context, id uuid.UUID) (*repositories.CascadeReport, error) {
	report := &repositories.CascadeReport{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &models.RelatedSearch{}, id); err != nil {
			return err
		}

		if err := deleteSearchDependents(tx, []uuid.UUID{id}, report); err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&models.RelatedSearch{})
		if res.Error != nil {
			return res.Error
		}
		report.RelatedSearches += res.RowsAffected
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

func requireRow(tx *gorm.DB, model interface{}, id uuid.UUID) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// deleteSearchDependents clears every table that references a related search.
func deleteSearchDependents(tx *gorm.DB, searchIDs []uuid.UUID, report *repositories.CascadeReport) error {
	if len(searchIDs) == 0 {
		return nil
	}

	steps := []struct {
		model   interface{}
		counter *int64
	}{
		{&models.EmailSubmission{}, &report.EmailSubmissions},
		{&models.AnalyticsEvent{}, &report.AnalyticsEvents},
		{&models.PreLandingConfig{}, &report.PreLandings},
		{&models.WebResult{}, &report.WebResults},
	}

	for _, step := range steps {
		res := tx.Where("related_search_id IN ?", searchIDs).Delete(step.model)
		if res.Error != nil {
			return res.Error
		}
		*step.counter += res.RowsAffected
	}
	return nil
}
