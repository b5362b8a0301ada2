package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"search-funnel/domain/models"
	"search-funnel/domain/repositories"
)

type EmailSubmissionRepositoryImpl struct {
	db *gorm.DB
}

func NewEmailSubmissionRepository(db *gorm.DB) repositories.EmailSubmissionRepository {
	return &EmailSubmissionRepositoryImpl{db: db}
}

func applySubmissionFilter(query *gorm.DB, filter repositories.SubmissionFilter) *gorm.DB {
	if filter.RelatedSearchID != nil {
		query = query.Where("related_search_id = ?", *filter.RelatedSearchID)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at < ?", *filter.To)
	}
	return query
}

func (r *EmailSubmissionRepositoryImpl) Create(ctx context.Context, submission *models.EmailSubmission) error {
	if submission.ID == uuid.Nil {
		submission.ID = uuid.New()
	}
	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *EmailSubmissionRepositoryImpl) List(ctx context.Context, filter repositories.SubmissionFilter, offset, limit int) ([]models.EmailSubmission, int64, error) {
	var submissions []models.EmailSubmission
	var total int64

	query := applySubmissionFilter(r.db.WithContext(ctx).Model(&models.EmailSubmission{}), filter)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&submissions).Error
	return submissions, total, err
}

func (r *EmailSubmissionRepositoryImpl) ListAll(ctx context.Context, filter repositories.SubmissionFilter) ([]models.EmailSubmission, error) {
	var submissions []models.EmailSubmission
	err := applySubmissionFilter(r.db.WithContext(ctx).Model(&models.EmailSubmission{}), filter).
		Order("created_at DESC").
		Find(&submissions).Error
	return submissions, err
}

func (r *EmailSubmissionRepositoryImpl) Count(ctx context.Context, filter repositories.SubmissionFilter) (int64, error) {
	var count int64
	err := applySubmissionFilter(r.db.WithContext(ctx).Model(&models.EmailSubmission{}), filter).Count(&count).Error
	return count, err
}
