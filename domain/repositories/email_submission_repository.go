package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"search-funnel/domain/models"
)

type SubmissionFilter struct {
	RelatedSearchID *uuid.UUID
	From            *time.Time
	To              *time.Time
}

type EmailSubmissionRepository interface {
	Create(ctx context.Context, submission *models.EmailSubmission) error
	List(ctx context.Context, filter SubmissionFilter, offset, limit int) ([]models.EmailSubmission, int64, error)
	ListAll(ctx context.Context, filter SubmissionFilter) ([]models.EmailSubmission, error)
	Count(ctx context.Context, filter SubmissionFilter) (int64, error)
}
