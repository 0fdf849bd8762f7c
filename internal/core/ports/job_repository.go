package ports

import (
	"context"

	"github.com/talentlink/freelance-platform/internal/core/domain"
)

// JobRepository defines job-posting persistence.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	// ListOpen returns all OPEN jobs, newest first, with poster names loaded.
	ListOpen(ctx context.Context) ([]domain.Job, error)
	List(ctx context.Context, page, limit int, search string) ([]domain.Job, int64, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Job, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}
