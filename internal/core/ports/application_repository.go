package ports

import (
	"context"

	"github.com/talentlink/freelance-platform/internal/core/domain"
)

// ApplicationRepository defines job-application persistence.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	FindByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*domain.Application, error)
	// ListForJob returns a job's applications ordered by AI match score,
	// highest first, with applicant profiles loaded.
	ListForJob(ctx context.Context, jobID string) ([]domain.Application, error)
	List(ctx context.Context, page, limit int) ([]domain.Application, int64, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Application, error)
	UpdateMatchScore(ctx context.Context, id string, score float64) error
	Count(ctx context.Context) (int64, error)
}
