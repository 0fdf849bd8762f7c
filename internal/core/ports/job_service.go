package ports

import (
	"context"

	"github.com/talentlink/freelance-platform/internal/core/domain"
)

// CreateJobInput carries a new job posting.
type CreateJobInput struct {
	Title       string
	Description string
	Category    string
	Skills      []string
	Budget      float64
	BudgetType  string
	Location    string
	Remote      bool
}

// JobService manages job postings and search.
type JobService interface {
	Create(ctx context.Context, posterID string, in CreateJobInput) (*domain.Job, error)
	Get(ctx context.Context, id string) (*domain.Job, error)
	ListOpen(ctx context.Context) ([]domain.Job, error)
	Search(ctx context.Context, query string) ([]domain.Job, error)
}

// CreateApplicationInput carries a freelancer's proposal.
type CreateApplicationInput struct {
	CoverLetter   string
	ProposedRate  float64
	EstimatedTime string
}

// ApplicationService manages job applications.
type ApplicationService interface {
	Apply(ctx context.Context, applicantID, jobID string, in CreateApplicationInput) (*domain.Application, error)
	// ListForJob returns a job's applications to its poster, ordered by AI
	// match score descending.
	ListForJob(ctx context.Context, jobID, requesterID string) ([]domain.Application, error)
}
