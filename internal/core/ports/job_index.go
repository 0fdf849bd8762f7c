package ports

import (
	"context"

	"github.com/talentlink/freelance-platform/internal/core/domain"
)

// JobIndex is the full-text search index over job postings.
type JobIndex interface {
	Index(ctx context.Context, job *domain.Job) error
	Delete(ctx context.Context, jobID string) error
	// Search returns IDs of jobs matching the query, best match first.
	Search(ctx context.Context, query string) ([]string, error)
}
