package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/talentlink/freelance-platform/internal/core/domain"
	"github.com/talentlink/freelance-platform/internal/core/ports"
)

// JobService manages job postings. Postings live in the relational store;
// the search index is a projection kept up to date on writes.
type JobService struct {
	jobs      ports.JobRepository
	index     ports.JobIndex
	publisher ports.EventPublisher
	log       zerolog.Logger
}

func NewJobService(jobs ports.JobRepository, index ports.JobIndex, publisher ports.EventPublisher, log zerolog.Logger) *JobService {
	return &JobService{jobs: jobs, index: index, publisher: publisher, log: log}
}

func (s *JobService) Create(ctx context.Context, posterID string, in ports.CreateJobInput) (*domain.Job, error) {
	budgetType := in.BudgetType
	if budgetType != domain.BudgetFixed && budgetType != domain.BudgetHourly {
		budgetType = domain.BudgetFixed
	}

	job, err := s.jobs.Create(ctx, &domain.Job{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Skills:      in.Skills,
		Budget:      in.Budget,
		BudgetType:  budgetType,
		Status:      domain.JobStatusOpen,
		Location:    in.Location,
		Remote:      in.Remote,
		PosterID:    posterID,
	})
	if err != nil {
		return nil, err
	}

	// Indexing failures must not lose the posting. The row is authoritative;
	// the document catches up on the next write.
	if s.index != nil {
		if err := s.index.Index(ctx, job); err != nil {
			s.log.Warn().Err(err).Str("job_id", job.ID).Msg("job indexing failed")
		}
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, "job_events", job.ID, job); err != nil {
			s.log.Warn().Err(err).Str("job_id", job.ID).Msg("job event publish failed")
		}
	}
	return job, nil
}

func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.jobs.FindByID(ctx, id)
}

func (s *JobService) ListOpen(ctx context.Context) ([]domain.Job, error) {
	return s.jobs.ListOpen(ctx)
}

// Search queries the index and hydrates the hits from the relational store,
// preserving relevance order. An empty query lists all open jobs.
func (s *JobService) Search(ctx context.Context, query string) ([]domain.Job, error) {
	if query == "" || s.index == nil {
		return s.jobs.ListOpen(ctx)
	}

	ids, err := s.index.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	jobs := make([]domain.Job, 0, len(ids))
	for _, id := range ids {
		job, err := s.jobs.FindByID(ctx, id)
		if err != nil || job.Status != domain.JobStatusOpen {
			// Stale index entry; the posting was removed or closed.
			continue
		}
		jobs = append(jobs, *job)
	}
	return jobs, nil
}
