package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/talentlink/freelance-platform/internal/core/domain"
	"github.com/talentlink/freelance-platform/internal/core/ports"
)

// ApplicationService manages proposals against open job postings.
type ApplicationService struct {
	applications  ports.ApplicationRepository
	jobs          ports.JobRepository
	notifications ports.NotificationService
	matcher       ports.AIService
	publisher     ports.EventPublisher
	log           zerolog.Logger
}

func NewApplicationService(
	applications ports.ApplicationRepository,
	jobs ports.JobRepository,
	notifications ports.NotificationService,
	matcher ports.AIService,
	publisher ports.EventPublisher,
	log zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{
		applications:  applications,
		jobs:          jobs,
		notifications: notifications,
		matcher:       matcher,
		publisher:     publisher,
		log:           log,
	}
}

func (s *ApplicationService) Apply(ctx context.Context, applicantID, jobID string, in ports.CreateApplicationInput) (*domain.Application, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != domain.JobStatusOpen {
		return nil, domain.ErrJobClosed
	}
	if job.PosterID == applicantID {
		return nil, domain.ErrForbidden
	}

	app, err := s.applications.Create(ctx, &domain.Application{
		JobID:         jobID,
		ApplicantID:   applicantID,
		CoverLetter:   in.CoverLetter,
		ProposedRate:  in.ProposedRate,
		EstimatedTime: in.EstimatedTime,
		Status:        domain.ApplicationPending,
	})
	if err != nil {
		return nil, err
	}

	// Scoring enriches the poster's view but a failure must not undo the
	// application itself.
	if s.matcher != nil {
		if match, err := s.matcher.MatchJob(ctx, jobID, applicantID); err != nil {
			s.log.Warn().Err(err).Str("application_id", app.ID).Msg("match scoring failed")
		} else {
			app.AIMatchScore = match.Score
		}
	}

	if s.notifications != nil {
		s.notifications.Notify(ctx, job.PosterID,
			"New application for \""+job.Title+"\"",
			domain.NotifyApplication)
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, "application_events", app.ID, app); err != nil {
			s.log.Warn().Err(err).Str("application_id", app.ID).Msg("application event publish failed")
		}
	}
	return app, nil
}

// ListForJob returns a job's applications to its poster only.
func (s *ApplicationService) ListForJob(ctx context.Context, jobID, requesterID string) ([]domain.Application, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.PosterID != requesterID {
		return nil, domain.ErrForbidden
	}
	return s.applications.ListForJob(ctx, jobID)
}
