package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/talentlink/freelance-platform/internal/core/domain"
	"github.com/talentlink/freelance-platform/internal/core/ports"
)

const recentUsersOnDashboard = 5

// AdminService backs the admin console. Authorisation happens in the role
// middleware; methods here trust the caller is an admin.
type AdminService struct {
	users         ports.UserRepository
	sessions      ports.SessionRepository
	jobs          ports.JobRepository
	applications  ports.ApplicationRepository
	payments      ports.PaymentRepository
	reviews       ports.ReviewRepository
	content       ports.ContentRepository
	notifications ports.NotificationService
	jobIndex      ports.JobIndex
}

func NewAdminService(
	users ports.UserRepository,
	sessions ports.SessionRepository,
	jobs ports.JobRepository,
	applications ports.ApplicationRepository,
	payments ports.PaymentRepository,
	reviews ports.ReviewRepository,
	content ports.ContentRepository,
	notifications ports.NotificationService,
	jobIndex ports.JobIndex,
) *AdminService {
	return &AdminService{
		users:         users,
		sessions:      sessions,
		jobs:          jobs,
		applications:  applications,
		payments:      payments,
		reviews:       reviews,
		content:       content,
		notifications: notifications,
		jobIndex:      jobIndex,
	}
}

func (s *AdminService) Stats(ctx context.Context) (*ports.PlatformStats, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalJobs, err := s.jobs.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalApps, err := s.applications.Count(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.payments.Revenue(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.jobs.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.users.Recent(ctx, recentUsersOnDashboard)
	if err != nil {
		return nil, err
	}

	return &ports.PlatformStats{
		Overview: ports.StatsOverview{
			TotalUsers:        totalUsers,
			TotalJobs:         totalJobs,
			TotalApplications: totalApps,
			Revenue:           revenue,
		},
		JobsByStatus: byStatus,
		RecentUsers:  recent,
	}, nil
}

func (s *AdminService) Users(ctx context.Context, page, limit int, search string) ([]domain.User, int64, error) {
	return s.users.List(ctx, page, limit, search)
}

// CreateUser lets an admin provision any account, including other admins.
func (s *AdminService) CreateUser(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	role := in.Role
	if role == "" {
		role = domain.RoleFreelancer
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.users.Create(ctx, &domain.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         role,
		Avatar:       in.Avatar,
		Bio:          in.Bio,
	})
}

func (s *AdminService) UpdateUser(ctx context.Context, id string, in ports.UpdateProfileInput) (*domain.User, error) {
	fields, err := profileFields(in)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return s.users.FindByID(ctx, id)
	}
	return s.users.Update(ctx, id, fields)
}

func (s *AdminService) UpdateUserRole(ctx context.Context, id, role string) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	user, err := s.users.Update(ctx, id, map[string]any{"role": role})
	if err != nil {
		return nil, err
	}

	// Live access tokens still carry the old role; force a fresh login.
	if _, err := s.sessions.InvalidateByUser(ctx, id); err != nil {
		return nil, err
	}
	if s.notifications != nil {
		s.notifications.Notify(ctx, id, "Your account role was changed to "+role, domain.NotifySystem)
	}
	return user, nil
}

func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.sessions.InvalidateByUser(ctx, id); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}

func (s *AdminService) Jobs(ctx context.Context, page, limit int, search string) ([]domain.Job, int64, error) {
	return s.jobs.List(ctx, page, limit, search)
}

func (s *AdminService) UpdateJobStatus(ctx context.Context, id, status string) (*domain.Job, error) {
	if !domain.ValidJobStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	job, err := s.jobs.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	// Keep the search projection in step so closed jobs stop matching the
	// open-status filter. The row stays authoritative if indexing fails.
	if s.jobIndex != nil {
		_ = s.jobIndex.Index(ctx, job)
	}
	if s.notifications != nil {
		s.notifications.Notify(ctx, job.PosterID,
			"Your job \""+job.Title+"\" is now "+status, domain.NotifyJob)
	}
	return job, nil
}

func (s *AdminService) Applications(ctx context.Context, page, limit int) ([]domain.Application, int64, error) {
	return s.applications.List(ctx, page, limit)
}

func (s *AdminService) UpdateApplicationStatus(ctx context.Context, id, status string) (*domain.Application, error) {
	if !domain.ValidApplicationStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	app, err := s.applications.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if s.notifications != nil {
		s.notifications.Notify(ctx, app.ApplicantID,
			"Your application was "+status, domain.NotifyApplication)
	}
	return app, nil
}

func (s *AdminService) Payments(ctx context.Context, page, limit int) ([]domain.Payment, int64, error) {
	return s.payments.List(ctx, page, limit)
}

func (s *AdminService) Reviews(ctx context.Context, page, limit int) ([]domain.Review, int64, error) {
	return s.reviews.List(ctx, page, limit)
}

func (s *AdminService) DeleteReview(ctx context.Context, id string) error {
	return s.reviews.Delete(ctx, id)
}

func (s *AdminService) Settings(ctx context.Context) ([]domain.PlatformSetting, error) {
	return s.content.ListSettings(ctx)
}

func (s *AdminService) UpdateSettings(ctx context.Context, values map[string]string) ([]domain.PlatformSetting, error) {
	for key, value := range values {
		if _, err := s.content.UpsertSetting(ctx, key, value); err != nil {
			return nil, err
		}
	}
	return s.content.ListSettings(ctx)
}
