package ports

import (
	"context"

	"github.com/talentlink/freelance-platform/internal/core/domain"
)

// StatsOverview is the headline block of the admin dashboard.
type StatsOverview struct {
	TotalUsers        int64   `json:"totalUsers"`
	TotalJobs         int64   `json:"totalJobs"`
	TotalApplications int64   `json:"totalApplications"`
	Revenue           float64 `json:"revenue"`
}

// PlatformStats is the admin dashboard payload.
type PlatformStats struct {
	Overview     StatsOverview    `json:"overview"`
	JobsByStatus map[string]int64 `json:"jobsByStatus"`
	RecentUsers  []domain.User    `json:"recentUsers"`
}

// AdminService backs the admin console. Every method assumes the caller was
// already gated by the ADMIN role middleware.
type AdminService interface {
	Stats(ctx context.Context) (*PlatformStats, error)

	Users(ctx context.Context, page, limit int, search string) ([]domain.User, int64, error)
	CreateUser(ctx context.Context, in RegisterInput) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, in UpdateProfileInput) (*domain.User, error)
	// UpdateUserRole changes a user's role and notifies them.
	UpdateUserRole(ctx context.Context, id, role string) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error

	Jobs(ctx context.Context, page, limit int, search string) ([]domain.Job, int64, error)
	// UpdateJobStatus changes a job's status and notifies its poster.
	UpdateJobStatus(ctx context.Context, id, status string) (*domain.Job, error)

	Applications(ctx context.Context, page, limit int) ([]domain.Application, int64, error)
	UpdateApplicationStatus(ctx context.Context, id, status string) (*domain.Application, error)

	Payments(ctx context.Context, page, limit int) ([]domain.Payment, int64, error)

	Reviews(ctx context.Context, page, limit int) ([]domain.Review, int64, error)
	DeleteReview(ctx context.Context, id string) error

	Settings(ctx context.Context) ([]domain.PlatformSetting, error)
	UpdateSettings(ctx context.Context, values map[string]string) ([]domain.PlatformSetting, error)
}
