package ports

import (
	"context"

	"github.com/talentlink/freelance-platform/internal/core/domain"
)

// ContentRepository persists the admin-managed marketing content: pricing
// plans, the salary guide, hiring solutions, and employer resources. All list
// methods return rows ordered by their Order column.
type ContentRepository interface {
	// Pricing plans
	ListPlans(ctx context.Context) ([]domain.PricingPlan, error)
	GetPlan(ctx context.Context, id string) (*domain.PricingPlan, error)
	CreatePlan(ctx context.Context, p *domain.PricingPlan) (*domain.PricingPlan, error)
	UpdatePlan(ctx context.Context, id string, fields map[string]any) (*domain.PricingPlan, error)
	DeletePlan(ctx context.Context, id string) error
	CountPlans(ctx context.Context) (int64, error)

	// Salary guide
	ListSalaryCategories(ctx context.Context) ([]domain.SalaryCategory, error)
	ListSalaryInsights(ctx context.Context) ([]domain.SalaryInsight, error)
	CreateSalaryCategory(ctx context.Context, c *domain.SalaryCategory) (*domain.SalaryCategory, error)
	UpdateSalaryCategory(ctx context.Context, id string, fields map[string]any) (*domain.SalaryCategory, error)
	DeleteSalaryCategory(ctx context.Context, id string) error
	CreateSalaryRole(ctx context.Context, r *domain.SalaryRole) (*domain.SalaryRole, error)
	UpdateSalaryRole(ctx context.Context, id string, fields map[string]any) (*domain.SalaryRole, error)
	DeleteSalaryRole(ctx context.Context, id string) error
	CreateSalaryInsight(ctx context.Context, i *domain.SalaryInsight) (*domain.SalaryInsight, error)
	UpdateSalaryInsight(ctx context.Context, id string, fields map[string]any) (*domain.SalaryInsight, error)
	DeleteSalaryInsight(ctx context.Context, id string) error
	CountSalaryCategories(ctx context.Context) (int64, error)

	// Hiring solutions
	ListSolutions(ctx context.Context) ([]domain.HiringSolution, error)
	ListHiringStats(ctx context.Context) ([]domain.HiringStat, error)
	ListHiringPlans(ctx context.Context) ([]domain.HiringPlan, error)
	CreateSolution(ctx context.Context, s *domain.HiringSolution) (*domain.HiringSolution, error)
	UpdateSolution(ctx context.Context, id string, fields map[string]any) (*domain.HiringSolution, error)
	DeleteSolution(ctx context.Context, id string) error
	CreateHiringStat(ctx context.Context, s *domain.HiringStat) (*domain.HiringStat, error)
	UpdateHiringStat(ctx context.Context, id string, fields map[string]any) (*domain.HiringStat, error)
	DeleteHiringStat(ctx context.Context, id string) error
	CreateHiringPlan(ctx context.Context, p *domain.HiringPlan) (*domain.HiringPlan, error)
	UpdateHiringPlan(ctx context.Context, id string, fields map[string]any) (*domain.HiringPlan, error)
	DeleteHiringPlan(ctx context.Context, id string) error
	CountSolutions(ctx context.Context) (int64, error)

	// Employer resources
	ListResourceCategories(ctx context.Context) ([]domain.EmployerResourceCategory, error)
	ListGuides(ctx context.Context) ([]domain.EmployerGuide, error)
	ListDownloads(ctx context.Context) ([]domain.EmployerDownload, error)
	ListFAQs(ctx context.Context) ([]domain.EmployerFAQ, error)
	CreateResourceCategory(ctx context.Context, c *domain.EmployerResourceCategory) (*domain.EmployerResourceCategory, error)
	UpdateResourceCategory(ctx context.Context, id string, fields map[string]any) (*domain.EmployerResourceCategory, error)
	DeleteResourceCategory(ctx context.Context, id string) error
	CreateGuide(ctx context.Context, g *domain.EmployerGuide) (*domain.EmployerGuide, error)
	UpdateGuide(ctx context.Context, id string, fields map[string]any) (*domain.EmployerGuide, error)
	DeleteGuide(ctx context.Context, id string) error
	CreateDownload(ctx context.Context, d *domain.EmployerDownload) (*domain.EmployerDownload, error)
	UpdateDownload(ctx context.Context, id string, fields map[string]any) (*domain.EmployerDownload, error)
	DeleteDownload(ctx context.Context, id string) error
	CreateFAQ(ctx context.Context, f *domain.EmployerFAQ) (*domain.EmployerFAQ, error)
	UpdateFAQ(ctx context.Context, id string, fields map[string]any) (*domain.EmployerFAQ, error)
	DeleteFAQ(ctx context.Context, id string) error
	CountResourceCategories(ctx context.Context) (int64, error)

	// Platform settings
	ListSettings(ctx context.Context) ([]domain.PlatformSetting, error)
	UpsertSetting(ctx context.Context, key, value string) (*domain.PlatformSetting, error)
}
