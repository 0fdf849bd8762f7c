package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/talentlink/freelance-platform/internal/core/domain"
)

// ContentRepository stores the admin-managed marketing content. The tables
// are uniform ordered lists, so the plumbing is shared via the helpers below.
type ContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

func listOrdered[T any](ctx context.Context, db *gorm.DB) ([]T, error) {
	var out []T
	err := db.WithContext(ctx).Order(`"order" ASC`).Find(&out).Error
	return out, err
}

func getByID[T any](ctx context.Context, db *gorm.DB, id string, notFound error) (*T, error) {
	var out T
	if err := db.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, err
	}
	return &out, nil
}

func updateByID[T any](ctx context.Context, db *gorm.DB, id string, fields map[string]any, notFound error) (*T, error) {
	res := db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, notFound
	}
	return getByID[T](ctx, db, id, notFound)
}

func deleteByID[T any](ctx context.Context, db *gorm.DB, id string, notFound error) error {
	res := db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound
	}
	return nil
}

func countAll[T any](ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(new(T)).Count(&n).Error
	return n, err
}

// --- Pricing plans ---

func (r *ContentRepository) ListPlans(ctx context.Context) ([]domain.PricingPlan, error) {
	return listOrdered[domain.PricingPlan](ctx, r.db)
}

func (r *ContentRepository) GetPlan(ctx context.Context, id string) (*domain.PricingPlan, error) {
	return getByID[domain.PricingPlan](ctx, r.db, id, domain.ErrPlanNotFound)
}

func (r *ContentRepository) CreatePlan(ctx context.Context, p *domain.PricingPlan) (*domain.PricingPlan, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ContentRepository) UpdatePlan(ctx context.Context, id string, fields map[string]any) (*domain.PricingPlan, error) {
	return updateByID[domain.PricingPlan](ctx, r.db, id, fields, domain.ErrPlanNotFound)
}

func (r *ContentRepository) DeletePlan(ctx context.Context, id string) error {
	return deleteByID[domain.PricingPlan](ctx, r.db, id, domain.ErrPlanNotFound)
}

func (r *ContentRepository) CountPlans(ctx context.Context) (int64, error) {
	return countAll[domain.PricingPlan](ctx, r.db)
}

// --- Salary guide ---

func (r *ContentRepository) ListSalaryCategories(ctx context.Context) ([]domain.SalaryCategory, error) {
	var cats []domain.SalaryCategory
	err := r.db.WithContext(ctx).Preload("Roles").Order(`"order" ASC`).Find(&cats).Error
	return cats, err
}

func (r *ContentRepository) ListSalaryInsights(ctx context.Context) ([]domain.SalaryInsight, error) {
	return listOrdered[domain.SalaryInsight](ctx, r.db)
}

func (r *ContentRepository) CreateSalaryCategory(ctx context.Context, c *domain.SalaryCategory) (*domain.SalaryCategory, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *ContentRepository) UpdateSalaryCategory(ctx context.Context, id string, fields map[string]any) (*domain.SalaryCategory, error) {
	return updateByID[domain.SalaryCategory](ctx, r.db, id, fields, domain.ErrContentNotFound)
}

func (r *ContentRepository) DeleteSalaryCategory(ctx context.Context, id string) error {
	return deleteByID[domain.SalaryCategory](ctx, r.db, id, domain.ErrContentNotFound)
}

func (r *ContentRepository) CreateSalaryRole(ctx context.Context, role *domain.SalaryRole) (*domain.SalaryRole, error) {
	if role.ID == "" {
		role.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(role).Error; err != nil {
		return nil, err
	}
	return role, nil
}

func (r *ContentRepository) UpdateSalaryRole(ctx context.Context, id string, fields map[string]any) (*domain.SalaryRole, error) {
	return updateByID[domain.SalaryRole](ctx, r.db, id, fields, domain.ErrContentNotFound)
}

func (r *ContentRepository) DeleteSalaryRole(ctx context.Context, id string) error {
	return deleteByID[domain.SalaryRole](ctx, r.db, id, domain.ErrContentNotFound)
}

func (r *ContentRepository) CreateSalaryInsight(ctx context.Context, i *domain.SalaryInsight) (*domain.SalaryInsight, error) {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(i).Error; err != nil {
		return nil, err
	}
	return i, nil
}

func (r *ContentRepository) UpdateSalaryInsight(ctx context.Context, id string, fields map[string]any) (*domain.SalaryInsight, error) {
	return updateByID[domain.SalaryInsight](ctx, r.db, id, fields, domain.ErrContentNotFound)
}

func (r *ContentRepository) DeleteSalaryInsight(ctx context.Context, id string) error {
	return deleteByID[domain.SalaryInsight](ctx, r.db, id, domain.ErrContentNotFound)
}

func (r *ContentRepository) CountSalaryCategories(ctx context.Context) (int64, error) {
	return countAll[domain.SalaryCategory](ctx, r.db)
}

// --- Hiring solutions ---

func (r *ContentRepository) ListSolutions(ctx context.Context) ([]domain.HiringSolution, error) {
	return listOrdered[domain.HiringSolution](ctx, r.db)
}

func (r *ContentRepository) ListHiringStats(ctx context.Context) ([]domain.HiringStat, error) {
	return listOrdered[domain.HiringStat](ctx, r.db)
}

func (r *ContentRepository) ListHiringPlans(ctx context.Context) ([]domain.HiringPlan, error) {
	return listOrdered[domain.HiringPlan](ctx, r.db)
}

func (r *ContentRepository) CreateSolution(ctx context.Context, s *domain.HiringSolution) (*domain.HiringSolution, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *ContentRepository) UpdateSolution(ctx context.Context, id string, fields map[string]any) (*domain.HiringSolution, error) {
	return updateByID[domain.HiringSolution](ctx, r.db, id, fields, domain.ErrContentNotFound)
}

func (r *ContentRepository) DeleteSolution(ctx context.Context, id string) error {
	return deleteByID[domain.HiringSolution](ctx, r.db, id, domain.ErrContentNotFound)
}

func (r *ContentRepository) CreateHiringStat(ctx context.Context, s *domain.HiringStat) (*domain.HiringStat, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *ContentRepository) UpdateHiringStat(ctx context.Context, id string, fields map[string]any) (*domain.HiringStat, error) {
	return updateByID[domain.HiringStat](ctx, r.db, id, fields, domain.ErrContentNotFound)
}

func (r *ContentRepository) DeleteHiringStat(ctx context.Context, id string) error {
	return deleteByID[domain.HiringStat](ctx, r.db, id, domain.ErrContentNotFound)
}

func (r *ContentRepository) CreateHiringPlan(ctx context.Context, p *domain.HiringPlan) (*domain.HiringPlan, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ContentRepository) UpdateHiringPlan(ctx context.Context, id string, fields map[string]any) (*domain.HiringPlan, error) {
	return updateByID[domain.HiringPlan](ctx, r.db, id, fields, domain.ErrContentNotFound)
}

func (r *ContentRepository) DeleteHiringPlan(ctx context.Context, id string) error {
	return deleteByID[domain.HiringPlan](ctx, r.db, id, domain.ErrContentNotFound)
}

func (r *ContentRepository) CountSolutions(ctx context.Context) (int64, error) {
	return countAll[domain.HiringSolution](ctx, r.db)
}

// --- Employer resources ---

func (r *ContentRepository) ListResourceCategories(ctx context.Context) ([]domain.EmployerResourceCategory, error) {
	return listOrdered[domain.EmployerResourceCategory](ctx, r.db)
}

func (r *ContentRepository) ListGuides(ctx context.Context) ([]domain.EmployerGuide, error) {
	return listOrdered[domain.EmployerGuide](ctx, r.db)
}

func (r *ContentRepository) ListDownloads(ctx context.Context) ([]domain.EmployerDownload, error) {
	return listOrdered[domain.EmployerDownload](ctx, r.db)
}

func (r *ContentRepository) ListFAQs(ctx context.Context) ([]domain.EmployerFAQ, error) {
	return listOrdered[domain.EmployerFAQ](ctx, r.db)
}

func (r *ContentRepository) CreateResourceCategory(ctx context.Context, c *domain.EmployerResourceCategory) (*domain.EmployerResourceCategory, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *ContentRepository) UpdateResourceCategory(ctx context.Context, id string, fields map[string]any) (*domain.EmployerResourceCategory, error) {
	return updateByID[domain.EmployerResourceCategory](ctx, r.db, id, fields, domain.ErrContentNotFound)
}

func (r *ContentRepository) DeleteResourceCategory(ctx context.Context, id string) error {
	return deleteByID[domain.EmployerResourceCategory](ctx, r.db, id, domain.ErrContentNotFound)
}

func (r *ContentRepository) CreateGuide(ctx context.Context, g *domain.EmployerGuide) (*domain.EmployerGuide, error) {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(g).Error; err != nil {
		return nil, err
	}
	return g, nil
}

func (r *ContentRepository) UpdateGuide(ctx context.Context, id string, fields map[string]any) (*domain.EmployerGuide, error) {
	return updateByID[domain.EmployerGuide](ctx, r.db, id, fields, domain.ErrContentNotFound)
}

func (r *ContentRepository) DeleteGuide(ctx context.Context, id string) error {
	return deleteByID[domain.EmployerGuide](ctx, r.db, id, domain.ErrContentNotFound)
}

func (r *ContentRepository) CreateDownload(ctx context.Context, d *domain.EmployerDownload) (*domain.EmployerDownload, error) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		return nil, err
	}
	return d, nil
}

func (r *ContentRepository) UpdateDownload(ctx context.Context, id string, fields map[string]any) (*domain.EmployerDownload, error) {
	return updateByID[domain.EmployerDownload](ctx, r.db, id, fields, domain.ErrContentNotFound)
}

func (r *ContentRepository) DeleteDownload(ctx context.Context, id string) error {
	return deleteByID[domain.EmployerDownload](ctx, r.db, id, domain.ErrContentNotFound)
}

func (r *ContentRepository) CreateFAQ(ctx context.Context, f *domain.EmployerFAQ) (*domain.EmployerFAQ, error) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		return nil, err
	}
	return f, nil
}

func (r *ContentRepository) UpdateFAQ(ctx context.Context, id string, fields map[string]any) (*domain.EmployerFAQ, error) {
	return updateByID[domain.EmployerFAQ](ctx, r.db, id, fields, domain.ErrContentNotFound)
}

func (r *ContentRepository) DeleteFAQ(ctx context.Context, id string) error {
	return deleteByID[domain.EmployerFAQ](ctx, r.db, id, domain.ErrContentNotFound)
}

func (r *ContentRepository) CountResourceCategories(ctx context.Context) (int64, error) {
	return countAll[domain.EmployerResourceCategory](ctx, r.db)
}

// --- Platform settings ---

func (r *ContentRepository) ListSettings(ctx context.Context) ([]domain.PlatformSetting, error) {
	var out []domain.PlatformSetting
	err := r.db.WithContext(ctx).Order("key ASC").Find(&out).Error
	return out, err
}

func (r *ContentRepository) UpsertSetting(ctx context.Context, key, value string) (*domain.PlatformSetting, error) {
	setting := domain.PlatformSetting{Key: key, Value: value}
	err := r.db.WithContext(ctx).
		Where(domain.PlatformSetting{Key: key}).
		Assign(map[string]any{"value": value}).
		FirstOrCreate(&setting).Error
	if err != nil {
		return nil, err
	}
	setting.Value = value
	return &setting, nil
}
