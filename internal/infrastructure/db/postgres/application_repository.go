package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/talentlink/freelance-platform/internal/core/domain"
)

// ApplicationRepository stores job applications.
type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	if app.Status == "" {
		app.Status = domain.ApplicationPending
	}
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrAlreadyApplied
		}
		return nil, err
	}
	return app, nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	var app domain.Application
	if err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) FindByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*domain.Application, error) {
	var app domain.Application
	err := r.db.WithContext(ctx).
		First(&app, "job_id = ? AND applicant_id = ?", jobID, applicantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) ListForJob(ctx context.Context, jobID string) ([]domain.Application, error) {
	var apps []domain.Application
	err := r.db.WithContext(ctx).
		Preload("Applicant").
		Where("job_id = ?", jobID).
		Order("ai_match_score DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepository) List(ctx context.Context, page, limit int) ([]domain.Application, int64, error) {
	offset, limit := paginate(page, limit)

	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Application{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []domain.Application
	err := r.db.WithContext(ctx).
		Preload("Applicant").
		Preload("Job").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id, status string) (*domain.Application, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrApplicationNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *ApplicationRepository) UpdateMatchScore(ctx context.Context, id string, score float64) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Application{}).
		Where("id = ?", id).
		Update("ai_match_score", score)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Application{}).Count(&count).Error
	return count, err
}
