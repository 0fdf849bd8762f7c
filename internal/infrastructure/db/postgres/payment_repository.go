package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/talentlink/freelance-platform/internal/core/domain"
)

// PaymentRepository stores payment intents.
type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = domain.PaymentPending
	}
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PaymentRepository) List(ctx context.Context, page, limit int) ([]domain.Payment, int64, error) {
	offset, limit := paginate(page, limit)

	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Payment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []domain.Payment
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&payments).Error
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

func (r *PaymentRepository) Revenue(ctx context.Context) (float64, error) {
	var sum *float64
	err := r.db.WithContext(ctx).
		Model(&domain.Payment{}).
		Select("SUM(amount)").
		Where("status = ?", domain.PaymentSucceeded).
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, id, status string) (*domain.Payment, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Payment{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrPaymentNotFound
	}

	var p domain.Payment
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
