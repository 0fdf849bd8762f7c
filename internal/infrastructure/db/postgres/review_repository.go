package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/talentlink/freelance-platform/internal/core/domain"
)

// ReviewRepository stores peer reviews.
type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return nil, err
	}
	// Reload with the reviewer profile for the response payload.
	var created domain.Review
	if err := r.db.WithContext(ctx).Preload("Reviewer").First(&created, "id = ?", review.ID).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *ReviewRepository) ListForReviewee(ctx context.Context, revieweeID string) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.WithContext(ctx).
		Preload("Reviewer").
		Where("reviewee_id = ?", revieweeID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) List(ctx context.Context, page, limit int) ([]domain.Review, int64, error) {
	offset, limit := paginate(page, limit)

	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Review{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []domain.Review
	err := r.db.WithContext(ctx).
		Preload("Reviewer").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Review{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}
