package ports

import (
	"context"

	"github.com/talentlink/freelance-platform/internal/core/domain"
)

// ReviewRepository defines review persistence.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ListForReviewee(ctx context.Context, revieweeID string) ([]domain.Review, error)
	List(ctx context.Context, page, limit int) ([]domain.Review, int64, error)
	Delete(ctx context.Context, id string) error
}
