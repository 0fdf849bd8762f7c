package ports

import (
	"context"

	"github.com/talentlink/freelance-platform/internal/core/domain"
)

// PaymentRepository defines payment persistence.
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	List(ctx context.Context, page, limit int) ([]domain.Payment, int64, error)
	// Revenue sums the amounts of all SUCCEEDED payments.
	Revenue(ctx context.Context) (float64, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Payment, error)
}
