package ports

import (
	"context"

	"github.com/talentlink/freelance-platform/internal/core/domain"
)

// NotificationRepository defines notification persistence.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, userID string) (*domain.Notification, error)
}
