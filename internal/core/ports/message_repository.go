package ports

import (
	"context"

	"github.com/talentlink/freelance-platform/internal/core/domain"
)

// MessageRepository defines chat-message persistence.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	FindByID(ctx context.Context, id string) (*domain.Message, error)
	UpdateContent(ctx context.Context, id, content string) (*domain.Message, error)
	Delete(ctx context.Context, id string) error
	// Recent returns the most recent messages involving a user, newest first.
	Recent(ctx context.Context, userID string, limit int) ([]domain.Message, error)
	// Between returns the full history between two users, oldest first.
	Between(ctx context.Context, userID, otherID string) ([]domain.Message, error)
	DeleteConversation(ctx context.Context, userID, otherID string) error
}
