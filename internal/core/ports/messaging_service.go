package ports

import (
	"context"

	"github.com/talentlink/freelance-platform/internal/core/domain"
)

// SendMessageInput is a chat message arriving over the gateway.
type SendMessageInput struct {
	ReceiverID string
	Content    string
	Type       string // defaults to TEXT
	FileURL    string
}

// MessagingService persists chat traffic and fans it out to both parties.
type MessagingService interface {
	Send(ctx context.Context, senderID string, in SendMessageInput) (*domain.Message, error)
	Update(ctx context.Context, senderID, messageID, content string) (*domain.Message, error)
	Delete(ctx context.Context, senderID, messageID string) error
	DeleteConversation(ctx context.Context, userID, otherID string) error
	Conversations(ctx context.Context, userID string) ([]domain.Message, error)
	History(ctx context.Context, userID, otherID string) ([]domain.Message, error)
}

// NotificationService persists notifications and pushes them to connected
// clients via the dispatcher.
type NotificationService interface {
	Notify(ctx context.Context, userID, message, typ string)
	ListForUser(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, userID string) (*domain.Notification, error)
}
