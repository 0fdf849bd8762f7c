package service

import (
	"context"

	"github.com/talentlink/freelance-platform/internal/core/domain"
	"github.com/talentlink/freelance-platform/internal/core/ports"
)

// MessagingService persists direct chat and fans each message out to both
// parties' live connections.
type MessagingService struct {
	messages      ports.MessageRepository
	users         ports.UserRepository
	notifier      ports.Notifier
	notifications ports.NotificationService
}

func NewMessagingService(messages ports.MessageRepository, users ports.UserRepository, notifier ports.Notifier, notifications ports.NotificationService) *MessagingService {
	return &MessagingService{
		messages:      messages,
		users:         users,
		notifier:      notifier,
		notifications: notifications,
	}
}

func (s *MessagingService) Send(ctx context.Context, senderID string, in ports.SendMessageInput) (*domain.Message, error) {
	if in.ReceiverID == senderID {
		return nil, domain.ErrForbidden
	}
	receiver, err := s.users.FindByID(ctx, in.ReceiverID)
	if err != nil {
		return nil, err
	}

	msg, err := s.messages.Create(ctx, &domain.Message{
		Content:    in.Content,
		Type:       in.Type,
		FileURL:    in.FileURL,
		SenderID:   senderID,
		ReceiverID: receiver.ID,
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.SendToUser(msg.ReceiverID, "message", msg)
		s.notifier.SendToUser(msg.SenderID, "message", msg)
	}
	if s.notifications != nil && msg.Sender != nil {
		s.notifications.Notify(ctx, msg.ReceiverID,
			"New message from "+msg.Sender.FirstName+" "+msg.Sender.LastName,
			domain.NotifyMessage)
	}
	return msg, nil
}

func (s *MessagingService) Update(ctx context.Context, senderID, messageID, content string) (*domain.Message, error) {
	msg, err := s.messages.FindByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if msg.SenderID != senderID {
		return nil, domain.ErrForbidden
	}

	updated, err := s.messages.UpdateContent(ctx, messageID, content)
	if err != nil {
		return nil, err
	}
	if s.notifier != nil {
		s.notifier.SendToUser(updated.ReceiverID, "message_updated", updated)
	}
	return updated, nil
}

func (s *MessagingService) Delete(ctx context.Context, senderID, messageID string) error {
	msg, err := s.messages.FindByID(ctx, messageID)
	if err != nil {
		return err
	}
	if msg.SenderID != senderID {
		return domain.ErrForbidden
	}

	if err := s.messages.Delete(ctx, messageID); err != nil {
		return err
	}
	if s.notifier != nil {
		s.notifier.SendToUser(msg.ReceiverID, "message_deleted", map[string]string{"id": messageID})
	}
	return nil
}

func (s *MessagingService) DeleteConversation(ctx context.Context, userID, otherID string) error {
	return s.messages.DeleteConversation(ctx, userID, otherID)
}

// Conversations returns the latest message per counterpart, newest first.
func (s *MessagingService) Conversations(ctx context.Context, userID string) ([]domain.Message, error) {
	recent, err := s.messages.Recent(ctx, userID, 200)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	out := make([]domain.Message, 0, len(recent))
	for _, msg := range recent {
		other := msg.SenderID
		if other == userID {
			other = msg.ReceiverID
		}
		if _, ok := seen[other]; ok {
			continue
		}
		seen[other] = struct{}{}
		out = append(out, msg)
	}
	return out, nil
}

func (s *MessagingService) History(ctx context.Context, userID, otherID string) ([]domain.Message, error) {
	return s.messages.Between(ctx, userID, otherID)
}
