package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/talentlink/freelance-platform/internal/core/domain"
	"github.com/talentlink/freelance-platform/internal/core/ports"
)

// NotificationService persists notifications, pushes them to the recipient's
// live connections and mirrors them onto the event bus.
type NotificationService struct {
	repo      ports.NotificationRepository
	notifier  ports.Notifier
	publisher ports.EventPublisher
	queue     ports.NotificationQueue
	log       zerolog.Logger
}

func NewNotificationService(repo ports.NotificationRepository, notifier ports.Notifier, publisher ports.EventPublisher, log zerolog.Logger) *NotificationService {
	return &NotificationService{
		repo:      repo,
		notifier:  notifier,
		publisher: publisher,
		log:       log,
	}
}

// AttachQueue routes Notify through background workers. Without a queue,
// Notify delivers inline.
func (s *NotificationService) AttachQueue(q ports.NotificationQueue) {
	s.queue = q
}

// Notify records a notification for the user. It never fails the caller:
// notifying is a side effect of some other operation that already succeeded.
func (s *NotificationService) Notify(ctx context.Context, userID, message, typ string) {
	if s.queue != nil {
		s.queue.Enqueue(userID, message, typ)
		return
	}
	if err := s.Deliver(ctx, userID, message, typ); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("notification delivery failed")
	}
}

// Deliver persists one notification and fans it out. Called by the queue
// workers, or inline when no queue is attached.
func (s *NotificationService) Deliver(ctx context.Context, userID, message, typ string) error {
	n, err := s.repo.Create(ctx, &domain.Notification{
		UserID:  userID,
		Message: message,
		Type:    typ,
	})
	if err != nil {
		return err
	}

	if s.notifier != nil {
		s.notifier.SendToUser(userID, "notification", n)
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, "notification_events", userID, n); err != nil {
			s.log.Warn().Err(err).Msg("notification event publish failed")
		}
	}
	return nil
}

func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.repo.ListForUser(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID string) (*domain.Notification, error) {
	return s.repo.MarkRead(ctx, id, userID)
}
