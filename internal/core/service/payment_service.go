package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/talentlink/freelance-platform/internal/core/domain"
	"github.com/talentlink/freelance-platform/internal/core/ports"
)

// PaymentService creates payment intents. The provider integration is a
// stand-in: intents are recorded locally with a synthetic client secret and
// the row is the system of record for revenue reporting.
type PaymentService struct {
	payments      ports.PaymentRepository
	notifications ports.NotificationService
	publisher     ports.EventPublisher
	log           zerolog.Logger
}

func NewPaymentService(payments ports.PaymentRepository, notifications ports.NotificationService, publisher ports.EventPublisher, log zerolog.Logger) *PaymentService {
	return &PaymentService{payments: payments, notifications: notifications, publisher: publisher, log: log}
}

func (s *PaymentService) CreateIntent(ctx context.Context, userID string, amount float64, currency string) (*domain.Payment, error) {
	if currency == "" {
		currency = "USD"
	}

	payment, err := s.payments.Create(ctx, &domain.Payment{
		UserID:       userID,
		Amount:       amount,
		Currency:     currency,
		Status:       domain.PaymentPending,
		ClientSecret: fmt.Sprintf("pi_%s_secret_%s", uuid.NewString(), uuid.NewString()),
	})
	if err != nil {
		return nil, err
	}

	if s.notifications != nil {
		s.notifications.Notify(ctx, userID,
			fmt.Sprintf("Payment of %.2f %s initiated", amount, currency),
			domain.NotifyPayment)
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, "payment_events", payment.ID, payment); err != nil {
			s.log.Warn().Err(err).Str("payment_id", payment.ID).Msg("payment event publish failed")
		}
	}
	return payment, nil
}
