package service

import (
	"context"

	"github.com/talentlink/freelance-platform/internal/core/domain"
	"github.com/talentlink/freelance-platform/internal/core/ports"
)

// ReviewService manages peer reviews.
type ReviewService struct {
	reviews       ports.ReviewRepository
	users         ports.UserRepository
	notifications ports.NotificationService
}

func NewReviewService(reviews ports.ReviewRepository, users ports.UserRepository, notifications ports.NotificationService) *ReviewService {
	return &ReviewService{reviews: reviews, users: users, notifications: notifications}
}

func (s *ReviewService) Create(ctx context.Context, reviewerID, revieweeID string, rating int, comment string) (*domain.Review, error) {
	if reviewerID == revieweeID {
		return nil, domain.ErrSelfReview
	}
	if _, err := s.users.FindByID(ctx, revieweeID); err != nil {
		return nil, err
	}

	review, err := s.reviews.Create(ctx, &domain.Review{
		Rating:     rating,
		Comment:    comment,
		ReviewerID: reviewerID,
		RevieweeID: revieweeID,
	})
	if err != nil {
		return nil, err
	}

	if s.notifications != nil {
		s.notifications.Notify(ctx, revieweeID, "You received a new review", domain.NotifySystem)
	}
	return review, nil
}

func (s *ReviewService) ListForUser(ctx context.Context, revieweeID string) ([]domain.Review, error) {
	return s.reviews.ListForReviewee(ctx, revieweeID)
}
