package ports

import (
	"context"

	"github.com/talentlink/freelance-platform/internal/core/domain"
)

// ReviewService manages peer reviews.
type ReviewService interface {
	Create(ctx context.Context, reviewerID, revieweeID string, rating int, comment string) (*domain.Review, error)
	ListForUser(ctx context.Context, revieweeID string) ([]domain.Review, error)
}

// PaymentService creates payment intents.
type PaymentService interface {
	CreateIntent(ctx context.Context, userID string, amount float64, currency string) (*domain.Payment, error)
}

// MatchResult is the outcome of AI job matching.
type MatchResult struct {
	JobID       string  `json:"jobId"`
	ApplicantID string  `json:"applicantId"`
	Score       float64 `json:"score"`
}

// GeneratedDescription is the outcome of AI content generation.
type GeneratedDescription struct {
	Description     string   `json:"description"`
	SuggestedSkills []string `json:"suggestedSkills"`
}

// AIService provides skills matching and content generation.
type AIService interface {
	// MatchJob scores how well an applicant's skills fit a job and persists
	// the score on their application.
	MatchJob(ctx context.Context, jobID, applicantID string) (*MatchResult, error)
	GenerateDescription(ctx context.Context, title, category string) (*GeneratedDescription, error)
}
