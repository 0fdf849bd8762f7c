package ports

import (
	"context"

	"github.com/talentlink/freelance-platform/internal/core/domain"
)

// UpdateProfileInput holds the mutable profile fields. Nil pointers mean
// "leave unchanged".
type UpdateProfileInput struct {
	FirstName  *string
	LastName   *string
	Avatar     *string
	Bio        *string
	Location   *string
	Skills     *[]string
	HourlyRate *float64
}

// UserService exposes public profiles and self-service profile updates.
type UserService interface {
	Profile(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (*domain.User, error)
}
