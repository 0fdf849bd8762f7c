package ports

import (
	"context"

	"github.com/talentlink/freelance-platform/internal/core/domain"
)

// UserRepository defines user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindProfile loads a user together with reviews and jobs posted.
	FindProfile(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, fields map[string]any) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	// List returns a page of users ordered newest first, optionally filtered
	// by a free-text search over email and names, plus the unpaged total.
	List(ctx context.Context, page, limit int, search string) ([]domain.User, int64, error)
	Recent(ctx context.Context, n int) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
}
