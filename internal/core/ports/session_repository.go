package ports

import (
	"context"

	"github.com/talentlink/freelance-platform/internal/core/domain"
)

// SessionRepository persists refresh-token grants. One row per live refresh
// token; rotation replaces the row inside a single transaction.
type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) error
	FindByRefreshToken(ctx context.Context, token string) (*domain.Session, error)
	// IsAccessTokenValid reports whether a session row mirrors this access
	// token and is still flagged valid. Expiry is not checked here: access
	// token liveness is bounded by the JWT's own expiry claim, verified
	// earlier in the pipeline.
	IsAccessTokenValid(ctx context.Context, token string) (bool, error)
	// DeleteByRefreshToken removes the matching row. Deleting a token that
	// has no row is a no-op, not an error.
	DeleteByRefreshToken(ctx context.Context, token string) error
	DeleteByID(ctx context.Context, id string) error
	// Rotate atomically retires the session identified by oldID and inserts
	// replacement. It re-reads the old row inside the transaction; if the row
	// is gone (a concurrent refresh won the race) it aborts with
	// domain.ErrRotationConflict and replacement is not created.
	Rotate(ctx context.Context, oldID string, replacement *domain.Session) error
	// InvalidateByUser flips the valid flag on every live session of a user.
	InvalidateByUser(ctx context.Context, userID string) (int64, error)
}
