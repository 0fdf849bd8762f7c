package ports

import (
	"context"

	"github.com/talentlink/freelance-platform/internal/core/domain"
)

// QRStore keeps short-lived QR login pairing sessions. Entries expire on
// their own; Consume removes the entry so a token can be redeemed once.
type QRStore interface {
	Create(ctx context.Context, token string) error
	Get(ctx context.Context, token string) (*domain.QRSession, error)
	// Approve marks a pending session as verified by the given user.
	Approve(ctx context.Context, token, userID string) error
	// Consume deletes the session and returns its final state.
	Consume(ctx context.Context, token string) (*domain.QRSession, error)
}
