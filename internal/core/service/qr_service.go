package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/talentlink/freelance-platform/internal/core/domain"
	"github.com/talentlink/freelance-platform/internal/core/ports"
)

// QRService implements second-device login. The first device displays a
// pairing token as a QR code and polls; a logged-in phone approves it; the
// next poll consumes the token and receives a fresh session.
type QRService struct {
	store ports.QRStore
	users ports.UserRepository
	auth  *AuthService
}

func NewQRService(store ports.QRStore, users ports.UserRepository, auth *AuthService) *QRService {
	return &QRService{store: store, users: users, auth: auth}
}

func (s *QRService) Start(ctx context.Context) (*domain.QRSession, error) {
	token := uuid.NewString()
	if err := s.store.Create(ctx, token); err != nil {
		return nil, err
	}
	return &domain.QRSession{Token: token, Status: domain.QRStatusPending}, nil
}

func (s *QRService) Approve(ctx context.Context, token, userID string) error {
	return s.store.Approve(ctx, token, userID)
}

// Poll returns ErrQRSessionPending while the token awaits approval. Once
// approved it consumes the token and logs the approving user in; the token
// cannot be redeemed twice.
func (s *QRService) Poll(ctx context.Context, token string, client ports.ClientInfo) (*ports.AuthResult, error) {
	session, err := s.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.QRStatusVerified {
		return nil, domain.ErrQRSessionPending
	}

	consumed, err := s.store.Consume(ctx, token)
	if err != nil {
		return nil, err
	}
	if consumed.Status != domain.QRStatusVerified || consumed.UserID == "" {
		return nil, domain.ErrQRSessionNotFound
	}

	user, err := s.users.FindByID(ctx, consumed.UserID)
	if err != nil {
		return nil, domain.ErrQRSessionNotFound
	}
	return s.auth.establishSession(ctx, user, client)
}
