package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/talentlink/freelance-platform/internal/core/domain"
	"github.com/talentlink/freelance-platform/internal/core/ports"
)

type stubQRStore struct {
	byToken map[string]*domain.QRSession
}

func newStubQRStore() *stubQRStore {
	return &stubQRStore{byToken: make(map[string]*domain.QRSession)}
}

func (s *stubQRStore) Create(_ context.Context, token string) error {
	s.byToken[token] = &domain.QRSession{Token: token, Status: domain.QRStatusPending}
	return nil
}

func (s *stubQRStore) Get(_ context.Context, token string) (*domain.QRSession, error) {
	if qr, ok := s.byToken[token]; ok {
		return qr, nil
	}
	return nil, domain.ErrQRSessionNotFound
}

func (s *stubQRStore) Approve(_ context.Context, token, userID string) error {
	qr, ok := s.byToken[token]
	if !ok || qr.Status != domain.QRStatusPending {
		return domain.ErrQRSessionNotFound
	}
	qr.Status = domain.QRStatusVerified
	qr.UserID = userID
	return nil
}

func (s *stubQRStore) Consume(_ context.Context, token string) (*domain.QRSession, error) {
	qr, ok := s.byToken[token]
	if !ok {
		return nil, domain.ErrQRSessionNotFound
	}
	delete(s.byToken, token)
	return qr, nil
}

func qrFixture(t *testing.T) (*QRService, *AuthService, *stubQRStore) {
	t.Helper()
	users := newStubUserRepo()
	sessions := newStubSessionRepo()
	issuer := NewTokenIssuer("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	auth := NewAuthService(users, sessions, issuer, zerolog.Nop())
	store := newStubQRStore()
	return NewQRService(store, users, auth), auth, store
}

func TestQRService_FullPairingFlow(t *testing.T) {
	svc, auth, _ := qrFixture(t)
	ctx := context.Background()

	phone := register(t, auth, "phone@example.com")

	qr, err := svc.Start(ctx)
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if qr.Status != domain.QRStatusPending {
		t.Fatalf("new pairing must be pending, got %s", qr.Status)
	}

	// Desktop polls before approval.
	if _, err := svc.Poll(ctx, qr.Token, ports.ClientInfo{}); !errors.Is(err, domain.ErrQRSessionPending) {
		t.Fatalf("expected ErrQRSessionPending, got %v", err)
	}

	// Phone approves, desktop polls again and gets a session.
	if err := svc.Approve(ctx, qr.Token, phone.User.ID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	res, err := svc.Poll(ctx, qr.Token, ports.ClientInfo{IP: "10.0.0.9"})
	if err != nil {
		t.Fatalf("poll after approval failed: %v", err)
	}
	if res.User.ID != phone.User.ID {
		t.Fatalf("pairing must log in the approving user, got %s", res.User.ID)
	}

	// The token is single use.
	if _, err := svc.Poll(ctx, qr.Token, ports.ClientInfo{}); !errors.Is(err, domain.ErrQRSessionNotFound) {
		t.Fatalf("consumed token must be gone, got %v", err)
	}
}

func TestQRService_ApproveUnknownToken(t *testing.T) {
	svc, _, _ := qrFixture(t)

	if err := svc.Approve(context.Background(), "missing", "user-1"); !errors.Is(err, domain.ErrQRSessionNotFound) {
		t.Fatalf("expected ErrQRSessionNotFound, got %v", err)
	}
}
