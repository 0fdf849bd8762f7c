package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/talentlink/freelance-platform/internal/core/domain"
)

// Pairing sessions are short lived; an abandoned QR code disappears on its own.
const qrTTL = 3 * time.Minute

// QRStore keeps QR login pairing sessions in Redis under qr:<token> keys.
type QRStore struct {
	client *redis.Client
}

// NewQRStore creates a QRStore wrapping the given Redis client.
func NewQRStore(client *redis.Client) *QRStore {
	return &QRStore{client: client}
}

func (s *QRStore) Create(ctx context.Context, token string) error {
	payload, err := json.Marshal(domain.QRSession{
		Token:  token,
		Status: domain.QRStatusPending,
	})
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(token), payload, qrTTL).Err()
}

func (s *QRStore) Get(ctx context.Context, token string) (*domain.QRSession, error) {
	raw, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrQRSessionNotFound
		}
		return nil, fmt.Errorf("qr get: %w", err)
	}
	return decode(raw)
}

// Approve marks a pending session as verified. The remaining TTL is kept so
// approval does not extend the pairing window.
func (s *QRStore) Approve(ctx context.Context, token, userID string) error {
	session, err := s.Get(ctx, token)
	if err != nil {
		return err
	}
	if session.Status != domain.QRStatusPending {
		return domain.ErrQRSessionNotFound
	}

	session.Status = domain.QRStatusVerified
	session.UserID = userID
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(token), payload, redis.KeepTTL).Err()
}

// Consume removes the session and returns its final state. GETDEL makes the
// read and the delete atomic, so a token can be redeemed at most once.
func (s *QRStore) Consume(ctx context.Context, token string) (*domain.QRSession, error) {
	raw, err := s.client.GetDel(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrQRSessionNotFound
		}
		return nil, fmt.Errorf("qr consume: %w", err)
	}
	return decode(raw)
}

func (s *QRStore) key(token string) string {
	return "qr:" + token
}

func decode(raw []byte) (*domain.QRSession, error) {
	var session domain.QRSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("qr decode: %w", err)
	}
	return &session, nil
}
