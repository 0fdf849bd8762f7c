package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/talentlink/freelance-platform/internal/core/domain"
)

// SessionRepository stores refresh-token grants.
type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SessionRepository) FindByRefreshToken(ctx context.Context, token string) (*domain.Session, error) {
	var s domain.Session
	if err := r.db.WithContext(ctx).First(&s, "refresh_token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) IsAccessTokenValid(ctx context.Context, token string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Session{}).
		Where("access_token = ? AND valid", token).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SessionRepository) DeleteByRefreshToken(ctx context.Context, token string) error {
	// Zero rows affected is fine: logout must be idempotent.
	return r.db.WithContext(ctx).
		Delete(&domain.Session{}, "refresh_token = ?", token).Error
}

func (r *SessionRepository) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Session{}, "id = ?", id).Error
}

// Rotate retires the session identified by oldID and inserts replacement in
// one transaction. The re-read inside the transaction closes the race window
// between "check validity" and "consume token": when two refreshes race on
// the same token, the first commit wins and the loser observes a missing row.
func (r *SessionRepository) Rotate(ctx context.Context, oldID string, replacement *domain.Session) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current domain.Session
		if err := tx.First(&current, "id = ?", oldID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRotationConflict
			}
			return err
		}
		if !current.Valid {
			return domain.ErrSessionInvalidated
		}

		res := tx.Delete(&domain.Session{}, "id = ?", oldID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrRotationConflict
		}

		if replacement.ID == "" {
			replacement.ID = uuid.NewString()
		}
		return tx.Create(replacement).Error
	})
}

func (r *SessionRepository) InvalidateByUser(ctx context.Context, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Session{}).
		Where("user_id = ? AND valid", userID).
		Update("valid", false)
	return res.RowsAffected, res.Error
}
