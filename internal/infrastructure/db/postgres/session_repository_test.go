package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/talentlink/freelance-platform/internal/core/domain"
)

// openTestDB opens an in-memory database with the same gorm settings the
// production connection uses.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Session{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestSession(userID string) *domain.Session {
	return &domain.Session{
		ID:           uuid.NewString(),
		UserID:       userID,
		RefreshToken: "refresh-" + uuid.NewString(),
		AccessToken:  "access-" + uuid.NewString(),
		IPAddress:    "10.0.0.1",
		UserAgent:    "test-agent",
		ExpiresAt:    time.Now().UTC().Add(time.Hour),
		Valid:        true,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestSessionRepository_CreateAndFind(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))
	ctx := context.Background()

	s := newTestSession("user-1")
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := repo.FindByRefreshToken(ctx, s.RefreshToken)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.ID != s.ID || found.UserID != "user-1" || !found.Valid {
		t.Fatalf("unexpected session: %+v", found)
	}

	if _, err := repo.FindByRefreshToken(ctx, "unknown"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionRepository_RefreshTokenIsUnique(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))
	ctx := context.Background()

	s := newTestSession("user-1")
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("create: %v", err)
	}

	dup := newTestSession("user-2")
	dup.RefreshToken = s.RefreshToken
	if err := repo.Create(ctx, dup); err == nil {
		t.Fatal("expected unique violation for duplicated refresh token")
	}
}

func TestSessionRepository_Rotate(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))
	ctx := context.Background()

	old := newTestSession("user-1")
	if err := repo.Create(ctx, old); err != nil {
		t.Fatalf("create: %v", err)
	}

	replacement := newTestSession("user-1")
	if err := repo.Rotate(ctx, old.ID, replacement); err != nil {
		t.Fatalf("rotate: %v", err)
	}

	if _, err := repo.FindByRefreshToken(ctx, old.RefreshToken); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("old session must be gone, got %v", err)
	}
	if _, err := repo.FindByRefreshToken(ctx, replacement.RefreshToken); err != nil {
		t.Fatalf("replacement must exist: %v", err)
	}
}

// A second rotation against the same retired row models the loser of a
// concurrent refresh race: it must abort and must not insert its replacement.
func TestSessionRepository_RotateReplayLoses(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	old := newTestSession("user-1")
	if err := repo.Create(ctx, old); err != nil {
		t.Fatalf("create: %v", err)
	}

	winner := newTestSession("user-1")
	if err := repo.Rotate(ctx, old.ID, winner); err != nil {
		t.Fatalf("first rotate: %v", err)
	}

	loser := newTestSession("user-1")
	if err := repo.Rotate(ctx, old.ID, loser); !errors.Is(err, domain.ErrRotationConflict) {
		t.Fatalf("expected ErrRotationConflict, got %v", err)
	}

	var count int64
	if err := db.Model(&domain.Session{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 session after lost replay, got %d", count)
	}
	if _, err := repo.FindByRefreshToken(ctx, loser.RefreshToken); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("loser replacement must not be created, got %v", err)
	}
}

func TestSessionRepository_RotateInvalidatedSession(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))
	ctx := context.Background()

	s := newTestSession("user-1")
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.InvalidateByUser(ctx, "user-1"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}

	if err := repo.Rotate(ctx, s.ID, newTestSession("user-1")); !errors.Is(err, domain.ErrSessionInvalidated) {
		t.Fatalf("expected ErrSessionInvalidated, got %v", err)
	}
}

func TestSessionRepository_DeleteByRefreshTokenIdempotent(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))
	ctx := context.Background()

	s := newTestSession("user-1")
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.DeleteByRefreshToken(ctx, s.RefreshToken); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.DeleteByRefreshToken(ctx, s.RefreshToken); err != nil {
		t.Fatalf("second delete must be a no-op, got %v", err)
	}
	if err := repo.DeleteByRefreshToken(ctx, "never-existed"); err != nil {
		t.Fatalf("deleting an unknown token must be a no-op, got %v", err)
	}
}

func TestSessionRepository_IsAccessTokenValid(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))
	ctx := context.Background()

	s := newTestSession("user-1")
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("create: %v", err)
	}

	ok, err := repo.IsAccessTokenValid(ctx, s.AccessToken)
	if err != nil || !ok {
		t.Fatalf("expected valid access token, got ok=%v err=%v", ok, err)
	}

	if ok, _ := repo.IsAccessTokenValid(ctx, "unknown"); ok {
		t.Fatal("unknown access token must not validate")
	}

	n, err := repo.InvalidateByUser(ctx, "user-1")
	if err != nil || n != 1 {
		t.Fatalf("invalidate: n=%d err=%v", n, err)
	}
	if ok, _ := repo.IsAccessTokenValid(ctx, s.AccessToken); ok {
		t.Fatal("access token of an invalidated session must not validate")
	}
}
