package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/talentlink/freelance-platform/internal/core/domain"
	"github.com/talentlink/freelance-platform/internal/core/ports"
)

type stubUserRepo struct {
	byID map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.byID[user.ID] = user
	return user, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindProfile(ctx context.Context, id string) (*domain.User, error) {
	return r.FindByID(ctx, id)
}

func (r *stubUserRepo) Update(_ context.Context, id string, _ map[string]any) (*domain.User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *stubUserRepo) List(_ context.Context, _, _ int, _ string) ([]domain.User, int64, error) {
	out := make([]domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *stubUserRepo) Recent(_ context.Context, _ int) ([]domain.User, error) {
	return nil, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

type stubSessionRepo struct {
	byID      map[string]*domain.Session
	rotateErr error
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{byID: make(map[string]*domain.Session)}
}

func (r *stubSessionRepo) Create(_ context.Context, s *domain.Session) error {
	r.byID[s.ID] = s
	return nil
}

func (r *stubSessionRepo) FindByRefreshToken(_ context.Context, token string) (*domain.Session, error) {
	for _, s := range r.byID {
		if s.RefreshToken == token {
			return s, nil
		}
	}
	return nil, domain.ErrSessionNotFound
}

func (r *stubSessionRepo) IsAccessTokenValid(_ context.Context, token string) (bool, error) {
	for _, s := range r.byID {
		if s.AccessToken == token && s.Valid {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubSessionRepo) DeleteByRefreshToken(_ context.Context, token string) error {
	for id, s := range r.byID {
		if s.RefreshToken == token {
			delete(r.byID, id)
		}
	}
	return nil
}

func (r *stubSessionRepo) DeleteByID(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *stubSessionRepo) Rotate(_ context.Context, oldID string, replacement *domain.Session) error {
	if r.rotateErr != nil {
		return r.rotateErr
	}
	current, ok := r.byID[oldID]
	if !ok {
		return domain.ErrRotationConflict
	}
	if !current.Valid {
		return domain.ErrSessionInvalidated
	}
	delete(r.byID, oldID)
	r.byID[replacement.ID] = replacement
	return nil
}

func (r *stubSessionRepo) InvalidateByUser(_ context.Context, userID string) (int64, error) {
	var n int64
	for _, s := range r.byID {
		if s.UserID == userID && s.Valid {
			s.Valid = false
			n++
		}
	}
	return n, nil
}

func newAuthFixture() (*AuthService, *stubUserRepo, *stubSessionRepo) {
	users := newStubUserRepo()
	sessions := newStubSessionRepo()
	issuer := NewTokenIssuer("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	svc := NewAuthService(users, sessions, issuer, zerolog.Nop())
	return svc, users, sessions
}

func register(t *testing.T, svc *AuthService, email string) *ports.AuthResult {
	t.Helper()
	res, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:     email,
		Password:  "s3cret-pass",
		FirstName: "Alice",
		LastName:  "Doe",
		Role:      domain.RoleFreelancer,
	}, ports.ClientInfo{IP: "10.0.0.1", UserAgent: "test-agent"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	return res
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, users, sessions := newAuthFixture()

	res := register(t, svc, "alice@example.com")

	if res.AccessToken == "" || res.RefreshToken == "" {
		t.Fatalf("expected token pair, got %+v", res)
	}
	if res.AccessToken == res.RefreshToken {
		t.Fatal("access and refresh tokens must differ")
	}

	user, err := users.FindByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if user.PasswordHash == "s3cret-pass" {
		t.Fatal("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	if len(sessions.byID) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions.byID))
	}
	for _, s := range sessions.byID {
		if s.RefreshToken != res.RefreshToken || s.AccessToken != res.AccessToken {
			t.Fatal("session row does not mirror the issued tokens")
		}
		if s.IPAddress != "10.0.0.1" || s.UserAgent != "test-agent" {
			t.Fatalf("client info not recorded: %+v", s)
		}
	}
}

func TestAuthService_Register_RejectsAdminRole(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "evil@example.com",
		Password: "pass",
		Role:     domain.RoleAdmin,
	}, ports.ClientInfo{})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, _ := newAuthFixture()
	register(t, svc, "carol@example.com")

	res, err := svc.Login(context.Background(), "carol@example.com", "s3cret-pass", ports.ClientInfo{})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims, err := svc.ValidateAccessToken(context.Background(), res.AccessToken)
	if err != nil {
		t.Fatalf("issued access token did not validate: %v", err)
	}
	if claims.Email != "carol@example.com" || claims.Role != domain.RoleFreelancer {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_WrongPasswordAndUnknownEmailReadAlike(t *testing.T) {
	svc, _, _ := newAuthFixture()
	register(t, svc, "dave@example.com")

	_, errWrong := svc.Login(context.Background(), "dave@example.com", "badpass", ports.ClientInfo{})
	_, errGhost := svc.Login(context.Background(), "ghost@example.com", "badpass", ports.ClientInfo{})

	if !errors.Is(errWrong, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", errWrong)
	}
	if !errors.Is(errGhost, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", errGhost)
	}
}

func TestAuthService_OAuthLogin_CreatesAccountOnFirstSight(t *testing.T) {
	svc, users, _ := newAuthFixture()

	profile := ports.OAuthProfile{
		Email:     "oauth@example.com",
		FirstName: "Oda",
		LastName:  "Auth",
		Picture:   "https://avatars.example/oda.png",
	}

	res, err := svc.OAuthLogin(context.Background(), profile, ports.ClientInfo{})
	if err != nil {
		t.Fatalf("oauth login failed: %v", err)
	}
	if res.User.Email != "oauth@example.com" {
		t.Fatalf("unexpected user: %+v", res.User)
	}

	// The provider account has no password; password login must fail.
	if _, err := svc.Login(context.Background(), "oauth@example.com", "", ports.ClientInfo{}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	// Second login with the same profile reuses the account.
	if _, err := svc.OAuthLogin(context.Background(), profile, ports.ClientInfo{}); err != nil {
		t.Fatalf("second oauth login failed: %v", err)
	}
	if got, _ := users.Count(context.Background()); got != 1 {
		t.Fatalf("expected 1 user, got %d", got)
	}
}

func TestAuthService_Refresh_RotatesSession(t *testing.T) {
	svc, _, sessions := newAuthFixture()
	first := register(t, svc, "rot@example.com")

	second, err := svc.Refresh(context.Background(), first.RefreshToken, ports.ClientInfo{IP: "10.0.0.2"})
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if second.RefreshToken == first.RefreshToken {
		t.Fatal("refresh must issue a new refresh token")
	}
	if second.AccessToken == first.AccessToken {
		t.Fatal("refresh must issue a new access token")
	}
	if len(sessions.byID) != 1 {
		t.Fatalf("rotation must replace the row, got %d rows", len(sessions.byID))
	}

	// The retired pair is dead on both paths.
	if _, err := svc.Refresh(context.Background(), first.RefreshToken, ports.ClientInfo{}); !errors.Is(err, domain.ErrInvalidRefreshToken) {
		t.Fatalf("replayed refresh token must be rejected, got %v", err)
	}
	if _, err := svc.ValidateAccessToken(context.Background(), first.AccessToken); err == nil {
		t.Fatal("rotated-out access token must be rejected")
	}

	// The new pair works.
	if _, err := svc.ValidateAccessToken(context.Background(), second.AccessToken); err != nil {
		t.Fatalf("new access token rejected: %v", err)
	}
}

func TestAuthService_Refresh_GarbageToken(t *testing.T) {
	svc, _, _ := newAuthFixture()

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := svc.Refresh(context.Background(), token, ports.ClientInfo{}); !errors.Is(err, domain.ErrInvalidRefreshToken) {
			t.Fatalf("token %q: expected ErrInvalidRefreshToken, got %v", token, err)
		}
	}
}

func TestAuthService_Refresh_ForeignSignature(t *testing.T) {
	svc, _, sessions := newAuthFixture()
	res := register(t, svc, "sig@example.com")

	// A token signed with a different secret never reaches the store.
	other := NewTokenIssuer("access-secret", "wrong-refresh-secret", time.Minute, time.Hour)
	forged, _, err := other.RefreshToken(res.User)
	if err != nil {
		t.Fatalf("mint forged token: %v", err)
	}
	if _, err := svc.Refresh(context.Background(), forged, ports.ClientInfo{}); !errors.Is(err, domain.ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
	if len(sessions.byID) != 1 {
		t.Fatalf("store must be untouched, got %d rows", len(sessions.byID))
	}
}

func TestAuthService_Refresh_ExpiredSessionRemoved(t *testing.T) {
	svc, _, sessions := newAuthFixture()
	res := register(t, svc, "exp@example.com")

	for _, s := range sessions.byID {
		s.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	}

	if _, err := svc.Refresh(context.Background(), res.RefreshToken, ports.ClientInfo{}); !errors.Is(err, domain.ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
	if len(sessions.byID) != 0 {
		t.Fatalf("expired session must be removed, got %d rows", len(sessions.byID))
	}
}

func TestAuthService_Refresh_InvalidatedSession(t *testing.T) {
	svc, _, sessions := newAuthFixture()
	res := register(t, svc, "inv@example.com")

	if _, err := sessions.InvalidateByUser(context.Background(), res.User.ID); err != nil {
		t.Fatalf("invalidate: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), res.RefreshToken, ports.ClientInfo{}); !errors.Is(err, domain.ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestAuthService_Refresh_LostRaceIsTerminal(t *testing.T) {
	svc, _, sessions := newAuthFixture()
	res := register(t, svc, "race@example.com")

	sessions.rotateErr = domain.ErrRotationConflict

	if _, err := svc.Refresh(context.Background(), res.RefreshToken, ports.ClientInfo{}); !errors.Is(err, domain.ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
	// The loser must not leave a second live session behind.
	if len(sessions.byID) != 1 {
		t.Fatalf("expected 1 session after lost race, got %d", len(sessions.byID))
	}
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	svc, _, sessions := newAuthFixture()
	res := register(t, svc, "out@example.com")

	if err := svc.Logout(context.Background(), res.RefreshToken); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if len(sessions.byID) != 0 {
		t.Fatalf("session must be deleted, got %d rows", len(sessions.byID))
	}
	if err := svc.Logout(context.Background(), res.RefreshToken); err != nil {
		t.Fatalf("second logout must be a no-op, got %v", err)
	}
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("logout without a token must be a no-op, got %v", err)
	}

	// Both tokens die with the session.
	if _, err := svc.Refresh(context.Background(), res.RefreshToken, ports.ClientInfo{}); !errors.Is(err, domain.ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken after logout, got %v", err)
	}
	if _, err := svc.ValidateAccessToken(context.Background(), res.AccessToken); err == nil {
		t.Fatal("access token must be rejected after logout")
	}
}

func TestTokenIssuer_ExpiredAccessToken(t *testing.T) {
	issuer := NewTokenIssuer("access-secret", "refresh-secret", time.Minute, time.Hour)
	issuer.now = func() time.Time { return time.Now().UTC().Add(-time.Hour) }

	user := &domain.User{ID: "u-1", Email: "old@example.com", Role: domain.RoleFreelancer}
	token, _, err := issuer.AccessToken(user)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	issuer.now = func() time.Time { return time.Now().UTC() }
	if _, err := issuer.ParseAccess(token); err == nil {
		t.Fatal("expired token must not parse")
	}
}

func TestTokenIssuer_MintsAreUniqueWithinASecond(t *testing.T) {
	issuer := NewTokenIssuer("access-secret", "refresh-secret", time.Minute, time.Hour)
	frozen := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return frozen }

	user := &domain.User{ID: "u-1", Email: "same@example.com", Role: domain.RoleFreelancer}

	accessA, _, _ := issuer.AccessToken(user)
	accessB, _, _ := issuer.AccessToken(user)
	if accessA == accessB {
		t.Fatal("two access tokens minted in the same second must differ")
	}

	refreshA, _, _ := issuer.RefreshToken(user)
	refreshB, _, _ := issuer.RefreshToken(user)
	if refreshA == refreshB {
		t.Fatal("two refresh tokens minted in the same second must differ")
	}
}

func TestTokenIssuer_RefreshClaimsMirrorAccess(t *testing.T) {
	issuer := NewTokenIssuer("access-secret", "refresh-secret", time.Minute, time.Hour)
	user := &domain.User{ID: "u-1", Email: "mirror@example.com", Role: domain.RoleEmployer}

	refresh, _, err := issuer.RefreshToken(user)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := issuer.parse(refresh, issuer.refreshSecret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got, _ := claims["sub"].(string); got != "u-1" {
		t.Fatalf("sub = %q, want u-1", got)
	}
	if got, _ := claims["email"].(string); got != "mirror@example.com" {
		t.Fatalf("email = %q, want mirror@example.com", got)
	}
	if got, _ := claims["role"].(string); got != domain.RoleEmployer {
		t.Fatalf("role = %q, want %q", got, domain.RoleEmployer)
	}
	if got, _ := claims["jti"].(string); got == "" {
		t.Fatal("refresh token must carry a jti")
	}
}

func TestAuthService_Refresh_RotatesUnderFrozenClock(t *testing.T) {
	svc, _, sessions := newAuthFixture()
	frozen := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.tokens.now = func() time.Time { return frozen }
	svc.now = func() time.Time { return frozen }

	first := register(t, svc, "frozen@example.com")

	// Login and refresh land in the same second; the replacement pair must
	// still be distinct or the unique token columns and single-use rotation
	// both break.
	second, err := svc.Refresh(context.Background(), first.RefreshToken, ports.ClientInfo{})
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if second.RefreshToken == first.RefreshToken {
		t.Fatal("same-second rotation must issue a new refresh token")
	}
	if second.AccessToken == first.AccessToken {
		t.Fatal("same-second rotation must issue a new access token")
	}
	if len(sessions.byID) != 1 {
		t.Fatalf("rotation must replace the row, got %d rows", len(sessions.byID))
	}
	if _, err := svc.Refresh(context.Background(), first.RefreshToken, ports.ClientInfo{}); !errors.Is(err, domain.ErrInvalidRefreshToken) {
		t.Fatalf("replayed refresh token must be rejected, got %v", err)
	}
}

func TestTokenIssuer_KindsAreNotInterchangeable(t *testing.T) {
	issuer := NewTokenIssuer("access-secret", "refresh-secret", time.Minute, time.Hour)
	user := &domain.User{ID: "u-1", Email: "kind@example.com", Role: domain.RoleEmployer}

	access, _, _ := issuer.AccessToken(user)
	refresh, _, _ := issuer.RefreshToken(user)

	if _, err := issuer.ParseAccess(refresh); err == nil {
		t.Fatal("refresh token must not parse as access token")
	}
	if _, err := issuer.ParseRefresh(access); err == nil {
		t.Fatal("access token must not parse as refresh token")
	}
}
