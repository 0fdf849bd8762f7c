package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/talentlink/freelance-platform/internal/core/domain"
	"github.com/talentlink/freelance-platform/internal/core/ports"
)

// AuthService implements registration, login, refresh-token rotation and
// logout on top of the user and session stores.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionRepository
	tokens   *TokenIssuer
	log      zerolog.Logger
	now      func() time.Time
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, tokens *TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput, client ports.ClientInfo) (*ports.AuthResult, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	role := in.Role
	if role == "" {
		role = domain.RoleFreelancer
	}
	if !domain.ValidRole(role) || role == domain.RoleAdmin {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         role,
		Avatar:       in.Avatar,
		Bio:          in.Bio,
	}
	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return s.establishSession(ctx, created, client)
}

func (s *AuthService) Login(ctx context.Context, email, password string, client ports.ClientInfo) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// Unknown email reads the same as a wrong password.
		return nil, domain.ErrInvalidCredentials
	}
	if user.PasswordHash == "" {
		// OAuth-only account; there is no password to compare.
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.establishSession(ctx, user, client)
}

// OAuthLogin logs in an identity-provider profile, creating the account on
// first sight with an empty password hash.
func (s *AuthService) OAuthLogin(ctx context.Context, profile ports.OAuthProfile, client ports.ClientInfo) (*ports.AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, profile.Email)
	if err != nil {
		user, err = s.users.Create(ctx, &domain.User{
			ID:        uuid.NewString(),
			Email:     profile.Email,
			FirstName: profile.FirstName,
			LastName:  profile.LastName,
			Avatar:    profile.Picture,
			Role:      domain.RoleFreelancer,
		})
		if err != nil {
			return nil, err
		}
	}

	return s.establishSession(ctx, user, client)
}

// Refresh exchanges a refresh token for a new pair, retiring the old session
// and inserting the replacement in one transaction. Every failure collapses
// into domain.ErrInvalidRefreshToken; the cause is only logged.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string, client ports.ClientInfo) (*ports.AuthResult, error) {
	if refreshToken == "" {
		return nil, domain.ErrInvalidRefreshToken
	}

	userID, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		s.log.Debug().Err(err).Msg("refresh rejected: token verification failed")
		return nil, domain.ErrInvalidRefreshToken
	}

	session, err := s.sessions.FindByRefreshToken(ctx, refreshToken)
	if err != nil {
		s.log.Debug().Err(err).Msg("refresh rejected: no session for token")
		return nil, domain.ErrInvalidRefreshToken
	}
	if session.UserID != userID {
		s.log.Warn().Str("session_id", session.ID).Msg("refresh rejected: subject mismatch")
		return nil, domain.ErrInvalidRefreshToken
	}
	if !session.Valid {
		s.log.Debug().Str("session_id", session.ID).Msg("refresh rejected: session invalidated")
		return nil, domain.ErrInvalidRefreshToken
	}
	if !session.ExpiresAt.After(s.now()) {
		_ = s.sessions.DeleteByID(ctx, session.ID)
		s.log.Debug().Str("session_id", session.ID).Msg("refresh rejected: session expired")
		return nil, domain.ErrInvalidRefreshToken
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		s.log.Warn().Err(err).Str("session_id", session.ID).Msg("refresh rejected: user gone")
		return nil, domain.ErrInvalidRefreshToken
	}

	replacement, result, err := s.mintSession(user, client)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Rotate(ctx, session.ID, replacement); err != nil {
		// A lost rotation race is terminal for this token. Handing out a
		// fallback pair here would turn token theft into a silent fork.
		s.log.Info().Err(err).Str("session_id", session.ID).Msg("refresh rejected: rotation aborted")
		return nil, domain.ErrInvalidRefreshToken
	}

	return result, nil
}

// Logout deletes the session behind the refresh token. Unknown tokens are a
// no-op so logout never fails for an already-cleared cookie.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.sessions.DeleteByRefreshToken(ctx, refreshToken)
}

// ValidateAccessToken verifies the token cryptographically, then checks the
// session store so tokens from rotated or logged-out sessions die early.
func (s *AuthService) ValidateAccessToken(ctx context.Context, token string) (*ports.TokenClaims, error) {
	claims, err := s.tokens.ParseAccess(token)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	ok, err := s.sessions.IsAccessTokenValid(ctx, token)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	return claims, nil
}

func (s *AuthService) establishSession(ctx context.Context, user *domain.User, client ports.ClientInfo) (*ports.AuthResult, error) {
	session, result, err := s.mintSession(user, client)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return result, nil
}

// mintSession builds a token pair and the session row mirroring it. The row
// is not persisted here; callers insert it directly or via rotation.
func (s *AuthService) mintSession(user *domain.User, client ports.ClientInfo) (*domain.Session, *ports.AuthResult, error) {
	access, accessExp, err := s.tokens.AccessToken(user)
	if err != nil {
		return nil, nil, err
	}
	refresh, refreshExp, err := s.tokens.RefreshToken(user)
	if err != nil {
		return nil, nil, err
	}

	session := &domain.Session{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		RefreshToken: refresh,
		AccessToken:  access,
		IPAddress:    client.IP,
		UserAgent:    client.UserAgent,
		ExpiresAt:    refreshExp,
		Valid:        true,
		CreatedAt:    s.now(),
	}
	result := &ports.AuthResult{
		AccessToken:      access,
		RefreshToken:     refresh,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
		User:             user,
	}
	return session, result, nil
}
