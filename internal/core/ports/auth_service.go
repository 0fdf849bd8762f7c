package ports

import (
	"context"
	"time"

	"github.com/talentlink/freelance-platform/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string // optional; defaults to FREELANCER
	Avatar    string
	Bio       string
}

// ClientInfo is the request metadata recorded on a session row.
type ClientInfo struct {
	IP        string
	UserAgent string
}

// OAuthProfile is the subset of an identity-provider profile the platform uses.
type OAuthProfile struct {
	Email     string
	FirstName string
	LastName  string
	Picture   string
}

// TokenClaims are the identity fields extracted from a verified access token.
type TokenClaims struct {
	UserID string
	Email  string
	Role   string
}

// AuthResult is returned by every flow that establishes a session.
type AuthResult struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
	User             *domain.User
}

// AuthService implements registration, login, token rotation and logout.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput, client ClientInfo) (*AuthResult, error)
	Login(ctx context.Context, email, password string, client ClientInfo) (*AuthResult, error)
	// Refresh exchanges a refresh token for a new token pair, rotating the
	// underlying session. Any failure surfaces domain.ErrInvalidRefreshToken.
	Refresh(ctx context.Context, refreshToken string, client ClientInfo) (*AuthResult, error)
	// Logout deletes the session for the given refresh token. Idempotent.
	Logout(ctx context.Context, refreshToken string) error
	// OAuthLogin logs in an identity-provider profile, creating the account
	// on first sight.
	OAuthLogin(ctx context.Context, profile OAuthProfile, client ClientInfo) (*AuthResult, error)
	// ValidateAccessToken verifies the token signature and expiry, then
	// checks the session store so rotated or logged-out tokens are refused
	// before their natural expiry.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}

// QRService implements second-device login by polling.
type QRService interface {
	// Start creates a pending pairing token.
	Start(ctx context.Context) (*domain.QRSession, error)
	// Approve lets an authenticated user claim a pending token.
	Approve(ctx context.Context, token, userID string) error
	// Poll returns the session state. Once verified it consumes the token
	// and performs a normal login for the verified user.
	Poll(ctx context.Context, token string, client ClientInfo) (*AuthResult, error)
}
