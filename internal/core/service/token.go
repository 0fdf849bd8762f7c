package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/talentlink/freelance-platform/internal/core/domain"
	"github.com/talentlink/freelance-platform/internal/core/ports"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// TokenIssuer mints and verifies the two JWT kinds. Access and refresh tokens
// are signed with separate secrets so one kind can never pass as the other.
type TokenIssuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewTokenIssuer(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &TokenIssuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// AccessToken mints a short-lived token carrying the user's identity. Each
// token gets a fresh jti; iat and exp have second granularity, so without it
// two mints in the same second would be byte-identical.
func (t *TokenIssuer) AccessToken(user *domain.User) (string, time.Time, error) {
	expires := t.now().Add(t.accessTTL)
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"jti":   uuid.NewString(),
		"exp":   expires.Unix(),
		"iat":   t.now().Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.accessSecret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

// RefreshToken mints a long-lived token carrying the same identity claims as
// the access token. The jti makes every mint unique; the session store keys
// on the token string, so rotation must never reissue an equal one.
func (t *TokenIssuer) RefreshToken(user *domain.User) (string, time.Time, error) {
	expires := t.now().Add(t.refreshTTL)
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"jti":   uuid.NewString(),
		"exp":   expires.Unix(),
		"iat":   t.now().Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.refreshSecret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

// ParseAccess verifies signature and expiry and returns the identity claims.
func (t *TokenIssuer) ParseAccess(token string) (*ports.TokenClaims, error) {
	claims, err := t.parse(token, t.accessSecret)
	if err != nil {
		return nil, err
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if sub == "" {
		return nil, fmt.Errorf("token missing subject")
	}
	return &ports.TokenClaims{UserID: sub, Email: email, Role: role}, nil
}

// ParseRefresh verifies signature and expiry and returns the user ID.
func (t *TokenIssuer) ParseRefresh(token string) (string, error) {
	claims, err := t.parse(token, t.refreshSecret)
	if err != nil {
		return "", err
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", fmt.Errorf("token missing subject")
	}
	return sub, nil
}

func (t *TokenIssuer) parse(token string, secret []byte) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
		}
		return secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
