package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/talentlink/freelance-platform/internal/core/domain"
	"github.com/talentlink/freelance-platform/internal/core/ports"
)

type stubAuthService struct {
	validateFn func(ctx context.Context, token string) (*ports.TokenClaims, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput, client ports.ClientInfo) (*ports.AuthResult, error) {
	return nil, nil
}

func (s *stubAuthService) Login(ctx context.Context, email, password string, client ports.ClientInfo) (*ports.AuthResult, error) {
	return nil, nil
}

func (s *stubAuthService) Refresh(ctx context.Context, refreshToken string, client ports.ClientInfo) (*ports.AuthResult, error) {
	return nil, nil
}

func (s *stubAuthService) Logout(ctx context.Context, refreshToken string) error {
	return nil
}

func (s *stubAuthService) OAuthLogin(ctx context.Context, profile ports.OAuthProfile, client ports.ClientInfo) (*ports.AuthResult, error) {
	return nil, nil
}

func (s *stubAuthService) ValidateAccessToken(ctx context.Context, token string) (*ports.TokenClaims, error) {
	return s.validateFn(ctx, token)
}

func TestAuthMiddleware_BearerHeader(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		validateFn: func(ctx context.Context, token string) (*ports.TokenClaims, error) {
			if token != "token123" {
				t.Fatalf("unexpected token: %s", token)
			}
			return &ports.TokenClaims{UserID: "u1", Email: "alice@example.com", Role: domain.RoleFreelancer}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(stub)(func(c echo.Context) error {
		called = true
		if c.Get("user_id") != "u1" {
			t.Fatalf("user_id not set")
		}
		if c.Get("email") != "alice@example.com" {
			t.Fatalf("email not set")
		}
		if c.Get("role") != domain.RoleFreelancer {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_CookieFallback(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		validateFn: func(ctx context.Context, token string) (*ports.TokenClaims, error) {
			if token != "cookie-token" {
				t.Fatalf("unexpected token: %s", token)
			}
			return &ports.TokenClaims{UserID: "u2"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "cookie-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(stub)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_HeaderBeatsCookie(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		validateFn: func(ctx context.Context, token string) (*ports.TokenClaims, error) {
			if token != "header-token" {
				t.Fatalf("expected header token to win, got %s", token)
			}
			return &ports.TokenClaims{UserID: "u3"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "cookie-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(stub)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		validateFn: func(ctx context.Context, token string) (*ports.TokenClaims, error) {
			t.Fatalf("should not validate")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(stub)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", httpErr.Code)
	}
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		validateFn: func(ctx context.Context, token string) (*ports.TokenClaims, error) {
			return nil, domain.ErrInvalidRefreshToken
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer rotated-away")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(stub)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", httpErr.Code)
	}
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		validateFn: func(ctx context.Context, token string) (*ports.TokenClaims, error) {
			t.Fatalf("should not validate")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "token-without-scheme")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(stub)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", httpErr.Code)
	}
}
