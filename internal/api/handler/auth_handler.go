package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/talentlink/freelance-platform/internal/api/metrics"
	"github.com/talentlink/freelance-platform/internal/core/domain"
	"github.com/talentlink/freelance-platform/internal/core/ports"
	"github.com/talentlink/freelance-platform/internal/infrastructure/oauth"
)

// Cookie names. The two token cookies are httpOnly; "authenticated" is a
// plain flag the frontend reads to decide whether to render a logged-in
// shell, and "ws_token" is readable by scripts for the WebSocket handshake.
const (
	cookieAccessToken   = "accessToken"
	cookieRefreshToken  = "refreshToken"
	cookieAuthenticated = "authenticated"
	cookieWSToken       = "ws_token"
	cookieOAuthState    = "oauth_state"
)

type AuthHandler struct {
	auth          ports.AuthService
	qr            ports.QRService
	users         ports.UserService
	oauth         *oauth.Manager
	secureCookies bool
	frontendURL   string
}

func NewAuthHandler(auth ports.AuthService, qr ports.QRService, users ports.UserService, oauthManager *oauth.Manager, secureCookies bool, frontendURL string) *AuthHandler {
	return &AuthHandler{
		auth:          auth,
		qr:            qr,
		users:         users,
		oauth:         oauthManager,
		secureCookies: secureCookies,
		frontendURL:   frontendURL,
	}
}

type registerRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	Role      string `json:"role"      validate:"omitempty,oneof=FREELANCER EMPLOYER"`
	Avatar    string `json:"avatar"`
	Bio       string `json:"bio"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type authResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        *domain.User `json:"user"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		Avatar:    req.Avatar,
		Bio:       req.Bio,
	}, clientInfo(c))
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("password").Inc()
	h.setAuthCookies(c, res)
	return c.JSON(http.StatusCreated, authResponse{
		AccessToken: res.AccessToken,
		ExpiresAt:   res.AccessExpiresAt,
		User:        res.User,
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.auth.Login(c.Request().Context(), req.Email, req.Password, clientInfo(c))
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.setAuthCookies(c, res)
	return c.JSON(http.StatusOK, authResponse{
		AccessToken: res.AccessToken,
		ExpiresAt:   res.AccessExpiresAt,
		User:        res.User,
	})
}

// Refresh exchanges the refresh token for a new pair. The cookie takes
// precedence over the body so a stale SPA cannot replay an old body value.
func (h *AuthHandler) Refresh(c echo.Context) error {
	token := ""
	if cookie, err := c.Cookie(cookieRefreshToken); err == nil {
		token = cookie.Value
	}
	if token == "" {
		var req refreshRequest
		if err := c.Bind(&req); err == nil {
			token = req.RefreshToken
		}
	}

	res, err := h.auth.Refresh(c.Request().Context(), token, clientInfo(c))
	if err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("rejected").Inc()
		// The pair is dead either way; stop the client from retrying it.
		h.clearAuthCookies(c)
		return err
	}

	metrics.TokenRefreshesTotal.WithLabelValues("success").Inc()
	h.setAuthCookies(c, res)
	return c.JSON(http.StatusOK, authResponse{
		AccessToken: res.AccessToken,
		ExpiresAt:   res.AccessExpiresAt,
		User:        res.User,
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	token := ""
	if cookie, err := c.Cookie(cookieRefreshToken); err == nil {
		token = cookie.Value
	}
	if token == "" {
		var req refreshRequest
		if err := c.Bind(&req); err == nil {
			token = req.RefreshToken
		}
	}

	if err := h.auth.Logout(c.Request().Context(), token); err != nil {
		return err
	}
	h.clearAuthCookies(c)
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}

// Me returns the authenticated user's full profile.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	user, err := h.users.Profile(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// OAuthRedirect sends the browser to the provider's consent page.
func (h *AuthHandler) OAuthRedirect(c echo.Context) error {
	state, err := h.oauth.StateToken()
	if err != nil {
		return err
	}

	url, err := h.oauth.AuthURL(c.Param("provider"), state)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	c.SetCookie(&http.Cookie{
		Name:     cookieOAuthState,
		Value:    state,
		Path:     "/",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusTemporaryRedirect, url)
}

// OAuthCallback completes the provider flow and redirects to the frontend.
func (h *AuthHandler) OAuthCallback(c echo.Context) error {
	stateCookie, err := c.Cookie(cookieOAuthState)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != c.QueryParam("state") {
		return c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"/login?error=oauth_state")
	}

	code := c.QueryParam("code")
	if code == "" {
		return c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"/login?error=oauth_denied")
	}

	profile, err := h.oauth.Exchange(c.Request().Context(), c.Param("provider"), code)
	if err != nil {
		return c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"/login?error=oauth_exchange")
	}

	res, err := h.auth.OAuthLogin(c.Request().Context(), *profile, clientInfo(c))
	if err != nil {
		return c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"/login?error=oauth_login")
	}

	metrics.RegistrationsTotal.WithLabelValues("oauth").Inc()
	h.setAuthCookies(c, res)
	return c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"/auth/callback")
}

// QRStart creates a pairing token for the desktop to render as a QR code.
func (h *AuthHandler) QRStart(c echo.Context) error {
	session, err := h.qr.Start(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, session)
}

type qrApproveRequest struct {
	Token string `json:"token" validate:"required"`
}

// QRApprove lets the logged-in phone claim a pending pairing token.
func (h *AuthHandler) QRApprove(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req qrApproveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.qr.Approve(c.Request().Context(), req.Token, userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": domain.QRStatusVerified})
}

// QRPoll is called by the desktop until the phone approves. Pending pairings
// answer 202; an approved pairing answers 200 with a fresh session.
func (h *AuthHandler) QRPoll(c echo.Context) error {
	res, err := h.qr.Poll(c.Request().Context(), c.Param("token"), clientInfo(c))
	if err != nil {
		return err
	}

	h.setAuthCookies(c, res)
	return c.JSON(http.StatusOK, authResponse{
		AccessToken: res.AccessToken,
		ExpiresAt:   res.AccessExpiresAt,
		User:        res.User,
	})
}

func clientInfo(c echo.Context) ports.ClientInfo {
	return ports.ClientInfo{
		IP:        c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}
}

func (h *AuthHandler) setAuthCookies(c echo.Context, res *ports.AuthResult) {
	now := time.Now().UTC()
	accessMaxAge := int(res.AccessExpiresAt.Sub(now).Seconds())
	refreshMaxAge := int(res.RefreshExpiresAt.Sub(now).Seconds())

	c.SetCookie(h.cookie(cookieAccessToken, res.AccessToken, accessMaxAge, true))
	c.SetCookie(h.cookie(cookieRefreshToken, res.RefreshToken, refreshMaxAge, true))
	c.SetCookie(h.cookie(cookieAuthenticated, "true", refreshMaxAge, false))
	c.SetCookie(h.cookie(cookieWSToken, res.AccessToken, accessMaxAge, false))
}

func (h *AuthHandler) clearAuthCookies(c echo.Context) {
	c.SetCookie(h.cookie(cookieAccessToken, "", -1, true))
	c.SetCookie(h.cookie(cookieRefreshToken, "", -1, true))
	c.SetCookie(h.cookie(cookieAuthenticated, "", -1, false))
	c.SetCookie(h.cookie(cookieWSToken, "", -1, false))
}

func (h *AuthHandler) cookie(name, value string, maxAge int, httpOnly bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: httpOnly,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}
