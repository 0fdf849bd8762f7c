package handler

import (
	"context"
	"encoding/json"
	"net/http"

	websocket "github.com/coder/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/talentlink/freelance-platform/internal/api/metrics"
	"github.com/talentlink/freelance-platform/internal/core/ports"
	"github.com/talentlink/freelance-platform/internal/infrastructure/ws"
)

// WSHandler upgrades HTTP requests into hub-registered connections.
// Browsers cannot set an Authorization header on a WebSocket handshake, so
// the access token arrives via the ws_token cookie or a ?token= query param.
type WSHandler struct {
	hub       *ws.Hub
	auth      ports.AuthService
	messaging ports.MessagingService
	log       zerolog.Logger
}

func NewWSHandler(hub *ws.Hub, auth ports.AuthService, messaging ports.MessagingService, log zerolog.Logger) *WSHandler {
	return &WSHandler{
		hub:       hub,
		auth:      auth,
		messaging: messaging,
		log:       log.With().Str("component", "ws").Logger(),
	}
}

func (h *WSHandler) authenticate(c echo.Context) (*ports.TokenClaims, error) {
	token := c.QueryParam("token")
	if token == "" {
		if cookie, err := c.Cookie(cookieWSToken); err == nil {
			token = cookie.Value
		}
	}
	if token == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}

	claims, err := h.auth.ValidateAccessToken(c.Request().Context(), token)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return claims, nil
}

// Notifications serves a push-only stream of notification events.
func (h *WSHandler) Notifications(c echo.Context) error {
	claims, err := h.authenticate(c)
	if err != nil {
		return err
	}
	return h.serve(c, claims, nil)
}

type wsChatPayload struct {
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content"`
	Type       string `json:"type"`
	FileURL    string `json:"fileUrl"`
}

// Chat serves a bidirectional stream: pushes from the hub plus inbound
// send-message frames that go through the same service path as the REST
// endpoint.
func (h *WSHandler) Chat(c echo.Context) error {
	claims, err := h.authenticate(c)
	if err != nil {
		return err
	}

	userID := claims.UserID
	return h.serve(c, claims, func(ctx context.Context, data []byte) {
		var payload wsChatPayload
		if err := json.Unmarshal(data, &payload); err != nil {
			h.log.Debug().Err(err).Str("user_id", userID).Msg("dropping malformed chat frame")
			return
		}
		if payload.ReceiverID == "" || payload.Content == "" {
			return
		}

		_, err := h.messaging.Send(ctx, userID, ports.SendMessageInput{
			ReceiverID: payload.ReceiverID,
			Content:    payload.Content,
			Type:       payload.Type,
			FileURL:    payload.FileURL,
		})
		if err != nil {
			h.log.Warn().Err(err).Str("user_id", userID).Msg("chat frame rejected")
		}
	})
}

func (h *WSHandler) serve(c echo.Context, claims *ports.TokenClaims, onMessage func(context.Context, []byte)) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		// The browser origin is checked by CORS on the handshake request.
		InsecureSkipVerify: true,
	})
	if err != nil {
		return err
	}
	defer conn.Close(websocket.StatusInternalError, "closing")

	metrics.WebsocketConnections.Inc()
	defer metrics.WebsocketConnections.Dec()

	client := ws.NewClient(h.hub, conn, claims.UserID)
	client.OnMessage = onMessage
	client.Run(c.Request().Context())

	conn.Close(websocket.StatusNormalClosure, "")
	return nil
}
