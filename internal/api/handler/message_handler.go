package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentlink/freelance-platform/internal/api/metrics"
	"github.com/talentlink/freelance-platform/internal/core/ports"
)

type MessageHandler struct {
	messaging ports.MessagingService
}

func NewMessageHandler(messaging ports.MessagingService) *MessageHandler {
	return &MessageHandler{messaging: messaging}
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiverId" validate:"required"`
	Content    string `json:"content"    validate:"required"`
	Type       string `json:"type"       validate:"omitempty,oneof=TEXT FILE"`
	FileURL    string `json:"fileUrl"`
}

type updateMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

func (h *MessageHandler) Send(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.messaging.Send(c.Request().Context(), userID, ports.SendMessageInput{
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
		Type:       req.Type,
		FileURL:    req.FileURL,
	})
	if err != nil {
		return err
	}

	metrics.MessagesSentTotal.Inc()
	return c.JSON(http.StatusCreated, msg)
}

func (h *MessageHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.messaging.Update(c.Request().Context(), userID, c.Param("id"), req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msg)
}

func (h *MessageHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.messaging.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Conversations returns the latest message per counterpart.
func (h *MessageHandler) Conversations(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	msgs, err := h.messaging.Conversations(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgs)
}

// History returns the full thread with one counterpart, oldest first.
func (h *MessageHandler) History(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	msgs, err := h.messaging.History(c.Request().Context(), userID, c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgs)
}

func (h *MessageHandler) DeleteConversation(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.messaging.DeleteConversation(c.Request().Context(), userID, c.Param("userId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
