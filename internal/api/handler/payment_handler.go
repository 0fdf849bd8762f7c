package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentlink/freelance-platform/internal/core/ports"
)

type PaymentHandler struct {
	payments ports.PaymentService
}

func NewPaymentHandler(payments ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type createIntentRequest struct {
	Amount   float64 `json:"amount"   validate:"required,gt=0"`
	Currency string  `json:"currency" validate:"omitempty,len=3"`
}

func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	payment, err := h.payments.CreateIntent(c.Request().Context(), userID, req.Amount, req.Currency)
	if err != nil {
		return err
	}

	// The client secret is excluded from the model's JSON; hand it over once
	// in the creation response only.
	return c.JSON(http.StatusCreated, map[string]any{
		"payment":      payment,
		"clientSecret": payment.ClientSecret,
	})
}
