package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentlink/freelance-platform/internal/core/ports"
)

type AIHandler struct {
	ai ports.AIService
}

func NewAIHandler(ai ports.AIService) *AIHandler {
	return &AIHandler{ai: ai}
}

type matchRequest struct {
	JobID       string `json:"jobId"       validate:"required"`
	ApplicantID string `json:"applicantId" validate:"required"`
}

type generateRequest struct {
	Title    string `json:"title"    validate:"required"`
	Category string `json:"category" validate:"required"`
}

func (h *AIHandler) Match(c echo.Context) error {
	var req matchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.ai.MatchJob(c.Request().Context(), req.JobID, req.ApplicantID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (h *AIHandler) GenerateDescription(c echo.Context) error {
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	gen, err := h.ai.GenerateDescription(c.Request().Context(), req.Title, req.Category)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, gen)
}
