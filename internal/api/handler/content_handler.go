package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentlink/freelance-platform/internal/core/service"
)

// ContentHandler serves the public marketing pages.
type ContentHandler struct {
	content *service.ContentService
}

func NewContentHandler(content *service.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

func (h *ContentHandler) Pricing(c echo.Context) error {
	plans, err := h.content.Plans(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"plans": plans})
}

func (h *ContentHandler) SalaryGuide(c echo.Context) error {
	categories, insights, err := h.content.SalaryGuide(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"categories": categories,
		"insights":   insights,
	})
}

func (h *ContentHandler) HiringSolutions(c echo.Context) error {
	solutions, stats, plans, err := h.content.HiringSolutions(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"solutions": solutions,
		"stats":     stats,
		"plans":     plans,
	})
}

func (h *ContentHandler) EmployerResources(c echo.Context) error {
	categories, guides, downloads, faqs, err := h.content.EmployerResources(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"categories": categories,
		"guides":     guides,
		"downloads":  downloads,
		"faqs":       faqs,
	})
}
