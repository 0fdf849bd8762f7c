package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentlink/freelance-platform/internal/core/domain"
	"github.com/talentlink/freelance-platform/internal/core/service"
)

// AdminContentHandler is the admin console's CRUD surface over the marketing
// content tables. Updates replace the whole item; the pages render these rows
// verbatim, so partial patches buy nothing.
type AdminContentHandler struct {
	content *service.ContentService
}

func NewAdminContentHandler(content *service.ContentService) *AdminContentHandler {
	return &AdminContentHandler{content: content}
}

// jsonList encodes a string slice for a serializer:json column. Map-based
// updates bypass the gorm serializer, so the value must arrive pre-encoded.
func jsonList(v []string) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// --- Pricing plans ---

type pricingPlanRequest struct {
	Name        string   `json:"name"  validate:"required"`
	Price       float64  `json:"price" validate:"gte=0"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Highlight   bool     `json:"highlight"`
	CTA         string   `json:"cta"`
	Href        string   `json:"href"`
	Badge       string   `json:"badge"`
	Order       int      `json:"order"`
}

func (h *AdminContentHandler) CreatePlan(c echo.Context) error {
	var req pricingPlanRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	plan, err := h.content.Repo().CreatePlan(c.Request().Context(), &domain.PricingPlan{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Features:    req.Features,
		Highlight:   req.Highlight,
		CTA:         req.CTA,
		Href:        req.Href,
		Badge:       req.Badge,
		Order:       req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, plan)
}

func (h *AdminContentHandler) UpdatePlan(c echo.Context) error {
	var req pricingPlanRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	plan, err := h.content.Repo().UpdatePlan(c.Request().Context(), c.Param("id"), map[string]any{
		"name":        req.Name,
		"price":       req.Price,
		"description": req.Description,
		"features":    jsonList(req.Features),
		"highlight":   req.Highlight,
		"cta":         req.CTA,
		"href":        req.Href,
		"badge":       req.Badge,
		"order":       req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plan)
}

func (h *AdminContentHandler) DeletePlan(c echo.Context) error {
	if err := h.content.Repo().DeletePlan(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Salary guide ---

type salaryCategoryRequest struct {
	Name  string `json:"name" validate:"required"`
	Order int    `json:"order"`
}

func (h *AdminContentHandler) CreateSalaryCategory(c echo.Context) error {
	var req salaryCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cat, err := h.content.Repo().CreateSalaryCategory(c.Request().Context(), &domain.SalaryCategory{
		Name:  req.Name,
		Order: req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cat)
}

func (h *AdminContentHandler) UpdateSalaryCategory(c echo.Context) error {
	var req salaryCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cat, err := h.content.Repo().UpdateSalaryCategory(c.Request().Context(), c.Param("id"), map[string]any{
		"name":  req.Name,
		"order": req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *AdminContentHandler) DeleteSalaryCategory(c echo.Context) error {
	if err := h.content.Repo().DeleteSalaryCategory(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type salaryRoleRequest struct {
	Title      string `json:"title"      validate:"required"`
	Range      string `json:"range"      validate:"required"`
	Experience string `json:"experience"`
	CategoryID string `json:"categoryId" validate:"required"`
}

func (h *AdminContentHandler) CreateSalaryRole(c echo.Context) error {
	var req salaryRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	role, err := h.content.Repo().CreateSalaryRole(c.Request().Context(), &domain.SalaryRole{
		Title:      req.Title,
		Range:      req.Range,
		Experience: req.Experience,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, role)
}

func (h *AdminContentHandler) UpdateSalaryRole(c echo.Context) error {
	var req salaryRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	role, err := h.content.Repo().UpdateSalaryRole(c.Request().Context(), c.Param("id"), map[string]any{
		"title":       req.Title,
		"range":       req.Range,
		"experience":  req.Experience,
		"category_id": req.CategoryID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, role)
}

func (h *AdminContentHandler) DeleteSalaryRole(c echo.Context) error {
	if err := h.content.Repo().DeleteSalaryRole(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type salaryInsightRequest struct {
	Icon        string `json:"icon"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Bg          string `json:"bg"`
	Order       int    `json:"order"`
}

func (h *AdminContentHandler) CreateSalaryInsight(c echo.Context) error {
	var req salaryInsightRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	insight, err := h.content.Repo().CreateSalaryInsight(c.Request().Context(), &domain.SalaryInsight{
		Icon:        req.Icon,
		Title:       req.Title,
		Description: req.Description,
		Color:       req.Color,
		Bg:          req.Bg,
		Order:       req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, insight)
}

func (h *AdminContentHandler) UpdateSalaryInsight(c echo.Context) error {
	var req salaryInsightRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	insight, err := h.content.Repo().UpdateSalaryInsight(c.Request().Context(), c.Param("id"), map[string]any{
		"icon":        req.Icon,
		"title":       req.Title,
		"description": req.Description,
		"color":       req.Color,
		"bg":          req.Bg,
		"order":       req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, insight)
}

func (h *AdminContentHandler) DeleteSalaryInsight(c echo.Context) error {
	if err := h.content.Repo().DeleteSalaryInsight(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Hiring solutions ---

type hiringSolutionRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features"`
	Order       int      `json:"order"`
}

func (h *AdminContentHandler) CreateSolution(c echo.Context) error {
	var req hiringSolutionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	sol, err := h.content.Repo().CreateSolution(c.Request().Context(), &domain.HiringSolution{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Features:    req.Features,
		Order:       req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sol)
}

func (h *AdminContentHandler) UpdateSolution(c echo.Context) error {
	var req hiringSolutionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	sol, err := h.content.Repo().UpdateSolution(c.Request().Context(), c.Param("id"), map[string]any{
		"title":       req.Title,
		"description": req.Description,
		"icon":        req.Icon,
		"features":    jsonList(req.Features),
		"order":       req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sol)
}

func (h *AdminContentHandler) DeleteSolution(c echo.Context) error {
	if err := h.content.Repo().DeleteSolution(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type hiringStatRequest struct {
	Label string `json:"label" validate:"required"`
	Value string `json:"value" validate:"required"`
	Order int    `json:"order"`
}

func (h *AdminContentHandler) CreateHiringStat(c echo.Context) error {
	var req hiringStatRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	stat, err := h.content.Repo().CreateHiringStat(c.Request().Context(), &domain.HiringStat{
		Label: req.Label,
		Value: req.Value,
		Order: req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, stat)
}

func (h *AdminContentHandler) UpdateHiringStat(c echo.Context) error {
	var req hiringStatRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	stat, err := h.content.Repo().UpdateHiringStat(c.Request().Context(), c.Param("id"), map[string]any{
		"label": req.Label,
		"value": req.Value,
		"order": req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stat)
}

func (h *AdminContentHandler) DeleteHiringStat(c echo.Context) error {
	if err := h.content.Repo().DeleteHiringStat(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type hiringPlanRequest struct {
	Name     string   `json:"name"  validate:"required"`
	Price    string   `json:"price" validate:"required"`
	Features []string `json:"features"`
	Order    int      `json:"order"`
}

func (h *AdminContentHandler) CreateHiringPlan(c echo.Context) error {
	var req hiringPlanRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	plan, err := h.content.Repo().CreateHiringPlan(c.Request().Context(), &domain.HiringPlan{
		Name:     req.Name,
		Price:    req.Price,
		Features: req.Features,
		Order:    req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, plan)
}

func (h *AdminContentHandler) UpdateHiringPlan(c echo.Context) error {
	var req hiringPlanRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	plan, err := h.content.Repo().UpdateHiringPlan(c.Request().Context(), c.Param("id"), map[string]any{
		"name":     req.Name,
		"price":    req.Price,
		"features": jsonList(req.Features),
		"order":    req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plan)
}

func (h *AdminContentHandler) DeleteHiringPlan(c echo.Context) error {
	if err := h.content.Repo().DeleteHiringPlan(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Employer resources ---

type resourceCategoryRequest struct {
	Name  string `json:"name" validate:"required"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
	Order int    `json:"order"`
}

func (h *AdminContentHandler) CreateResourceCategory(c echo.Context) error {
	var req resourceCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cat, err := h.content.Repo().CreateResourceCategory(c.Request().Context(), &domain.EmployerResourceCategory{
		Name:  req.Name,
		Icon:  req.Icon,
		Count: req.Count,
		Order: req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cat)
}

func (h *AdminContentHandler) UpdateResourceCategory(c echo.Context) error {
	var req resourceCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cat, err := h.content.Repo().UpdateResourceCategory(c.Request().Context(), c.Param("id"), map[string]any{
		"name":  req.Name,
		"icon":  req.Icon,
		"count": req.Count,
		"order": req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *AdminContentHandler) DeleteResourceCategory(c echo.Context) error {
	if err := h.content.Repo().DeleteResourceCategory(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type employerGuideRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	ReadTime    string `json:"readTime"`
	Href        string `json:"href"`
	Order       int    `json:"order"`
}

func (h *AdminContentHandler) CreateGuide(c echo.Context) error {
	var req employerGuideRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	guide, err := h.content.Repo().CreateGuide(c.Request().Context(), &domain.EmployerGuide{
		Title:       req.Title,
		Description: req.Description,
		ReadTime:    req.ReadTime,
		Href:        req.Href,
		Order:       req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, guide)
}

func (h *AdminContentHandler) UpdateGuide(c echo.Context) error {
	var req employerGuideRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	guide, err := h.content.Repo().UpdateGuide(c.Request().Context(), c.Param("id"), map[string]any{
		"title":       req.Title,
		"description": req.Description,
		"read_time":   req.ReadTime,
		"href":        req.Href,
		"order":       req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, guide)
}

func (h *AdminContentHandler) DeleteGuide(c echo.Context) error {
	if err := h.content.Repo().DeleteGuide(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type employerDownloadRequest struct {
	Title  string `json:"title" validate:"required"`
	Format string `json:"format"`
	Href   string `json:"href"`
	Order  int    `json:"order"`
}

func (h *AdminContentHandler) CreateDownload(c echo.Context) error {
	var req employerDownloadRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	dl, err := h.content.Repo().CreateDownload(c.Request().Context(), &domain.EmployerDownload{
		Title:  req.Title,
		Format: req.Format,
		Href:   req.Href,
		Order:  req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dl)
}

func (h *AdminContentHandler) UpdateDownload(c echo.Context) error {
	var req employerDownloadRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	dl, err := h.content.Repo().UpdateDownload(c.Request().Context(), c.Param("id"), map[string]any{
		"title":  req.Title,
		"format": req.Format,
		"href":   req.Href,
		"order":  req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dl)
}

func (h *AdminContentHandler) DeleteDownload(c echo.Context) error {
	if err := h.content.Repo().DeleteDownload(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type employerFAQRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer"   validate:"required"`
	Order    int    `json:"order"`
}

func (h *AdminContentHandler) CreateFAQ(c echo.Context) error {
	var req employerFAQRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	faq, err := h.content.Repo().CreateFAQ(c.Request().Context(), &domain.EmployerFAQ{
		Question: req.Question,
		Answer:   req.Answer,
		Order:    req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, faq)
}

func (h *AdminContentHandler) UpdateFAQ(c echo.Context) error {
	var req employerFAQRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	faq, err := h.content.Repo().UpdateFAQ(c.Request().Context(), c.Param("id"), map[string]any{
		"question": req.Question,
		"answer":   req.Answer,
		"order":    req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, faq)
}

func (h *AdminContentHandler) DeleteFAQ(c echo.Context) error {
	if err := h.content.Repo().DeleteFAQ(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
