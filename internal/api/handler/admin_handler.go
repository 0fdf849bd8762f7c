package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/talentlink/freelance-platform/internal/api/metrics"
	"github.com/talentlink/freelance-platform/internal/core/ports"
)

type AdminHandler struct {
	admin ports.AdminService
}

func NewAdminHandler(admin ports.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// pageParams reads ?page= and ?limit=. Bounds are enforced by the repository.
func pageParams(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return page, limit
}

// pagedResponse is the envelope for all admin list endpoints.
type pagedResponse struct {
	Items any   `json:"items"`
	Total int64 `json:"total"`
}

func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.admin.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) Users(c echo.Context) error {
	page, limit := pageParams(c)
	users, total, err := h.admin.Users(c.Request().Context(), page, limit, c.QueryParam("search"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagedResponse{Items: users, Total: total})
}

type adminCreateUserRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	Role      string `json:"role"      validate:"omitempty,oneof=FREELANCER EMPLOYER ADMIN"`
}

func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req adminCreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.admin.CreateUser(c.Request().Context(), ports.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("admin").Inc()
	return c.JSON(http.StatusCreated, user)
}

func (h *AdminHandler) UpdateUser(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.admin.UpdateUser(c.Request().Context(), c.Param("id"), ports.UpdateProfileInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Avatar:     req.Avatar,
		Bio:        req.Bio,
		Location:   req.Location,
		Skills:     req.Skills,
		HourlyRate: req.HourlyRate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=FREELANCER EMPLOYER ADMIN"`
}

func (h *AdminHandler) UpdateUserRole(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.admin.UpdateUserRole(c.Request().Context(), c.Param("id"), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.admin.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) Jobs(c echo.Context) error {
	page, limit := pageParams(c)
	jobs, total, err := h.admin.Jobs(c.Request().Context(), page, limit, c.QueryParam("search"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagedResponse{Items: jobs, Total: total})
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *AdminHandler) UpdateJobStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.admin.UpdateJobStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

func (h *AdminHandler) Applications(c echo.Context) error {
	page, limit := pageParams(c)
	apps, total, err := h.admin.Applications(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagedResponse{Items: apps, Total: total})
}

func (h *AdminHandler) UpdateApplicationStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.admin.UpdateApplicationStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, app)
}

func (h *AdminHandler) Payments(c echo.Context) error {
	page, limit := pageParams(c)
	payments, total, err := h.admin.Payments(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagedResponse{Items: payments, Total: total})
}

func (h *AdminHandler) Reviews(c echo.Context) error {
	page, limit := pageParams(c)
	reviews, total, err := h.admin.Reviews(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagedResponse{Items: reviews, Total: total})
}

func (h *AdminHandler) DeleteReview(c echo.Context) error {
	if err := h.admin.DeleteReview(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) Settings(c echo.Context) error {
	settings, err := h.admin.Settings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

func (h *AdminHandler) UpdateSettings(c echo.Context) error {
	var values map[string]string
	if err := c.Bind(&values); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	settings, err := h.admin.UpdateSettings(c.Request().Context(), values)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}
