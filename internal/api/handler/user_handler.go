package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentlink/freelance-platform/internal/core/ports"
)

type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type updateProfileRequest struct {
	FirstName  *string   `json:"firstName"`
	LastName   *string   `json:"lastName"`
	Avatar     *string   `json:"avatar"`
	Bio        *string   `json:"bio"`
	Location   *string   `json:"location"`
	Skills     *[]string `json:"skills"`
	HourlyRate *float64  `json:"hourlyRate" validate:"omitempty,gte=0"`
}

// Profile returns a user's public profile with reviews and posted jobs.
func (h *UserHandler) Profile(c echo.Context) error {
	user, err := h.users.Profile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateMe patches the authenticated user's own profile. Absent fields are
// left unchanged.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.UpdateProfile(c.Request().Context(), userID, ports.UpdateProfileInput{
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
