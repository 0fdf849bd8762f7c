package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Context keys populated by the Auth middleware.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// ctxUserID extracts the authenticated user's ID. An empty value means the
// Auth middleware did not run on this route; fail closed.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get(CtxUserID).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
