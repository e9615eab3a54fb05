package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/restshop/commerce-api/internal/api/middleware"
)

// ctxUserID extracts the authenticated user id injected by the Auth
// middleware. An empty id means the middleware never ran on this route;
// fail closed with 401 rather than let an unauthenticated request through.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.ContextUserID).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
