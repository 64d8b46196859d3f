package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/raves21/azura-backend/internal/apperrors"
	"github.com/raves21/azura-backend/internal/middleware"
	"github.com/raves21/azura-backend/internal/models"
)

// getPrincipal returns the authenticated identity set by the auth
// middleware, or nil on unauthenticated routes.
func getPrincipal(c echo.Context) *models.Principal {
	principal, _ := c.Get(middleware.PrincipalContextKey).(*models.Principal)
	return principal
}

// httpError maps taxonomy errors to their HTTP shape and everything else to
// a generic internal failure.
func httpError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return echo.NewHTTPError(appErr.HTTPCode, appErr.Message)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "An error occured in the server.")
}
