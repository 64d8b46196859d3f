package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/raves21/azura-backend/internal/apperrors"
	"github.com/raves21/azura-backend/internal/auth"
	"github.com/raves21/azura-backend/internal/middleware"
	"github.com/raves21/azura-backend/pkg/config"
)

// RefreshHandler grants new short-lived access tokens against the session
// cookie. This runs on a much hotter path than login, so it never touches
// the password.
type RefreshHandler struct {
	tokenService *auth.TokenService
	cfg          *config.Config
}

// NewRefreshHandler creates a new RefreshHandler
func NewRefreshHandler(tokenService *auth.TokenService, cfg *config.Config) *RefreshHandler {
	return &RefreshHandler{tokenService: tokenService, cfg: cfg}
}

// RegisterRefreshRoutes registers the token renewal route
func (h *RefreshHandler) RegisterRefreshRoutes(g *echo.Group) {
	g.GET("/refresh", h.GrantAccessToken)
}

// GrantAccessToken exchanges the session cookie for a fresh access token.
// A dead or expired session clears the cookie so the client re-authenticates.
func (h *RefreshHandler) GrantAccessToken(c echo.Context) error {
	cookie, err := c.Cookie(middleware.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "No session token in cookies!")
	}

	result, err := h.tokenService.Renew(cookie.Value)
	if err != nil {
		if errors.Is(err, apperrors.ErrSessionNotFound) || errors.Is(err, apperrors.ErrSessionExpired) {
			middleware.ClearSessionCookie(c, h.cfg.IsProd)
		}
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "U are granted a new access token!",
		"data":    result,
	})
}
