package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/raves21/azura-backend/internal/auth"
	"github.com/raves21/azura-backend/internal/models"
	"github.com/raves21/azura-backend/internal/repositories"
)

// JWTAuth checks the bearer access token and confirms its session still
// exists, so a logout elsewhere kills access tokens that are otherwise
// still within their expiry window.
func JWTAuth(tokens *auth.TokenService, sessions repositories.SessionRepository, secureCookies bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing Authorization header")
			}

			// Expecting "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format")
			}

			claims, err := tokens.Parse(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			if _, err := sessions.GetSessionByID(claims.SessionID); err != nil {
				if err == gorm.ErrRecordNotFound {
					ClearSessionCookie(c, secureCookies)
					return echo.NewHTTPError(http.StatusUnauthorized, "Your session has expired.")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
			}

			c.Set(PrincipalContextKey, &models.Principal{
				UserID:    claims.UserID,
				SessionID: claims.SessionID,
				Email:     claims.Email,
				Handle:    claims.Handle,
			})
			return next(c)
		}
	}
}
