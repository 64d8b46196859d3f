package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/raves21/azura-backend/internal/models"
	"github.com/raves21/azura-backend/internal/repositories"
)

// PrincipalContextKey is where the authenticated identity is stored on the
// echo context.
const PrincipalContextKey = "principal"

// SessionAuth resolves the session cookie to a live session and its account
// and attaches the principal for downstream handlers. An unknown secret
// clears the cookie so the client stops presenting it.
func SessionAuth(sessions repositories.SessionRepository, accounts repositories.AccountRepository, secureCookies bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthenticated")
			}

			session, err := sessions.GetSessionByToken(cookie.Value)
			if err != nil {
				if err == gorm.ErrRecordNotFound {
					ClearSessionCookie(c, secureCookies)
					return echo.NewHTTPError(http.StatusUnauthorized, "Unauthenticated")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
			}

			account, err := accounts.GetAccountByID(session.AccountID)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
			}

			c.Set(PrincipalContextKey, &models.Principal{
				UserID:    account.ID,
				SessionID: session.ID,
				Email:     account.Email,
				Handle:    account.Handle,
			})
			return next(c)
		}
	}
}
