package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/raves21/azura-backend/internal/auth"
)

// SessionHandler handles session enumeration and remote logout requests
type SessionHandler struct {
	sessionManager *auth.SessionManager
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(sessionManager *auth.SessionManager) *SessionHandler {
	return &SessionHandler{sessionManager: sessionManager}
}

// RegisterSessionRoutes registers session-related routes
func (h *SessionHandler) RegisterSessionRoutes(g *echo.Group) {
	g.GET("/sessions", h.GetSessions)
	g.DELETE("/sessions/:sessionId", h.LogoutSession)
	g.DELETE("/sessions", h.LogoutOtherSessions)
}

// GetSessions lists the account's sessions with the current one marked.
func (h *SessionHandler) GetSessions(c echo.Context) error {
	principal := getPrincipal(c)
	if principal == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthenticated")
	}

	sessions, err := h.sessionManager.ListSessions(principal.UserID, principal.SessionID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "success",
		"data":    sessions,
	})
}

// LogoutSession terminates one session by id, e.g. one picked from the
// detached-mode list.
func (h *SessionHandler) LogoutSession(c echo.Context) error {
	sessionID := c.Param("sessionId")

	if err := h.sessionManager.LogoutSessionByID(sessionID); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Session with id " + sessionID + " logged out successfully.",
	})
}

// LogoutOtherSessions terminates every session of the account except the
// current one.
func (h *SessionHandler) LogoutOtherSessions(c echo.Context) error {
	principal := getPrincipal(c)
	if principal == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthenticated")
	}

	if _, err := h.sessionManager.LogoutOtherSessions(principal.UserID, principal.SessionID); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "sessions except current session logged out successfully.",
	})
}
