package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/raves21/azura-backend/internal/repositories"
)

// CronHandler exposes the periodic cleanup sweeps. Expired sessions are also
// reaped lazily at login and renewal; this endpoint is the scheduled
// complement, hit by an external cron runner.
type CronHandler struct {
	sessionRepository repositories.SessionRepository
	otcRepository     repositories.OTCRepository
	log               *logrus.Logger
}

// NewCronHandler creates a new CronHandler
func NewCronHandler(sessionRepo repositories.SessionRepository, otcRepo repositories.OTCRepository, log *logrus.Logger) *CronHandler {
	return &CronHandler{
		sessionRepository: sessionRepo,
		otcRepository:     otcRepo,
		log:               log,
	}
}

// RegisterCronRoutes registers cleanup routes
func (h *CronHandler) RegisterCronRoutes(g *echo.Group) {
	g.POST("/cron/clear-expired-sessions", h.ClearExpiredSessions)
	g.POST("/cron/clear-expired-otcs", h.ClearExpiredOTCs)
}

// ClearExpiredSessions deletes every session past its expiry, across all
// accounts.
func (h *CronHandler) ClearExpiredSessions(c echo.Context) error {
	deleted, err := h.sessionRepository.DeleteExpiredBefore(time.Now(), "")
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.log.WithField("deleted", deleted).Info("Cleared expired sessions")
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Success. Cleared expired sessions.",
		"deleted": deleted,
	})
}

// ClearExpiredOTCs deletes every one-time code past its expiry.
func (h *CronHandler) ClearExpiredOTCs(c echo.Context) error {
	deleted, err := h.otcRepository.DeleteExpiredBefore(time.Now())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.log.WithField("deleted", deleted).Info("Cleared expired otcs")
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Success. Cleared expired otcs.",
		"deleted": deleted,
	})
}
