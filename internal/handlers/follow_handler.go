package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/raves21/azura-backend/internal/apperrors"
	"github.com/raves21/azura-backend/internal/models"
	"github.com/raves21/azura-backend/internal/notifications"
	"github.com/raves21/azura-backend/internal/repositories"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followRepository repositories.FollowRepository
	deduplicator     *notifications.Deduplicator
	log              *logrus.Logger
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, dedup *notifications.Deduplicator, log *logrus.Logger) *FollowHandler {
	return &FollowHandler{
		followRepository: followRepo,
		deduplicator:     dedup,
		log:              log,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/follow", h.FollowUser)
	g.DELETE("/users/:id/follow", h.UnfollowUser)
}

// FollowUser creates a follow edge toward the target user.
func (h *FollowHandler) FollowUser(c echo.Context) error {
	principal := getPrincipal(c)
	if principal == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthenticated")
	}

	targetID := c.Param("id")
	if targetID == principal.UserID {
		return httpError(apperrors.ErrSelfAction)
	}

	isFollowing, err := h.followRepository.IsFollowing(principal.UserID, targetID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if isFollowing {
		return httpError(apperrors.Conflict("Already following this user."))
	}

	follow := &models.Follow{
		FollowerID: principal.UserID,
		FollowedID: targetID,
	}
	if err := h.followRepository.CreateFollow(follow); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.deduplicator.Upsert(targetID, principal.UserID, models.NotificationFollow, nil); err != nil {
		// the follow itself succeeded; a lost notification is not worth a 500
		h.log.WithError(err).WithFields(logrus.Fields{
			"recipient_id": targetID,
			"actor_id":     principal.UserID,
		}).Error("Failed to upsert follow notification")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Success, you have successfully followed user " + targetID,
	})
}

// UnfollowUser removes the follow edge toward the target user.
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	principal := getPrincipal(c)
	if principal == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthenticated")
	}

	targetID := c.Param("id")

	deleted, err := h.followRepository.DeleteFollow(principal.UserID, targetID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if deleted == 0 {
		return httpError(apperrors.ErrRelationshipNotFound)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Successfully unfollowed user " + targetID,
	})
}
