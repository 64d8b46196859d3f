package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/raves21/azura-backend/internal/apperrors"
	"github.com/raves21/azura-backend/internal/models"
	"github.com/raves21/azura-backend/internal/notifications"
	"github.com/raves21/azura-backend/internal/privacy"
	"github.com/raves21/azura-backend/internal/repositories"
)

// PostHandler handles privacy-gated post reads and post engagement
type PostHandler struct {
	postRepository    repositories.PostRepository
	likeRepository    repositories.LikeRepository
	commentRepository repositories.CommentRepository
	authorizer        *privacy.Authorizer
	deduplicator      *notifications.Deduplicator
	log               *logrus.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(
	postRepo repositories.PostRepository,
	likeRepo repositories.LikeRepository,
	commentRepo repositories.CommentRepository,
	authorizer *privacy.Authorizer,
	dedup *notifications.Deduplicator,
	log *logrus.Logger,
) *PostHandler {
	return &PostHandler{
		postRepository:    postRepo,
		likeRepository:    likeRepo,
		commentRepository: commentRepo,
		authorizer:        authorizer,
		deduplicator:      dedup,
		log:               log,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.GET("/posts/:id", h.GetPost)
	g.POST("/posts/:id/like", h.LikePost)
	g.DELETE("/posts/:id/like", h.UnlikePost)
	g.POST("/posts/:id/comments", h.CommentOnPost)
}

// getVisiblePost loads a post and runs it through the privacy authorizer.
// A denied or absent post is the same 404 either way.
func (h *PostHandler) getVisiblePost(c echo.Context, principal *models.Principal) (*models.Post, *privacy.Decision, error) {
	post, err := h.postRepository.GetPostByID(c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, httpError(apperrors.ErrResourceNotFound)
		}
		return nil, nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	decision, err := h.authorizer.Authorize(principal.UserID, post.OwnerID, post.Privacy)
	if err != nil {
		return nil, nil, httpError(err)
	}
	return post, &decision, nil
}

// GetPost returns a post if the requester may view it.
func (h *PostHandler) GetPost(c echo.Context) error {
	principal := getPrincipal(c)
	if principal == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthenticated")
	}

	post, decision, err := h.getVisiblePost(c, principal)
	if err != nil {
		return err
	}

	totalLikes, err := h.postRepository.CountLikes(post.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	totalComments, err := h.postRepository.CountComments(post.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "success",
		"data": models.PostView{
			Post:                 *post,
			TotalLikes:           totalLikes,
			TotalComments:        totalComments,
			IsOwnedByCurrentUser: decision.IsOwnedByCurrentUser,
		},
	})
}

// LikePost likes a visible post and notifies its owner.
func (h *PostHandler) LikePost(c echo.Context) error {
	principal := getPrincipal(c)
	if principal == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthenticated")
	}

	post, _, err := h.getVisiblePost(c, principal)
	if err != nil {
		return err
	}

	hasLiked, err := h.likeRepository.HasLiked(post.ID, principal.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if hasLiked {
		return httpError(apperrors.Conflict("Already liked this post."))
	}

	if err := h.likeRepository.CreateLike(&models.Like{
		PostID: post.ID,
		UserID: principal.UserID,
	}); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.deduplicator.Upsert(post.OwnerID, principal.UserID, models.NotificationLike, &post.ID); err != nil {
		h.log.WithError(err).WithFields(logrus.Fields{
			"post_id":  post.ID,
			"actor_id": principal.UserID,
		}).Error("Failed to upsert like notification")
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "success"})
}

// UnlikePost removes the requester's like from a post.
func (h *PostHandler) UnlikePost(c echo.Context) error {
	principal := getPrincipal(c)
	if principal == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthenticated")
	}

	post, _, err := h.getVisiblePost(c, principal)
	if err != nil {
		return err
	}

	deleted, err := h.likeRepository.DeleteLike(post.ID, principal.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if deleted == 0 {
		return httpError(apperrors.ErrResourceNotFound)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "success"})
}

// CommentOnPost adds a comment to a visible post and notifies its owner.
func (h *PostHandler) CommentOnPost(c echo.Context) error {
	principal := getPrincipal(c)
	if principal == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthenticated")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	post, _, err := h.getVisiblePost(c, principal)
	if err != nil {
		return err
	}

	comment := &models.Comment{
		PostID:   post.ID,
		AuthorID: principal.UserID,
		Content:  req.Content,
	}
	if err := h.commentRepository.CreateComment(comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.deduplicator.Upsert(post.OwnerID, principal.UserID, models.NotificationComment, &post.ID); err != nil {
		h.log.WithError(err).WithFields(logrus.Fields{
			"post_id":  post.ID,
			"actor_id": principal.UserID,
		}).Error("Failed to upsert comment notification")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "success",
		"data":    comment,
	})
}
