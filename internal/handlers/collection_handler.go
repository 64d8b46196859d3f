package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/raves21/azura-backend/internal/apperrors"
	"github.com/raves21/azura-backend/internal/models"
	"github.com/raves21/azura-backend/internal/privacy"
	"github.com/raves21/azura-backend/internal/repositories"
)

// CollectionHandler handles privacy-gated collection reads
type CollectionHandler struct {
	collectionRepository repositories.CollectionRepository
	authorizer           *privacy.Authorizer
}

// NewCollectionHandler creates a new CollectionHandler
func NewCollectionHandler(collectionRepo repositories.CollectionRepository, authorizer *privacy.Authorizer) *CollectionHandler {
	return &CollectionHandler{
		collectionRepository: collectionRepo,
		authorizer:           authorizer,
	}
}

// RegisterCollectionRoutes registers collection-related routes
func (h *CollectionHandler) RegisterCollectionRoutes(g *echo.Group) {
	g.GET("/collections/:id", h.GetCollection)
}

// GetCollection returns a collection if the requester may view it.
func (h *CollectionHandler) GetCollection(c echo.Context) error {
	principal := getPrincipal(c)
	if principal == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthenticated")
	}

	collection, err := h.collectionRepository.GetCollectionByID(c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return httpError(apperrors.ErrResourceNotFound)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	decision, err := h.authorizer.Authorize(principal.UserID, collection.OwnerID, collection.Privacy)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "success",
		"data": models.CollectionView{
			Collection:           *collection,
			IsOwnedByCurrentUser: decision.IsOwnedByCurrentUser,
		},
	})
}
