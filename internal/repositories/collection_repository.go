package repositories

import (
	"gorm.io/gorm"

	"github.com/raves21/azura-backend/internal/models"
)

// CollectionRepository defines the interface for collection data operations
type CollectionRepository interface {
	GetCollectionByID(id string) (*models.Collection, error)
}

// PostgresCollectionRepository implements CollectionRepository for PostgreSQL
type PostgresCollectionRepository struct {
	db *gorm.DB
}

// NewPostgresCollectionRepository creates a new PostgresCollectionRepository
func NewPostgresCollectionRepository(db *gorm.DB) *PostgresCollectionRepository {
	return &PostgresCollectionRepository{db: db}
}

func (r *PostgresCollectionRepository) GetCollectionByID(id string) (*models.Collection, error) {
	var collection models.Collection
	if err := r.db.Where("id = ?", id).First(&collection).Error; err != nil {
		return nil, err
	}
	return &collection, nil
}
