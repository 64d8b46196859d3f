package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/raves21/azura-backend/internal/models"
)

// OTCRepository defines the interface for one-time-code data operations
type OTCRepository interface {
	CreateOTC(otc *models.OTC) error
	GetOTCByEmail(email string) (*models.OTC, error)
	DeleteOTCByEmail(email string) error
	DeleteOTCByID(id uint) error
	DeleteExpiredBefore(cutoff time.Time) (int64, error)
}

// PostgresOTCRepository implements OTCRepository for PostgreSQL
type PostgresOTCRepository struct {
	db *gorm.DB
}

// NewPostgresOTCRepository creates a new PostgresOTCRepository
func NewPostgresOTCRepository(db *gorm.DB) *PostgresOTCRepository {
	return &PostgresOTCRepository{db: db}
}

func (r *PostgresOTCRepository) CreateOTC(otc *models.OTC) error {
	return r.db.Create(otc).Error
}

func (r *PostgresOTCRepository) GetOTCByEmail(email string) (*models.OTC, error) {
	var otc models.OTC
	if err := r.db.Where("email = ?", email).First(&otc).Error; err != nil {
		return nil, err
	}
	return &otc, nil
}

func (r *PostgresOTCRepository) DeleteOTCByEmail(email string) error {
	return r.db.Where("email = ?", email).Delete(&models.OTC{}).Error
}

func (r *PostgresOTCRepository) DeleteOTCByID(id uint) error {
	return r.db.Where("id = ?", id).Delete(&models.OTC{}).Error
}

func (r *PostgresOTCRepository) DeleteExpiredBefore(cutoff time.Time) (int64, error) {
	res := r.db.Where("expires_at < ?", cutoff).Delete(&models.OTC{})
	return res.RowsAffected, res.Error
}
