package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/raves21/azura-backend/internal/models"
)

// SessionRepository defines the interface for session data operations. All
// operations are row-scoped; two concurrent logins for the same account go
// through separate inserts and cannot corrupt each other.
type SessionRepository interface {
	CreateSession(session *models.Session) error
	GetSessionByToken(token string) (*models.Session, error)
	GetSessionByID(id string) (*models.Session, error)
	ListSessionsByAccount(accountID string) ([]models.Session, error)
	DeleteSessionByID(id string) (int64, error)
	// DeleteExpiredBefore deletes sessions whose expiry is before cutoff.
	// An empty accountID sweeps every account.
	DeleteExpiredBefore(cutoff time.Time, accountID string) (int64, error)
	DeleteAllExceptID(accountID, keepSessionID string) (int64, error)
}

// PostgresSessionRepository implements SessionRepository for PostgreSQL
type PostgresSessionRepository struct {
	db *gorm.DB
}

// NewPostgresSessionRepository creates a new PostgresSessionRepository
func NewPostgresSessionRepository(db *gorm.DB) *PostgresSessionRepository {
	return &PostgresSessionRepository{db: db}
}

func (r *PostgresSessionRepository) CreateSession(session *models.Session) error {
	return r.db.Create(session).Error
}

func (r *PostgresSessionRepository) GetSessionByToken(token string) (*models.Session, error) {
	var session models.Session
	if err := r.db.Where("token = ?", token).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *PostgresSessionRepository) GetSessionByID(id string) (*models.Session, error) {
	var session models.Session
	if err := r.db.Where("id = ?", id).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *PostgresSessionRepository) ListSessionsByAccount(accountID string) ([]models.Session, error) {
	var sessions []models.Session
	err := r.db.Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&sessions).Error
	return sessions, err
}

func (r *PostgresSessionRepository) DeleteSessionByID(id string) (int64, error) {
	res := r.db.Where("id = ?", id).Delete(&models.Session{})
	return res.RowsAffected, res.Error
}

func (r *PostgresSessionRepository) DeleteExpiredBefore(cutoff time.Time, accountID string) (int64, error) {
	q := r.db.Where("expires_at < ?", cutoff)
	if accountID != "" {
		q = q.Where("account_id = ?", accountID)
	}
	res := q.Delete(&models.Session{})
	return res.RowsAffected, res.Error
}

func (r *PostgresSessionRepository) DeleteAllExceptID(accountID, keepSessionID string) (int64, error) {
	res := r.db.Where("account_id = ? AND id <> ?", accountID, keepSessionID).Delete(&models.Session{})
	return res.RowsAffected, res.Error
}
