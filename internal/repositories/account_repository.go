package repositories

import (
	"gorm.io/gorm"

	"github.com/raves21/azura-backend/internal/models"
)

// AccountRepository defines the interface for account data operations
type AccountRepository interface {
	CreateAccount(account *models.Account) error
	GetAccountByID(id string) (*models.Account, error)
	GetAccountByEmail(email string) (*models.Account, error)
	GetAccountByHandle(handle string) (*models.Account, error)
	UpdatePassword(accountID, passwordHash string) error
}

// PostgresAccountRepository implements AccountRepository for PostgreSQL
type PostgresAccountRepository struct {
	db *gorm.DB
}

// NewPostgresAccountRepository creates a new PostgresAccountRepository
func NewPostgresAccountRepository(db *gorm.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

func (r *PostgresAccountRepository) CreateAccount(account *models.Account) error {
	return r.db.Create(account).Error
}

func (r *PostgresAccountRepository) GetAccountByID(id string) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("id = ?", id).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *PostgresAccountRepository) GetAccountByEmail(email string) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("email = ?", email).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *PostgresAccountRepository) GetAccountByHandle(handle string) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("handle = ?", handle).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *PostgresAccountRepository) UpdatePassword(accountID, passwordHash string) error {
	return r.db.Model(&models.Account{}).Where("id = ?", accountID).Update("password", passwordHash).Error
}
