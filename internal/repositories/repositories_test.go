package repositories

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/raves21/azura-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Account{},
		&models.Session{},
		&models.Follow{},
		&models.Post{},
		&models.Collection{},
		&models.Like{},
		&models.Comment{},
		&models.Notification{},
		&models.NotificationActor{},
		&models.OTC{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createAccount(t *testing.T, db *gorm.DB, email, handle string) *models.Account {
	t.Helper()
	account := &models.Account{
		Username: handle,
		Email:    email,
		Handle:   handle,
		Password: "x",
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("create account: %v", err)
	}
	return account
}
