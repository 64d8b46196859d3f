package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/raves21/azura-backend/internal/models"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	CreateNotification(notification *models.Notification) error
	// FindFollowWithActor finds a FOLLOW notification for the recipient whose
	// actor set already contains the given actor.
	FindFollowWithActor(recipientID, actorID string) (*models.Notification, error)
	// FindByRecipientPostType finds the notification keyed by
	// (recipient, post, type).
	FindByRecipientPostType(recipientID, postID string, typ models.NotificationType) (*models.Notification, error)
	HasActor(notificationID uint, actorID string) (bool, error)
	AddActor(notificationID uint, actorID string) error
	// MarkUnreadAndTouch resurfaces a notification after its actor set grew.
	MarkUnreadAndTouch(notificationID uint) error
	GetByRecipientID(recipientID string, page, limit int) ([]models.Notification, int64, error)
	GetUnreadCount(recipientID string) (int64, error)
	MarkAsRead(notificationID uint) error
	MarkAllAsRead(recipientID string) error
}

type postgresNotificationRepository struct {
	db *gorm.DB
}

// NewPostgresNotificationRepository creates a new NotificationRepository for PostgreSQL
func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db}
}

func (r *postgresNotificationRepository) CreateNotification(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *postgresNotificationRepository) FindFollowWithActor(recipientID, actorID string) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.
		Joins("JOIN notification_actors ON notification_actors.notification_id = notifications.id").
		Where("notifications.recipient_id = ? AND notifications.type = ? AND notification_actors.actor_id = ?",
			recipientID, models.NotificationFollow, actorID).
		First(&notification).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *postgresNotificationRepository) FindByRecipientPostType(recipientID, postID string, typ models.NotificationType) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.
		Where("recipient_id = ? AND post_id = ? AND type = ?", recipientID, postID, typ).
		First(&notification).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *postgresNotificationRepository) HasActor(notificationID uint, actorID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.NotificationActor{}).
		Where("notification_id = ? AND actor_id = ?", notificationID, actorID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *postgresNotificationRepository) AddActor(notificationID uint, actorID string) error {
	return r.db.Create(&models.NotificationActor{
		NotificationID: notificationID,
		ActorID:        actorID,
	}).Error
}

func (r *postgresNotificationRepository) MarkUnreadAndTouch(notificationID uint) error {
	return r.db.Model(&models.Notification{}).Where("id = ?", notificationID).
		Updates(map[string]interface{}{
			"is_read":    false,
			"updated_at": time.Now(),
		}).Error
}

func (r *postgresNotificationRepository) GetByRecipientID(recipientID string, page, limit int) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	if err := r.db.Model(&models.Notification{}).Where("recipient_id = ?", recipientID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := r.db.Preload("Actors").Where("recipient_id = ?", recipientID).
		Order("updated_at DESC").
		Offset(offset).Limit(limit).
		Find(&notifications).Error

	return notifications, total, err
}

func (r *postgresNotificationRepository) GetUnreadCount(recipientID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = false", recipientID).
		Count(&count).Error
	return count, err
}

func (r *postgresNotificationRepository) MarkAsRead(notificationID uint) error {
	return r.db.Model(&models.Notification{}).Where("id = ?", notificationID).Update("is_read", true).Error
}

func (r *postgresNotificationRepository) MarkAllAsRead(recipientID string) error {
	return r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = false", recipientID).
		Update("is_read", true).Error
}
