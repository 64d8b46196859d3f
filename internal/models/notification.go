package models

import "time"

// NotificationType identifies what kind of actor event a notification
// collapses.
type NotificationType string

const (
	NotificationFollow  NotificationType = "FOLLOW"
	NotificationLike    NotificationType = "LIKE"
	NotificationComment NotificationType = "COMMENT"
)

// Notification is one collapsed event for a recipient. Repeated actor
// actions merge into the actor set instead of creating new rows, so a post
// with N likes yields one notification whose actor preview grows. The
// (recipient, post, type) key is unique at the store level; FOLLOW rows have
// a NULL post_id and are exempt under SQL NULL distinctness.
type Notification struct {
	ID          uint                `json:"id" gorm:"primaryKey"`
	Type        NotificationType    `json:"type" gorm:"size:20;index;uniqueIndex:idx_recipient_post_type"`
	RecipientID string              `json:"recipient_id" gorm:"type:uuid;index;uniqueIndex:idx_recipient_post_type"`
	PostID      *string             `json:"post_id,omitempty" gorm:"type:uuid;index;uniqueIndex:idx_recipient_post_type"`
	IsRead      bool                `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at" gorm:"index"`
	Actors      []NotificationActor `json:"actors" gorm:"foreignKey:NotificationID;constraint:OnDelete:CASCADE"`
}

// NotificationActor is one account merged into a notification's actor set,
// unique per (notification, actor).
type NotificationActor struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	NotificationID uint      `json:"notification_id" gorm:"index;uniqueIndex:idx_notification_actor"`
	ActorID        string    `json:"actor_id" gorm:"type:uuid;uniqueIndex:idx_notification_actor"`
	CreatedAt      time.Time `json:"created_at"`
}
