package models

import "time"

// Follow is a directed edge from follower to followed, unique per ordered
// pair. Two accounts are friends when both directions exist.
type Follow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID string    `json:"follower_id" gorm:"type:uuid;index;uniqueIndex:idx_follower_followed"`
	FollowedID string    `json:"followed_id" gorm:"type:uuid;index;uniqueIndex:idx_follower_followed"`
	CreatedAt  time.Time `json:"created_at"`
}
