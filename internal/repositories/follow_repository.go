package repositories

import (
	"gorm.io/gorm"

	"github.com/raves21/azura-backend/internal/models"
)

// FollowRepository defines the interface for follow-edge operations
type FollowRepository interface {
	CreateFollow(follow *models.Follow) error
	// DeleteFollow removes the directed edge and reports how many rows were
	// deleted, so callers can distinguish unfollowing a stranger.
	DeleteFollow(followerID, followedID string) (int64, error)
	IsFollowing(followerID, followedID string) (bool, error)
	// AreFriends reports whether both directed edges between the two
	// accounts exist. Symmetric and side-effect free.
	AreFriends(accountA, accountB string) (bool, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

func (r *PostgresFollowRepository) CreateFollow(follow *models.Follow) error {
	return r.db.Create(follow).Error
}

func (r *PostgresFollowRepository) DeleteFollow(followerID, followedID string) (int64, error) {
	res := r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).Delete(&models.Follow{})
	return res.RowsAffected, res.Error
}

func (r *PostgresFollowRepository) IsFollowing(followerID, followedID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresFollowRepository) AreFriends(accountA, accountB string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("(follower_id = ? AND followed_id = ?) OR (follower_id = ? AND followed_id = ?)",
			accountA, accountB, accountB, accountA).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	// friendship holds only when both directed edges exist
	return count == 2, nil
}
