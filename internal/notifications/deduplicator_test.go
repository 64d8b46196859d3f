package notifications

import (
	"testing"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/raves21/azura-backend/internal/models"
	"github.com/raves21/azura-backend/internal/repositories"
	"github.com/raves21/azura-backend/pkg/metrics"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Notification{}, &models.NotificationActor{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestDeduplicator(t *testing.T, db *gorm.DB) (*Deduplicator, repositories.NotificationRepository) {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	repo := repositories.NewPostgresNotificationRepository(db)
	return NewDeduplicator(repo, metrics.NewNop(), log), repo
}

func listNotifications(t *testing.T, repo repositories.NotificationRepository, recipientID string) []models.Notification {
	t.Helper()
	notifications, _, err := repo.GetByRecipientID(recipientID, 1, 50)
	if err != nil {
		t.Fatalf("GetByRecipientID: %v", err)
	}
	return notifications
}

func TestUpsert_SelfActionIsDropped(t *testing.T) {
	db := newTestDB(t)
	dedup, repo := newTestDeduplicator(t, db)

	if err := dedup.Upsert("u1", "u1", models.NotificationFollow, nil); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if got := listNotifications(t, repo, "u1"); len(got) != 0 {
		t.Fatalf("self-action created %d notifications, want 0", len(got))
	}
}

func TestUpsert_FollowIsPermanentlyDeduplicated(t *testing.T) {
	db := newTestDB(t)
	dedup, repo := newTestDeduplicator(t, db)

	for i := 0; i < 3; i++ {
		if err := dedup.Upsert("u1", "u2", models.NotificationFollow, nil); err != nil {
			t.Fatalf("Upsert %d: %v", i, err)
		}
	}

	notifications := listNotifications(t, repo, "u1")
	if len(notifications) != 1 {
		t.Fatalf("got %d notifications, want 1", len(notifications))
	}
	if notifications[0].Type != models.NotificationFollow {
		t.Fatalf("type = %s, want FOLLOW", notifications[0].Type)
	}
	if len(notifications[0].Actors) != 1 || notifications[0].Actors[0].ActorID != "u2" {
		t.Fatalf("expected a singleton actor set of u2, got %+v", notifications[0].Actors)
	}
}

func TestUpsert_FollowFromDistinctActorsStaysSeparate(t *testing.T) {
	db := newTestDB(t)
	dedup, repo := newTestDeduplicator(t, db)

	if err := dedup.Upsert("u1", "u2", models.NotificationFollow, nil); err != nil {
		t.Fatalf("Upsert u2: %v", err)
	}
	if err := dedup.Upsert("u1", "u3", models.NotificationFollow, nil); err != nil {
		t.Fatalf("Upsert u3: %v", err)
	}

	if got := listNotifications(t, repo, "u1"); len(got) != 2 {
		t.Fatalf("got %d notifications, want one per follower", len(got))
	}
}

func TestUpsert_LikeMergesActorsIntoOneNotification(t *testing.T) {
	db := newTestDB(t)
	dedup, repo := newTestDeduplicator(t, db)
	postID := "post-1"

	if err := dedup.Upsert("u1", "u2", models.NotificationLike, &postID); err != nil {
		t.Fatalf("Upsert u2: %v", err)
	}
	if err := dedup.Upsert("u1", "u3", models.NotificationLike, &postID); err != nil {
		t.Fatalf("Upsert u3: %v", err)
	}
	// A repeated actor must not grow the set.
	if err := dedup.Upsert("u1", "u2", models.NotificationLike, &postID); err != nil {
		t.Fatalf("Upsert u2 again: %v", err)
	}

	notifications := listNotifications(t, repo, "u1")
	if len(notifications) != 1 {
		t.Fatalf("got %d notifications, want 1", len(notifications))
	}
	if len(notifications[0].Actors) != 2 {
		t.Fatalf("actor set has %d entries, want {u2, u3}", len(notifications[0].Actors))
	}
}

func TestUpsert_NewActorResurfacesAsUnread(t *testing.T) {
	db := newTestDB(t)
	dedup, repo := newTestDeduplicator(t, db)
	postID := "post-1"

	if err := dedup.Upsert("u1", "u2", models.NotificationLike, &postID); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	notifications := listNotifications(t, repo, "u1")
	if err := repo.MarkAsRead(notifications[0].ID); err != nil {
		t.Fatalf("MarkAsRead: %v", err)
	}

	if err := dedup.Upsert("u1", "u3", models.NotificationLike, &postID); err != nil {
		t.Fatalf("Upsert u3: %v", err)
	}

	notifications = listNotifications(t, repo, "u1")
	if notifications[0].IsRead {
		t.Fatalf("new actor must flip the notification back to unread")
	}
	count, err := repo.GetUnreadCount("u1")
	if err != nil {
		t.Fatalf("GetUnreadCount: %v", err)
	}
	if count != 1 {
		t.Fatalf("unread count = %d, want 1", count)
	}
}

func TestUpsert_LikeAndCommentOnSamePostAreDistinct(t *testing.T) {
	db := newTestDB(t)
	dedup, repo := newTestDeduplicator(t, db)
	postID := "post-1"

	if err := dedup.Upsert("u1", "u2", models.NotificationLike, &postID); err != nil {
		t.Fatalf("Upsert like: %v", err)
	}
	if err := dedup.Upsert("u1", "u2", models.NotificationComment, &postID); err != nil {
		t.Fatalf("Upsert comment: %v", err)
	}

	if got := listNotifications(t, repo, "u1"); len(got) != 2 {
		t.Fatalf("got %d notifications, want one per type", len(got))
	}
}

func TestUpsert_PostEventWithoutPostIDIsDropped(t *testing.T) {
	db := newTestDB(t)
	dedup, repo := newTestDeduplicator(t, db)

	if err := dedup.Upsert("u1", "u2", models.NotificationLike, nil); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if got := listNotifications(t, repo, "u1"); len(got) != 0 {
		t.Fatalf("got %d notifications, want 0", len(got))
	}
}
