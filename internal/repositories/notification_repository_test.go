package repositories

import (
	"testing"

	"github.com/raves21/azura-backend/internal/models"
)

func TestNotificationRepository_RecipientPostTypeIsUnique(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresNotificationRepository(db)
	postID := "post-1"

	first := &models.Notification{
		Type:        models.NotificationLike,
		RecipientID: "u1",
		PostID:      &postID,
		Actors:      []models.NotificationActor{{ActorID: "u2"}},
	}
	if err := repo.CreateNotification(first); err != nil {
		t.Fatalf("CreateNotification: %v", err)
	}

	// Same (recipient, post, type) key must be rejected by the store even
	// when the actor differs; merging goes through the actor set instead.
	dup := &models.Notification{
		Type:        models.NotificationLike,
		RecipientID: "u1",
		PostID:      &postID,
		Actors:      []models.NotificationActor{{ActorID: "u3"}},
	}
	if err := repo.CreateNotification(dup); err == nil {
		t.Fatalf("store accepted a duplicate (recipient, post, type) notification")
	}

	// A different type on the same post is a different key.
	comment := &models.Notification{
		Type:        models.NotificationComment,
		RecipientID: "u1",
		PostID:      &postID,
		Actors:      []models.NotificationActor{{ActorID: "u2"}},
	}
	if err := repo.CreateNotification(comment); err != nil {
		t.Fatalf("CreateNotification comment: %v", err)
	}
}

func TestNotificationRepository_NullPostIDRowsAreExempt(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresNotificationRepository(db)

	// FOLLOW notifications carry no post id; NULL distinctness keeps the
	// unique key from collapsing them.
	for _, actor := range []string{"u2", "u3"} {
		err := repo.CreateNotification(&models.Notification{
			Type:        models.NotificationFollow,
			RecipientID: "u1",
			Actors:      []models.NotificationActor{{ActorID: actor}},
		})
		if err != nil {
			t.Fatalf("CreateNotification for %s: %v", actor, err)
		}
	}

	notifications, _, err := repo.GetByRecipientID("u1", 1, 10)
	if err != nil {
		t.Fatalf("GetByRecipientID: %v", err)
	}
	if len(notifications) != 2 {
		t.Fatalf("got %d FOLLOW notifications, want 2", len(notifications))
	}
}

func TestNotificationRepository_ListSurfacesStoreFailure(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresNotificationRepository(db)

	if err := db.Migrator().DropTable(&models.Notification{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	if _, _, err := repo.GetByRecipientID("u1", 1, 10); err == nil {
		t.Fatalf("expected an error from the broken store, got none")
	}
}
