// Package notifications collapses repeated actor events into single
// notifications so one popular post does not flood its owner's inbox.
package notifications

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/raves21/azura-backend/internal/models"
	"github.com/raves21/azura-backend/internal/repositories"
	"github.com/raves21/azura-backend/pkg/metrics"
)

// Deduplicator upserts notification records with actor-set merging.
type Deduplicator struct {
	repo    repositories.NotificationRepository
	metrics *metrics.Metrics
	log     *logrus.Logger
}

// NewDeduplicator creates a new Deduplicator.
func NewDeduplicator(repo repositories.NotificationRepository, m *metrics.Metrics, log *logrus.Logger) *Deduplicator {
	return &Deduplicator{repo: repo, metrics: m, log: log}
}

// Upsert records an actor event for a recipient. Self-actions are dropped.
//
// FOLLOW: if any FOLLOW notification for the recipient already has this
// actor in its set, nothing happens. Re-following after an unfollow does
// not resurface a dismissed notification. Otherwise a new notification is
// created with a singleton actor set.
//
// LIKE/COMMENT: one notification per (recipient, post, type). A new actor
// joins the set and resurfaces the notification as unread; a repeated actor
// is a no-op.
func (d *Deduplicator) Upsert(recipientID, actorID string, typ models.NotificationType, postID *string) error {
	if actorID == recipientID {
		return nil
	}

	if typ == models.NotificationFollow {
		return d.upsertFollow(recipientID, actorID)
	}
	return d.upsertPostEvent(recipientID, actorID, typ, postID)
}

func (d *Deduplicator) upsertFollow(recipientID, actorID string) error {
	_, err := d.repo.FindFollowWithActor(recipientID, actorID)
	if err == nil {
		d.metrics.NotificationsUpserted.WithLabelValues("deduped").Inc()
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	if err := d.repo.CreateNotification(&models.Notification{
		Type:        models.NotificationFollow,
		RecipientID: recipientID,
		Actors:      []models.NotificationActor{{ActorID: actorID}},
	}); err != nil {
		return err
	}
	d.metrics.NotificationsUpserted.WithLabelValues("created").Inc()
	return nil
}

func (d *Deduplicator) upsertPostEvent(recipientID, actorID string, typ models.NotificationType, postID *string) error {
	if postID == nil {
		d.log.WithFields(logrus.Fields{
			"recipient_id": recipientID,
			"type":         typ,
		}).Warn("Notification upsert without post id, dropping")
		return nil
	}

	existing, err := d.repo.FindByRecipientPostType(recipientID, *postID, typ)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := d.repo.CreateNotification(&models.Notification{
			Type:        typ,
			RecipientID: recipientID,
			PostID:      postID,
			Actors:      []models.NotificationActor{{ActorID: actorID}},
		}); err != nil {
			return err
		}
		d.metrics.NotificationsUpserted.WithLabelValues("created").Inc()
		return nil
	}

	hasActor, err := d.repo.HasActor(existing.ID, actorID)
	if err != nil {
		return err
	}
	if hasActor {
		d.metrics.NotificationsUpserted.WithLabelValues("deduped").Inc()
		return nil
	}

	if err := d.repo.AddActor(existing.ID, actorID); err != nil {
		return err
	}
	// New actor resurfaces the notification at the top of the feed.
	if err := d.repo.MarkUnreadAndTouch(existing.ID); err != nil {
		return err
	}
	d.metrics.NotificationsUpserted.WithLabelValues("merged").Inc()
	return nil
}
