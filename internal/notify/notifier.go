package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/limelight-casting/limelight/internal/store"
)

// Notifier fans notifications out to the store and, when a bus client is
// configured, onto the event bus. A nil client degrades to store-only
// delivery; delivery failures are logged, never surfaced to the request
// that triggered them.
type Notifier struct {
	store  store.Store
	client Client
	logger *slog.Logger
}

func NewNotifier(s store.Store, client Client, logger *slog.Logger) *Notifier {
	return &Notifier{store: s, client: client, logger: logger}
}

// AuditionPosted notifies every known user about a new audition.
func (n *Notifier) AuditionPosted(ctx context.Context, a *store.Audition) {
	userIDs, err := n.store.ListUserIDs(ctx)
	if err != nil {
		n.logger.Warn("notification fan-out skipped", "audition", a.ID, "error", err)
		return
	}

	notifications := make([]*store.Notification, 0, len(userIDs))
	for _, id := range userIDs {
		notifications = append(notifications, &store.Notification{
			UserID:  id,
			Message: "New audition posted: " + a.Title,
			Type:    store.NotificationNewAudition,
		})
	}
	if err := n.store.CreateNotifications(ctx, notifications); err != nil {
		n.logger.Warn("failed to store notifications", "audition", a.ID, "error", err)
	}

	if n.client != nil {
		_ = n.client.Publish(SubjectAuditionCreated(a.ID.String()), AuditionCreatedEvent{
			AuditionID: a.ID.String(),
			Title:      a.Title,
			Organizer:  a.CreatedBy.String(),
			Location:   a.Location.Name,
		})
		for _, notification := range notifications {
			_ = n.client.Publish(SubjectUserNotified(notification.UserID.String()), UserNotifiedEvent{
				UserID:  notification.UserID.String(),
				Message: notification.Message,
				Type:    string(notification.Type),
			})
		}
	}
}

// AuditionLiked emits the like-toggle event. Likes produce no stored
// notification, matching the platform's notification surface.
func (n *Notifier) AuditionLiked(a *store.Audition, userID uuid.UUID, liked bool) {
	if n.client == nil {
		return
	}
	_ = n.client.Publish(SubjectAuditionLiked(a.ID.String()), AuditionLikedEvent{
		AuditionID: a.ID.String(),
		UserID:     userID.String(),
		Liked:      liked,
	})
}

// AuditionCommented emits the comment event.
func (n *Notifier) AuditionCommented(a *store.Audition, userID uuid.UUID, text string) {
	if n.client == nil {
		return
	}
	_ = n.client.Publish(SubjectAuditionCommented(a.ID.String()), AuditionCommentedEvent{
		AuditionID: a.ID.String(),
		UserID:     userID.String(),
		Text:       text,
	})
}

// SubmissionReceived notifies the audition's organizer about a new
// submission and emits the received/scored events.
func (n *Notifier) SubmissionReceived(ctx context.Context, a *store.Audition, sub *store.Submission) {
	notification := &store.Notification{
		UserID:  a.CreatedBy,
		Message: "New submission for your audition: " + a.Title,
		Type:    store.NotificationSubmissionUpdate,
	}
	if err := n.store.CreateNotification(ctx, notification); err != nil {
		n.logger.Warn("failed to store notification", "submission", sub.ID, "error", err)
	}

	if n.client == nil {
		return
	}
	_ = n.client.Publish(SubjectUserNotified(a.CreatedBy.String()), UserNotifiedEvent{
		UserID:  a.CreatedBy.String(),
		Message: notification.Message,
		Type:    string(notification.Type),
	})
	_ = n.client.Publish(SubjectSubmissionReceived(sub.ID.String()), SubmissionReceivedEvent{
		SubmissionID: sub.ID.String(),
		AuditionID:   a.ID.String(),
		UserID:       sub.UserID.String(),
	})
	if sub.AIScore != nil && sub.Breakdown != nil {
		_ = n.client.Publish(SubjectSubmissionScored(sub.ID.String()), SubmissionScoredEvent{
			SubmissionID: sub.ID.String(),
			AuditionID:   a.ID.String(),
			Score:        *sub.AIScore,
			Breakdown:    *sub.Breakdown,
		})
	}
}
