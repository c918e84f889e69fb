package notification

import (
	"context"
	"fmt"

	notificationRepo "fixify/database/repository/notification"
	"fixify/models"
	"fixify/realtime"
	"fixify/utils"

	"github.com/google/uuid"
)

// notificationReceived is the event name pushed to user rooms.
const eventNotificationReceived = "notificationReceived"

// DefaultDispatcher is the production implementation.
type DefaultDispatcher struct {
	Repo notificationRepo.NotificationRepository
	Hub  realtime.Publisher
}

// Notify persists a notification and, if the recipient has an open realtime
// connection, pushes the full record immediately. A disconnected recipient
// sees the record on their next fetch.
func (d *DefaultDispatcher) Notify(ctx context.Context, recipient models.UserID, text string, opts models.NotificationOptions) (*models.Notification, error) {
	n := &models.Notification{
		ID:      uuid.New().String(),
		UserID:  recipient,
		Text:    text,
		Message: opts.Message,
		Link:    opts.Link,
		Type:    opts.Type,
	}
	if err := d.Repo.Create(n); err != nil {
		return nil, fmt.Errorf("failed to persist notification for user %s: %w", recipient, err)
	}

	// Fan-out after the authoritative write commits.
	d.Hub.Publish(realtime.UserRoom(recipient), eventNotificationReceived, n)
	return n, nil
}

// ListForUser returns the recipient's notifications, newest first.
func (d *DefaultDispatcher) ListForUser(ctx context.Context, userID models.UserID) ([]models.Notification, error) {
	return d.Repo.ListByUser(userID)
}

// MarkRead flips one notification's read flag. Marking an already-read
// notification is a no-op; a notification owned by someone else is not found.
func (d *DefaultDispatcher) MarkRead(ctx context.Context, userID models.UserID, notificationID string) error {
	matched, err := d.Repo.MarkRead(notificationID, userID)
	if err != nil {
		return err
	}
	if !matched {
		return utils.NotFoundError{Resource: "notification"}
	}
	return nil
}

// MarkAllRead flips every unread notification of the user.
func (d *DefaultDispatcher) MarkAllRead(ctx context.Context, userID models.UserID) error {
	return d.Repo.MarkAllRead(userID)
}
