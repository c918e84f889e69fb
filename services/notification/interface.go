package notification

import (
	"context"

	"fixify/models"
)

// Dispatcher persists notifications and pushes them to the recipient's
// realtime room. Persistence is the source of truth; the push is a latency
// optimization, delivered at most once to whoever is connected.
type Dispatcher interface {
	Notify(ctx context.Context, recipient models.UserID, text string, opts models.NotificationOptions) (*models.Notification, error)
	ListForUser(ctx context.Context, userID models.UserID) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID models.UserID, notificationID string) error
	MarkAllRead(ctx context.Context, userID models.UserID) error
}
