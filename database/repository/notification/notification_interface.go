package notificationRepo

import "fixify/models"

// NotificationRepository defines methods for notification data access.
// Persisted notifications are the source of truth; the realtime push layered
// on top is a latency optimization only.
type NotificationRepository interface {
	// Create inserts a new notification document.
	Create(n *models.Notification) error
	// ListByUser retrieves a user's notifications, newest first.
	ListByUser(userID models.UserID) ([]models.Notification, error)
	// MarkRead flips the read flag of one notification owned by the user.
	// Marking an already-read notification is a no-op. Returns false when no
	// such notification exists for the user.
	MarkRead(id string, userID models.UserID) (bool, error)
	// MarkAllRead flips the read flag of every unread notification of the user.
	MarkAllRead(userID models.UserID) error
}
