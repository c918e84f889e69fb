package models

import "time"

// Notification types.
const (
	NotificationBookingRequest  = "booking_request"
	NotificationBookingUpdate   = "booking_update"
	NotificationServiceApproved = "service_approved"
)

type Notification struct {
	ID        string    `bson:"id" json:"id"`
	UserID    UserID    `bson:"userId" json:"userId"`
	Text      string    `bson:"text" json:"text"`
	Message   string    `bson:"message,omitempty" json:"message,omitempty"`
	Link      string    `bson:"link,omitempty" json:"link,omitempty"`
	Type      string    `bson:"type,omitempty" json:"type,omitempty"`
	IsRead    bool      `bson:"isRead" json:"isRead"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// NotificationOptions carries the optional fields of a notification.
type NotificationOptions struct {
	Message string
	Link    string
	Type    string
}
