package models

import "time"

// Chat is created exactly once per booking, when the booking is accepted.
// ProviderUserID is the provider's owning User id, resolved from the
// Provider profile at creation time; the profile id is never stored here.
type Chat struct {
	ID             string    `bson:"id" json:"id"`
	BookingID      string    `bson:"bookingId" json:"bookingId"`
	UserID         UserID    `bson:"userId" json:"userId"`
	ProviderUserID UserID    `bson:"providerUserId" json:"providerUserId"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}

// Message belongs to exactly one chat, append-only, ordered by creation time.
// Sender display data is denormalized at send time.
type Message struct {
	ID         string    `bson:"id" json:"id"`
	ChatID     string    `bson:"chatId" json:"chatId"`
	SenderID   UserID    `bson:"senderId" json:"senderId"`
	SenderName string    `bson:"senderName" json:"senderName"`
	SenderRole string    `bson:"senderRole" json:"senderRole"`
	Text       string    `bson:"text" json:"text"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
