package models

import "time"

// Review is one-to-one with a completed booking. ProviderUserID is the
// provider's owning User id so aggregate ratings land on the account.
type Review struct {
	ID             string    `bson:"id" json:"id"`
	BookingID      string    `bson:"bookingId" json:"bookingId"`
	UserID         UserID    `bson:"userId" json:"userId"`
	ProviderUserID UserID    `bson:"providerUserId" json:"providerUserId"`
	Rating         int       `bson:"rating" json:"rating"`
	Comment        string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}
