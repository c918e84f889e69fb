package models

import "time"

// BookingStatus is the closed set of booking lifecycle states.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusAccepted  BookingStatus = "accepted"
	StatusOnTheWay  BookingStatus = "on_the_way"
	StatusStarted   BookingStatus = "started"
	StatusCompleted BookingStatus = "completed"
	StatusRejected  BookingStatus = "rejected"
)

// Valid reports whether s is a member of the status set.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusOnTheWay, StatusStarted, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no transition is defined away from s.
func (s BookingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

// ServiceSnapshot is the immutable copy of a catalogue entry captured into a
// booking at creation time. Later catalogue edits never change past bookings.
type ServiceSnapshot struct {
	ServiceID string `bson:"serviceId" json:"serviceId"`
	Name      string `bson:"name" json:"name"`
}

// Booking references the customer by User id and the provider by profile id.
// ChatID is set exactly when the booking first reaches the accepted state.
type Booking struct {
	ID            string          `bson:"id" json:"id"`
	UserID        UserID          `bson:"userId" json:"userId"`
	ProviderID    ProviderID      `bson:"providerId" json:"providerId"`
	Service       ServiceSnapshot `bson:"service" json:"service"`
	Description   string          `bson:"description" json:"description"`
	PreferredDate time.Time       `bson:"preferredDate" json:"preferredDate"`
	Address       string          `bson:"address" json:"address"`
	Status        BookingStatus   `bson:"status" json:"status"`
	ChatID        string          `bson:"chatId,omitempty" json:"chatId,omitempty"`
	Reviewed      bool            `bson:"reviewed" json:"reviewed"`
	CreatedAt     time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// BookingView is a booking joined with display data for listings.
type BookingView struct {
	Booking          `bson:",inline"`
	CounterpartyName string `bson:"counterpartyName" json:"counterpartyName"`
}
