package bookingRepo

import "fixify/models"

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking document.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by id. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Booking, error)
	// ListByUser retrieves a customer's bookings, newest first.
	ListByUser(userID models.UserID) ([]models.Booking, error)
	// ListByProvider retrieves a provider profile's bookings, newest first.
	ListByProvider(providerID models.ProviderID) ([]models.Booking, error)
	// UpdateStatusIf atomically moves the booking from one status to another.
	// The update matches only when the stored status still equals from, so of
	// two racing transition calls exactly one wins. Returns the updated
	// booking, or (nil, nil) when the condition did not match.
	UpdateStatusIf(id string, from, to models.BookingStatus) (*models.Booking, error)
	// SetChat records the chat created for the booking.
	SetChat(id string, chatID string) error
	// SetReviewed flips the reviewed flag to true.
	SetReviewed(id string) error
	// GetAll retrieves all bookings, newest first.
	GetAll() ([]models.Booking, error)
}
