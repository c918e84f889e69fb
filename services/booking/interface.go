package booking

import (
	"context"
	"time"

	bookingRepo "fixify/database/repository/booking"
	chatRepo "fixify/database/repository/chat"
	providerRepo "fixify/database/repository/provider"
	userRepo "fixify/database/repository/user"
	"fixify/models"
	"fixify/services/notification"
)

// CreateBookingInput carries the customer's booking request.
type CreateBookingInput struct {
	ProviderID    models.ProviderID `json:"providerId"`
	ServiceID     string            `json:"serviceId"`
	Description   string            `json:"description"`
	PreferredDate time.Time         `json:"preferredDate"`
	Address       string            `json:"address"`
}

// Service owns the booking state machine, the authorization checks per
// transition, and the side-effect fan-out (chat creation, notifications,
// realtime push).
type Service interface {
	CreateBooking(ctx context.Context, customerID models.UserID, in CreateBookingInput) (*models.Booking, error)
	UpdateStatus(ctx context.Context, callerID models.UserID, bookingID string, next models.BookingStatus) (*models.Booking, error)
	ListForCustomer(ctx context.Context, customerID models.UserID) ([]models.BookingView, error)
	ListForProvider(ctx context.Context, callerID models.UserID) ([]models.BookingView, error)
}

// DefaultBookingService implements Service.
type DefaultBookingService struct {
	Bookings  bookingRepo.BookingRepository
	Providers providerRepo.ProviderRepository
	Users     userRepo.UserRepository
	Chats     chatRepo.ChatRepository
	Notifier  notification.Dispatcher
}
