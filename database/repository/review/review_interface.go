package reviewRepo

import "fixify/models"

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// Create inserts a new review document.
	Create(review *models.Review) error
	// GetByBooking retrieves the review of a booking. Returns (nil, nil) when
	// none exists.
	GetByBooking(bookingID string) (*models.Review, error)
	// ListByProviderUser retrieves all reviews for a provider's owning user.
	ListByProviderUser(providerUserID models.UserID) ([]models.Review, error)
}
