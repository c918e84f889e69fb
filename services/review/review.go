package review

import (
	"context"
	"fmt"

	bookingRepo "fixify/database/repository/booking"
	providerRepo "fixify/database/repository/provider"
	reviewRepo "fixify/database/repository/review"
	userRepo "fixify/database/repository/user"
	"fixify/models"
	"fixify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	errNotBookingOwner  = utils.AuthorizationError{Msg: "only the booking owner can review"}
	errNotCompleted     = utils.StateConflictError{Msg: "you can review only after job completion"}
	errAlreadyReviewed  = utils.StateConflictError{Msg: "review already submitted"}
	errRatingOutOfRange = utils.ValidationError{Msg: "rating must be between 1 and 5"}
)

// Service records reviews for completed bookings and keeps the provider
// owner's aggregate rating current.
type Service interface {
	AddReview(ctx context.Context, callerID models.UserID, bookingID string, rating int, comment string) (*models.Review, error)
	ListForProviderUser(ctx context.Context, providerUserID models.UserID) ([]models.Review, error)
}

// DefaultReviewService implements Service.
type DefaultReviewService struct {
	Reviews   reviewRepo.ReviewRepository
	Bookings  bookingRepo.BookingRepository
	Providers providerRepo.ProviderRepository
	Users     userRepo.UserRepository
}

// AddReview is gated on ownership, completed status, and the absence of a
// prior review; on success the booking's reviewed flag flips true.
func (s *DefaultReviewService) AddReview(ctx context.Context, callerID models.UserID, bookingID string, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, errRatingOutOfRange
	}

	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	if b == nil {
		return nil, utils.NotFoundError{Resource: "booking"}
	}
	if b.UserID != callerID {
		return nil, errNotBookingOwner
	}
	if b.Status != models.StatusCompleted {
		return nil, errNotCompleted
	}

	existing, err := s.Reviews.GetByBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errAlreadyReviewed
	}

	provider, err := s.Providers.GetByID(b.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve provider %s: %w", b.ProviderID, err)
	}
	if provider == nil {
		return nil, utils.NotFoundError{Resource: "provider"}
	}

	r := &models.Review{
		ID:             uuid.New().String(),
		BookingID:      b.ID,
		UserID:         b.UserID,
		ProviderUserID: provider.UserID,
		Rating:         rating,
		Comment:        comment,
	}
	if err := s.Reviews.Create(r); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if err := s.Bookings.SetReviewed(b.ID); err != nil {
		zap.L().Error("failed to flag booking reviewed",
			zap.String("bookingId", b.ID), zap.Error(err))
	}
	s.updateAggregateRating(provider.UserID)

	return r, nil
}

// updateAggregateRating recomputes the owner's mean rating. Best-effort; the
// review itself is already recorded.
func (s *DefaultReviewService) updateAggregateRating(providerUserID models.UserID) {
	reviews, err := s.Reviews.ListByProviderUser(providerUserID)
	if err != nil || len(reviews) == 0 {
		if err != nil {
			zap.L().Warn("failed to load reviews for rating update", zap.Error(err))
		}
		return
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))

	if err := s.Users.SetRating(providerUserID, avg, len(reviews)); err != nil {
		zap.L().Warn("failed to update aggregate rating",
			zap.String("providerUserId", string(providerUserID)), zap.Error(err))
	}
}

// ListForProviderUser returns a provider owner's reviews, newest first.
func (s *DefaultReviewService) ListForProviderUser(ctx context.Context, providerUserID models.UserID) ([]models.Review, error) {
	return s.Reviews.ListByProviderUser(providerUserID)
}
