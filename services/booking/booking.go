package booking

import (
	"context"
	"fmt"
	"strings"

	"fixify/models"
	"fixify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// minDescriptionLen is the authoritative server-side minimum.
const minDescriptionLen = 20

// statusMessages maps each transition target to the customer-facing text.
var statusMessages = map[models.BookingStatus]string{
	models.StatusAccepted:  "Your booking has been accepted",
	models.StatusOnTheWay:  "Provider is on the way",
	models.StatusStarted:   "Job has started",
	models.StatusCompleted: "Job completed successfully",
	models.StatusRejected:  "Your booking was rejected",
}

// CreateBooking validates the request, snapshots the chosen service and
// creates the booking in the pending state. The provider's owner is notified
// best-effort after the write commits.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, customerID models.UserID, in CreateBookingInput) (*models.Booking, error) {
	if len(strings.TrimSpace(in.Description)) < minDescriptionLen {
		return nil, errDescriptionTooShort(minDescriptionLen)
	}
	if in.PreferredDate.IsZero() {
		return nil, errPreferredDateRequired
	}
	if strings.TrimSpace(in.Address) == "" {
		return nil, errAddressRequired
	}

	customer, err := s.Users.GetByID(customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve customer %s: %w", customerID, err)
	}
	if customer == nil {
		return nil, utils.NotFoundError{Resource: "user"}
	}
	if customer.IsBlocked {
		return nil, errAccountBlocked
	}

	provider, err := s.Providers.GetByID(in.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve provider %s: %w", in.ProviderID, err)
	}
	if provider == nil {
		return nil, utils.NotFoundError{Resource: "provider"}
	}
	if err := s.checkProviderEligible(provider); err != nil {
		return nil, err
	}

	svc := provider.ServiceByID(in.ServiceID)
	if svc == nil || !svc.IsApproved {
		return nil, errServiceUnavailable
	}

	b := &models.Booking{
		ID:         uuid.New().String(),
		UserID:     customerID,
		ProviderID: provider.ID,
		Service: models.ServiceSnapshot{
			ServiceID: svc.ID,
			Name:      svc.Name,
		},
		Description:   in.Description,
		PreferredDate: in.PreferredDate,
		Address:       in.Address,
		Status:        models.StatusPending,
	}
	if err := s.Bookings.Create(b); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	// Notification failure never fails the booking.
	_, err = s.Notifier.Notify(ctx, provider.UserID,
		fmt.Sprintf("New booking request for %s", svc.Name),
		models.NotificationOptions{
			Message: fmt.Sprintf("%s requested your %s service", customer.Name, svc.Name),
			Link:    "/provider",
			Type:    models.NotificationBookingRequest,
		})
	if err != nil {
		zap.L().Warn("booking request notification failed",
			zap.String("bookingId", b.ID), zap.Error(err))
	}

	return b, nil
}

// UpdateStatus moves a booking one step through the state machine on behalf
// of its owning provider. The status write is a single conditional update,
// so of two racing calls exactly one wins; only the winner runs side effects.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, callerID models.UserID, bookingID string, next models.BookingStatus) (*models.Booking, error) {
	if !next.Valid() {
		return nil, utils.ValidationError{Msg: fmt.Sprintf("unknown booking status %q", next)}
	}

	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	if b == nil {
		return nil, utils.NotFoundError{Resource: "booking"}
	}

	profile, err := s.Providers.GetByUserID(callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve provider profile for user %s: %w", callerID, err)
	}
	if profile == nil {
		return nil, utils.NotFoundError{Resource: "provider profile"}
	}
	if b.ProviderID != profile.ID {
		return nil, errNotBookingProvider
	}
	if err := s.checkProviderEligible(profile); err != nil {
		return nil, err
	}

	if !CanTransition(b.Status, next) {
		return nil, errIllegalTransition(b.Status, next)
	}

	updated, err := s.Bookings.UpdateStatusIf(bookingID, b.Status, next)
	if err != nil {
		return nil, fmt.Errorf("failed to transition booking %s: %w", bookingID, err)
	}
	if updated == nil {
		// Lost the race against a concurrent transition.
		current, err := s.Bookings.GetByID(bookingID)
		if err == nil && current != nil {
			return nil, errIllegalTransition(current.Status, next)
		}
		return nil, utils.StateConflictError{Msg: "booking was updated concurrently"}
	}

	if next == models.StatusAccepted && updated.ChatID == "" {
		if chat, err := s.createChat(updated, profile.UserID); err != nil {
			zap.L().Error("chat creation failed on accept",
				zap.String("bookingId", updated.ID), zap.Error(err))
		} else {
			updated.ChatID = chat.ID
		}
	}

	if text, ok := statusMessages[next]; ok {
		if _, err := s.Notifier.Notify(ctx, updated.UserID, text, models.NotificationOptions{
			Message: fmt.Sprintf("%s: %s", updated.Service.Name, text),
			Link:    "/bookings",
			Type:    models.NotificationBookingUpdate,
		}); err != nil {
			zap.L().Warn("status notification failed",
				zap.String("bookingId", updated.ID), zap.Error(err))
		}
	}

	return updated, nil
}

// createChat opens the conversation for an accepted booking. The chat stores
// the provider's owning User id, never the profile id.
func (s *DefaultBookingService) createChat(b *models.Booking, providerUserID models.UserID) (*models.Chat, error) {
	chat := &models.Chat{
		ID:             uuid.New().String(),
		BookingID:      b.ID,
		UserID:         b.UserID,
		ProviderUserID: providerUserID,
	}
	if err := s.Chats.CreateChat(chat); err != nil {
		return nil, err
	}
	if err := s.Bookings.SetChat(b.ID, chat.ID); err != nil {
		return nil, err
	}
	return chat, nil
}

func (s *DefaultBookingService) checkProviderEligible(p *models.Provider) error {
	if p.IsBlocked {
		return errProviderBlocked
	}
	owner, err := s.Users.GetByID(p.UserID)
	if err != nil {
		return fmt.Errorf("failed to resolve provider owner %s: %w", p.UserID, err)
	}
	if owner != nil && owner.IsBlocked {
		return errProviderBlocked
	}
	return nil
}

// ListForCustomer returns the customer's bookings, newest first, with the
// provider owner's name joined in.
func (s *DefaultBookingService) ListForCustomer(ctx context.Context, customerID models.UserID) ([]models.BookingView, error) {
	bookings, err := s.Bookings.ListByUser(customerID)
	if err != nil {
		return nil, err
	}

	views := make([]models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		name := ""
		if provider, err := s.Providers.GetByID(b.ProviderID); err == nil && provider != nil {
			if owner, err := s.Users.GetByID(provider.UserID); err == nil && owner != nil {
				name = owner.Name
			}
		}
		views = append(views, models.BookingView{Booking: b, CounterpartyName: name})
	}
	return views, nil
}

// ListForProvider resolves the caller's provider profile and returns its
// bookings, newest first, with customer names joined in.
func (s *DefaultBookingService) ListForProvider(ctx context.Context, callerID models.UserID) ([]models.BookingView, error) {
	profile, err := s.Providers.GetByUserID(callerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, utils.NotFoundError{Resource: "provider profile"}
	}

	bookings, err := s.Bookings.ListByProvider(profile.ID)
	if err != nil {
		return nil, err
	}

	views := make([]models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		name := ""
		if customer, err := s.Users.GetByID(b.UserID); err == nil && customer != nil {
			name = customer.Name
		}
		views = append(views, models.BookingView{Booking: b, CounterpartyName: name})
	}
	return views, nil
}
