package admin

import (
	"context"
	"fmt"

	bookingRepo "fixify/database/repository/booking"
	providerRepo "fixify/database/repository/provider"
	userRepo "fixify/database/repository/user"
	"fixify/models"
	"fixify/services/notification"
	"fixify/utils"

	"go.uber.org/zap"
)

// Service is the moderation surface: admin-only mutations that influence
// booking eligibility through the blocked and approval flags.
type Service interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	ListProviders(ctx context.Context) ([]models.Provider, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	SetUserBlocked(ctx context.Context, id models.UserID, blocked bool) error
	SetProviderBlocked(ctx context.Context, id models.ProviderID, blocked bool) error
	ApproveService(ctx context.Context, providerID models.ProviderID, serviceID string) error
	VerifyProvider(ctx context.Context, providerID models.ProviderID) error
}

// DefaultAdminService implements Service.
type DefaultAdminService struct {
	Users     userRepo.UserRepository
	Providers providerRepo.ProviderRepository
	Bookings  bookingRepo.BookingRepository
	Notifier  notification.Dispatcher
}

func (s *DefaultAdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.Users.GetAll()
}

func (s *DefaultAdminService) ListProviders(ctx context.Context) ([]models.Provider, error) {
	return s.Providers.GetAll()
}

func (s *DefaultAdminService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.Bookings.GetAll()
}

// SetUserBlocked flips an account's blocked flag. Blocked accounts fail the
// booking engine's eligibility checks on their next operation.
func (s *DefaultAdminService) SetUserBlocked(ctx context.Context, id models.UserID, blocked bool) error {
	u, err := s.Users.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return utils.NotFoundError{Resource: "user"}
	}
	return s.Users.SetBlocked(id, blocked)
}

// SetProviderBlocked flips a provider profile's blocked flag.
func (s *DefaultAdminService) SetProviderBlocked(ctx context.Context, id models.ProviderID, blocked bool) error {
	p, err := s.Providers.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return utils.NotFoundError{Resource: "provider"}
	}
	return s.Providers.SetBlocked(id, blocked)
}

// ApproveService approves one catalogue entry and notifies the owner.
// Approval only ever moves false to true.
func (s *DefaultAdminService) ApproveService(ctx context.Context, providerID models.ProviderID, serviceID string) error {
	p, err := s.Providers.GetByID(providerID)
	if err != nil {
		return err
	}
	if p == nil {
		return utils.NotFoundError{Resource: "provider"}
	}
	svc := p.ServiceByID(serviceID)
	if svc == nil {
		return utils.NotFoundError{Resource: "service"}
	}
	if svc.IsApproved {
		return nil
	}

	if err := s.Providers.ApproveService(providerID, serviceID); err != nil {
		return err
	}

	s.notifyOwner(ctx, p.UserID,
		fmt.Sprintf("Your service %q has been approved", svc.Name))
	return nil
}

// VerifyProvider marks a provider verified and approves its whole catalogue.
func (s *DefaultAdminService) VerifyProvider(ctx context.Context, providerID models.ProviderID) error {
	p, err := s.Providers.GetByID(providerID)
	if err != nil {
		return err
	}
	if p == nil {
		return utils.NotFoundError{Resource: "provider"}
	}

	if err := s.Providers.SetVerifiedApproveAll(providerID); err != nil {
		return err
	}

	s.notifyOwner(ctx, p.UserID, "Your provider account and all services have been approved")
	return nil
}

func (s *DefaultAdminService) notifyOwner(ctx context.Context, owner models.UserID, text string) {
	if _, err := s.Notifier.Notify(ctx, owner, text, models.NotificationOptions{
		Link: "/provider",
		Type: models.NotificationServiceApproved,
	}); err != nil {
		zap.L().Warn("moderation notification failed",
			zap.String("userId", string(owner)), zap.Error(err))
	}
}
