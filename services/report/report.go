package report

import (
	"context"
	"fmt"
	"strings"

	bookingRepo "fixify/database/repository/booking"
	providerRepo "fixify/database/repository/provider"
	reportRepo "fixify/database/repository/report"
	"fixify/models"
	"fixify/utils"

	"github.com/google/uuid"
)

var (
	errReasonRequired  = utils.ValidationError{Msg: "report reason is required"}
	errAlreadyReported = utils.StateConflictError{Msg: "report already submitted"}
	errNotBookingParty = utils.AuthorizationError{Msg: "only a booking party can file a report"}
)

// Service files reports between booking parties and exposes the admin
// resolution flow.
type Service interface {
	CreateReport(ctx context.Context, callerID models.UserID, callerRole, bookingID, reason string) (*models.Report, error)
	ListAll(ctx context.Context) ([]models.Report, error)
	Resolve(ctx context.Context, reportID string) error
}

// DefaultReportService implements Service.
type DefaultReportService struct {
	Reports   reportRepo.ReportRepository
	Bookings  bookingRepo.BookingRepository
	Providers providerRepo.ProviderRepository
}

// CreateReport resolves the booking's other party as the reported user: a
// customer reports the provider's owning user, a provider reports the
// customer. At most one report per (reporter, booking) pair.
func (s *DefaultReportService) CreateReport(ctx context.Context, callerID models.UserID, callerRole, bookingID, reason string) (*models.Report, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, errReasonRequired
	}

	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	if b == nil {
		return nil, utils.NotFoundError{Resource: "booking"}
	}

	var reported models.UserID
	switch callerRole {
	case models.RoleUser:
		if b.UserID != callerID {
			return nil, errNotBookingParty
		}
		provider, err := s.Providers.GetByID(b.ProviderID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve provider %s: %w", b.ProviderID, err)
		}
		if provider == nil {
			return nil, utils.NotFoundError{Resource: "provider"}
		}
		reported = provider.UserID
	case models.RoleProvider:
		profile, err := s.Providers.GetByUserID(callerID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve provider profile for user %s: %w", callerID, err)
		}
		if profile == nil || profile.ID != b.ProviderID {
			return nil, errNotBookingParty
		}
		reported = b.UserID
	default:
		return nil, errNotBookingParty
	}

	existing, err := s.Reports.GetByReporterAndBooking(callerID, bookingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errAlreadyReported
	}

	r := &models.Report{
		ID:             uuid.New().String(),
		ReporterID:     callerID,
		ReportedUserID: reported,
		BookingID:      bookingID,
		Reason:         reason,
		ReporterRole:   callerRole,
		Status:         models.ReportPending,
	}
	if err := s.Reports.Create(r); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return r, nil
}

// ListAll returns every report, newest first.
func (s *DefaultReportService) ListAll(ctx context.Context) ([]models.Report, error) {
	return s.Reports.GetAll()
}

// Resolve marks a report resolved. Resolving an already-resolved report is a
// no-op at the storage layer.
func (s *DefaultReportService) Resolve(ctx context.Context, reportID string) error {
	r, err := s.Reports.GetByID(reportID)
	if err != nil {
		return err
	}
	if r == nil {
		return utils.NotFoundError{Resource: "report"}
	}
	return s.Reports.Resolve(reportID)
}
