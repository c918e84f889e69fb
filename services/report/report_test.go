package report

import (
	"context"
	"testing"

	providerRepo "fixify/database/repository/provider"
	"fixify/models"
	"fixify/utils"

	"github.com/stretchr/testify/assert"
)

type fakeReportRepo struct {
	reports []*models.Report
}

func (r *fakeReportRepo) Create(report *models.Report) error {
	r.reports = append(r.reports, report)
	return nil
}

func (r *fakeReportRepo) GetByID(id string) (*models.Report, error) {
	for _, rp := range r.reports {
		if rp.ID == id {
			return rp, nil
		}
	}
	return nil, nil
}

func (r *fakeReportRepo) GetByReporterAndBooking(reporterID models.UserID, bookingID string) (*models.Report, error) {
	for _, rp := range r.reports {
		if rp.ReporterID == reporterID && rp.BookingID == bookingID {
			return rp, nil
		}
	}
	return nil, nil
}

func (r *fakeReportRepo) GetAll() ([]models.Report, error) {
	var out []models.Report
	for _, rp := range r.reports {
		out = append(out, *rp)
	}
	return out, nil
}

func (r *fakeReportRepo) Resolve(id string) error {
	for _, rp := range r.reports {
		if rp.ID == id {
			rp.Status = models.ReportResolved
		}
	}
	return nil
}

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func (r *fakeBookingRepo) Create(b *models.Booking) error             { return nil }
func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) { return r.bookings[id], nil }
func (r *fakeBookingRepo) ListByUser(userID models.UserID) ([]models.Booking, error) {
	return nil, nil
}
func (r *fakeBookingRepo) ListByProvider(providerID models.ProviderID) ([]models.Booking, error) {
	return nil, nil
}
func (r *fakeBookingRepo) UpdateStatusIf(id string, from, to models.BookingStatus) (*models.Booking, error) {
	return nil, nil
}
func (r *fakeBookingRepo) SetChat(id string, chatID string) error { return nil }
func (r *fakeBookingRepo) SetReviewed(id string) error            { return nil }
func (r *fakeBookingRepo) GetAll() ([]models.Booking, error)      { return nil, nil }

type fakeProviderRepo struct {
	providers []*models.Provider
}

func (r *fakeProviderRepo) Create(p *models.Provider) error { return nil }
func (r *fakeProviderRepo) GetByID(id models.ProviderID) (*models.Provider, error) {
	for _, p := range r.providers {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProviderRepo) GetByUserID(userID models.UserID) (*models.Provider, error) {
	for _, p := range r.providers {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProviderRepo) GetAll() ([]models.Provider, error) { return nil, nil }
func (r *fakeProviderRepo) Search(filter providerRepo.SearchFilter) ([]models.Provider, error) {
	return nil, nil
}
func (r *fakeProviderRepo) AppendService(id models.ProviderID, svc models.Service) error { return nil }
func (r *fakeProviderRepo) UpdateServicePrice(id models.ProviderID, serviceID string, price float64) error {
	return nil
}
func (r *fakeProviderRepo) RemoveService(id models.ProviderID, serviceID string) error  { return nil }
func (r *fakeProviderRepo) ApproveService(id models.ProviderID, serviceID string) error { return nil }
func (r *fakeProviderRepo) SetVerifiedApproveAll(id models.ProviderID) error            { return nil }
func (r *fakeProviderRepo) SetOnline(id models.ProviderID, online bool) error           { return nil }
func (r *fakeProviderRepo) SetBlocked(id models.ProviderID, blocked bool) error         { return nil }
func (r *fakeProviderRepo) SetPincodesExperience(id models.ProviderID, pincodes []string, experience int) error {
	return nil
}

const (
	custID     = models.UserID("user-1")
	provUserID = models.UserID("user-2")
	profileID  = models.ProviderID("prov-1")
	bookingID  = "bk-1"
)

func newService() *DefaultReportService {
	return &DefaultReportService{
		Reports: &fakeReportRepo{},
		Bookings: &fakeBookingRepo{bookings: map[string]*models.Booking{
			bookingID: {ID: bookingID, UserID: custID, ProviderID: profileID, Status: models.StatusCompleted},
		}},
		Providers: &fakeProviderRepo{providers: []*models.Provider{
			{ID: profileID, UserID: provUserID},
		}},
	}
}

func TestCreateReportByCustomer(t *testing.T) {
	svc := newService()

	r, err := svc.CreateReport(context.Background(), custID, models.RoleUser, bookingID, "never showed up")
	assert.NoError(t, err)
	assert.Equal(t, custID, r.ReporterID)
	// The reported party is the provider's owning user, not the profile id.
	assert.Equal(t, provUserID, r.ReportedUserID)
	assert.Equal(t, models.ReportPending, r.Status)
}

func TestCreateReportByProvider(t *testing.T) {
	svc := newService()

	r, err := svc.CreateReport(context.Background(), provUserID, models.RoleProvider, bookingID, "abusive behavior")
	assert.NoError(t, err)
	assert.Equal(t, provUserID, r.ReporterID)
	assert.Equal(t, custID, r.ReportedUserID)
}

func TestCreateReportDuplicate(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.CreateReport(ctx, custID, models.RoleUser, bookingID, "first")
	assert.NoError(t, err)
	_, err = svc.CreateReport(ctx, custID, models.RoleUser, bookingID, "second")
	assert.ErrorIs(t, err, errAlreadyReported)

	// The other party may still file their own report.
	_, err = svc.CreateReport(ctx, provUserID, models.RoleProvider, bookingID, "counter report")
	assert.NoError(t, err)
}

func TestCreateReportOutsiders(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	t.Run("customer of another booking", func(t *testing.T) {
		_, err := svc.CreateReport(ctx, "user-9", models.RoleUser, bookingID, "reason")
		assert.ErrorIs(t, err, errNotBookingParty)
	})

	t.Run("provider of another booking", func(t *testing.T) {
		svc.Providers.(*fakeProviderRepo).providers = append(
			svc.Providers.(*fakeProviderRepo).providers,
			&models.Provider{ID: "prov-2", UserID: "user-8"},
		)
		_, err := svc.CreateReport(ctx, "user-8", models.RoleProvider, bookingID, "reason")
		assert.ErrorIs(t, err, errNotBookingParty)
	})

	t.Run("admin role cannot file", func(t *testing.T) {
		_, err := svc.CreateReport(ctx, custID, models.RoleAdmin, bookingID, "reason")
		assert.ErrorIs(t, err, errNotBookingParty)
	})
}

func TestCreateReportValidation(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.CreateReport(ctx, custID, models.RoleUser, bookingID, "  ")
	assert.ErrorIs(t, err, errReasonRequired)

	_, err = svc.CreateReport(ctx, custID, models.RoleUser, "missing", "reason")
	var nferr utils.NotFoundError
	assert.ErrorAs(t, err, &nferr)
}

func TestResolveReport(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	r, err := svc.CreateReport(ctx, custID, models.RoleUser, bookingID, "reason")
	assert.NoError(t, err)

	assert.NoError(t, svc.Resolve(ctx, r.ID))
	all, _ := svc.ListAll(ctx)
	assert.Equal(t, models.ReportResolved, all[0].Status)

	err = svc.Resolve(ctx, "missing")
	var nferr utils.NotFoundError
	assert.ErrorAs(t, err, &nferr)
}
