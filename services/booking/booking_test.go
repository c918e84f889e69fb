package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	providerRepo "fixify/database/repository/provider"
	"fixify/models"
	"fixify/utils"

	"github.com/stretchr/testify/assert"
)

// --- In-memory fakes ---

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) ListByUser(userID models.UserID) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByProvider(providerID models.ProviderID) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatusIf(id string, from, to models.BookingStatus) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok || b.Status != from {
		return nil, nil
	}
	b.Status = to
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) SetChat(id string, chatID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.bookings[id]; ok {
		b.ChatID = chatID
	}
	return nil
}

func (r *fakeBookingRepo) SetReviewed(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.bookings[id]; ok {
		b.Reviewed = true
	}
	return nil
}

func (r *fakeBookingRepo) GetAll() ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

type fakeProviderRepo struct {
	providers []*models.Provider
}

func (r *fakeProviderRepo) Create(p *models.Provider) error {
	r.providers = append(r.providers, p)
	return nil
}

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

type fakeUserRepo struct {
	users map[models.UserID]*models.User
}

func (r *fakeUserRepo) Create(u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id models.UserID) (*models.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetAll() ([]models.User, error)                  { return nil, nil }
func (r *fakeUserRepo) SetRole(id models.UserID, role string) error     { return nil }
func (r *fakeUserRepo) SetBlocked(id models.UserID, blocked bool) error { return nil }
func (r *fakeUserRepo) SetRating(id models.UserID, rating float64, totalReviews int) error {
	return nil
}

type fakeChatRepo struct {
	mu    sync.Mutex
	chats map[string]*models.Chat
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{chats: make(map[string]*models.Chat)}
}

func (r *fakeChatRepo) CreateChat(chat *models.Chat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.chats {
		if c.BookingID == chat.BookingID {
			return errors.New("duplicate key: bookingId")
		}
	}
	r.chats[chat.ID] = chat
	return nil
}

func (r *fakeChatRepo) GetChatByID(id string) (*models.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.chats[id], nil
}

func (r *fakeChatRepo) CreateMessage(msg *models.Message) error              { return nil }
func (r *fakeChatRepo) ListMessages(chatID string) ([]models.Message, error) { return nil, nil }

func (r *fakeChatRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.chats)
}

type fakeDispatcher struct {
	mu   sync.Mutex
	sent []models.Notification
}

func (d *fakeDispatcher) Notify(ctx context.Context, recipient models.UserID, text string, opts models.NotificationOptions) (*models.Notification, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := models.Notification{UserID: recipient, Text: text, Message: opts.Message, Link: opts.Link, Type: opts.Type}
	d.sent = append(d.sent, n)
	return &n, nil
}

func (d *fakeDispatcher) ListForUser(ctx context.Context, userID models.UserID) ([]models.Notification, error) {
	return nil, nil
}
func (d *fakeDispatcher) MarkRead(ctx context.Context, userID models.UserID, notificationID string) error {
	return nil
}
func (d *fakeDispatcher) MarkAllRead(ctx context.Context, userID models.UserID) error { return nil }

func (d *fakeDispatcher) forUser(id models.UserID) []models.Notification {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []models.Notification
	for _, n := range d.sent {
		if n.UserID == id {
			out = append(out, n)
		}
	}
	return out
}

// --- Fixture ---

const (
	customerID      = models.UserID("user-1")
	providerOwnerID = models.UserID("user-2")
	profileID       = models.ProviderID("prov-1")
	serviceID       = "svc-1"
)

type fixture struct {
	svc      *DefaultBookingService
	bookings *fakeBookingRepo
	provRepo *fakeProviderRepo
	userRepo *fakeUserRepo
	chats    *fakeChatRepo
	notifier *fakeDispatcher
}

func newFixture() *fixture {
	users := &fakeUserRepo{users: map[models.UserID]*models.User{
		customerID:      {ID: customerID, Name: "Asha", Role: models.RoleUser},
		providerOwnerID: {ID: providerOwnerID, Name: "Ravi", Role: models.RoleProvider},
	}}
	providers := &fakeProviderRepo{providers: []*models.Provider{{
		ID:     profileID,
		UserID: providerOwnerID,
		Services: []models.Service{
			{ID: serviceID, Name: "Plumbing", Category: "home", Price: 500, IsApproved: true},
			{ID: "svc-2", Name: "Wiring", Category: "home", Price: 800, IsApproved: false},
		},
		Pincodes:   []string{"560001"},
		IsVerified: true,
	}}}
	bookings := newFakeBookingRepo()
	chats := newFakeChatRepo()
	notifier := &fakeDispatcher{}

	return &fixture{
		svc: &DefaultBookingService{
			Bookings:  bookings,
			Providers: providers,
			Users:     users,
			Chats:     chats,
			Notifier:  notifier,
		},
		bookings: bookings,
		provRepo: providers,
		userRepo: users,
		chats:    chats,
		notifier: notifier,
	}
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		ProviderID:    profileID,
		ServiceID:     serviceID,
		Description:   "Kitchen sink is leaking badly under the counter",
		PreferredDate: time.Now().Add(24 * time.Hour),
		Address:       "12 MG Road, Bengaluru",
	}
}

// --- CreateBooking ---

func TestCreateBooking(t *testing.T) {
	f := newFixture()

	b, err := f.svc.CreateBooking(context.Background(), customerID, validInput())
	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, models.StatusPending, b.Status)
	assert.Equal(t, customerID, b.UserID)
	assert.Equal(t, profileID, b.ProviderID)
	assert.Equal(t, serviceID, b.Service.ServiceID)
	assert.Equal(t, "Plumbing", b.Service.Name)
	assert.Empty(t, b.ChatID)

	// The provider's owning user is notified, not the profile id.
	sent := f.notifier.forUser(providerOwnerID)
	assert.Len(t, sent, 1)
	assert.Equal(t, models.NotificationBookingRequest, sent[0].Type)
	assert.Equal(t, "/provider", sent[0].Link)
}

func TestCreateBookingValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	t.Run("short description", func(t *testing.T) {
		in := validInput()
		in.Description = "too short"
		_, err := f.svc.CreateBooking(ctx, customerID, in)
		var verr utils.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("missing preferred date", func(t *testing.T) {
		in := validInput()
		in.PreferredDate = time.Time{}
		_, err := f.svc.CreateBooking(ctx, customerID, in)
		var verr utils.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("missing address", func(t *testing.T) {
		in := validInput()
		in.Address = "   "
		_, err := f.svc.CreateBooking(ctx, customerID, in)
		var verr utils.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("unknown provider", func(t *testing.T) {
		in := validInput()
		in.ProviderID = "prov-none"
		_, err := f.svc.CreateBooking(ctx, customerID, in)
		var nferr utils.NotFoundError
		assert.ErrorAs(t, err, &nferr)
	})

	t.Run("unapproved service", func(t *testing.T) {
		in := validInput()
		in.ServiceID = "svc-2"
		_, err := f.svc.CreateBooking(ctx, customerID, in)
		assert.ErrorIs(t, err, errServiceUnavailable)
	})
}

func TestCreateBookingBlockedParties(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked customer", func(t *testing.T) {
		f := newFixture()
		f.userRepo.users[customerID].IsBlocked = true
		_, err := f.svc.CreateBooking(ctx, customerID, validInput())
		assert.ErrorIs(t, err, errAccountBlocked)
	})

	t.Run("blocked provider profile", func(t *testing.T) {
		f := newFixture()
		f.provRepo.providers[0].IsBlocked = true
		_, err := f.svc.CreateBooking(ctx, customerID, validInput())
		assert.ErrorIs(t, err, errProviderBlocked)
	})

	t.Run("blocked provider owner", func(t *testing.T) {
		f := newFixture()
		f.userRepo.users[providerOwnerID].IsBlocked = true
		_, err := f.svc.CreateBooking(ctx, customerID, validInput())
		assert.ErrorIs(t, err, errProviderBlocked)
	})
}

// --- UpdateStatus ---

func mustCreate(t *testing.T, f *fixture) *models.Booking {
	t.Helper()
	b, err := f.svc.CreateBooking(context.Background(), customerID, validInput())
	assert.NoError(t, err)
	return b
}

func TestUpdateStatusAcceptCreatesChat(t *testing.T) {
	f := newFixture()
	b := mustCreate(t, f)
	ctx := context.Background()

	updated, err := f.svc.UpdateStatus(ctx, providerOwnerID, b.ID, models.StatusAccepted)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, updated.Status)
	assert.NotEmpty(t, updated.ChatID)

	chat, err := f.chats.GetChatByID(updated.ChatID)
	assert.NoError(t, err)
	assert.NotNil(t, chat)
	assert.Equal(t, b.ID, chat.BookingID)
	assert.Equal(t, customerID, chat.UserID)
	// The chat stores the provider's owning user, not the profile id.
	assert.Equal(t, providerOwnerID, chat.ProviderUserID)

	// The customer is told about the acceptance.
	sent := f.notifier.forUser(customerID)
	assert.Len(t, sent, 1)
	assert.Equal(t, "Your booking has been accepted", sent[0].Text)
	assert.Equal(t, models.NotificationBookingUpdate, sent[0].Type)
}

func TestUpdateStatusFullLifecycle(t *testing.T) {
	f := newFixture()
	b := mustCreate(t, f)
	ctx := context.Background()

	for _, next := range []models.BookingStatus{
		models.StatusAccepted, models.StatusOnTheWay, models.StatusStarted, models.StatusCompleted,
	} {
		updated, err := f.svc.UpdateStatus(ctx, providerOwnerID, b.ID, next)
		assert.NoError(t, err, "transition to %s", next)
		assert.Equal(t, next, updated.Status)
	}

	// One chat, one customer notification per transition.
	assert.Equal(t, 1, f.chats.count())
	assert.Len(t, f.notifier.forUser(customerID), 4)
}

func TestUpdateStatusReject(t *testing.T) {
	f := newFixture()
	b := mustCreate(t, f)

	updated, err := f.svc.UpdateStatus(context.Background(), providerOwnerID, b.ID, models.StatusRejected)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusRejected, updated.Status)
	// Rejection never opens a chat.
	assert.Empty(t, updated.ChatID)
	assert.Equal(t, 0, f.chats.count())
}

func TestUpdateStatusIllegalJump(t *testing.T) {
	f := newFixture()
	b := mustCreate(t, f)

	_, err := f.svc.UpdateStatus(context.Background(), providerOwnerID, b.ID, models.StatusCompleted)
	var cerr utils.StateConflictError
	assert.ErrorAs(t, err, &cerr)

	stored, _ := f.bookings.GetByID(b.ID)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestUpdateStatusWrongProvider(t *testing.T) {
	f := newFixture()
	b := mustCreate(t, f)

	// A second provider owned by a different user.
	otherOwner := models.UserID("user-3")
	f.userRepo.users[otherOwner] = &models.User{ID: otherOwner, Name: "Kiran", Role: models.RoleProvider}
	f.provRepo.providers = append(f.provRepo.providers, &models.Provider{
		ID:     "prov-2",
		UserID: otherOwner,
	})

	_, err := f.svc.UpdateStatus(context.Background(), otherOwner, b.ID, models.StatusAccepted)
	assert.ErrorIs(t, err, errNotBookingProvider)

	stored, _ := f.bookings.GetByID(b.ID)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestUpdateStatusUnknownBooking(t *testing.T) {
	f := newFixture()

	_, err := f.svc.UpdateStatus(context.Background(), providerOwnerID, "missing", models.StatusAccepted)
	var nferr utils.NotFoundError
	assert.ErrorAs(t, err, &nferr)
}

func TestUpdateStatusInvalidStatusValue(t *testing.T) {
	f := newFixture()
	b := mustCreate(t, f)

	_, err := f.svc.UpdateStatus(context.Background(), providerOwnerID, b.ID, "cancelled")
	var verr utils.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestUpdateStatusConcurrentAccept(t *testing.T) {
	f := newFixture()
	b := mustCreate(t, f)
	ctx := context.Background()

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.UpdateStatus(ctx, providerOwnerID, b.ID, models.StatusAccepted)
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		}
	}
	assert.Equal(t, 1, wins, "exactly one concurrent accept must win")
	assert.Equal(t, 1, f.chats.count(), "exactly one chat must be created")

	stored, _ := f.bookings.GetByID(b.ID)
	assert.Equal(t, models.StatusAccepted, stored.Status)
	assert.NotEmpty(t, stored.ChatID)
}

// --- Listings ---

func TestListForCustomerJoinsProviderName(t *testing.T) {
	f := newFixture()
	mustCreate(t, f)

	views, err := f.svc.ListForCustomer(context.Background(), customerID)
	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, "Ravi", views[0].CounterpartyName)
}

func TestListForProviderJoinsCustomerName(t *testing.T) {
	f := newFixture()
	mustCreate(t, f)

	views, err := f.svc.ListForProvider(context.Background(), providerOwnerID)
	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, "Asha", views[0].CounterpartyName)
}
