package chat

import (
	"context"
	"testing"

	"fixify/models"
	"fixify/utils"

	"github.com/stretchr/testify/assert"
)

type fakeChatRepo struct {
	chats    map[string]*models.Chat
	messages []models.Message
}

func (r *fakeChatRepo) CreateChat(chat *models.Chat) error {
	r.chats[chat.ID] = chat
	return nil
}

func (r *fakeChatRepo) GetChatByID(id string) (*models.Chat, error) {
	return r.chats[id], nil
}

func (r *fakeChatRepo) CreateMessage(msg *models.Message) error {
	r.messages = append(r.messages, *msg)
	return nil
}

func (r *fakeChatRepo) ListMessages(chatID string) ([]models.Message, error) {
	var out []models.Message
	for _, m := range r.messages {
		if m.ChatID == chatID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[models.UserID]*models.User
}

func (r *fakeUserRepo) Create(u *models.User) error                     { return nil }
func (r *fakeUserRepo) GetByID(id models.UserID) (*models.User, error)  { return r.users[id], nil }
func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error)   { return nil, nil }
func (r *fakeUserRepo) GetAll() ([]models.User, error)                  { return nil, nil }
func (r *fakeUserRepo) SetRole(id models.UserID, role string) error     { return nil }
func (r *fakeUserRepo) SetBlocked(id models.UserID, blocked bool) error { return nil }
func (r *fakeUserRepo) SetRating(id models.UserID, rating float64, totalReviews int) error {
	return nil
}

type publishedEvent struct {
	room  string
	event string
	data  any
}

type fakePublisher struct {
	events []publishedEvent
}

func (p *fakePublisher) Publish(room, event string, data any) {
	p.events = append(p.events, publishedEvent{room: room, event: event, data: data})
}

const (
	chatID     = "chat-1"
	custID     = models.UserID("user-1")
	provUserID = models.UserID("user-2")
	strangerID = models.UserID("user-9")
)

func newService() (*DefaultChatService, *fakeChatRepo, *fakePublisher) {
	chats := &fakeChatRepo{chats: map[string]*models.Chat{
		chatID: {ID: chatID, BookingID: "bk-1", UserID: custID, ProviderUserID: provUserID},
	}}
	users := &fakeUserRepo{users: map[models.UserID]*models.User{
		custID:     {ID: custID, Name: "Asha", Role: models.RoleUser},
		provUserID: {ID: provUserID, Name: "Ravi", Role: models.RoleProvider},
	}}
	hub := &fakePublisher{}
	return &DefaultChatService{Chats: chats, Users: users, Hub: hub}, chats, hub
}

func TestSendMessage(t *testing.T) {
	svc, chats, hub := newService()

	msg, err := svc.SendMessage(context.Background(), custID, chatID, "When can you come?")
	assert.NoError(t, err)
	assert.Equal(t, chatID, msg.ChatID)
	assert.Equal(t, custID, msg.SenderID)
	assert.Equal(t, "Asha", msg.SenderName)
	assert.Equal(t, models.RoleUser, msg.SenderRole)

	assert.Len(t, chats.messages, 1)
	assert.Len(t, hub.events, 1)
	assert.Equal(t, chatID, hub.events[0].room)
	assert.Equal(t, "newMessage", hub.events[0].event)
}

func TestSendMessageBothParticipants(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, custID, chatID, "hello")
	assert.NoError(t, err)
	_, err = svc.SendMessage(ctx, provUserID, chatID, "hi, on my way")
	assert.NoError(t, err)

	msgs, err := svc.GetMessages(ctx, custID, chatID)
	assert.NoError(t, err)
	assert.Len(t, msgs, 2)
	assert.Equal(t, "hello", msgs[0].Text)
	assert.Equal(t, "hi, on my way", msgs[1].Text)
}

func TestSendMessageRejectsOutsider(t *testing.T) {
	svc, chats, hub := newService()

	_, err := svc.SendMessage(context.Background(), strangerID, chatID, "let me in")
	assert.ErrorIs(t, err, errNotParticipant)
	assert.Empty(t, chats.messages)
	assert.Empty(t, hub.events)
}

func TestSendMessageEmptyText(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.SendMessage(context.Background(), custID, chatID, "   ")
	var verr utils.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestGetMessagesUnknownChat(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.GetMessages(context.Background(), custID, "missing")
	var nferr utils.NotFoundError
	assert.ErrorAs(t, err, &nferr)
}

func TestGetMessagesRejectsOutsider(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.GetMessages(context.Background(), strangerID, chatID)
	assert.ErrorIs(t, err, errNotParticipant)
}
