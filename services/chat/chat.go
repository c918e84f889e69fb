package chat

import (
	"context"
	"fmt"
	"strings"

	chatRepo "fixify/database/repository/chat"
	userRepo "fixify/database/repository/user"
	"fixify/models"
	"fixify/realtime"
	"fixify/utils"

	"github.com/google/uuid"
)

// newMessage is the event name pushed to chat rooms.
const eventNewMessage = "newMessage"

var errNotParticipant = utils.AuthorizationError{Msg: "you are not part of this chat"}

// Service reads and appends chat messages. Chats themselves are opened only
// by the booking engine when a booking is accepted.
type Service interface {
	GetMessages(ctx context.Context, callerID models.UserID, chatID string) ([]models.Message, error)
	SendMessage(ctx context.Context, callerID models.UserID, chatID, text string) (*models.Message, error)
}

// DefaultChatService implements Service.
type DefaultChatService struct {
	Chats chatRepo.ChatRepository
	Users userRepo.UserRepository
	Hub   realtime.Publisher
}

// GetMessages returns a chat's messages, oldest first, to a participant.
func (s *DefaultChatService) GetMessages(ctx context.Context, callerID models.UserID, chatID string) ([]models.Message, error) {
	chat, err := s.requireParticipant(callerID, chatID)
	if err != nil {
		return nil, err
	}
	return s.Chats.ListMessages(chat.ID)
}

// SendMessage appends a message and broadcasts it to the chat room. The
// persisted record is authoritative; the broadcast reaches whoever has the
// conversation open.
func (s *DefaultChatService) SendMessage(ctx context.Context, callerID models.UserID, chatID, text string) (*models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, utils.ValidationError{Msg: "message text is required"}
	}

	chat, err := s.requireParticipant(callerID, chatID)
	if err != nil {
		return nil, err
	}

	sender, err := s.Users.GetByID(callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve sender %s: %w", callerID, err)
	}
	if sender == nil {
		return nil, utils.NotFoundError{Resource: "user"}
	}

	msg := &models.Message{
		ID:         uuid.New().String(),
		ChatID:     chat.ID,
		SenderID:   sender.ID,
		SenderName: sender.Name,
		SenderRole: sender.Role,
		Text:       text,
	}
	if err := s.Chats.CreateMessage(msg); err != nil {
		return nil, fmt.Errorf("failed to persist message: %w", err)
	}

	s.Hub.Publish(chat.ID, eventNewMessage, msg)
	return msg, nil
}

// requireParticipant loads the chat and checks the caller is its customer or
// its provider's owning user. A missing chat and a foreign caller are
// distinct failures.
func (s *DefaultChatService) requireParticipant(callerID models.UserID, chatID string) (*models.Chat, error) {
	chat, err := s.Chats.GetChatByID(chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chat %s: %w", chatID, err)
	}
	if chat == nil {
		return nil, utils.NotFoundError{Resource: "chat"}
	}
	if callerID != chat.UserID && callerID != chat.ProviderUserID {
		return nil, errNotParticipant
	}
	return chat, nil
}
