package chatRepo

import "fixify/models"

// ChatRepository defines methods for chat and message data access. Chats are
// never deleted; messages are append-only.
type ChatRepository interface {
	// CreateChat inserts a new chat document.
	CreateChat(chat *models.Chat) error
	// GetChatByID retrieves a chat by id. Returns (nil, nil) when absent.
	GetChatByID(id string) (*models.Chat, error)
	// CreateMessage appends a message to a chat.
	CreateMessage(msg *models.Message) error
	// ListMessages retrieves all messages of a chat, oldest first.
	ListMessages(chatID string) ([]models.Message, error)
}
