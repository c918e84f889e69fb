package handlers

import (
	userRepo "fixify/database/repository/user"
	"fixify/realtime"
)

// HandlerBundle groups the handlers and the dependencies route registration
// needs alongside them.
type HandlerBundle struct {
	Auth          *AuthHandler
	Bookings      *BookingHandler
	Chats         *ChatHandler
	Notifications *NotificationHandler
	Providers     *ProviderHandler
	Reviews       *ReviewHandler
	Reports       *ReportHandler
	Admin         *AdminHandler

	UserRepo userRepo.UserRepository
	Hub      *realtime.Hub
}
