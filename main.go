// File: fixify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fixify/config"
	"fixify/database"
	bookingRepoPkg "fixify/database/repository/booking"
	chatRepoPkg "fixify/database/repository/chat"
	notificationRepoPkg "fixify/database/repository/notification"
	providerRepoPkg "fixify/database/repository/provider"
	reportRepoPkg "fixify/database/repository/report"
	reviewRepoPkg "fixify/database/repository/review"
	userRepoPkg "fixify/database/repository/user"
	"fixify/handlers"
	"fixify/realtime"
	"fixify/routes"
	"fixify/services/admin"
	"fixify/services/booking"
	"fixify/services/chat"
	"fixify/services/notification"
	"fixify/services/provider"
	"fixify/services/report"
	"fixify/services/review"
	"fixify/services/user"
	"fixify/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	provRepo := providerRepoPkg.NewMongoProviderRepo()
	bookRepo := bookingRepoPkg.NewMongoBookingRepo()
	chatRepo := chatRepoPkg.NewMongoChatRepo()
	notifRepo := notificationRepoPkg.NewMongoNotificationRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	reportRepo := reportRepoPkg.NewMongoReportRepo()

	// realtime hub.
	hub := realtime.NewHub()

	// services.
	notifier := &notification.DefaultDispatcher{
		Repo: notifRepo,
		Hub:  hub,
	}
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	providerService := &provider.DefaultProviderService{
		Repo:  provRepo,
		Users: userRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Bookings:  bookRepo,
		Providers: provRepo,
		Users:     userRepo,
		Chats:     chatRepo,
		Notifier:  notifier,
	}
	chatService := &chat.DefaultChatService{
		Chats: chatRepo,
		Users: userRepo,
		Hub:   hub,
	}
	reviewService := &review.DefaultReviewService{
		Reviews:   reviewRepo,
		Bookings:  bookRepo,
		Providers: provRepo,
		Users:     userRepo,
	}
	reportService := &report.DefaultReportService{
		Reports:   reportRepo,
		Bookings:  bookRepo,
		Providers: provRepo,
	}
	adminService := &admin.DefaultAdminService{
		Users:     userRepo,
		Providers: provRepo,
		Bookings:  bookRepo,
		Notifier:  notifier,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:          handlers.NewAuthHandler(userService),
		Bookings:      handlers.NewBookingHandler(bookingService),
		Chats:         handlers.NewChatHandler(chatService),
		Notifications: handlers.NewNotificationHandler(notifier),
		Providers:     handlers.NewProviderHandler(providerService),
		Reviews:       handlers.NewReviewHandler(reviewService),
		Reports:       handlers.NewReportHandler(reportService),
		Admin:         handlers.NewAdminHandler(adminService),

		UserRepo: userRepo,
		Hub:      hub,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
