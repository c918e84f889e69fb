package routes

import (
	"net/http"
	"time"

	"fixify/config"
	"fixify/handlers"
	"fixify/middleware"
	"fixify/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and login.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)
	}
}

// RegisterBookingRoutes sets up the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", middleware.RequireRole(models.RoleUser), hb.Bookings.CreateBookingHandler)
		api.GET("/user", middleware.RequireRole(models.RoleUser), hb.Bookings.ListUserBookingsHandler)
		api.GET("/provider", middleware.RequireRole(models.RoleProvider), hb.Bookings.ListProviderBookingsHandler)
		api.PUT("/:id", middleware.RequireRole(models.RoleProvider), hb.Bookings.UpdateStatusHandler)
	}
}

// RegisterChatRoutes sets up chat history and message sending.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chats")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/:chatId", hb.Chats.GetMessagesHandler)
		api.POST("/message", hb.Chats.SendMessageHandler)
	}
}

// RegisterNotificationRoutes sets up the notification inbox endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.Notifications.ListHandler)
		api.PUT("/:id/read", hb.Notifications.MarkReadHandler)
		api.PUT("/:id", hb.Notifications.MarkAllReadAliasHandler)
	}
}

// RegisterProviderRoutes registers provider profile, catalogue, and the
// public search endpoint.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		// Public search for customers browsing providers.
		api.GET("/search", hb.Providers.SearchHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("/profile", hb.Providers.CreateProfileHandler)
		protected.GET("/me", middleware.RequireRole(models.RoleProvider), hb.Providers.GetMyProfileHandler)
		protected.PUT("/me", middleware.RequireRole(models.RoleProvider), hb.Providers.UpdateProfileHandler)
		protected.POST("/services", middleware.RequireRole(models.RoleProvider), hb.Providers.AddServiceHandler)
		protected.PATCH("/services/price", middleware.RequireRole(models.RoleProvider), hb.Providers.UpdateServicePriceHandler)
		protected.DELETE("/services/:serviceId", middleware.RequireRole(models.RoleProvider), hb.Providers.RemoveServiceHandler)
		protected.PATCH("/availability", middleware.RequireRole(models.RoleProvider), hb.Providers.ToggleAvailabilityHandler)
	}
}

// RegisterReviewRoutes sets up review submission and the public listing of a
// provider owner's reviews.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.GET("/provider/:userId", hb.Reviews.ListProviderReviewsHandler)

		api.POST("", middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleUser), hb.Reviews.AddReviewHandler)
	}
}

// RegisterReportRoutes sets up report filing.
func RegisterReportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reports")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.Reports.CreateReportHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for moderation.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.GET("/users", hb.Admin.ListUsersHandler)
		adminGroup.GET("/providers", hb.Admin.ListProvidersHandler)
		adminGroup.GET("/bookings", hb.Admin.ListBookingsHandler)
		adminGroup.PATCH("/users/:id/blocked", hb.Admin.SetUserBlockedHandler)
		adminGroup.PATCH("/providers/:id/blocked", hb.Admin.SetProviderBlockedHandler)
		adminGroup.PATCH("/providers/:id/services/:serviceId/approve", hb.Admin.ApproveServiceHandler)
		adminGroup.PATCH("/providers/:id/verify", hb.Admin.VerifyProviderHandler)
		adminGroup.GET("/reports", hb.Reports.ListReportsHandler)
		adminGroup.PATCH("/reports/:id/resolve", hb.Reports.ResolveReportHandler)
	}
}

// RegisterRealtimeRoute exposes the websocket endpoint.
func RegisterRealtimeRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/ws", middleware.JWTAuthMiddleware(hb.UserRepo), hb.Hub.ServeWS)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Fixify"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.ClientURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterReportRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterRealtimeRoute(r, hb)
	RegisterHealthRoute(r)
}
