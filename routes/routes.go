package routes

import (
	"net/http"
	"time"

	"github.com/Codekiller51/brandconnect-server/handlers"
	"github.com/Codekiller51/brandconnect-server/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers client account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.Register)
		api.POST("/login", hb.User.Login)

		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.User.Me)
		api.PUT("/me", hb.User.Update)
		api.PUT("/me/fcm-token", hb.User.UpdateFCMToken)
		api.POST("/logout", hb.User.Logout)
		api.DELETE("/me", hb.User.Delete)
	}
}

// RegisterCreativeRoutes registers creative account and public profile
// endpoints.
func RegisterCreativeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/creatives")
	{
		api.POST("/register", hb.Creative.Register)
		api.POST("/login", hb.Creative.Login)

		// Public browse surface.
		api.GET("", hb.Creative.Search)
		api.GET("/:id", hb.Creative.GetPublicProfile)
		api.GET("/:id/slots", hb.Slots.Get)
		api.GET("/:id/slots/stream", hb.Slots.Stream)
		api.GET("/:id/reviews", hb.Review.ListForCreative)

		// Creative self-management.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthCreativeMiddleware(hb.CreativeRepo))
		protected.GET("/me/profile", hb.Creative.Me)
		protected.PUT("/me/profile", hb.Creative.Update)
		protected.PUT("/me/fcm-token", hb.Creative.UpdateFCMToken)
		protected.POST("/me/logout", hb.Creative.Logout)
		protected.GET("/me/availability", hb.Availability.GetMine)
		protected.PUT("/me/availability", hb.Availability.SetMine)
		protected.POST("/me/services", hb.Creative.UpsertService)
		protected.DELETE("/me/services/:serviceId", hb.Creative.RemoveService)
		protected.POST("/me/portfolio", hb.Creative.UploadPortfolioItem)
		protected.DELETE("/me/portfolio/:itemId", hb.Creative.RemovePortfolioItem)
	}
}

// RegisterBookingRoutes sets up the booking lifecycle endpoints. Creation and
// reviews are client actions; status changes are open to both sides and
// checked in the service.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	clientGroup := r.Group("/api/bookings")
	{
		clientGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		clientGroup.POST("", hb.Booking.Create)
		clientGroup.GET("", hb.Booking.ListMine)
		clientGroup.GET("/:id", hb.Booking.GetByID)
		clientGroup.PATCH("/:id/status", hb.Booking.UpdateStatus)
		clientGroup.POST("/reviews", hb.Review.Create)
	}

	creativeGroup := r.Group("/api/creative/bookings")
	{
		creativeGroup.Use(middleware.JWTAuthCreativeMiddleware(hb.CreativeRepo))
		creativeGroup.GET("", hb.Booking.ListMine)
		creativeGroup.GET("/:id", hb.Booking.GetByID)
		creativeGroup.PATCH("/:id/status", hb.Booking.UpdateStatus)
		creativeGroup.POST("/reviews/:id/reply", hb.Review.Reply)
	}
}

// RegisterChatRoutes sets up messaging for both sides.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	clientGroup := r.Group("/api/chat")
	{
		clientGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		clientGroup.POST("/conversations", hb.Chat.Start)
		clientGroup.GET("/conversations", hb.Chat.ListConversations)
		clientGroup.GET("/conversations/:id/messages", hb.Chat.ListMessages)
		clientGroup.POST("/conversations/:id/messages", hb.Chat.SendMessage)
	}

	creativeGroup := r.Group("/api/creative/chat")
	{
		creativeGroup.Use(middleware.JWTAuthCreativeMiddleware(hb.CreativeRepo))
		creativeGroup.GET("/conversations", hb.Chat.ListConversations)
		creativeGroup.GET("/conversations/:id/messages", hb.Chat.ListMessages)
		creativeGroup.POST("/conversations/:id/messages", hb.Chat.SendMessage)
	}
}

// RegisterNotificationRoutes sets up the in-app feed for both sides.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	clientGroup := r.Group("/api/notifications")
	{
		clientGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		clientGroup.GET("", hb.Notification.List)
		clientGroup.GET("/unread-count", hb.Notification.UnreadCount)
		clientGroup.PATCH("/:id/read", hb.Notification.MarkRead)
		clientGroup.PATCH("/read-all", hb.Notification.MarkAllRead)
	}

	creativeGroup := r.Group("/api/creative/notifications")
	{
		creativeGroup.Use(middleware.JWTAuthCreativeMiddleware(hb.CreativeRepo))
		creativeGroup.GET("", hb.Notification.List)
		creativeGroup.GET("/unread-count", hb.Notification.UnreadCount)
		creativeGroup.PATCH("/:id/read", hb.Notification.MarkRead)
		creativeGroup.PATCH("/read-all", hb.Notification.MarkAllRead)
	}
}

// RegisterAdminRoutes sets up endpoints for platform operators.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.GET("/creatives/pending", hb.Admin.PendingCreatives)
		adminGroup.PATCH("/creatives/:id/status", hb.Admin.SetCreativeStatus)
		adminGroup.PATCH("/creatives/:id/suspend", hb.Admin.SetCreativeSuspended)
		adminGroup.PATCH("/users/:id/suspend", hb.Admin.SetUserSuspended)
		adminGroup.PATCH("/reviews/:id/hidden", hb.Admin.SetReviewHidden)
		adminGroup.GET("/stats", hb.Admin.Stats)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Brand Connect API"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterCreativeRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
