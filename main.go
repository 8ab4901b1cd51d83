package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Codekiller51/brandconnect-server/config"
	"github.com/Codekiller51/brandconnect-server/cron"
	"github.com/Codekiller51/brandconnect-server/database"
	availabilityRepoPkg "github.com/Codekiller51/brandconnect-server/database/repository/availability"
	bookingRepoPkg "github.com/Codekiller51/brandconnect-server/database/repository/booking"
	creativeRepoPkg "github.com/Codekiller51/brandconnect-server/database/repository/creative"
	messageRepoPkg "github.com/Codekiller51/brandconnect-server/database/repository/message"
	notificationRepoPkg "github.com/Codekiller51/brandconnect-server/database/repository/notification"
	reviewRepoPkg "github.com/Codekiller51/brandconnect-server/database/repository/review"
	userRepoPkg "github.com/Codekiller51/brandconnect-server/database/repository/user"
	"github.com/Codekiller51/brandconnect-server/events"
	"github.com/Codekiller51/brandconnect-server/handlers"
	"github.com/Codekiller51/brandconnect-server/middleware"
	"github.com/Codekiller51/brandconnect-server/routes"
	"github.com/Codekiller51/brandconnect-server/services/admin"
	"github.com/Codekiller51/brandconnect-server/services/booking"
	"github.com/Codekiller51/brandconnect-server/services/chat"
	"github.com/Codekiller51/brandconnect-server/services/creative"
	"github.com/Codekiller51/brandconnect-server/services/notification"
	"github.com/Codekiller51/brandconnect-server/services/review"
	"github.com/Codekiller51/brandconnect-server/services/storage"
	"github.com/Codekiller51/brandconnect-server/services/user"
	"github.com/Codekiller51/brandconnect-server/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	storageService, err := storage.NewStorageService()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	creativeRepo := creativeRepoPkg.NewMongoCreativeRepo()
	availabilityRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	messageRepo := messageRepoPkg.NewMongoMessageRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()

	ensureIndexes(
		userRepo.EnsureIndexes,
		creativeRepo.EnsureIndexes,
		availabilityRepo.EnsureIndexes,
		bookingRepo.EnsureIndexes,
		reviewRepo.EnsureIndexes,
		messageRepo.EnsureIndexes,
		notificationRepo.EnsureIndexes,
	)

	// services.
	notificationService, err := notification.NewDefaultNotificationService(notificationRepo, userRepo, creativeRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	userService := user.NewDefaultUserService(userRepo)
	creativeService := creative.NewDefaultCreativeService(creativeRepo, availabilityRepo, storageService)
	bookingService := booking.NewDefaultBookingService(
		bookingRepo,
		creativeRepo,
		availabilityRepo,
		events.NewPublisher(),
		notificationService,
	)
	reviewService := review.NewDefaultReviewService(reviewRepo, bookingRepo, creativeRepo, notificationService)
	chatService := chat.NewDefaultChatService(messageRepo, notificationService)
	adminService := admin.NewDefaultAdminService(userRepo, creativeRepo, bookingRepo, reviewRepo, notificationService)

	// Background reminder worker.
	cron.InitReminderWorker(notificationService, bookingRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:     userRepo,
		CreativeRepo: creativeRepo,

		User:         handlers.NewUserHandler(userService),
		Creative:     handlers.NewCreativeHandler(creativeService),
		Availability: handlers.NewAvailabilityHandler(creativeService),
		Booking:      handlers.NewBookingHandler(bookingService),
		Slots:        handlers.NewSlotsHandler(bookingService),
		Review:       handlers.NewReviewHandler(reviewService),
		Chat:         handlers.NewChatHandler(chatService),
		Notification: handlers.NewNotificationHandler(notificationService),
		Admin:        handlers.NewAdminHandler(adminService, reviewService),
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

// ensureIndexes runs each index builder, logging rather than failing on error
// so a restricted database user does not block startup.
func ensureIndexes(builders ...func() error) {
	for _, build := range builders {
		if err := build(); err != nil {
			utils.GetLogger().Sugar().Warnf("main: index creation failed: %v", err)
		}
	}
}
