package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"diagnotech/config"
	"diagnotech/cron"
	"diagnotech/database"
	diagnosisRepoPkg "diagnotech/database/repository/diagnosis"
	doctorRepoPkg "diagnotech/database/repository/doctor"
	reviewRepoPkg "diagnotech/database/repository/review"
	userRepoPkg "diagnotech/database/repository/user"
	"diagnotech/handlers"
	"diagnotech/middleware"
	"diagnotech/routes"
	"diagnotech/services/booking"
	"diagnotech/services/diagnosis"
	"diagnotech/services/doctor"
	"diagnotech/services/intelligence"
	"diagnotech/services/user"
	"diagnotech/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	mailer := utils.NewMailgunMailer()

	var mediaStorage utils.MediaStorage
	if storage, err := utils.Cloudinary(); err != nil {
		logger.Warn("main: media storage disabled", zap.Error(err))
	} else {
		mediaStorage = storage
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	users := userRepoPkg.NewMongoUserRepo()
	doctors := doctorRepoPkg.NewMongoDoctorRepo()
	reviews := reviewRepoPkg.NewMongoReviewRepo()
	diagnoses := diagnosisRepoPkg.NewMongoDiagnosisRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo:   users,
		Mailer: mailer,
	}
	doctorService := &doctor.DefaultDoctorService{
		Repo:  doctors,
		Users: users,
	}
	slotRegistry := &booking.DefaultSlotRegistry{
		Repo:  doctors,
		Users: users,
	}
	reminderScheduler := cron.NewAsynqScheduler(doctors, users)
	bookingEngine := &booking.DefaultBookingEngine{
		Repo:      doctors,
		Reminders: reminderScheduler,
	}
	reviewService := &booking.DefaultReviewService{
		Repo:    reviews,
		Doctors: doctors,
	}
	diagnosisService := &diagnosis.DefaultDiagnosisService{
		Client: diagnosis.NewPredictionClient(),
		Repo:   diagnoses,
	}

	var chatService intelligence.ChatService
	if config.AppConfig.GeminiAPIKey != "" {
		geminiClient, err := intelligence.NewGeminiClient(config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Warn("main: chat assistant disabled", zap.Error(err))
		} else {
			ctxStore := intelligence.NewRedisContextStore(utils.GetCacheClient(), 30*time.Minute)
			chatService = &intelligence.DefaultChatService{
				Client:   geminiClient,
				CtxStore: ctxStore,
			}
		}
	}

	// Background workers.
	cron.InitReminderWorker(mailer)
	utils.StartHealthMonitor(database.MongoClient)

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(handlers.BundleDeps{
		Users:        users,
		Doctors:      doctors,
		Reviews:      reviews,
		Diagnoses:    diagnoses,
		UserSvc:      userService,
		DoctorSvc:    doctorService,
		Registry:     slotRegistry,
		BookingSvc:   bookingEngine,
		ReviewSvc:    reviewService,
		DiagnosisSvc: diagnosisService,
		ChatSvc:      chatService,
		Media:        mediaStorage,
	})
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
