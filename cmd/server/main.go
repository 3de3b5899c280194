package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"interviewai/server/internal/config"
	"interviewai/server/internal/handlers"
	"interviewai/server/internal/llm"
	_ "interviewai/server/internal/llm/gemini"
	"interviewai/server/internal/meeting"
	"interviewai/server/internal/metrics"
	"interviewai/server/internal/models"
	"interviewai/server/internal/repositories"
	"interviewai/server/internal/routers"
	"interviewai/server/internal/services"
)

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.InterviewSession{},
		&models.UserProgress{},
		&models.ScheduledInterview{},
		&models.DailyChallenge{},
	); err != nil {
		return nil, err
	}
	return db, nil
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	logger.Info("Configuration loaded", zap.String("provider", cfg.Provider))

	db, err := initDatabase(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}

	aiProvider, err := llm.NewProvider(cfg.Provider)
	if err != nil {
		logger.Fatal("Failed to initialize AI provider", zap.Error(err))
	}

	userRepo := &repositories.UserRepository{DB: db}
	sessionRepo := &repositories.SessionRepository{DB: db}
	progressRepo := &repositories.ProgressRepository{DB: db}
	scheduleRepo := &repositories.ScheduleRepository{DB: db}
	challengeRepo := &repositories.ChallengeRepository{DB: db}

	meetingClient := meeting.NewGoogleClient(cfg.Meeting)
	mailer := services.NewSMTPMailer(cfg.SMTP)

	// The notification pipeline only runs when Redis is configured; the
	// scheduling path works without it.
	notifierCtx, stopNotifier := context.WithCancel(context.Background())
	defer stopNotifier()
	var publisher handlers.EventPublisher
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		publisher = services.NewRedisPublisher(rdb)
		notifier := services.NewScheduleNotifier(rdb, mailer, logger)
		go notifier.Run(notifierCtx)
	} else {
		logger.Warn("REDIS_ADDR not set, schedule notifications disabled")
	}

	authHandler := handlers.NewAuthHandler(userRepo, progressRepo, cfg.JWTSecret, logger)
	interviewHandler := handlers.NewInterviewHandler(sessionRepo, aiProvider, cfg.OracleTimeout, logger)
	scheduleHandler := handlers.NewScheduleHandler(scheduleRepo, userRepo, meetingClient, publisher, logger)
	challengeHandler := handlers.NewChallengeHandler(challengeRepo, logger)
	profileHandler := handlers.NewProfileHandler(userRepo, progressRepo, logger)
	healthHandler := handlers.NewHealthHandler(db, aiProvider)

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	router.Use(chimiddleware.RequestID, chimiddleware.RealIP, chimiddleware.Logger, chimiddleware.Recoverer, chimiddleware.Timeout(60*time.Second))
	router.Use(metrics.Middleware())

	routers.HealthRoutes(router, healthHandler)
	routers.AuthRoutes(router, authHandler)
	routers.InterviewRoutes(router, cfg.JWTSecret, interviewHandler, scheduleHandler)
	routers.UserRoutes(router, cfg.JWTSecret, profileHandler, challengeHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("InterviewAI server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("InterviewAI server shutting down...")
	stopNotifier()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("InterviewAI server exited")
}
