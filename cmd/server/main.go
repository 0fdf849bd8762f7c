package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/talentlink/freelance-platform/internal/api"
	"github.com/talentlink/freelance-platform/internal/core/ports"
	"github.com/talentlink/freelance-platform/internal/core/service"
	"github.com/talentlink/freelance-platform/internal/infrastructure/config"
	"github.com/talentlink/freelance-platform/internal/infrastructure/db/postgres"
	redisdb "github.com/talentlink/freelance-platform/internal/infrastructure/db/redis"
	"github.com/talentlink/freelance-platform/internal/infrastructure/events"
	"github.com/talentlink/freelance-platform/internal/infrastructure/oauth"
	"github.com/talentlink/freelance-platform/internal/infrastructure/queue"
	"github.com/talentlink/freelance-platform/internal/infrastructure/search"
	"github.com/talentlink/freelance-platform/internal/infrastructure/ws"
	"github.com/talentlink/freelance-platform/pkg/logger"
)

const notificationWorkers = 8

func main() {
	// Local development convenience. Absence of a .env file is normal.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	// --- Postgres ---
	db, err := postgres.Open(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres")
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis")
	}
	defer rdb.Close()

	// --- Elasticsearch (optional: search degrades to plain listing) ---
	var jobIndex ports.JobIndex
	esClient, err := search.NewClient(search.Config{
		URL:      cfg.Elastic.URL,
		Username: cfg.Elastic.User,
		Password: cfg.Elastic.Password,
	})
	if err != nil {
		log.Warn().Err(err).Msg("elasticsearch unavailable, full-text search disabled")
	} else {
		jobIndex = search.NewJobIndex(esClient)
	}

	// --- Kafka ---
	producer := events.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	// --- WebSocket hub ---
	hub := ws.NewHub(log)

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)
	paymentRepo := postgres.NewPaymentRepository(db)
	contentRepo := postgres.NewContentRepository(db)
	qrStore := redisdb.NewQRStore(rdb)

	// --- Services ---
	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.RefreshSecret, 0, 0)
	authSvc := service.NewAuthService(userRepo, sessionRepo, tokens, log)
	qrSvc := service.NewQRService(qrStore, userRepo, authSvc)
	userSvc := service.NewUserService(userRepo)

	notificationSvc := service.NewNotificationService(notificationRepo, hub, producer, log)
	dispatcher := queue.NewDispatcher(notificationWorkers, notificationSvc, log)
	notificationSvc.AttachQueue(dispatcher)
	dispatcher.Start(ctx)

	aiSvc := service.NewAIService(applicationRepo, jobRepo, userRepo)
	jobSvc := service.NewJobService(jobRepo, jobIndex, producer, log)
	applicationSvc := service.NewApplicationService(applicationRepo, jobRepo, notificationSvc, aiSvc, producer, log)
	reviewSvc := service.NewReviewService(reviewRepo, userRepo, notificationSvc)
	messagingSvc := service.NewMessagingService(messageRepo, userRepo, hub, notificationSvc)
	paymentSvc := service.NewPaymentService(paymentRepo, notificationSvc, producer, log)
	contentSvc := service.NewContentService(contentRepo, log)
	adminSvc := service.NewAdminService(userRepo, sessionRepo, jobRepo, applicationRepo, paymentRepo, reviewRepo, contentRepo, notificationSvc, jobIndex)

	if err := contentSvc.Seed(ctx); err != nil {
		log.Fatal().Err(err).Msg("seed content")
	}

	oauthManager := oauth.NewManager(oauth.Config{
		BaseURL:            cfg.BaseURL,
		GoogleClientID:     cfg.OAuth.GoogleClientID,
		GoogleClientSecret: cfg.OAuth.GoogleClientSecret,
		GitHubClientID:     cfg.OAuth.GithubClientID,
		GitHubClientSecret: cfg.OAuth.GithubClientSecret,
	})

	e := api.NewRouter(api.Dependencies{
		Config:        cfg,
		Log:           log,
		DB:            db,
		Redis:         rdb,
		Hub:           hub,
		OAuth:         oauthManager,
		Auth:          authSvc,
		QR:            qrSvc,
		Users:         userSvc,
		Jobs:          jobSvc,
		Applications:  applicationSvc,
		Reviews:       reviewSvc,
		Messaging:     messagingSvc,
		Notifications: notificationSvc,
		Payments:      paymentSvc,
		AI:            aiSvc,
		Admin:         adminSvc,
		Content:       contentSvc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
		os.Exit(1)
	}
}
