package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	redislib "github.com/redis/go-redis/v9"
	mongolib "go.mongodb.org/mongo-driver/mongo"

	"github.com/collabhub/partner-directory/internal/api"
	"github.com/collabhub/partner-directory/internal/core/ports"
	"github.com/collabhub/partner-directory/internal/core/service"
	"github.com/collabhub/partner-directory/internal/infrastructure/config"
	mongodb "github.com/collabhub/partner-directory/internal/infrastructure/db/mongo"
	redisdb "github.com/collabhub/partner-directory/internal/infrastructure/db/redis"
	"github.com/collabhub/partner-directory/internal/infrastructure/mail"
	"github.com/collabhub/partner-directory/internal/infrastructure/memory"
	"github.com/collabhub/partner-directory/internal/infrastructure/queue"
	"github.com/collabhub/partner-directory/internal/infrastructure/remote"
	"github.com/collabhub/partner-directory/pkg/logger"
	"github.com/collabhub/partner-directory/pkg/token"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Backing stores ---
	var mongoDB *mongolib.Database
	if cfg.CatalogMode == "mongo" || cfg.AuthMode == "local" {
		client, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Timeout)
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()
		mongoDB = db
	}

	var redisClient *redislib.Client
	if cfg.Redis.Addr != "" {
		client, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, sessions held in memory")
		} else {
			redisClient = client
			defer client.Close()
		}
	}

	// --- Catalog ---
	var businessRepo ports.BusinessRepository
	switch cfg.CatalogMode {
	case "mongo":
		repo := mongodb.NewBusinessRepository(mongoDB)
		if err := repo.Seed(ctx, memory.DefaultCatalog()); err != nil {
			log.Warn().Err(err).Msg("catalog seed failed")
		}
		businessRepo = repo
	default:
		businessRepo = memory.NewBusinessRepository(memory.DefaultCatalog())
	}

	// --- Auth gateway ---
	var gateway ports.AuthGateway
	switch cfg.AuthMode {
	case "remote":
		gateway = remote.NewAuthClient(cfg.Auth.BaseURL, cfg.Auth.Timeout)
	default:
		gateway = service.NewLocalAuth(mongodb.NewAccountRepository(mongoDB), cfg.JWTSecret, cfg.SessionTTL)
	}

	// --- Session manager ---
	var sessionStore ports.SessionStore
	if redisClient != nil {
		sessionStore = redisdb.NewSessionStore(redisClient, cfg.SessionTTL)
	} else {
		sessionStore = memory.NewSessionStore()
	}
	sessions := service.NewSessionManager(sessionStore, gateway, token.NewJWTDecoder(), log)

	// --- Catalog service with optional remote backends ---
	var profiles ports.ProfileClient
	if cfg.Auth.BaseURL != "" {
		profiles = remote.NewProfileClient(cfg.Auth.BaseURL, cfg.Auth.Timeout)
	}
	var recommender ports.RecommendClient
	if cfg.Auth.RecommendBaseURL != "" {
		recommender = remote.NewRecommendClient(cfg.Auth.RecommendBaseURL, cfg.Auth.Timeout)
	}
	catalog := service.NewCatalogService(businessRepo, profiles, recommender, log)

	// --- Inquiry pipeline ---
	inquiries := service.NewInquiryService(businessRepo, mail.NewLogMailer(log), cfg.InquiryInbox, log)
	dispatcher := queue.NewDispatcher(cfg.InquiryWorkers, inquiries, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(api.Deps{
		Sessions:  sessions,
		Catalog:   catalog,
		Inquiries: dispatcher,
		JWTSecret: cfg.JWTSecret,
		Mongo:     mongoDB,
		Redis:     redisClient,
		Log:       log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("partner directory listening")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
