// Command server runs the admin console API.
//
// @title        Admin Console API
// @version      1.0
// @description  Multi-tenant admin backend: authentication, user management, notifications and chat proxy.
// @BasePath     /api/v1
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adminhub/console-api/internal/api"
	"github.com/adminhub/console-api/internal/core/service"
	"github.com/adminhub/console-api/internal/infrastructure/bootstrap"
	"github.com/adminhub/console-api/internal/infrastructure/config"
	mongodb "github.com/adminhub/console-api/internal/infrastructure/db/mongo"
	redisdb "github.com/adminhub/console-api/internal/infrastructure/db/redis"
	"github.com/adminhub/console-api/internal/infrastructure/mail"
	"github.com/adminhub/console-api/internal/infrastructure/openai"
	"github.com/adminhub/console-api/internal/infrastructure/queue"
	"github.com/adminhub/console-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- External stores ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Repositories and stores ---
	userRepo := mongodb.NewUserRepository(db)
	settingsRepo := mongodb.NewSettingsRepository(db)
	emailLog := mongodb.NewEmailLog(db)

	sessions := redisdb.NewSessionStore(rdb)
	throttle := redisdb.NewThrottleStore(rdb)
	resets := redisdb.NewResetStore(rdb)

	// --- Services ---
	messageService := service.NewMessageService(settingsRepo, mail.NewSMTPMailer(), emailLog, log)

	outbox := queue.NewDispatcher(0, messageService, log)
	outbox.Start(ctx)

	authService := service.NewAuthService(userRepo, sessions, throttle, cfg.JWTSecret)
	userService := service.NewUserService(userRepo, resets, outbox, cfg.FrontendURL)
	chatService := openai.NewChatService(cfg.OpenAIAPIKey)

	// --- Startup initialisation (non-fatal) ---
	if err := bootstrap.Run(ctx, userRepo, userService, settingsRepo, cfg.Owner, log); err != nil {
		log.Warn().Err(err).Msg("bootstrap incomplete, continuing")
	}

	e := api.NewRouter(api.Deps{
		Mongo:              db,
		Redis:              rdb,
		Auth:               authService,
		Users:              userService,
		UserRepo:           userRepo,
		Throttle:           throttle,
		Messages:           messageService,
		Chat:               chatService,
		DocsUsername:       cfg.DocsUsername,
		DocsPassword:       cfg.DocsPassword,
		StaticBearerSecret: cfg.StaticBearerSecret,
		Log:                log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
