package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lostpaws/petfinder-system/internal/api"
	"github.com/lostpaws/petfinder-system/internal/core/ports"
	"github.com/lostpaws/petfinder-system/internal/infrastructure/config"
	mongodb "github.com/lostpaws/petfinder-system/internal/infrastructure/db/mongo"
	redisdb "github.com/lostpaws/petfinder-system/internal/infrastructure/db/redis"
	"github.com/lostpaws/petfinder-system/internal/infrastructure/mail"
	"github.com/lostpaws/petfinder-system/internal/infrastructure/queue"
	"github.com/lostpaws/petfinder-system/pkg/logger"

	_ "github.com/lostpaws/petfinder-system/docs" // swagger spec
)

// @title Lost & Found Pet Classifieds API
// @version 1.0
// @description Backend for a lost-and-found pet classifieds service: email-verified registration, cookie-based JWT sessions, and an ad catalog.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger may not be configured yet; write to stderr and exit.
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := mongodb.NewAdRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ad indexes failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	var sender ports.Mailer
	if cfg.SMTP.Host != "" {
		sender = mail.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From, cfg.SMTP.BaseURL)
	} else {
		log.Warn().Msg("SMTP_HOST not set, verification mail goes to the log")
		sender = mail.NewLogMailer(cfg.SMTP.BaseURL, log)
	}

	dispatcher := queue.NewDispatcher(0, sender, redisdb.NewMailThrottle(rdb), log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, dispatcher, cfg, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("server stopped")
}
