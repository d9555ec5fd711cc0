package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"github.com/ilyachernuha/real-time-chat/config"
	"github.com/ilyachernuha/real-time-chat/db"
	"github.com/ilyachernuha/real-time-chat/internal/auth/handler"
	"github.com/ilyachernuha/real-time-chat/internal/notifier"

	repo "github.com/ilyachernuha/real-time-chat/internal/auth/repository/postgres"
	"github.com/ilyachernuha/real-time-chat/internal/auth/service"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := db.Migrate(cfg.DBURL); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer dbPool.Close()

	repository := repo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.AccessExpiryMin)
	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	mailer := notifier.NewLogNotifier()

	sessionService := service.NewSessionService(repository, tokenService)
	userService := service.NewUserService(repository, sessionService, hasher)
	applicationService := service.NewApplicationService(
		repository, repository, repository,
		tokenService, hasher, mailer,
		cfg.ApplicationTTL, cfg.RollbackTTL,
	)

	sweeper := service.NewSweeper(repository,
		cfg.ApplicationTTL, cfg.RollbackTTL,
		cfg.ApplicationSweepInterval, cfg.RollbackSweepInterval)
	go sweeper.Run(ctx)

	authHandler := handler.NewAuthHandler(userService, sessionService, applicationService, tokenService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	go func() {
		<-ctx.Done()
		if err := app.Shutdown(); err != nil {
			log.Printf("warn: shutdown: %v", err)
		}
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
