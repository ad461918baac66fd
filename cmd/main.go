package main

import (
	"context"
	"time"

	"github.com/JuanPUwu/RecordBlock-sub001/config"
	"github.com/JuanPUwu/RecordBlock-sub001/db"
	"github.com/JuanPUwu/RecordBlock-sub001/internal/auth/handler"
	repo "github.com/JuanPUwu/RecordBlock-sub001/internal/auth/repository/postgres"
	"github.com/JuanPUwu/RecordBlock-sub001/internal/auth/service"
	"github.com/JuanPUwu/RecordBlock-sub001/internal/mailer"
	"github.com/JuanPUwu/RecordBlock-sub001/internal/obs"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := obs.NewLogger(obs.LogConfig{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
		App:    "recordblock-auth",
		Env:    cfg.Env,
	})
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	dbPool, err := db.NewPostgresPool(context.Background(), cfg.DBURL)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer dbPool.Close()

	accountRepo := repo.NewPostgresRepository(dbPool)

	tokenService := service.NewTokenService(
		cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.RecoveryTokenSecret,
		cfg.AccessExpiryMin, cfg.RefreshExpiryMin, cfg.RecoveryExpiryMin)
	blacklistService := service.NewBlacklistService(accountRepo)
	recoveryService := service.NewRecoveryService(accountRepo, tokenService, cfg.RecoveryExpiryMin)
	notifier := mailer.New(mailer.Config{
		Addr:     cfg.SMTPAddr,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	}, log)
	userService := service.NewUserService(accountRepo, tokenService, blacklistService,
		recoveryService, notifier, cfg.AppBaseURL, log)

	authHandler := handler.NewAuthHandler(userService, handler.Options{
		RefreshTTL: time.Duration(cfg.RefreshExpiryMin) * time.Minute,
		Production: cfg.IsProduction(),
		Logger:     log,
	})

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, tokenService, blacklistService, userService)

	log.Info("listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
