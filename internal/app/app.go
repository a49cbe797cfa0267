package app

import (
	"fmt"

	"github.com/adsc-atmiya/website/internal/catalog"
	"github.com/adsc-atmiya/website/internal/config"
	"github.com/adsc-atmiya/website/internal/db"
	"github.com/adsc-atmiya/website/internal/mail"
	"github.com/adsc-atmiya/website/internal/middleware"
	"github.com/adsc-atmiya/website/internal/repository"
	"github.com/adsc-atmiya/website/internal/service"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Cfg               *config.Config
	DB                *sqlx.DB
	NewsletterService *service.NewsletterService
	RateLimiter       *middleware.RateLimiter
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	subscriberRepository := repository.NewSubscriberRepository(database)

	// Collaborators
	sender := mail.New(mail.Config{
		Provider:     cfg.MailProvider,
		From:         fmt.Sprintf("%s Newsletter <%s>", cfg.AppName, cfg.EmailFrom),
		ResendAPIKey: cfg.ResendAPIKey,
		SESRegion:    cfg.SESRegion,
		SESAccessKey: cfg.SESAccessKey,
		SESSecretKey: cfg.SESSecretKey,
		IsDev:        cfg.IsDevelopment(),
	})
	eventCatalog := catalog.New(cfg.ContentPath)

	// Services
	newsletterService := service.NewNewsletterService(
		subscriberRepository,
		sender,
		eventCatalog,
		service.BroadcastOptions{
			Mode:       cfg.BroadcastMode,
			BatchSize:  cfg.BroadcastBatchSize,
			BatchDelay: cfg.BroadcastBatchDelay,
			SendDelay:  cfg.BroadcastSendDelay,
		},
		cfg.AppURL,
	)

	return &App{
		Cfg:               cfg,
		DB:                database,
		NewsletterService: newsletterService,
		RateLimiter:       middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow),
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
