package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName     string
	AppEnv      string
	AppURL      string
	Port        string
	ContentPath string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Email
	EmailFrom    string
	MailProvider string // "resend" or "ses"
	ResendAPIKey string
	SESRegion    string
	SESAccessKey string
	SESSecretKey string

	// Newsletter admin API. No default on purpose: an unset secret must
	// surface as a server misconfiguration, never as open access.
	NewsletterSecret string

	// Subscribe rate limiting (per client IP)
	RateLimit  int
	RateWindow time.Duration

	// Broadcast dispatch
	BroadcastMode       string // "batch" or "individual"
	BroadcastBatchSize  int
	BroadcastBatchDelay time.Duration
	BroadcastSendDelay  time.Duration

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName:     envString("APP_NAME", "ADSC"),
		AppEnv:      envRequired("APP_ENV"), // Required: 'development' or 'production'
		AppURL:      envRequired("APP_URL"), // Required: base URL for email links
		Port:        envString("PORT", "8090"),
		ContentPath: envString("CONTENT_PATH", "content"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/adsc.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// Email
		EmailFrom:    envString("EMAIL_FROM", "newsletter@adsc-atmiya.in"),
		MailProvider: envString("MAIL_PROVIDER", "resend"),
		ResendAPIKey: envString("RESEND_API_KEY", ""),
		SESRegion:    envString("SES_REGION", ""),
		SESAccessKey: envString("SES_ACCESS_KEY", ""),
		SESSecretKey: envString("SES_SECRET_KEY", ""),

		// Newsletter
		NewsletterSecret: envString("NEWSLETTER_API_SECRET", ""),
		RateLimit:        envInt("RATE_LIMIT", 5),
		RateWindow:       envDuration("RATE_WINDOW", time.Minute),

		// Broadcast
		BroadcastMode:       envString("BROADCAST_MODE", "batch"),
		BroadcastBatchSize:  envInt("BROADCAST_BATCH_SIZE", 50),
		BroadcastBatchDelay: envDuration("BROADCAST_BATCH_DELAY", time.Second),
		BroadcastSendDelay:  envDuration("BROADCAST_SEND_DELAY", 500*time.Millisecond),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),
	}

	// Production: validate required services
	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures all required services are configured for production
// deployments. Development allows the mail transport to fall back to log mode
// for easier local testing.
func validateProduction(cfg *Config) {
	if cfg.NewsletterSecret == "" {
		slog.Warn("NEWSLETTER_API_SECRET is not set; admin newsletter endpoints will return a configuration error")
	}

	switch cfg.MailProvider {
	case "resend":
		if cfg.ResendAPIKey == "" {
			slog.Error("production deployment requires RESEND_API_KEY",
				"hint", "set APP_ENV=development for local testing with email log mode")
			os.Exit(1)
		}
	case "ses":
		if cfg.SESRegion == "" || cfg.SESAccessKey == "" || cfg.SESSecretKey == "" {
			slog.Error("production deployment requires SES_REGION, SES_ACCESS_KEY and SES_SECRET_KEY")
			os.Exit(1)
		}
	default:
		slog.Error("unknown MAIL_PROVIDER", "provider", cfg.MailProvider)
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
