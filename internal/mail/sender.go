package mail

import (
	"context"
	"log/slog"
)

// Sender is the narrow transport interface the newsletter service sends
// through. to may hold one recipient or a whole batch; the batch goes out
// on a single provider call.
type Sender interface {
	Send(ctx context.Context, to []string, subject, html string) error
}

// Config selects and configures the mail transport.
type Config struct {
	Provider     string // "resend" or "ses"
	From         string
	ResendAPIKey string
	SESRegion    string
	SESAccessKey string
	SESSecretKey string
	IsDev        bool
}

// New builds a Sender from config. Development mode always returns the log
// sender so local runs never hit a real provider.
func New(cfg Config) Sender {
	if cfg.IsDev {
		return &logSender{}
	}

	switch cfg.Provider {
	case "resend":
		return newResendSender(cfg.ResendAPIKey, cfg.From)
	case "ses":
		return newSESSender(cfg.SESRegion, cfg.SESAccessKey, cfg.SESSecretKey, cfg.From)
	default:
		slog.Warn("unknown mail provider, falling back to log sender", "provider", cfg.Provider)
		return &logSender{}
	}
}

// logSender logs instead of sending. Used in development and as the
// fallback for misconfigured providers.
type logSender struct{}

func (s *logSender) Send(ctx context.Context, to []string, subject, html string) error {
	slog.Info("email sent (log mode)", "to", to, "subject", subject, "html_bytes", len(html))
	return nil
}
