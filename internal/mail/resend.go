package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

type resendSender struct {
	client *resend.Client
	from   string
}

func newResendSender(apiKey, from string) *resendSender {
	var client *resend.Client
	if apiKey != "" {
		client = resend.NewClient(apiKey)
	}

	return &resendSender{
		client: client,
		from:   from,
	}
}

func (s *resendSender) Send(ctx context.Context, to []string, subject, html string) error {
	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      to,
		Subject: subject,
		Html:    html,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err == nil {
		slog.Info("email sent", "provider", "resend", "recipients", len(to))
	}
	return err
}
