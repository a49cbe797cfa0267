package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/adsc-atmiya/website/internal/config"
	"github.com/adsc-atmiya/website/internal/service"
)

type healthHandler struct {
	cfg               *config.Config
	newsletterService *service.NewsletterService
}

func NewHealthHandler(cfg *config.Config, newsletterService *service.NewsletterService) *healthHandler {
	return &healthHandler{
		cfg:               cfg,
		newsletterService: newsletterService,
	}
}

// Health handles GET /newsletter/health (admin). It reports which config
// pieces are present and whether the store answers, without echoing any
// secret values.
func (h *healthHandler) Health(w http.ResponseWriter, r *http.Request) {
	configured := map[string]bool{
		"mail_provider":       h.cfg.MailProvider != "",
		"resend_api_key":      h.cfg.ResendAPIKey != "",
		"ses_credentials":     h.cfg.SESRegion != "" && h.cfg.SESAccessKey != "" && h.cfg.SESSecretKey != "",
		"newsletter_secret":   h.cfg.NewsletterSecret != "",
		"database_connection": h.cfg.DBConnection != "",
	}

	payload := map[string]any{
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"configured": configured,
	}

	count, err := h.newsletterService.Count()
	if err != nil {
		slog.Error("health check store read failed", "error", err)
		payload["store"] = "error"
	} else {
		payload["store"] = "ok"
		payload["subscriberCount"] = count
	}

	respondJSON(w, http.StatusOK, payload)
}
