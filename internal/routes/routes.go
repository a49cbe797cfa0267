package routes

import (
	"net/http"

	"github.com/adsc-atmiya/website/internal/app"
	"github.com/adsc-atmiya/website/internal/handler"
	"github.com/adsc-atmiya/website/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	pages := handler.NewPagesHandler(app.Cfg.AppName)
	newsletter := handler.NewNewsletterHandler(app.NewsletterService)
	health := handler.NewHealthHandler(app.Cfg, app.NewsletterService)

	// Middleware factories
	rateLimited := middleware.RateLimit(app.RateLimiter)
	adminOnly := middleware.RequireSecret(app.Cfg.NewsletterSecret)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /{$}", pages.HomePage)

	// Newsletter: subscribe is the only abuse-prone public write, so it is
	// the only rate-limited route
	mux.HandleFunc("POST /newsletter", rateLimited(newsletter.Subscribe))
	mux.HandleFunc("DELETE /newsletter", newsletter.Unsubscribe)
	mux.HandleFunc("GET /newsletter", newsletter.UnsubscribePage)

	// ============================================================================
	// ADMIN ROUTES (shared-secret bearer token)
	// ============================================================================

	mux.HandleFunc("GET /newsletter/subscribers", adminOnly(newsletter.Subscribers))
	mux.HandleFunc("GET /newsletter/send-event", adminOnly(newsletter.ListEvents))
	mux.HandleFunc("POST /newsletter/send-event", adminOnly(newsletter.SendEvent))
	mux.HandleFunc("POST /newsletter/broadcast", adminOnly(newsletter.Broadcast))
	mux.HandleFunc("GET /newsletter/health", adminOnly(health.Health))

	// Admin console (authenticates client-side with the same secret)
	mux.HandleFunc("GET /admin/send-event", pages.AdminSendEventPage)

	// ============================================================================
	// FALLBACK
	// ============================================================================

	mux.HandleFunc("/{path...}", pages.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.SecurityHeaders,
		middleware.RequestLogging,
	)

	return handler
}
