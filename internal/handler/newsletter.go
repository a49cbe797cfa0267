package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/adsc-atmiya/website/internal/catalog"
	"github.com/adsc-atmiya/website/internal/model"
	"github.com/adsc-atmiya/website/internal/service"
	"github.com/adsc-atmiya/website/internal/ui"
	"github.com/adsc-atmiya/website/internal/validation"
)

type newsletterHandler struct {
	newsletterService *service.NewsletterService
}

func NewNewsletterHandler(newsletterService *service.NewsletterService) *newsletterHandler {
	return &newsletterHandler{
		newsletterService: newsletterService,
	}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe handles POST /newsletter. Rate limiting is applied by
// middleware before this runs.
func (h *newsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request format.")
		return
	}

	err = h.newsletterService.Subscribe(r.Context(), req.Email)
	switch {
	case errors.Is(err, validation.ErrInvalidEmail):
		respondError(w, http.StatusBadRequest, "Please provide a valid email address.")
	case errors.Is(err, service.ErrDuplicateSubscriber):
		respondError(w, http.StatusConflict, "This email is already subscribed!")
	case err != nil:
		slog.Error("newsletter subscribe failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to subscribe. Please try again.")
	default:
		respondJSON(w, http.StatusCreated, map[string]string{"message": "Successfully subscribed to the newsletter!"})
	}
}

// Unsubscribe handles DELETE /newsletter, the JSON variant used by the
// unsubscribe form.
func (h *newsletterHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request format.")
		return
	}

	err = h.newsletterService.Unsubscribe(r.Context(), req.Email)
	switch {
	case errors.Is(err, validation.ErrInvalidEmail):
		respondError(w, http.StatusBadRequest, "Please provide a valid email address.")
	case err != nil:
		slog.Error("newsletter unsubscribe failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to unsubscribe. Please try again.")
	default:
		respondJSON(w, http.StatusOK, map[string]string{"message": "You have been unsubscribed from the newsletter."})
	}
}

// unsubscribePageData drives the four states of the confirmation page:
// missing-email (plain form), invalid-email, error, success.
type unsubscribePageData struct {
	State string
	Email string
}

// UnsubscribePage handles GET /newsletter?email=, the link-based variant
// embedded in email footers. Same semantics as Unsubscribe, rendered as HTML.
func (h *newsletterHandler) UnsubscribePage(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("email")
	if raw == "" {
		ui.Render(w, http.StatusOK, "unsubscribe", unsubscribePageData{State: "missing-email"})
		return
	}

	err := h.newsletterService.Unsubscribe(r.Context(), raw)
	switch {
	case errors.Is(err, validation.ErrInvalidEmail):
		ui.Render(w, http.StatusBadRequest, "unsubscribe", unsubscribePageData{State: "invalid-email"})
	case err != nil:
		slog.Error("newsletter unsubscribe failed", "error", err)
		ui.Render(w, http.StatusInternalServerError, "unsubscribe", unsubscribePageData{State: "error"})
	default:
		ui.Render(w, http.StatusOK, "unsubscribe", unsubscribePageData{State: "success", Email: raw})
	}
}

// Subscribers handles GET /newsletter/subscribers (admin).
func (h *newsletterHandler) Subscribers(w http.ResponseWriter, r *http.Request) {
	subs, count, err := h.newsletterService.Subscribers()
	if err != nil {
		slog.Error("failed to list subscribers", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch subscribers.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"count":       count,
		"subscribers": subs,
	})
}

// ListEvents handles GET /newsletter/send-event (admin): the catalog
// projected to its listing fields.
func (h *newsletterHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.newsletterService.Events()
	if err != nil {
		slog.Error("failed to list events", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch events.")
		return
	}

	summaries := make([]model.EventSummary, 0, len(events))
	for _, event := range events {
		summaries = append(summaries, event.Summary())
	}

	respondJSON(w, http.StatusOK, map[string]any{"events": summaries})
}

type sendEventRequest struct {
	EventID string `json:"eventId"`
	Limit   int    `json:"limit"`
}

// SendEvent handles POST /newsletter/send-event (admin): announce a catalog
// event to subscribers.
func (h *newsletterHandler) SendEvent(w http.ResponseWriter, r *http.Request) {
	var req sendEventRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request format.")
		return
	}

	if req.EventID == "" {
		respondError(w, http.StatusBadRequest, "Missing required field: eventId")
		return
	}

	result, err := h.newsletterService.BroadcastEvent(r.Context(), req.EventID, req.Limit)
	switch {
	case errors.Is(err, catalog.ErrEventNotFound):
		respondError(w, http.StatusNotFound, "Event with ID \""+req.EventID+"\" not found.")
	case err != nil:
		slog.Error("send event failed", "error", err, "event_id", req.EventID)
		respondError(w, http.StatusInternalServerError, "Failed to send event notification.")
	default:
		respondJSON(w, http.StatusOK, broadcastResponse("Event notification sent!", result))
	}
}

type broadcastRequest struct {
	EventName        string `json:"eventName"`
	EventDescription string `json:"eventDescription"`
	EventDate        string `json:"eventDate"`
	RegisterURL      string `json:"registerUrl"`
}

// Broadcast handles POST /newsletter/broadcast (admin): announce an ad-hoc
// event that is not in the catalog.
func (h *newsletterHandler) Broadcast(w http.ResponseWriter, r *http.Request) {
	var req broadcastRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request format.")
		return
	}

	if req.EventName == "" || req.EventDescription == "" || req.EventDate == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields: eventName, eventDescription, eventDate")
		return
	}

	event := &model.Event{
		Name:        req.EventName,
		Description: req.EventDescription,
		Date:        req.EventDate,
		RegisterURL: req.RegisterURL,
	}

	result, err := h.newsletterService.Broadcast(r.Context(), event, 0)
	if err != nil {
		slog.Error("broadcast failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	respondJSON(w, http.StatusOK, broadcastResponse("Broadcast complete", result))
}

func broadcastResponse(message string, result *model.BroadcastResult) map[string]any {
	resp := map[string]any{
		"message":          message,
		"eventName":        result.EventName,
		"eventDate":        result.EventDate,
		"totalSubscribers": result.TotalSubscribers,
		"successCount":     result.SuccessCount,
		"failCount":        result.FailCount,
	}
	if len(result.Errors) > 0 {
		resp["errors"] = result.Errors
	}
	return resp
}
