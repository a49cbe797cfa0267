package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/adsc-atmiya/website/internal/catalog"
	"github.com/adsc-atmiya/website/internal/mail"
	"github.com/adsc-atmiya/website/internal/model"
	"github.com/adsc-atmiya/website/internal/repository"
	"github.com/adsc-atmiya/website/internal/validation"
	"github.com/google/uuid"
)

var (
	ErrDuplicateSubscriber = errors.New("email already subscribed")

	// ErrSilentDeleteFailure means the store reported a successful delete
	// but the row is still readable afterwards, e.g. a row-level policy
	// silently blocking the delete.
	ErrSilentDeleteFailure = errors.New("subscriber still present after delete")
)

const (
	BroadcastModeBatch      = "batch"
	BroadcastModeIndividual = "individual"
)

// BroadcastOptions tunes the dispatch loop.
type BroadcastOptions struct {
	Mode       string
	BatchSize  int
	BatchDelay time.Duration
	SendDelay  time.Duration
}

type NewsletterService struct {
	repo    repository.SubscriberRepository
	sender  mail.Sender
	catalog catalog.Catalog
	opts    BroadcastOptions
	appURL  string

	// Injectable for tests so the dispatch loop's throttling can be
	// asserted without real waiting.
	sleep func(time.Duration)
	now   func() time.Time
}

func NewNewsletterService(
	repo repository.SubscriberRepository,
	sender mail.Sender,
	cat catalog.Catalog,
	opts BroadcastOptions,
	appURL string,
) *NewsletterService {
	if opts.Mode == "" {
		opts.Mode = BroadcastModeBatch
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 50
	}

	return &NewsletterService{
		repo:    repo,
		sender:  sender,
		catalog: cat,
		opts:    opts,
		appURL:  appURL,
		sleep:   time.Sleep,
		now:     time.Now,
	}
}

// Subscribe validates the raw email, stores it, and fires the welcome email.
// The welcome email is best-effort: once the row is written the subscription
// has succeeded, so a mail failure is only logged.
func (s *NewsletterService) Subscribe(ctx context.Context, rawEmail string) error {
	email, err := validation.SanitizeEmail(rawEmail)
	if err != nil {
		return err
	}

	_, err = s.repo.ByEmail(email)
	if err == nil {
		return ErrDuplicateSubscriber
	}
	if !errors.Is(err, repository.ErrSubscriberNotFound) {
		return fmt.Errorf("failed to check existing subscriber: %w", err)
	}

	sub := &model.Subscriber{
		ID:           uuid.New().String(),
		Email:        email,
		SubscribedAt: s.now(),
	}

	err = s.repo.Create(sub)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrDuplicateSubscriber
		}
		return fmt.Errorf("failed to store subscriber: %w", err)
	}

	subject, html := welcomeEmailTemplate(email, s.appURL)
	err = s.sender.Send(ctx, []string{email}, subject, html)
	if err != nil {
		slog.Warn("welcome email failed", "error", err, "email", email)
	}

	return nil
}

// Unsubscribe deletes the subscriber and verifies the deletion by re-reading
// the store. Deleting an email that was never subscribed is not an error.
func (s *NewsletterService) Unsubscribe(ctx context.Context, rawEmail string) error {
	email, err := validation.SanitizeEmail(rawEmail)
	if err != nil {
		return err
	}

	err = s.repo.DeleteByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to delete subscriber: %w", err)
	}

	_, err = s.repo.ByEmail(email)
	if err == nil {
		slog.Error("subscriber row survived delete, check store policies", "email", email)
		return ErrSilentDeleteFailure
	}
	if !errors.Is(err, repository.ErrSubscriberNotFound) {
		return fmt.Errorf("failed to verify deletion: %w", err)
	}

	slog.Info("newsletter unsubscribe", "email", email)
	return nil
}

// Subscribers returns all subscribers, oldest first, plus the total count.
func (s *NewsletterService) Subscribers() ([]*model.Subscriber, int, error) {
	subs, err := s.repo.All(0)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch subscribers: %w", err)
	}

	return subs, len(subs), nil
}

// Count returns the number of stored subscribers.
func (s *NewsletterService) Count() (int, error) {
	return s.repo.Count()
}

// Events lists the announcement catalog.
func (s *NewsletterService) Events() ([]*model.Event, error) {
	return s.catalog.List()
}

// BroadcastEvent resolves a catalog event by id and announces it to
// subscribers. limit > 0 caps the read to the earliest-subscribed records.
func (s *NewsletterService) BroadcastEvent(ctx context.Context, eventID string, limit int) (*model.BroadcastResult, error) {
	event, err := s.catalog.ByID(eventID)
	if err != nil {
		return nil, err
	}

	return s.Broadcast(ctx, event, limit)
}

// Broadcast dispatches an event announcement to subscribers. Send failures
// are tallied, never propagated: one bad recipient must not block the rest.
// The only durable effect is outbound email; the store is read, not written.
func (s *NewsletterService) Broadcast(ctx context.Context, event *model.Event, limit int) (*model.BroadcastResult, error) {
	subs, err := s.repo.All(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subscribers: %w", err)
	}

	result := &model.BroadcastResult{
		EventName:        event.Name,
		EventDate:        event.Date,
		TotalSubscribers: len(subs),
	}

	if len(subs) == 0 {
		return result, nil
	}

	// The template is a pure function of the event; render once and reuse
	// for every recipient.
	subject, html := eventEmailTemplate(event.Name, event.Description, event.Date, event.Link())

	emails := make([]string, len(subs))
	for i, sub := range subs {
		emails[i] = sub.Email
	}

	slog.Info("broadcast starting",
		"event", event.ID,
		"mode", s.opts.Mode,
		"subscribers", len(emails),
	)

	if s.opts.Mode == BroadcastModeIndividual {
		s.dispatchIndividual(ctx, emails, subject, html, result)
	} else {
		s.dispatchBatches(ctx, emails, subject, html, result)
	}

	slog.Info("broadcast complete",
		"event", event.ID,
		"success", result.SuccessCount,
		"failed", result.FailCount,
	)

	return result, nil
}

// dispatchBatches sends to fixed-size chunks, all chunk recipients on one
// provider call, with a delay between chunks as crude backpressure against
// the provider's sending limits. Counts move by whole chunks.
func (s *NewsletterService) dispatchBatches(ctx context.Context, emails []string, subject, html string, result *model.BroadcastResult) {
	size := s.opts.BatchSize

	for i := 0; i < len(emails); i += size {
		batch := emails[i:min(i+size, len(emails))]

		err := s.sender.Send(ctx, batch, subject, html)
		if err != nil {
			result.FailCount += len(batch)
			result.Errors = append(result.Errors, fmt.Sprintf("batch of %d starting at %s: %v", len(batch), batch[0], err))
			slog.Warn("broadcast batch failed", "error", err, "batch_size", len(batch))
		} else {
			result.SuccessCount += len(batch)
		}

		if i+size < len(emails) {
			s.sleep(s.opts.BatchDelay)
		}
	}
}

// dispatchIndividual sends one call per subscriber with a smaller delay,
// recording a per-subscriber error message on failure.
func (s *NewsletterService) dispatchIndividual(ctx context.Context, emails []string, subject, html string, result *model.BroadcastResult) {
	for i, email := range emails {
		err := s.sender.Send(ctx, []string{email}, subject, html)
		if err != nil {
			result.FailCount++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", email, err))
			slog.Warn("broadcast send failed", "error", err, "email", email)
		} else {
			result.SuccessCount++
		}

		if i < len(emails)-1 {
			s.sleep(s.opts.SendDelay)
		}
	}
}
