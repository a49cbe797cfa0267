package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/adsc-atmiya/website/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrDuplicateEmail     = errors.New("email already subscribed")
)

type SubscriberRepository interface {
	Create(sub *model.Subscriber) error
	ByEmail(email string) (*model.Subscriber, error)
	// All returns subscribers ordered by subscribed_at ascending so that a
	// capped read favors the longest-standing subscribers. limit <= 0 means
	// no cap.
	All(limit int) ([]*model.Subscriber, error)
	Count() (int, error)
	DeleteByEmail(email string) error
}

type subscriberRepository struct {
	db *sqlx.DB
}

func NewSubscriberRepository(db *sqlx.DB) SubscriberRepository {
	return &subscriberRepository{db: db}
}

func (r *subscriberRepository) Create(sub *model.Subscriber) error {
	query := `INSERT INTO newsletter_subscribers (id, email, subscribed_at) VALUES ($1, $2, $3)`

	_, err := r.db.Exec(query, sub.ID, sub.Email, sub.SubscribedAt)
	if err != nil {
		// Check for unique constraint violation (works for both SQLite and PostgreSQL)
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value") {
			return ErrDuplicateEmail
		}
		return err
	}

	return nil
}

func (r *subscriberRepository) ByEmail(email string) (*model.Subscriber, error) {
	sub := &model.Subscriber{}
	query := `SELECT * FROM newsletter_subscribers WHERE email = $1`

	err := r.db.Get(sub, query, email)
	if err == sql.ErrNoRows {
		return nil, ErrSubscriberNotFound
	}
	if err != nil {
		return nil, err
	}

	return sub, nil
}

func (r *subscriberRepository) All(limit int) ([]*model.Subscriber, error) {
	subs := []*model.Subscriber{}

	if limit > 0 {
		query := `SELECT * FROM newsletter_subscribers ORDER BY subscribed_at ASC LIMIT $1`
		err := r.db.Select(&subs, query, limit)
		return subs, err
	}

	query := `SELECT * FROM newsletter_subscribers ORDER BY subscribed_at ASC`
	err := r.db.Select(&subs, query)
	return subs, err
}

func (r *subscriberRepository) Count() (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM newsletter_subscribers`

	err := r.db.Get(&count, query)
	return count, err
}

// DeleteByEmail is idempotent: deleting an email that is not subscribed is
// not an error.
func (r *subscriberRepository) DeleteByEmail(email string) error {
	query := `DELETE FROM newsletter_subscribers WHERE email = $1`

	_, err := r.db.Exec(query, email)
	return err
}
