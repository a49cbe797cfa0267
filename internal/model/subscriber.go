package model

import (
	"time"
)

type Subscriber struct {
	ID           string    `db:"id" json:"-"`
	Email        string    `db:"email" json:"email"`
	SubscribedAt time.Time `db:"subscribed_at" json:"subscribed_at"`
}
