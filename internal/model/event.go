package model

// Event is a club event from the static content catalog. Events are
// read-only: the newsletter subsystem announces them but never mutates them.
type Event struct {
	ID          string
	Name        string
	Description string // rendered HTML from the event's markdown body
	Date        string // display string, e.g. "15 March 2026"
	Category    string
	RegisterURL string
	ViewURL     string
}

// Link returns the best URL to point recipients at: the registration page
// if the event has one, otherwise the event detail page.
func (e *Event) Link() string {
	if e.RegisterURL != "" {
		return e.RegisterURL
	}
	return e.ViewURL
}

// EventSummary is the projection returned by the admin event listing.
type EventSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	Category string `json:"category"`
}

func (e *Event) Summary() EventSummary {
	return EventSummary{
		ID:       e.ID,
		Name:     e.Name,
		Date:     e.Date,
		Category: e.Category,
	}
}
