package model

// BroadcastResult tallies one broadcast invocation. It is built fresh per
// request, returned to the caller, and never persisted.
type BroadcastResult struct {
	EventName        string   `json:"eventName"`
	EventDate        string   `json:"eventDate"`
	TotalSubscribers int      `json:"totalSubscribers"`
	SuccessCount     int      `json:"successCount"`
	FailCount        int      `json:"failCount"`
	Errors           []string `json:"errors,omitempty"`
}
