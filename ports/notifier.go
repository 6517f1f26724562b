package ports

import "context"

// Notification is the {recipients, subject, body} triple emitted on
// timetable and extension-request state transitions. Delivery mechanism
// is a collaborator concern.
type Notification struct {
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject"`
	Body       string   `json:"body"`
}

// Notifier dispatches notifications. Dispatch failures are logged by
// implementations, not propagated into procedural state changes.
type Notifier interface {
	Dispatch(ctx context.Context, n Notification) error
}
