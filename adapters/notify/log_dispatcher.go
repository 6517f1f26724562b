package notify

import (
	"context"
	"strings"

	"tribunal/internal"
	"tribunal/ports"
)

// LogDispatcher implements ports.Notifier by writing notifications to the
// application log. Real delivery (mail, webhook) is a deployment concern;
// the core only produces the triples.
type LogDispatcher struct {
	logger *internal.Logger
}

// NewLogDispatcher creates a log-backed dispatcher.
func NewLogDispatcher(logger *internal.Logger) *LogDispatcher {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Dispatch(_ context.Context, n ports.Notification) error {
	d.logger.Info("notify [%s] %s: %s", strings.Join(n.Recipients, ","), n.Subject, n.Body)
	return nil
}

// Recorder implements ports.Notifier by collecting notifications, for
// tests asserting on emitted transitions.
type Recorder struct {
	Sent []ports.Notification
}

func (r *Recorder) Dispatch(_ context.Context, n ports.Notification) error {
	r.Sent = append(r.Sent, n)
	return nil
}
