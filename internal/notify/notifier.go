// Package notify delivers triggered price alerts to external channels.
// Alerts are dispatched to all registered senders (Telegram, Discord) and
// can be filtered by event type so operators receive only the alert kinds
// they care about.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alanyoungcy/pricetracker/internal/alert"
)

// Sender is the interface that each notification channel must implement.
type Sender interface {
	// Send delivers a notification with the given title and message body.
	Send(ctx context.Context, title, message string) error
	// Name returns a human-readable identifier for the sender (e.g. "telegram").
	Name() string
}

// Notifier dispatches triggered alerts to one or more Senders. It maintains
// a set of allowed event types; alerts whose event is not in the set are
// dropped. An empty set allows every event.
type Notifier struct {
	senders []Sender
	events  map[string]bool
	logger  *slog.Logger
}

// NewNotifier creates a Notifier that will deliver to the given senders,
// forwarding only alerts whose event type appears in events (all types when
// events is empty).
func NewNotifier(senders []Sender, events []string, logger *slog.Logger) *Notifier {
	allowed := make(map[string]bool, len(events))
	for _, e := range events {
		allowed[strings.TrimSpace(e)] = true
	}
	return &Notifier{
		senders: senders,
		events:  allowed,
		logger:  logger.With(slog.String("component", "notifier")),
	}
}

// Enabled reports whether any sender is configured; callers skip delivery
// entirely when it is false.
func (n *Notifier) Enabled() bool {
	return len(n.senders) > 0
}

// Dispatch delivers each alert that passes the event filter to every sender.
// Errors from individual senders are collected and returned as a combined
// error; a single sender failure does not prevent delivery of the remaining
// alerts.
func (n *Notifier) Dispatch(ctx context.Context, title string, alerts []alert.Alert) error {
	if len(n.senders) == 0 || len(alerts) == 0 {
		return nil
	}

	var errs []string
	for _, a := range alerts {
		if len(n.events) > 0 && !n.events[a.Event] {
			n.logger.DebugContext(ctx, "alert filtered out",
				slog.String("event", a.Event),
			)
			continue
		}
		for _, s := range n.senders {
			if err := s.Send(ctx, title, a.Message); err != nil {
				n.logger.ErrorContext(ctx, "sender failed",
					slog.String("sender", s.Name()),
					slog.String("error", err.Error()),
				)
				errs = append(errs, fmt.Sprintf("%s: %v", s.Name(), err))
			} else {
				n.logger.DebugContext(ctx, "alert delivered",
					slog.String("sender", s.Name()),
					slog.String("event", a.Event),
				)
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("notify: %d delivery failure(s): %s", len(errs), strings.Join(errs, "; "))
	}
	return nil
}
