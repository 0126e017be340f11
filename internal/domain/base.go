package domain

import (
	"errors"
	"log/slog"
	"time"
)

var (
	ErrValidation = errors.New("validation failed")
)

// Event is a domain occurrence broadcast to subscribers. Subscribers
// discriminate on Type and ignore payloads they do not understand.
type Event interface {
	Type() string
	PublishedAt() time.Time
	Payload() map[string]any
}

type Subscriber interface {
	Notify(event Event) error
}

// Notifier is an ordered subscriber list owned by a single publisher.
// There is no shared event bus; every publisher carries its own Notifier.
type Notifier struct {
	logger      *slog.Logger
	subscribers []Subscriber
}

func NewNotifier(logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{logger: logger}
}

// Subscribe registers a subscriber. Subscribing the same subscriber
// twice is a no-op.
func (n *Notifier) Subscribe(s Subscriber) {
	for _, sub := range n.subscribers {
		if sub == s {
			return
		}
	}
	n.subscribers = append(n.subscribers, s)
}

// Unsubscribe removes at most one matching subscriber.
func (n *Notifier) Unsubscribe(s Subscriber) {
	for i, sub := range n.subscribers {
		if sub == s {
			n.subscribers = append(n.subscribers[:i], n.subscribers[i+1:]...)
			return
		}
	}
}

// Publish delivers the event to every subscriber synchronously, in
// subscription order. A failing subscriber does not stop delivery to the
// remaining ones. Publish is reentrant-unsafe: a subscriber must not
// trigger a new publish on the same event during its own handling.
func (n *Notifier) Publish(event Event) {
	for _, sub := range n.subscribers {
		if err := sub.Notify(event); err != nil {
			n.logger.Error("failed to notify subscriber", "type", event.Type(), "err", err)
		}
	}
}
