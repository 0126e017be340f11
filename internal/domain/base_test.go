package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEvent struct {
	name string
	at   time.Time
}

func (e stubEvent) Type() string            { return e.name }
func (e stubEvent) PublishedAt() time.Time  { return e.at }
func (e stubEvent) Payload() map[string]any { return map[string]any{"name": e.name} }

type recorder struct {
	id     string
	events []Event
	err    error
	log    *[]string
}

func (r *recorder) Notify(e Event) error {
	r.events = append(r.events, e)
	if r.log != nil {
		*r.log = append(*r.log, r.id)
	}
	return r.err
}

func TestNotifierSubscribeIsIdempotent(t *testing.T) {
	n := NewNotifier(nil)
	sub := &recorder{}

	n.Subscribe(sub)
	n.Subscribe(sub)
	n.Publish(stubEvent{name: "test.event", at: time.Now()})

	require.Len(t, sub.events, 1)
}

func TestNotifierPublishInSubscriptionOrder(t *testing.T) {
	n := NewNotifier(nil)
	var order []string
	first := &recorder{id: "first", log: &order}
	second := &recorder{id: "second", log: &order}

	n.Subscribe(first)
	n.Subscribe(second)
	n.Publish(stubEvent{name: "test.event", at: time.Now()})

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestNotifierContinuesAfterSubscriberError(t *testing.T) {
	n := NewNotifier(nil)
	failing := &recorder{err: errors.New("boom")}
	next := &recorder{}

	n.Subscribe(failing)
	n.Subscribe(next)
	n.Publish(stubEvent{name: "test.event", at: time.Now()})

	assert.Len(t, failing.events, 1)
	assert.Len(t, next.events, 1)
}

func TestNotifierUnsubscribeRemovesOne(t *testing.T) {
	n := NewNotifier(nil)
	sub := &recorder{}
	other := &recorder{}

	n.Subscribe(sub)
	n.Subscribe(other)
	n.Unsubscribe(sub)
	n.Publish(stubEvent{name: "test.event", at: time.Now()})

	assert.Empty(t, sub.events)
	assert.Len(t, other.events, 1)
}
