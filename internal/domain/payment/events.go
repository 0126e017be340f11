package payment

import "time"

const (
	EventRecorded = "payment.recorded"
	EventReminder = "payment.reminder"
	EventOverdue  = "payment.overdue"
)

type RecordedEvent struct {
	At      time.Time
	Member  string
	Amount  float64
	Method  Method
	Receipt string
}

func (e RecordedEvent) Type() string { return EventRecorded }

func (e RecordedEvent) PublishedAt() time.Time { return e.At }

func (e RecordedEvent) Payload() map[string]any {
	return map[string]any{
		"member":  e.Member,
		"amount":  e.Amount,
		"method":  string(e.Method),
		"receipt": e.Receipt,
	}
}

// ReminderEvent carries a payment-due notice; publishing it mutates no
// state.
type ReminderEvent struct {
	At     time.Time
	Member string
	Amount float64
	Due    string
}

func (e ReminderEvent) Type() string { return EventReminder }

func (e ReminderEvent) PublishedAt() time.Time { return e.At }

func (e ReminderEvent) Payload() map[string]any {
	return map[string]any{
		"member": e.Member,
		"amount": e.Amount,
		"due":    e.Due,
	}
}

type OverdueEvent struct {
	At     time.Time
	Member string
	Amount float64
}

func (e OverdueEvent) Type() string { return EventOverdue }

func (e OverdueEvent) PublishedAt() time.Time { return e.At }

func (e OverdueEvent) Payload() map[string]any {
	return map[string]any{
		"member": e.Member,
		"amount": e.Amount,
	}
}
