package notify

import (
	"log/slog"

	"github.com/mvidela/go_club_backend/internal/domain"
	"github.com/mvidela/go_club_backend/internal/domain/payment"
)

// PaymentDesk logs payment lifecycle notices: receipts, reminders and
// overdue warnings.
type PaymentDesk struct {
	Logger *slog.Logger
}

func (d *PaymentDesk) Notify(event domain.Event) error {
	p := event.Payload()
	switch event.Type() {
	case payment.EventRecorded:
		d.Logger.Info("payment received",
			"member", p["member"],
			"amount", p["amount"],
			"method", p["method"],
			"receipt", p["receipt"],
		)
	case payment.EventReminder:
		d.Logger.Info("payment reminder sent",
			"member", p["member"],
			"amount", p["amount"],
			"due", p["due"],
		)
	case payment.EventOverdue:
		d.Logger.Warn("payment overdue",
			"member", p["member"],
			"amount", p["amount"],
		)
	}
	return nil
}
