package notify

import (
	"log/slog"

	"github.com/mvidela/go_club_backend/internal/domain"
	"github.com/mvidela/go_club_backend/internal/domain/activity"
)

// TournamentDesk logs tournament announcements for the club staff. It is
// the default subscriber attached to every activity.
type TournamentDesk struct {
	Logger *slog.Logger
}

func (d *TournamentDesk) Notify(event domain.Event) error {
	switch event.Type() {
	case activity.EventTournamentCreated:
		p := event.Payload()
		d.Logger.Info("new tournament announced",
			"tournament", p["tournament"],
			"activity", p["activity"],
			"date", p["date"],
			"fee", p["fee"],
			"notified", p["members"],
		)
	}
	return nil
}
