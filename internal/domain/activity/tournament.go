package activity

import (
	"time"

	"github.com/samber/lo"
)

const EventTournamentCreated = "tournament.created"

// Tournament is owned by an Activity; participants must already be
// enrolled in the owning activity at registration time.
type Tournament struct {
	Name         string
	Activity     string
	Date         string
	EntryFee     float64
	Participants []string
	CreatedAt    time.Time
}

func NewTournament(name, activityName, date string, entryFee float64) *Tournament {
	return &Tournament{
		Name:      name,
		Activity:  activityName,
		Date:      date,
		EntryFee:  entryFee,
		CreatedAt: time.Now().UTC(),
	}
}

func (t *Tournament) HasParticipant(memberID string) bool {
	return lo.Contains(t.Participants, memberID)
}

func (t *Tournament) AddParticipant(memberID string) {
	if !t.HasParticipant(memberID) {
		t.Participants = append(t.Participants, memberID)
	}
}

// TournamentCreatedEvent announces a new tournament to the activity's
// subscribers, carrying the names of the currently enrolled members.
type TournamentCreatedEvent struct {
	At         time.Time
	Tournament string
	Activity   string
	Date       string
	EntryFee   float64
	Members    []string
}

func (e TournamentCreatedEvent) Type() string { return EventTournamentCreated }

func (e TournamentCreatedEvent) PublishedAt() time.Time { return e.At }

func (e TournamentCreatedEvent) Payload() map[string]any {
	return map[string]any{
		"tournament": e.Tournament,
		"activity":   e.Activity,
		"date":       e.Date,
		"fee":        e.EntryFee,
		"members":    e.Members,
	}
}
