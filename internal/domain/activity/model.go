package activity

import (
	"errors"
	"strings"

	"github.com/mvidela/go_club_backend/internal/domain"
	"github.com/samber/lo"
)

var (
	ErrActivityNotFound   = errors.New("activity not found")
	ErrActivityExists     = errors.New("activity already exists")
	ErrCapacityReached    = errors.New("activity capacity reached")
	ErrAlreadyEnrolled    = errors.New("member already enrolled")
	ErrNotEnrolled        = errors.New("member not enrolled")
	ErrNotEligible        = errors.New("member not eligible for tournament")
	ErrTournamentNotFound = errors.New("tournament not found")
)

// Key normalizes an activity name for identity comparison. Activity
// names are unique case-insensitively.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Activity holds state and bidirectional link bookkeeping only; all
// business rules live in the service layer. Members and Instructors hold
// national ids, never entity pointers.
type Activity struct {
	Name        string
	Cost        float64
	Capacity    int
	Members     []string
	Instructors []string
	Tournaments []*Tournament
	Events      *domain.Notifier
}

func (a *Activity) Key() string { return Key(a.Name) }

func (a *Activity) Full() bool { return len(a.Members) >= a.Capacity }

func (a *Activity) Enrolled(memberID string) bool {
	return lo.Contains(a.Members, memberID)
}

func (a *Activity) AddMember(memberID string) {
	if !a.Enrolled(memberID) {
		a.Members = append(a.Members, memberID)
	}
}

func (a *Activity) RemoveMember(memberID string) {
	a.Members = lo.Without(a.Members, memberID)
}

func (a *Activity) HasInstructor(instructorID string) bool {
	return lo.Contains(a.Instructors, instructorID)
}

func (a *Activity) AddInstructor(instructorID string) {
	if !a.HasInstructor(instructorID) {
		a.Instructors = append(a.Instructors, instructorID)
	}
}

func (a *Activity) RemoveInstructor(instructorID string) {
	a.Instructors = lo.Without(a.Instructors, instructorID)
}

func (a *Activity) AddTournament(t *Tournament) {
	a.Tournaments = append(a.Tournaments, t)
}

// FindTournament looks a tournament up by name within this activity;
// tournament identity is the (name, activity) pair.
func (a *Activity) FindTournament(name string) (*Tournament, bool) {
	for _, t := range a.Tournaments {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return nil, false
}
