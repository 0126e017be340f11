package member

import (
	"errors"
	"time"

	"github.com/samber/lo"
)

// Kind tags the membership variant; dispatch happens on the tag, never
// on runtime type inspection.
type Kind string

const (
	KindRegular Kind = "regular"
	KindPremium Kind = "premium"
	KindMinor   Kind = "minor"
)

func Kinds() []Kind {
	return []Kind{KindRegular, KindPremium, KindMinor}
}

func (k Kind) Valid() bool {
	return lo.Contains(Kinds(), k)
}

type PaymentStatus string

const (
	StatusPending PaymentStatus = "Pending"
	StatusPaid    PaymentStatus = "Paid"
	StatusOverdue PaymentStatus = "Overdue"
)

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrMemberExists   = errors.New("member already exists")
	ErrInvalidKind    = errors.New("invalid member kind")
	ErrNoFeeStrategy  = errors.New("no fee strategy configured")
)

// Member is a tagged union over the three membership variants. Age is
// meaningful only for KindMinor. Activities holds the display names of
// the activities the member is enrolled in; the reverse link lives on
// the Activity side and the service layer keeps both in sync.
type Member struct {
	ID           string        `diff:"-"`
	Name         string        `diff:"name"`
	Kind         Kind          `diff:"kind"`
	Age          int           `diff:"age"`
	Status       PaymentStatus `diff:"status"`
	RegisteredAt time.Time     `diff:"-"`
	Activities   []string      `diff:"-"`
}

func (m *Member) EnrolledIn(activityName string) bool {
	return lo.Contains(m.Activities, activityName)
}

func (m *Member) AddActivity(activityName string) {
	if !m.EnrolledIn(activityName) {
		m.Activities = append(m.Activities, activityName)
	}
}

func (m *Member) RemoveActivity(activityName string) {
	m.Activities = lo.Without(m.Activities, activityName)
}
