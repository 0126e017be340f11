package registry

import (
	"fmt"

	"github.com/mvidela/go_club_backend/internal/domain/activity"
	"github.com/mvidela/go_club_backend/internal/domain/instructor"
	"github.com/mvidela/go_club_backend/internal/domain/member"
	"github.com/mvidela/go_club_backend/internal/domain/payment"
	"github.com/samber/lo"
)

// Registry is the process-wide in-memory store of all entities, keyed by
// natural identifiers. It offers direct CRUD only; business rules and
// cross-entity relationships are the service layer's concern.
//
// One Registry is constructed at startup and passed to every service.
// Mutating operations are not internally synchronized; the design
// assumes a single logical caller at a time.
type Registry struct {
	members     map[string]*member.Member
	activities  map[string]*activity.Activity
	instructors map[string]*instructor.Instructor
	payments    []*payment.Payment
}

func New() *Registry {
	return &Registry{
		members:     make(map[string]*member.Member),
		activities:  make(map[string]*activity.Activity),
		instructors: make(map[string]*instructor.Instructor),
	}
}

func (r *Registry) PutMember(m *member.Member) error {
	if _, ok := r.members[m.ID]; ok {
		return fmt.Errorf("%w: id %s", member.ErrMemberExists, m.ID)
	}
	r.members[m.ID] = m
	return nil
}

func (r *Registry) Member(id string) (*member.Member, bool) {
	m, ok := r.members[id]
	return m, ok
}

func (r *Registry) Members() []*member.Member {
	return lo.Values(r.members)
}

func (r *Registry) DeleteMember(id string) bool {
	if _, ok := r.members[id]; !ok {
		return false
	}
	delete(r.members, id)
	return true
}

func (r *Registry) PutActivity(a *activity.Activity) error {
	if _, ok := r.activities[a.Key()]; ok {
		return fmt.Errorf("%w: %s", activity.ErrActivityExists, a.Name)
	}
	r.activities[a.Key()] = a
	return nil
}

func (r *Registry) Activity(name string) (*activity.Activity, bool) {
	a, ok := r.activities[activity.Key(name)]
	return a, ok
}

func (r *Registry) Activities() []*activity.Activity {
	return lo.Values(r.activities)
}

func (r *Registry) DeleteActivity(name string) bool {
	key := activity.Key(name)
	if _, ok := r.activities[key]; !ok {
		return false
	}
	delete(r.activities, key)
	return true
}

func (r *Registry) PutInstructor(i *instructor.Instructor) error {
	if _, ok := r.instructors[i.ID]; ok {
		return fmt.Errorf("%w: id %s", instructor.ErrInstructorExists, i.ID)
	}
	r.instructors[i.ID] = i
	return nil
}

func (r *Registry) Instructor(id string) (*instructor.Instructor, bool) {
	i, ok := r.instructors[id]
	return i, ok
}

func (r *Registry) Instructors() []*instructor.Instructor {
	return lo.Values(r.instructors)
}

func (r *Registry) DeleteInstructor(id string) bool {
	if _, ok := r.instructors[id]; !ok {
		return false
	}
	delete(r.instructors, id)
	return true
}

// AddPayment appends to the payment ledger; payments are never mutated
// or deleted.
func (r *Registry) AddPayment(p *payment.Payment) {
	r.payments = append(r.payments, p)
}

func (r *Registry) Payments() []*payment.Payment {
	return r.payments
}

func (r *Registry) PaymentsByMember(memberID string) []*payment.Payment {
	return lo.Filter(r.payments, func(p *payment.Payment, _ int) bool {
		return p.MemberID == memberID
	})
}

// Reset drops all stored entities.
func (r *Registry) Reset() {
	r.members = make(map[string]*member.Member)
	r.activities = make(map[string]*activity.Activity)
	r.instructors = make(map[string]*instructor.Instructor)
	r.payments = nil
}
