package snapshot

import (
	"fmt"
	"sort"
	"time"

	"github.com/mvidela/go_club_backend/internal/app/registry"
	"github.com/mvidela/go_club_backend/internal/domain"
	"github.com/mvidela/go_club_backend/internal/domain/activity"
	"github.com/mvidela/go_club_backend/internal/domain/instructor"
	"github.com/mvidela/go_club_backend/internal/domain/member"
	"github.com/mvidela/go_club_backend/internal/domain/payment"
	"github.com/samber/lo"
)

// Snapshot is the serializable projection of a Registry. Relationship
// links are flattened to identifier references and rebuilt on restore.
type Snapshot struct {
	Members     []MemberRecord
	Activities  []ActivityRecord
	Instructors []InstructorRecord
	Payments    []PaymentRecord
}

type MemberRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Kind         string    `json:"kind"`
	Age          int       `json:"age,omitempty"`
	Status       string    `json:"status"`
	RegisteredAt time.Time `json:"registered_at"`
	Activities   []string  `json:"activities"`
}

type ActivityRecord struct {
	Name        string             `json:"name"`
	Cost        float64            `json:"cost"`
	Capacity    int                `json:"capacity"`
	Members     []string           `json:"members"`
	Instructors []string           `json:"instructors"`
	Tournaments []TournamentRecord `json:"tournaments"`
}

type TournamentRecord struct {
	Name         string    `json:"name"`
	Date         string    `json:"date"`
	EntryFee     float64   `json:"entry_fee"`
	Participants []string  `json:"participants"`
	CreatedAt    time.Time `json:"created_at"`
}

type InstructorRecord struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Salary     float64  `json:"salary"`
	Activities []string `json:"activities"`
}

type PaymentRecord struct {
	Receipt  string    `json:"receipt"`
	MemberID string    `json:"member_id"`
	Amount   float64   `json:"amount"`
	Method   string    `json:"method"`
	At       time.Time `json:"at"`
}

// Take flattens the registry into a snapshot with deterministic record
// order.
func Take(reg *registry.Registry) *Snapshot {
	snap := &Snapshot{
		Members: lo.Map(reg.Members(), func(m *member.Member, _ int) MemberRecord {
			return MemberRecord{
				ID:           m.ID,
				Name:         m.Name,
				Kind:         string(m.Kind),
				Age:          m.Age,
				Status:       string(m.Status),
				RegisteredAt: m.RegisteredAt,
				Activities:   m.Activities,
			}
		}),
		Activities: lo.Map(reg.Activities(), func(a *activity.Activity, _ int) ActivityRecord {
			return ActivityRecord{
				Name:        a.Name,
				Cost:        a.Cost,
				Capacity:    a.Capacity,
				Members:     a.Members,
				Instructors: a.Instructors,
				Tournaments: lo.Map(a.Tournaments, func(t *activity.Tournament, _ int) TournamentRecord {
					return TournamentRecord{
						Name:         t.Name,
						Date:         t.Date,
						EntryFee:     t.EntryFee,
						Participants: t.Participants,
						CreatedAt:    t.CreatedAt,
					}
				}),
			}
		}),
		Instructors: lo.Map(reg.Instructors(), func(i *instructor.Instructor, _ int) InstructorRecord {
			return InstructorRecord{
				ID:         i.ID,
				Name:       i.Name,
				Salary:     i.Salary,
				Activities: i.Activities,
			}
		}),
		Payments: lo.Map(reg.Payments(), func(p *payment.Payment, _ int) PaymentRecord {
			return PaymentRecord{
				Receipt:  p.Receipt,
				MemberID: p.MemberID,
				Amount:   p.Amount,
				Method:   string(p.Method),
				At:       p.At,
			}
		}),
	}

	sort.Slice(snap.Members, func(i, j int) bool { return snap.Members[i].ID < snap.Members[j].ID })
	sort.Slice(snap.Activities, func(i, j int) bool { return snap.Activities[i].Name < snap.Activities[j].Name })
	sort.Slice(snap.Instructors, func(i, j int) bool { return snap.Instructors[i].ID < snap.Instructors[j].ID })

	return snap
}

// Restore builds a fresh registry from the snapshot, rebuilding every
// bidirectional link from the stored identifier references.
func (s *Snapshot) Restore() (*registry.Registry, error) {
	reg := registry.New()

	for _, rec := range s.Members {
		m := &member.Member{
			ID:           rec.ID,
			Name:         rec.Name,
			Kind:         member.Kind(rec.Kind),
			Age:          rec.Age,
			Status:       member.PaymentStatus(rec.Status),
			RegisteredAt: rec.RegisteredAt,
			Activities:   rec.Activities,
		}
		if err := reg.PutMember(m); err != nil {
			return nil, fmt.Errorf("restore members: %w", err)
		}
	}

	for _, rec := range s.Activities {
		act := &activity.Activity{
			Name:        rec.Name,
			Cost:        rec.Cost,
			Capacity:    rec.Capacity,
			Members:     rec.Members,
			Instructors: rec.Instructors,
			Events:      domain.NewNotifier(nil),
		}
		for _, t := range rec.Tournaments {
			act.AddTournament(&activity.Tournament{
				Name:         t.Name,
				Activity:     rec.Name,
				Date:         t.Date,
				EntryFee:     t.EntryFee,
				Participants: t.Participants,
				CreatedAt:    t.CreatedAt,
			})
		}
		if err := reg.PutActivity(act); err != nil {
			return nil, fmt.Errorf("restore activities: %w", err)
		}
	}

	for _, rec := range s.Instructors {
		inst := &instructor.Instructor{
			ID:         rec.ID,
			Name:       rec.Name,
			Salary:     rec.Salary,
			Activities: rec.Activities,
		}
		if err := reg.PutInstructor(inst); err != nil {
			return nil, fmt.Errorf("restore instructors: %w", err)
		}
	}

	for _, rec := range s.Payments {
		reg.AddPayment(&payment.Payment{
			Receipt:  rec.Receipt,
			MemberID: rec.MemberID,
			Amount:   rec.Amount,
			Method:   payment.Method(rec.Method),
			At:       rec.At,
		})
	}

	return reg, nil
}
