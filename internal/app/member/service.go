package memberservice

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/mvidela/go_club_backend/internal/app/registry"
	"github.com/mvidela/go_club_backend/internal/domain/activity"
	"github.com/mvidela/go_club_backend/internal/domain/member"
	"github.com/r3labs/diff"
	"github.com/samber/lo"

	activityservice "github.com/mvidela/go_club_backend/internal/app/activity"
)

// Service owns member lifecycle and fee computation. Deletion detaches
// the member from every enrolled activity through the activity service
// before removing the registry entry.
type Service struct {
	registry   *registry.Registry
	activities *activityservice.Service
	strategies member.Strategies
	logger     *slog.Logger
}

func New(
	reg *registry.Registry,
	activities *activityservice.Service,
	strategies member.Strategies,
	logger *slog.Logger,
) *Service {
	return &Service{
		registry:   reg,
		activities: activities,
		strategies: strategies,
		logger:     logger,
	}
}

func (s *Service) Create(kind member.Kind, name, id string, age *int) (*member.Member, error) {
	m, err := member.New(member.CreateParams{Kind: kind, Name: name, ID: id, Age: age})
	if err != nil {
		return nil, err
	}
	if err := s.registry.PutMember(m); err != nil {
		return nil, err
	}
	s.logger.Info("member registered", "id", m.ID, "name", m.Name, "kind", m.Kind)
	return m, nil
}

func (s *Service) Get(id string) (*member.Member, error) {
	m, ok := s.registry.Member(id)
	if !ok {
		return nil, fmt.Errorf("%w: id %s", member.ErrMemberNotFound, id)
	}
	return m, nil
}

func (s *Service) List() []*member.Member {
	return s.registry.Members()
}

func (s *Service) ListByKind(kind member.Kind) ([]*member.Member, error) {
	kind = member.Kind(strings.ToLower(strings.TrimSpace(string(kind))))
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q (valid kinds: %v)", member.ErrInvalidKind, kind, member.Kinds())
	}
	return lo.Filter(s.registry.Members(), func(m *member.Member, _ int) bool {
		return m.Kind == kind
	}), nil
}

// Modify re-creates the member under a new variant, preserving its
// activity links, and replaces the old entry. Activity-side links stay
// valid because the id does not change.
func (s *Service) Modify(id string, kind member.Kind, age *int) (*member.Member, error) {
	current, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	next, err := member.New(member.CreateParams{Kind: kind, Name: current.Name, ID: current.ID, Age: age})
	if err != nil {
		return nil, err
	}
	next.Activities = slices.Clone(current.Activities)

	s.registry.DeleteMember(id)
	if err := s.registry.PutMember(next); err != nil {
		return nil, err
	}

	changes, _ := diff.Diff(current, next)
	for _, c := range changes {
		s.logger.Debug("member field changed",
			"id", id,
			"field", strings.Join(c.Path, "."),
			"from", c.From,
			"to", c.To,
		)
	}
	s.logger.Info("member modified", "id", id, "kind", next.Kind)
	return next, nil
}

func (s *Service) Delete(id string) error {
	m, err := s.Get(id)
	if err != nil {
		return err
	}

	for _, name := range slices.Clone(m.Activities) {
		if err := s.activities.Unenroll(name, id); err != nil {
			return err
		}
	}

	s.registry.DeleteMember(id)
	s.logger.Info("member deleted", "id", id, "name", m.Name)
	return nil
}

// CalculateFee computes the periodic fee via the variant's strategy.
func (s *Service) CalculateFee(id string) (float64, error) {
	m, err := s.Get(id)
	if err != nil {
		return 0, err
	}
	strategy, err := s.strategies.For(m.Kind)
	if err != nil {
		return 0, err
	}
	return strategy.Calculate(m, s.enrolled(m)), nil
}

// DescribeFee renders the human description of the fee computation.
func (s *Service) DescribeFee(id string) (string, error) {
	m, err := s.Get(id)
	if err != nil {
		return "", err
	}
	strategy, err := s.strategies.For(m.Kind)
	if err != nil {
		return "", err
	}
	return strategy.Describe(m, s.enrolled(m)), nil
}

func (s *Service) enrolled(m *member.Member) []*activity.Activity {
	acts := make([]*activity.Activity, 0, len(m.Activities))
	for _, name := range m.Activities {
		if act, ok := s.registry.Activity(name); ok {
			acts = append(acts, act)
		}
	}
	return acts
}
