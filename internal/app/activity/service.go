package activityservice

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mvidela/go_club_backend/internal/app/registry"
	"github.com/mvidela/go_club_backend/internal/domain"
	"github.com/mvidela/go_club_backend/internal/domain/activity"
	"github.com/mvidela/go_club_backend/internal/domain/instructor"
	"github.com/mvidela/go_club_backend/internal/domain/member"
)

// Service owns every business rule touching activities: enrollment,
// instructor assignment, tournaments and cascading deletion. Each call
// either fully succeeds or fails with no partial state change.
type Service struct {
	registry *registry.Registry
	watcher  domain.Subscriber
	logger   *slog.Logger
}

// New wires the service; watcher, when non-nil, is attached to every
// created activity as the default tournament-notice subscriber.
func New(reg *registry.Registry, watcher domain.Subscriber, logger *slog.Logger) *Service {
	return &Service{registry: reg, watcher: watcher, logger: logger}
}

func (s *Service) Create(name string, cost *float64, capacity *int) (*activity.Activity, error) {
	act, err := activity.New(activity.CreateParams{Name: name, Cost: cost, Capacity: capacity})
	if err != nil {
		return nil, err
	}
	if err := s.registry.PutActivity(act); err != nil {
		return nil, err
	}
	if s.watcher != nil {
		act.Events.Subscribe(s.watcher)
	}
	s.logger.Info("activity registered", "name", act.Name, "cost", act.Cost, "capacity", act.Capacity)
	return act, nil
}

// Resubscribe reattaches the default subscriber to every stored
// activity; used after restoring a snapshot.
func (s *Service) Resubscribe() {
	if s.watcher == nil {
		return
	}
	for _, act := range s.registry.Activities() {
		act.Events.Subscribe(s.watcher)
	}
}

func (s *Service) Get(name string) (*activity.Activity, error) {
	act, ok := s.registry.Activity(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", activity.ErrActivityNotFound, name)
	}
	return act, nil
}

func (s *Service) List() []*activity.Activity {
	return s.registry.Activities()
}

// AvailableProfiles lists the predefined activity profiles that the
// factory knows how to create.
func (s *Service) AvailableProfiles() []string {
	return activity.AvailableProfiles()
}

// Enroll adds a member to an activity, keeping the link bidirectional.
func (s *Service) Enroll(activityName, memberID string) error {
	act, err := s.Get(activityName)
	if err != nil {
		return err
	}
	m, err := s.member(memberID)
	if err != nil {
		return err
	}

	if act.Full() {
		return fmt.Errorf("%w: %s (%d/%d)", activity.ErrCapacityReached, act.Name, len(act.Members), act.Capacity)
	}
	if act.Enrolled(m.ID) {
		return fmt.Errorf("%w: %s in %s", activity.ErrAlreadyEnrolled, m.Name, act.Name)
	}

	act.AddMember(m.ID)
	m.AddActivity(act.Name)
	s.logger.Info("member enrolled", "member", m.Name, "activity", act.Name)
	return nil
}

func (s *Service) Unenroll(activityName, memberID string) error {
	act, err := s.Get(activityName)
	if err != nil {
		return err
	}
	m, err := s.member(memberID)
	if err != nil {
		return err
	}

	if !act.Enrolled(m.ID) {
		return fmt.Errorf("%w: %s in %s", activity.ErrNotEnrolled, m.Name, act.Name)
	}

	act.RemoveMember(m.ID)
	m.RemoveActivity(act.Name)
	s.logger.Info("member unenrolled", "member", m.Name, "activity", act.Name)
	return nil
}

// AssignInstructor is idempotent: assigning an already assigned
// instructor logs a warning and succeeds.
func (s *Service) AssignInstructor(activityName, instructorID string) error {
	act, err := s.Get(activityName)
	if err != nil {
		return err
	}
	inst, err := s.instructor(instructorID)
	if err != nil {
		return err
	}

	if act.HasInstructor(inst.ID) {
		s.logger.Warn("instructor already assigned", "instructor", inst.Name, "activity", act.Name)
		return nil
	}

	act.AddInstructor(inst.ID)
	inst.AddActivity(act.Name)
	s.logger.Info("instructor assigned", "instructor", inst.Name, "activity", act.Name)
	return nil
}

func (s *Service) UnassignInstructor(activityName, instructorID string) error {
	act, err := s.Get(activityName)
	if err != nil {
		return err
	}
	inst, err := s.instructor(instructorID)
	if err != nil {
		return err
	}

	if !act.HasInstructor(inst.ID) {
		s.logger.Warn("instructor not assigned", "instructor", inst.Name, "activity", act.Name)
		return nil
	}

	act.RemoveInstructor(inst.ID)
	inst.RemoveActivity(act.Name)
	s.logger.Info("instructor unassigned", "instructor", inst.Name, "activity", act.Name)
	return nil
}

// CreateTournament appends a tournament to the activity and announces it
// to the activity's subscribers, carrying the names of the currently
// enrolled members. An empty date defaults to today.
func (s *Service) CreateTournament(activityName, tournamentName, date string, entryFee float64) (*activity.Tournament, error) {
	act, err := s.Get(activityName)
	if err != nil {
		return nil, err
	}
	if entryFee < 0 {
		return nil, fmt.Errorf("%w: entry fee must not be negative", domain.ErrValidation)
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	t := activity.NewTournament(tournamentName, act.Name, date, entryFee)
	act.AddTournament(t)

	names := make([]string, 0, len(act.Members))
	for _, id := range act.Members {
		if m, ok := s.registry.Member(id); ok {
			names = append(names, m.Name)
		}
	}

	act.Events.Publish(activity.TournamentCreatedEvent{
		At:         time.Now().UTC(),
		Tournament: t.Name,
		Activity:   act.Name,
		Date:       t.Date,
		EntryFee:   t.EntryFee,
		Members:    names,
	})

	s.logger.Info("tournament created", "tournament", t.Name, "activity", act.Name, "date", t.Date)
	return t, nil
}

// EnrollInTournament registers a participant; the member must already be
// enrolled in the owning activity.
func (s *Service) EnrollInTournament(activityName, tournamentName, memberID string) error {
	act, err := s.Get(activityName)
	if err != nil {
		return err
	}
	t, ok := act.FindTournament(tournamentName)
	if !ok {
		return fmt.Errorf("%w: %s in %s", activity.ErrTournamentNotFound, tournamentName, act.Name)
	}
	m, err := s.member(memberID)
	if err != nil {
		return err
	}

	if !act.Enrolled(m.ID) {
		return fmt.Errorf("%w: %s is not enrolled in %s", activity.ErrNotEligible, m.Name, act.Name)
	}
	if t.HasParticipant(m.ID) {
		return fmt.Errorf("%w: %s in tournament %s", activity.ErrAlreadyEnrolled, m.Name, t.Name)
	}

	t.AddParticipant(m.ID)
	s.logger.Info("tournament participant registered", "member", m.Name, "tournament", t.Name)
	return nil
}

// Delete unlinks the activity from every enrolled member and assigned
// instructor before removing it, so no dangling references remain.
func (s *Service) Delete(name string) error {
	act, err := s.Get(name)
	if err != nil {
		return err
	}

	for _, id := range act.Members {
		if m, ok := s.registry.Member(id); ok {
			m.RemoveActivity(act.Name)
		}
	}
	for _, id := range act.Instructors {
		if inst, ok := s.registry.Instructor(id); ok {
			inst.RemoveActivity(act.Name)
		}
	}

	s.registry.DeleteActivity(act.Name)
	s.logger.Info("activity deleted", "name", act.Name)
	return nil
}

func (s *Service) member(id string) (*member.Member, error) {
	m, ok := s.registry.Member(id)
	if !ok {
		return nil, fmt.Errorf("%w: id %s", member.ErrMemberNotFound, id)
	}
	return m, nil
}

func (s *Service) instructor(id string) (*instructor.Instructor, error) {
	i, ok := s.registry.Instructor(id)
	if !ok {
		return nil, fmt.Errorf("%w: id %s", instructor.ErrInstructorNotFound, id)
	}
	return i, nil
}
