package instructorservice

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/mvidela/go_club_backend/internal/app/registry"
	"github.com/mvidela/go_club_backend/internal/domain"
	"github.com/mvidela/go_club_backend/internal/domain/instructor"
	"github.com/samber/lo"
)

type Service struct {
	registry *registry.Registry
	logger   *slog.Logger
}

func New(reg *registry.Registry, logger *slog.Logger) *Service {
	return &Service{registry: reg, logger: logger}
}

func (s *Service) Create(name, id string, salary float64) (*instructor.Instructor, error) {
	inst, err := instructor.New(instructor.CreateParams{Name: name, ID: id, Salary: salary})
	if err != nil {
		return nil, err
	}
	if err := s.registry.PutInstructor(inst); err != nil {
		return nil, err
	}
	s.logger.Info("instructor registered", "id", inst.ID, "name", inst.Name)
	return inst, nil
}

func (s *Service) Get(id string) (*instructor.Instructor, error) {
	inst, ok := s.registry.Instructor(id)
	if !ok {
		return nil, fmt.Errorf("%w: id %s", instructor.ErrInstructorNotFound, id)
	}
	return inst, nil
}

func (s *Service) List() []*instructor.Instructor {
	return s.registry.Instructors()
}

// Delete unassigns the instructor from every activity before removing
// the registry entry.
func (s *Service) Delete(id string) error {
	inst, err := s.Get(id)
	if err != nil {
		return err
	}

	for _, name := range slices.Clone(inst.Activities) {
		if act, ok := s.registry.Activity(name); ok {
			act.RemoveInstructor(inst.ID)
		}
		inst.RemoveActivity(name)
	}

	s.registry.DeleteInstructor(id)
	s.logger.Info("instructor deleted", "id", id, "name", inst.Name)
	return nil
}

func (s *Service) UpdateSalary(id string, salary float64) error {
	inst, err := s.Get(id)
	if err != nil {
		return err
	}
	if salary < 0 {
		return fmt.Errorf("%w: salary must not be negative", domain.ErrValidation)
	}

	old := inst.Salary
	inst.Salary = salary
	s.logger.Info("instructor salary updated", "id", id, "from", old, "to", salary)
	return nil
}

// ByActivity lists the instructors teaching the named activity.
func (s *Service) ByActivity(activityName string) []*instructor.Instructor {
	return lo.Filter(s.registry.Instructors(), func(i *instructor.Instructor, _ int) bool {
		return i.Teaches(activityName)
	})
}

// TotalPayroll sums the salaries of every registered instructor.
func (s *Service) TotalPayroll() float64 {
	return lo.SumBy(s.registry.Instructors(), func(i *instructor.Instructor) float64 {
		return i.Salary
	})
}
