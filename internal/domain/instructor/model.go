package instructor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mvidela/go_club_backend/internal/domain"
	"github.com/samber/lo"
)

var (
	ErrInstructorNotFound = errors.New("instructor not found")
	ErrInstructorExists   = errors.New("instructor already exists")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Instructor teaches zero or more activities; Activities holds activity
// display names, the reverse link lives on the Activity side.
type Instructor struct {
	ID         string   `diff:"-"`
	Name       string   `diff:"name"`
	Salary     float64  `diff:"salary"`
	Activities []string `diff:"-"`
}

type CreateParams struct {
	Name   string  `validate:"required"`
	ID     string  `validate:"required,numeric"`
	Salary float64 `validate:"gte=0"`
}

func New(params CreateParams) (*Instructor, error) {
	if err := validate.Struct(params); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			return nil, fmt.Errorf("%w: %s %s", domain.ErrValidation, errs[0].Field(), errs[0].Tag())
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	return &Instructor{
		ID:     params.ID,
		Name:   params.Name,
		Salary: params.Salary,
	}, nil
}

func (i *Instructor) Teaches(activityName string) bool {
	return lo.ContainsBy(i.Activities, func(name string) bool {
		return strings.EqualFold(name, activityName)
	})
}

func (i *Instructor) AddActivity(activityName string) {
	if !lo.Contains(i.Activities, activityName) {
		i.Activities = append(i.Activities, activityName)
	}
}

func (i *Instructor) RemoveActivity(activityName string) {
	i.Activities = lo.Without(i.Activities, activityName)
}
