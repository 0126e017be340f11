package member

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mvidela/go_club_backend/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type CreateParams struct {
	Kind Kind   `validate:"required"`
	Name string `validate:"required"`
	ID   string `validate:"required,numeric"`
	Age  *int   `validate:"omitempty,gte=0"`
}

// New builds a member of the requested variant. Minor members require an
// age strictly below 18.
func New(params CreateParams) (*Member, error) {
	params.Kind = Kind(strings.ToLower(strings.TrimSpace(string(params.Kind))))

	if err := validate.Struct(params); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			return nil, fmt.Errorf("%w: %s %s", domain.ErrValidation, errs[0].Field(), errs[0].Tag())
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	m := &Member{
		ID:           params.ID,
		Name:         params.Name,
		Kind:         params.Kind,
		Status:       StatusPending,
		RegisteredAt: time.Now().UTC(),
	}

	switch params.Kind {
	case KindRegular, KindPremium:
	case KindMinor:
		if params.Age == nil {
			return nil, fmt.Errorf("%w: age is required for a minor member", domain.ErrValidation)
		}
		if *params.Age >= 18 {
			return nil, fmt.Errorf("%w: a minor member must be younger than 18", domain.ErrValidation)
		}
		m.Age = *params.Age
	default:
		return nil, fmt.Errorf("%w: %q (valid kinds: %v)", ErrInvalidKind, params.Kind, Kinds())
	}

	return m, nil
}
