package activity

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/mvidela/go_club_backend/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var titleCaser = cases.Title(language.English)

type Profile struct {
	Cost     float64
	Capacity int
}

// Activities not covered by a predefined profile fall back to this
// generic one; the fallback is intentional, not an error.
var defaultProfile = Profile{Cost: 15000, Capacity: 20}

var profiles = map[string]Profile{
	"tennis":     {Cost: 20000, Capacity: 10},
	"swimming":   {Cost: 18000, Capacity: 15},
	"padel":      {Cost: 22000, Capacity: 8},
	"gymnastics": {Cost: 15000, Capacity: 20},
	"yoga":       {Cost: 12000, Capacity: 15},
	"football":   {Cost: 25000, Capacity: 22},
	"basketball": {Cost: 20000, Capacity: 12},
	"volleyball": {Cost: 18000, Capacity: 12},
	"pilates":    {Cost: 16000, Capacity: 10},
	"boxing":     {Cost: 24000, Capacity: 8},
}

type CreateParams struct {
	Name     string   `validate:"required"`
	Cost     *float64 `validate:"omitempty,gte=0"`
	Capacity *int     `validate:"omitempty,gt=0"`
}

// New builds an activity from a predefined profile; explicit cost and
// capacity override the profile values. The display name is capitalized
// for presentation consistency.
func New(params CreateParams) (*Activity, error) {
	if err := validate.Struct(params); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			return nil, fmt.Errorf("%w: %s %s", domain.ErrValidation, errs[0].Field(), errs[0].Tag())
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	key := Key(params.Name)

	profile, ok := profiles[key]
	if !ok {
		profile = defaultProfile
	}
	if params.Cost != nil {
		profile.Cost = *params.Cost
	}
	if params.Capacity != nil {
		profile.Capacity = *params.Capacity
	}

	return &Activity{
		Name:     titleCaser.String(key),
		Cost:     profile.Cost,
		Capacity: profile.Capacity,
		Events:   domain.NewNotifier(nil),
	}, nil
}

// ProfileFor returns the predefined profile for a name, if any.
func ProfileFor(name string) (Profile, bool) {
	p, ok := profiles[Key(name)]
	return p, ok
}

// AvailableProfiles lists the names of the predefined activity profiles.
func AvailableProfiles() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
