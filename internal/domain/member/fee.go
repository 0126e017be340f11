package member

import (
	"fmt"
	"strings"

	"github.com/mvidela/go_club_backend/internal/domain/activity"
	"github.com/samber/lo"
)

const (
	DefaultPremiumFee = 30000
	DefaultMinorFee   = 15000
)

// FeeStrategy computes the periodic fee for one member variant together
// with a human description of the computation.
type FeeStrategy interface {
	Calculate(m *Member, enrolled []*activity.Activity) float64
	Describe(m *Member, enrolled []*activity.Activity) string
}

// Strategies is the variant-keyed dispatch table. A kind without an
// entry is a configuration error, never a silent zero.
type Strategies map[Kind]FeeStrategy

func NewStrategies(premiumFee, minorFee float64) Strategies {
	return Strategies{
		KindRegular: RegularFee{},
		KindPremium: FixedFee{Label: "Premium", Amount: premiumFee, Note: "access to all activities"},
		KindMinor:   FixedFee{Label: "Minor", Amount: minorFee, Note: "reduced fee"},
	}
}

func DefaultStrategies() Strategies {
	return NewStrategies(DefaultPremiumFee, DefaultMinorFee)
}

func (s Strategies) For(kind Kind) (FeeStrategy, error) {
	strategy, ok := s[kind]
	if !ok {
		return nil, fmt.Errorf("%w: kind %q", ErrNoFeeStrategy, kind)
	}
	return strategy, nil
}

// RegularFee charges the sum of the monthly costs of every enrolled
// activity.
type RegularFee struct{}

func (RegularFee) Calculate(_ *Member, enrolled []*activity.Activity) float64 {
	return lo.SumBy(enrolled, func(a *activity.Activity) float64 { return a.Cost })
}

func (f RegularFee) Describe(m *Member, enrolled []*activity.Activity) string {
	if len(enrolled) == 0 {
		return "Regular fee: $0 (no enrolled activities)"
	}
	addends := lo.Map(enrolled, func(a *activity.Activity, _ int) string {
		return fmt.Sprintf("$%v", a.Cost)
	})
	return fmt.Sprintf("Regular fee: %s = $%v", strings.Join(addends, " + "), f.Calculate(m, enrolled))
}

// FixedFee charges a flat amount regardless of enrollment.
type FixedFee struct {
	Label  string
	Amount float64
	Note   string
}

func (f FixedFee) Calculate(*Member, []*activity.Activity) float64 {
	return f.Amount
}

func (f FixedFee) Describe(*Member, []*activity.Activity) string {
	return fmt.Sprintf("%s fee: $%v (%s)", f.Label, f.Amount, f.Note)
}
