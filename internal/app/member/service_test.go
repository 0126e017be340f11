package memberservice

import (
	"io"
	"log/slog"
	"testing"

	activityservice "github.com/mvidela/go_club_backend/internal/app/activity"
	"github.com/mvidela/go_club_backend/internal/app/registry"
	"github.com/mvidela/go_club_backend/internal/domain/member"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func newService(t *testing.T) (*Service, *activityservice.Service, *registry.Registry) {
	t.Helper()
	reg := registry.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	activities := activityservice.New(reg, nil, logger)
	members := New(reg, activities, member.DefaultStrategies(), logger)
	return members, activities, reg
}

func TestCreateRejectsDuplicateID(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Create(member.KindRegular, "Ana Lopez", "40123456", nil)
	require.NoError(t, err)

	_, err = svc.Create(member.KindPremium, "Other Person", "40123456", nil)
	require.ErrorIs(t, err, member.ErrMemberExists)
}

func TestGetMissingMember(t *testing.T) {
	svc, _, _ := newService(t)
	_, err := svc.Get("12345678")
	require.ErrorIs(t, err, member.ErrMemberNotFound)
}

func TestListByKind(t *testing.T) {
	svc, _, _ := newService(t)
	_, err := svc.Create(member.KindRegular, "Ana Lopez", "40123456", nil)
	require.NoError(t, err)
	_, err = svc.Create(member.KindPremium, "Carlos Gomez", "35789012", nil)
	require.NoError(t, err)

	regulars, err := svc.ListByKind(member.KindRegular)
	require.NoError(t, err)
	require.Len(t, regulars, 1)
	assert.Equal(t, "Ana Lopez", regulars[0].Name)

	_, err = svc.ListByKind("platinum")
	require.ErrorIs(t, err, member.ErrInvalidKind)
}

func TestModifyPreservesActivityLinks(t *testing.T) {
	svc, activities, reg := newService(t)

	m, err := svc.Create(member.KindRegular, "Ana Lopez", "40123456", nil)
	require.NoError(t, err)
	_, err = activities.Create("tennis", nil, nil)
	require.NoError(t, err)
	require.NoError(t, activities.Enroll("tennis", m.ID))

	modified, err := svc.Modify(m.ID, member.KindPremium, nil)
	require.NoError(t, err)

	assert.Equal(t, member.KindPremium, modified.Kind)
	assert.Equal(t, []string{"Tennis"}, modified.Activities)

	stored, ok := reg.Member(m.ID)
	require.True(t, ok)
	assert.Same(t, modified, stored)

	act, ok := reg.Activity("tennis")
	require.True(t, ok)
	assert.True(t, act.Enrolled(m.ID))
}

func TestModifyInvalidVariantLeavesEntryIntact(t *testing.T) {
	svc, _, reg := newService(t)

	m, err := svc.Create(member.KindRegular, "Ana Lopez", "40123456", nil)
	require.NoError(t, err)

	_, err = svc.Modify(m.ID, member.KindMinor, intPtr(20))
	require.Error(t, err)

	stored, ok := reg.Member(m.ID)
	require.True(t, ok)
	assert.Equal(t, member.KindRegular, stored.Kind)
}

func TestDeleteDetachesFromActivities(t *testing.T) {
	svc, activities, reg := newService(t)

	m, err := svc.Create(member.KindRegular, "Ana Lopez", "40123456", nil)
	require.NoError(t, err)
	_, err = activities.Create("tennis", nil, nil)
	require.NoError(t, err)
	_, err = activities.Create("swimming", nil, nil)
	require.NoError(t, err)
	require.NoError(t, activities.Enroll("tennis", m.ID))
	require.NoError(t, activities.Enroll("swimming", m.ID))

	require.NoError(t, svc.Delete(m.ID))

	_, ok := reg.Member(m.ID)
	assert.False(t, ok)
	for _, name := range []string{"tennis", "swimming"} {
		act, ok := reg.Activity(name)
		require.True(t, ok)
		assert.Empty(t, act.Members)
	}
}

func TestFeeCalculationThroughService(t *testing.T) {
	svc, activities, _ := newService(t)

	regular, err := svc.Create(member.KindRegular, "Ana Lopez", "40123456", nil)
	require.NoError(t, err)
	premium, err := svc.Create(member.KindPremium, "Carlos Gomez", "35789012", nil)
	require.NoError(t, err)
	minor, err := svc.Create(member.KindMinor, "Maria Perez", "50456789", intPtr(12))
	require.NoError(t, err)

	tennisCost := 25000.0
	swimmingCost := 20000.0
	_, err = activities.Create("tennis", &tennisCost, nil)
	require.NoError(t, err)
	_, err = activities.Create("swimming", &swimmingCost, nil)
	require.NoError(t, err)

	require.NoError(t, activities.Enroll("tennis", regular.ID))
	require.NoError(t, activities.Enroll("swimming", regular.ID))
	require.NoError(t, activities.Enroll("tennis", premium.ID))

	fee, err := svc.CalculateFee(regular.ID)
	require.NoError(t, err)
	assert.Equal(t, 45000.0, fee)

	desc, err := svc.DescribeFee(regular.ID)
	require.NoError(t, err)
	assert.Equal(t, "Regular fee: $25000 + $20000 = $45000", desc)

	fee, err = svc.CalculateFee(premium.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(member.DefaultPremiumFee), fee)

	fee, err = svc.CalculateFee(minor.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(member.DefaultMinorFee), fee)
}

func TestFeeWithoutStrategyFails(t *testing.T) {
	reg := registry.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	activities := activityservice.New(reg, nil, logger)
	svc := New(reg, activities, member.Strategies{}, logger)

	m, err := svc.Create(member.KindRegular, "Ana Lopez", "40123456", nil)
	require.NoError(t, err)

	_, err = svc.CalculateFee(m.ID)
	require.ErrorIs(t, err, member.ErrNoFeeStrategy)
}
