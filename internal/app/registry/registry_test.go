package registry

import (
	"testing"

	"github.com/mvidela/go_club_backend/internal/domain/activity"
	"github.com/mvidela/go_club_backend/internal/domain/instructor"
	"github.com/mvidela/go_club_backend/internal/domain/member"
	"github.com/mvidela/go_club_backend/internal/domain/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberUniqueness(t *testing.T) {
	reg := New()
	m := &member.Member{ID: "40123456", Name: "Ana Lopez", Kind: member.KindRegular}

	require.NoError(t, reg.PutMember(m))
	err := reg.PutMember(&member.Member{ID: "40123456", Name: "Other"})
	require.ErrorIs(t, err, member.ErrMemberExists)

	got, ok := reg.Member("40123456")
	require.True(t, ok)
	assert.Equal(t, "Ana Lopez", got.Name)
}

func TestMemberAbsenceIsNotAnError(t *testing.T) {
	reg := New()

	_, ok := reg.Member("12345678")
	assert.False(t, ok)
	assert.False(t, reg.DeleteMember("12345678"))
}

func TestActivityKeyIsCaseInsensitive(t *testing.T) {
	reg := New()
	require.NoError(t, reg.PutActivity(&activity.Activity{Name: "Tennis", Cost: 20000, Capacity: 10}))

	err := reg.PutActivity(&activity.Activity{Name: "TENNIS"})
	require.ErrorIs(t, err, activity.ErrActivityExists)

	got, ok := reg.Activity("tennis")
	require.True(t, ok)
	assert.Equal(t, "Tennis", got.Name)

	assert.True(t, reg.DeleteActivity("TeNNis"))
	_, ok = reg.Activity("tennis")
	assert.False(t, ok)
}

func TestInstructorCRUD(t *testing.T) {
	reg := New()
	require.NoError(t, reg.PutInstructor(&instructor.Instructor{ID: "25123456", Name: "Juan Martinez"}))
	require.ErrorIs(t, reg.PutInstructor(&instructor.Instructor{ID: "25123456"}), instructor.ErrInstructorExists)

	assert.Len(t, reg.Instructors(), 1)
	assert.True(t, reg.DeleteInstructor("25123456"))
	assert.Empty(t, reg.Instructors())
}

func TestPaymentsAreAppendOnly(t *testing.T) {
	reg := New()
	reg.AddPayment(&payment.Payment{Receipt: "PAY-1-1", MemberID: "1", Amount: 100})
	reg.AddPayment(&payment.Payment{Receipt: "PAY-2-1", MemberID: "2", Amount: 200})
	reg.AddPayment(&payment.Payment{Receipt: "PAY-1-2", MemberID: "1", Amount: 300})

	assert.Len(t, reg.Payments(), 3)

	mine := reg.PaymentsByMember("1")
	require.Len(t, mine, 2)
	assert.Equal(t, "PAY-1-1", mine[0].Receipt)
	assert.Equal(t, "PAY-1-2", mine[1].Receipt)
}

func TestReset(t *testing.T) {
	reg := New()
	require.NoError(t, reg.PutMember(&member.Member{ID: "40123456"}))
	reg.AddPayment(&payment.Payment{Receipt: "PAY-1-1"})

	reg.Reset()

	assert.Empty(t, reg.Members())
	assert.Empty(t, reg.Payments())
}
