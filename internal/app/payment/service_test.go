package paymentservice

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/mvidela/go_club_backend/internal/app/registry"
	"github.com/mvidela/go_club_backend/internal/domain"
	"github.com/mvidela/go_club_backend/internal/domain/member"
	"github.com/mvidela/go_club_backend/internal/domain/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capture struct {
	events []domain.Event
}

func (c *capture) Notify(e domain.Event) error {
	c.events = append(c.events, e)
	return nil
}

func newService(t *testing.T) (*Service, *registry.Registry, *capture) {
	t.Helper()
	reg := registry.New()
	watcher := &capture{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(reg, logger, watcher), reg, watcher
}

func addMember(t *testing.T, reg *registry.Registry, id, name string) *member.Member {
	t.Helper()
	m, err := member.New(member.CreateParams{Kind: member.KindRegular, Name: name, ID: id})
	require.NoError(t, err)
	require.NoError(t, reg.PutMember(m))
	return m
}

func TestRecordMarksPayerPaidAndPublishes(t *testing.T) {
	svc, reg, watcher := newService(t)
	m := addMember(t, reg, "40123456", "Ana Lopez")

	p, err := svc.Record(m.ID, 45000, payment.MethodCard)
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("PAY-%s-%d", m.ID, p.At.Unix()), p.Receipt)
	assert.Equal(t, member.StatusPaid, m.Status)

	mine := svc.ByMember(m.ID)
	require.Len(t, mine, 1)
	assert.Equal(t, p, mine[0])

	require.Len(t, watcher.events, 1)
	event := watcher.events[0]
	assert.Equal(t, payment.EventRecorded, event.Type())
	payload := event.Payload()
	assert.Equal(t, "Ana Lopez", payload["member"])
	assert.Equal(t, 45000.0, payload["amount"])
	assert.Equal(t, "Card", payload["method"])
	assert.Equal(t, p.Receipt, payload["receipt"])
}

func TestRecordDefaultsToCash(t *testing.T) {
	svc, reg, _ := newService(t)
	m := addMember(t, reg, "40123456", "Ana Lopez")

	p, err := svc.Record(m.ID, 1000, "")
	require.NoError(t, err)
	assert.Equal(t, payment.MethodCash, p.Method)
}

func TestRecordRejectsNegativeAmountAndUnknownPayer(t *testing.T) {
	svc, reg, watcher := newService(t)
	m := addMember(t, reg, "40123456", "Ana Lopez")

	_, err := svc.Record(m.ID, -1, payment.MethodCash)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, member.StatusPending, m.Status)

	_, err = svc.Record("99999999", 1000, payment.MethodCash)
	require.ErrorIs(t, err, member.ErrMemberNotFound)

	assert.Empty(t, svc.List())
	assert.Empty(t, watcher.events)
}

func TestTotals(t *testing.T) {
	svc, reg, _ := newService(t)
	ana := addMember(t, reg, "40123456", "Ana Lopez")
	carlos := addMember(t, reg, "35789012", "Carlos Gomez")

	_, err := svc.Record(ana.ID, 45000, payment.MethodCard)
	require.NoError(t, err)
	_, err = svc.Record(ana.ID, 5000, payment.MethodCash)
	require.NoError(t, err)
	_, err = svc.Record(carlos.ID, 30000, payment.MethodTransfer)
	require.NoError(t, err)

	assert.Equal(t, 80000.0, svc.TotalCollected())
	assert.Equal(t, 50000.0, svc.TotalCollectedBy(ana.ID))
	assert.Equal(t, 30000.0, svc.TotalCollectedBy(carlos.ID))

	byMethod := svc.TotalsByMethod()
	assert.Equal(t, 45000.0, byMethod[payment.MethodCard])
	assert.Equal(t, 5000.0, byMethod[payment.MethodCash])
	assert.Equal(t, 30000.0, byMethod[payment.MethodTransfer])
}

func TestSendReminderMutatesNothing(t *testing.T) {
	svc, reg, watcher := newService(t)
	m := addMember(t, reg, "40123456", "Ana Lopez")

	require.NoError(t, svc.SendReminder(m.ID, 15000, "2026-09-10"))

	assert.Equal(t, member.StatusPending, m.Status)
	assert.Empty(t, svc.List())

	require.Len(t, watcher.events, 1)
	event := watcher.events[0]
	assert.Equal(t, payment.EventReminder, event.Type())
	assert.Equal(t, "2026-09-10", event.Payload()["due"])
}

func TestMarkOverdue(t *testing.T) {
	svc, reg, watcher := newService(t)
	m := addMember(t, reg, "40123456", "Ana Lopez")

	require.NoError(t, svc.MarkOverdue(m.ID, 15000))

	assert.Equal(t, member.StatusOverdue, m.Status)
	require.Len(t, watcher.events, 1)
	assert.Equal(t, payment.EventOverdue, watcher.events[0].Type())
}
