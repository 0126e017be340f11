package paymentservice

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mvidela/go_club_backend/internal/app/registry"
	"github.com/mvidela/go_club_backend/internal/domain"
	"github.com/mvidela/go_club_backend/internal/domain/member"
	"github.com/mvidela/go_club_backend/internal/domain/payment"
	"github.com/samber/lo"
)

// Service owns the append-only payment ledger and publishes payment
// lifecycle events through its own notifier.
type Service struct {
	registry *registry.Registry
	events   *domain.Notifier
	logger   *slog.Logger
}

func New(reg *registry.Registry, logger *slog.Logger, subscribers ...domain.Subscriber) *Service {
	s := &Service{
		registry: reg,
		events:   domain.NewNotifier(logger),
		logger:   logger,
	}
	for _, sub := range subscribers {
		s.events.Subscribe(sub)
	}
	return s
}

func (s *Service) Subscribe(sub domain.Subscriber) {
	s.events.Subscribe(sub)
}

// Record appends a payment, marks the payer as paid and publishes a
// payment-recorded event. An empty method defaults to cash.
func (s *Service) Record(memberID string, amount float64, method payment.Method) (*payment.Payment, error) {
	m, err := s.member(memberID)
	if err != nil {
		return nil, err
	}
	if amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", domain.ErrValidation)
	}
	if method == "" {
		method = payment.MethodCash
	}

	p := payment.New(m.ID, amount, method)
	s.registry.AddPayment(p)
	m.Status = member.StatusPaid

	s.events.Publish(payment.RecordedEvent{
		At:      p.At,
		Member:  m.Name,
		Amount:  p.Amount,
		Method:  p.Method,
		Receipt: p.Receipt,
	})

	s.logger.Info("payment recorded", "member", m.Name, "amount", p.Amount, "receipt", p.Receipt)
	return p, nil
}

func (s *Service) List() []*payment.Payment {
	return s.registry.Payments()
}

func (s *Service) ByMember(memberID string) []*payment.Payment {
	return s.registry.PaymentsByMember(memberID)
}

func (s *Service) TotalCollected() float64 {
	return lo.SumBy(s.registry.Payments(), func(p *payment.Payment) float64 { return p.Amount })
}

func (s *Service) TotalCollectedBy(memberID string) float64 {
	return lo.SumBy(s.ByMember(memberID), func(p *payment.Payment) float64 { return p.Amount })
}

// TotalsByMethod breaks the collected total down per payment method.
func (s *Service) TotalsByMethod() map[payment.Method]float64 {
	totals := make(map[payment.Method]float64)
	for _, p := range s.registry.Payments() {
		totals[p.Method] += p.Amount
	}
	return totals
}

// SendReminder publishes a payment-due notice without mutating state.
func (s *Service) SendReminder(memberID string, amount float64, due string) error {
	m, err := s.member(memberID)
	if err != nil {
		return err
	}

	s.events.Publish(payment.ReminderEvent{
		At:     time.Now().UTC(),
		Member: m.Name,
		Amount: amount,
		Due:    due,
	})
	return nil
}

// MarkOverdue flips the payer's status to overdue and publishes the
// corresponding event.
func (s *Service) MarkOverdue(memberID string, amount float64) error {
	m, err := s.member(memberID)
	if err != nil {
		return err
	}

	m.Status = member.StatusOverdue
	s.events.Publish(payment.OverdueEvent{
		At:     time.Now().UTC(),
		Member: m.Name,
		Amount: amount,
	})
	return nil
}

func (s *Service) member(id string) (*member.Member, error) {
	m, ok := s.registry.Member(id)
	if !ok {
		return nil, fmt.Errorf("%w: id %s", member.ErrMemberNotFound, id)
	}
	return m, nil
}
