// Package payments manages payment records and the payment report.
package payments

import (
	"context"

	"github.com/irongym/backend/internal/app/apperr"
	"github.com/irongym/backend/internal/app/domain/payment"
	"github.com/irongym/backend/internal/app/storage"
	"github.com/irongym/backend/pkg/logger"
)

// Service manages payment records, their client references and the derived
// date/client report.
type Service struct {
	clients storage.ClientStore
	store   storage.PaymentStore
	log     *logger.Logger
}

// New constructs a payment service.
func New(clients storage.ClientStore, store storage.PaymentStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("payments")
	}
	return &Service{clients: clients, store: store, log: log}
}

// Create registers a payment after validating its fields and the referenced
// client.
func (s *Service) Create(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	p, err := s.validate(ctx, p)
	if err != nil {
		return payment.Payment{}, err
	}

	created, err := s.store.CreatePayment(ctx, p)
	if err != nil {
		return payment.Payment{}, err
	}
	s.log.WithField("payment_id", created.ID).
		WithField("client_id", created.ClientID).
		WithField("method", string(created.Method)).
		Info("payment created")
	return created, nil
}

// Update replaces the payment with the given id, re-running create
// validation.
func (s *Service) Update(ctx context.Context, id string, p payment.Payment) (payment.Payment, error) {
	if _, err := s.store.GetPayment(ctx, id); err != nil {
		return payment.Payment{}, err
	}
	p.ID = id
	p, err := s.validate(ctx, p)
	if err != nil {
		return payment.Payment{}, err
	}

	updated, err := s.store.UpdatePayment(ctx, p)
	if err != nil {
		return payment.Payment{}, err
	}
	s.log.WithField("payment_id", id).Info("payment updated")
	return updated, nil
}

// Get retrieves a payment by identifier.
func (s *Service) Get(ctx context.Context, id string) (payment.Payment, error) {
	return s.store.GetPayment(ctx, id)
}

// List returns all payments in insertion order.
func (s *Service) List(ctx context.Context) ([]payment.Payment, error) {
	return s.store.ListPayments(ctx)
}

// ListByClient returns the payments referencing the given client.
func (s *Service) ListByClient(ctx context.Context, clientID string) ([]payment.Payment, error) {
	all, err := s.store.ListPayments(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]payment.Payment, 0)
	if clientID == "" {
		return out, nil
	}
	for _, p := range all {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out, nil
}

// Methods lists the allowed payment methods.
func (s *Service) Methods() []payment.Method {
	return payment.Methods()
}

// Delete removes a payment by identifier.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.DeletePayment(ctx, id); err != nil {
		return err
	}
	s.log.WithField("payment_id", id).Info("payment deleted")
	return nil
}

func (s *Service) validate(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	v := apperr.NewValidation()
	if p.Amount <= 0 {
		v.Add("amount", "amount must be positive")
	}
	if p.DateTime.IsZero() {
		v.Add("dateTime", "dateTime is required")
	}
	method, ok := payment.ParseMethod(string(p.Method))
	if !ok {
		v.Add("paymentMethod", "allowed methods: EFECTIVO, TRANSFERENCIA, NEQUI, DAVIPLATA")
	} else {
		p.Method = method
	}
	if p.ClientID == "" {
		v.Add("clientId", "clientId is required")
	} else {
		if _, err := s.clients.GetClient(ctx, p.ClientID); err != nil {
			if apperr.IsNotFound(err) {
				v.Add("clientId", "client "+p.ClientID+" does not exist")
			} else {
				return payment.Payment{}, err
			}
		}
	}
	if err := v.ErrOrNil(); err != nil {
		return payment.Payment{}, err
	}
	return p, nil
}
