// Package memberships manages membership plans and their client references.
package memberships

import (
	"context"

	"github.com/irongym/backend/internal/app/apperr"
	"github.com/irongym/backend/internal/app/domain/dates"
	"github.com/irongym/backend/internal/app/domain/membership"
	"github.com/irongym/backend/internal/app/storage"
	"github.com/irongym/backend/pkg/logger"
)

// Service manages membership records, referential checks against the client
// store and the one-membership-per-client rule.
type Service struct {
	clients storage.ClientStore
	store   storage.MembershipStore
	log     *logger.Logger
}

// New constructs a membership service.
func New(clients storage.ClientStore, store storage.MembershipStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("memberships")
	}
	return &Service{clients: clients, store: store, log: log}
}

// Create registers a membership after validating its fields, the referenced
// client, and the at-most-one-membership-per-client rule.
func (s *Service) Create(ctx context.Context, m membership.Membership) (membership.Membership, error) {
	m, err := s.validate(ctx, m, "")
	if err != nil {
		return membership.Membership{}, err
	}

	created, err := s.store.CreateMembership(ctx, m)
	if err != nil {
		return membership.Membership{}, err
	}
	s.log.WithField("membership_id", created.ID).
		WithField("client_id", created.ClientID).
		Info("membership created")
	return created, nil
}

// Update replaces the membership with the given id, re-running create
// validation with the record itself excluded from the per-client check.
func (s *Service) Update(ctx context.Context, id string, m membership.Membership) (membership.Membership, error) {
	if _, err := s.store.GetMembership(ctx, id); err != nil {
		return membership.Membership{}, err
	}
	m.ID = id
	m, err := s.validate(ctx, m, id)
	if err != nil {
		return membership.Membership{}, err
	}

	updated, err := s.store.UpdateMembership(ctx, m)
	if err != nil {
		return membership.Membership{}, err
	}
	s.log.WithField("membership_id", id).Info("membership updated")
	return updated, nil
}

// Get retrieves a membership by identifier.
func (s *Service) Get(ctx context.Context, id string) (membership.Membership, error) {
	return s.store.GetMembership(ctx, id)
}

// List returns all memberships in insertion order.
func (s *Service) List(ctx context.Context) ([]membership.Membership, error) {
	return s.store.ListMemberships(ctx)
}

// ListActive returns memberships whose date range covers today.
func (s *Service) ListActive(ctx context.Context) ([]membership.Membership, error) {
	return s.filter(ctx, func(m membership.Membership) bool {
		return m.ActiveOn(dates.Today())
	})
}

// ListExpired returns memberships that ended before today.
func (s *Service) ListExpired(ctx context.Context) ([]membership.Membership, error) {
	return s.filter(ctx, func(m membership.Membership) bool {
		return m.ExpiredOn(dates.Today())
	})
}

// Delete removes a membership by identifier.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteMembership(ctx, id); err != nil {
		return err
	}
	s.log.WithField("membership_id", id).Info("membership deleted")
	return nil
}

// PriceFor quotes the list price for a tier over a number of months.
func (s *Service) PriceFor(t membership.Type, months int) float64 {
	if months < 1 {
		months = 1
	}
	return t.MonthlyPrice() * float64(months)
}

func (s *Service) filter(ctx context.Context, keep func(membership.Membership) bool) ([]membership.Membership, error) {
	all, err := s.store.ListMemberships(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]membership.Membership, 0, len(all))
	for _, m := range all {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *Service) validate(ctx context.Context, m membership.Membership, selfID string) (membership.Membership, error) {
	v := apperr.NewValidation()
	if m.ClientID == "" {
		v.Add("clientId", "clientId is required")
	}
	typ, ok := membership.ParseType(string(m.Type))
	if !ok {
		v.Add("type", "type must be BASIC or PREMIUM")
	} else {
		m.Type = typ
	}
	if m.StartDate.IsZero() {
		v.Add("startDate", "startDate is required")
	}
	if m.EndDate.IsZero() {
		v.Add("endDate", "endDate is required")
	} else if !m.StartDate.IsZero() && m.EndDate.Before(m.StartDate) {
		v.Add("endDate", "endDate must not be before startDate")
	}
	if m.Price <= 0 {
		v.Add("price", "price must be positive")
	}

	// Referential check: the client must exist at write time.
	if m.ClientID != "" {
		if _, err := s.clients.GetClient(ctx, m.ClientID); err != nil {
			if apperr.IsNotFound(err) {
				v.Add("clientId", "client "+m.ClientID+" does not exist")
			} else {
				return membership.Membership{}, err
			}
		}
	}
	if err := v.ErrOrNil(); err != nil {
		return membership.Membership{}, err
	}

	existing, err := s.store.ListMemberships(ctx)
	if err != nil {
		return membership.Membership{}, err
	}
	for _, other := range existing {
		if other.ID != selfID && other.ClientID == m.ClientID {
			return membership.Membership{}, apperr.Conflict("membership", "client %s already has a membership", m.ClientID)
		}
	}
	return m, nil
}
