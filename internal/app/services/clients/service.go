// Package clients manages the gym member registry.
package clients

import (
	"context"
	"strings"

	"github.com/irongym/backend/internal/app/apperr"
	"github.com/irongym/backend/internal/app/domain/client"
	"github.com/irongym/backend/internal/app/storage"
	"github.com/irongym/backend/pkg/logger"
)

// Service manages client records and validation.
type Service struct {
	store storage.ClientStore
	log   *logger.Logger
}

// New constructs a client service.
func New(store storage.ClientStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("clients")
	}
	return &Service{store: store, log: log}
}

// Create registers a new client after field validation and uniqueness checks
// on phone and identification.
func (s *Service) Create(ctx context.Context, c client.Client) (client.Client, error) {
	c = normalize(c)
	if err := s.validate(ctx, c, ""); err != nil {
		return client.Client{}, err
	}

	created, err := s.store.CreateClient(ctx, c)
	if err != nil {
		return client.Client{}, err
	}
	s.log.WithField("client_id", created.ID).Info("client created")
	return created, nil
}

// Update replaces the client with the given id, re-running create validation
// with the record itself excluded from uniqueness checks.
func (s *Service) Update(ctx context.Context, id string, c client.Client) (client.Client, error) {
	if _, err := s.store.GetClient(ctx, id); err != nil {
		return client.Client{}, err
	}
	c = normalize(c)
	c.ID = id
	if err := s.validate(ctx, c, id); err != nil {
		return client.Client{}, err
	}

	updated, err := s.store.UpdateClient(ctx, c)
	if err != nil {
		return client.Client{}, err
	}
	s.log.WithField("client_id", id).Info("client updated")
	return updated, nil
}

// Get retrieves a client by identifier.
func (s *Service) Get(ctx context.Context, id string) (client.Client, error) {
	return s.store.GetClient(ctx, id)
}

// List returns all clients in insertion order.
func (s *Service) List(ctx context.Context) ([]client.Client, error) {
	return s.store.ListClients(ctx)
}

// Delete removes a client by identifier. Dependent records referencing the
// client are not touched; references are validated at write time only.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteClient(ctx, id); err != nil {
		return err
	}
	s.log.WithField("client_id", id).Info("client deleted")
	return nil
}

func normalize(c client.Client) client.Client {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Identification = strings.TrimSpace(c.Identification)
	return c
}

// validate aggregates field problems, then checks phone and identification
// uniqueness against the store. selfID is excluded on update.
func (s *Service) validate(ctx context.Context, c client.Client, selfID string) error {
	v := apperr.NewValidation()
	for field, msg := range c.Problems() {
		v.Add(field, msg)
	}
	if err := v.ErrOrNil(); err != nil {
		return err
	}

	existing, err := s.store.ListClients(ctx)
	if err != nil {
		return err
	}
	for _, other := range existing {
		if other.ID == selfID {
			continue
		}
		if other.Phone == c.Phone {
			return apperr.Conflict("client", "phone %s already registered", c.Phone)
		}
		if other.Identification == c.Identification {
			return apperr.Conflict("client", "identification %s already registered", c.Identification)
		}
	}
	return nil
}
