// Package supplements manages the supplement catalog.
package supplements

import (
	"context"
	"strings"

	"github.com/irongym/backend/internal/app/apperr"
	"github.com/irongym/backend/internal/app/domain/supplement"
	"github.com/irongym/backend/internal/app/storage"
	"github.com/irongym/backend/pkg/logger"
)

// Service manages supplement records.
type Service struct {
	store storage.SupplementStore
	log   *logger.Logger
}

// New constructs a supplement service.
func New(store storage.SupplementStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("supplements")
	}
	return &Service{store: store, log: log}
}

// Create registers a supplement.
func (s *Service) Create(ctx context.Context, sp supplement.Supplement) (supplement.Supplement, error) {
	sp, err := normalize(sp)
	if err != nil {
		return supplement.Supplement{}, err
	}

	created, err := s.store.CreateSupplement(ctx, sp)
	if err != nil {
		return supplement.Supplement{}, err
	}
	s.log.WithField("supplement_id", created.ID).
		WithField("name", created.Name).
		Info("supplement created")
	return created, nil
}

// Update replaces the supplement with the given id.
func (s *Service) Update(ctx context.Context, id string, sp supplement.Supplement) (supplement.Supplement, error) {
	if _, err := s.store.GetSupplement(ctx, id); err != nil {
		return supplement.Supplement{}, err
	}
	sp.ID = id
	sp, err := normalize(sp)
	if err != nil {
		return supplement.Supplement{}, err
	}

	updated, err := s.store.UpdateSupplement(ctx, sp)
	if err != nil {
		return supplement.Supplement{}, err
	}
	s.log.WithField("supplement_id", id).Info("supplement updated")
	return updated, nil
}

// Get retrieves a supplement by identifier.
func (s *Service) Get(ctx context.Context, id string) (supplement.Supplement, error) {
	return s.store.GetSupplement(ctx, id)
}

// List returns all supplements in insertion order.
func (s *Service) List(ctx context.Context) ([]supplement.Supplement, error) {
	return s.store.ListSupplements(ctx)
}

// Delete removes a supplement by identifier.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteSupplement(ctx, id); err != nil {
		return err
	}
	s.log.WithField("supplement_id", id).Info("supplement deleted")
	return nil
}

func normalize(sp supplement.Supplement) (supplement.Supplement, error) {
	v := apperr.NewValidation()
	sp.Name = strings.TrimSpace(sp.Name)
	sp.Brand = strings.TrimSpace(sp.Brand)
	if sp.Name == "" {
		v.Add("name", "name is required")
	}
	if sp.Price <= 0 {
		v.Add("price", "price must be positive")
	}
	if err := v.ErrOrNil(); err != nil {
		return supplement.Supplement{}, err
	}
	return sp, nil
}
