// Package equipments manages the gym's machine inventory.
package equipments

import (
	"context"
	"strings"

	"github.com/irongym/backend/internal/app/apperr"
	"github.com/irongym/backend/internal/app/domain/equipment"
	"github.com/irongym/backend/internal/app/storage"
	"github.com/irongym/backend/pkg/logger"
)

// Service manages equipment records.
type Service struct {
	store storage.EquipmentStore
	log   *logger.Logger
}

// New constructs an equipment service.
func New(store storage.EquipmentStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("equipments")
	}
	return &Service{store: store, log: log}
}

// Create registers a piece of equipment. An empty status defaults to ACTIVE.
func (s *Service) Create(ctx context.Context, e equipment.Equipment) (equipment.Equipment, error) {
	e, err := normalize(e)
	if err != nil {
		return equipment.Equipment{}, err
	}

	created, err := s.store.CreateEquipment(ctx, e)
	if err != nil {
		return equipment.Equipment{}, err
	}
	s.log.WithField("equipment_id", created.ID).
		WithField("status", string(created.Status)).
		Info("equipment created")
	return created, nil
}

// Update replaces the equipment with the given id.
func (s *Service) Update(ctx context.Context, id string, e equipment.Equipment) (equipment.Equipment, error) {
	if _, err := s.store.GetEquipment(ctx, id); err != nil {
		return equipment.Equipment{}, err
	}
	e.ID = id
	e, err := normalize(e)
	if err != nil {
		return equipment.Equipment{}, err
	}

	updated, err := s.store.UpdateEquipment(ctx, e)
	if err != nil {
		return equipment.Equipment{}, err
	}
	s.log.WithField("equipment_id", id).Info("equipment updated")
	return updated, nil
}

// Get retrieves a piece of equipment by identifier.
func (s *Service) Get(ctx context.Context, id string) (equipment.Equipment, error) {
	return s.store.GetEquipment(ctx, id)
}

// List returns all equipment in insertion order.
func (s *Service) List(ctx context.Context) ([]equipment.Equipment, error) {
	return s.store.ListEquipment(ctx)
}

// Delete removes a piece of equipment by identifier.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteEquipment(ctx, id); err != nil {
		return err
	}
	s.log.WithField("equipment_id", id).Info("equipment deleted")
	return nil
}

func normalize(e equipment.Equipment) (equipment.Equipment, error) {
	v := apperr.NewValidation()
	e.Type = strings.TrimSpace(e.Type)
	if e.Type == "" {
		v.Add("type", "type is required")
	}
	if e.Status == "" {
		e.Status = equipment.StatusActive
	} else {
		status, ok := equipment.ParseStatus(string(e.Status))
		if !ok {
			v.Add("status", "allowed statuses: ACTIVE, MAINTENANCE, OUT_OF_SERVICE")
		} else {
			e.Status = status
		}
	}
	if err := v.ErrOrNil(); err != nil {
		return equipment.Equipment{}, err
	}
	return e, nil
}
