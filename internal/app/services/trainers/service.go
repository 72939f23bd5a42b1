// Package trainers manages the trainer registry.
package trainers

import (
	"context"
	"strings"

	"github.com/irongym/backend/internal/app/apperr"
	"github.com/irongym/backend/internal/app/domain/trainer"
	"github.com/irongym/backend/internal/app/storage"
	"github.com/irongym/backend/pkg/logger"
)

// Service manages trainer records and validation.
type Service struct {
	store storage.TrainerStore
	log   *logger.Logger
}

// New constructs a trainer service.
func New(store storage.TrainerStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("trainers")
	}
	return &Service{store: store, log: log}
}

// Create registers a new trainer after field validation and uniqueness
// checks on phone and identification.
func (s *Service) Create(ctx context.Context, t trainer.Trainer) (trainer.Trainer, error) {
	t = normalize(t)
	if err := s.validate(ctx, t, ""); err != nil {
		return trainer.Trainer{}, err
	}

	created, err := s.store.CreateTrainer(ctx, t)
	if err != nil {
		return trainer.Trainer{}, err
	}
	s.log.WithField("trainer_id", created.ID).Info("trainer created")
	return created, nil
}

// Update replaces the trainer with the given id.
func (s *Service) Update(ctx context.Context, id string, t trainer.Trainer) (trainer.Trainer, error) {
	if _, err := s.store.GetTrainer(ctx, id); err != nil {
		return trainer.Trainer{}, err
	}
	t = normalize(t)
	t.ID = id
	if err := s.validate(ctx, t, id); err != nil {
		return trainer.Trainer{}, err
	}

	updated, err := s.store.UpdateTrainer(ctx, t)
	if err != nil {
		return trainer.Trainer{}, err
	}
	s.log.WithField("trainer_id", id).Info("trainer updated")
	return updated, nil
}

// Get retrieves a trainer by identifier.
func (s *Service) Get(ctx context.Context, id string) (trainer.Trainer, error) {
	return s.store.GetTrainer(ctx, id)
}

// List returns all trainers in insertion order.
func (s *Service) List(ctx context.Context) ([]trainer.Trainer, error) {
	return s.store.ListTrainers(ctx)
}

// Delete removes a trainer by identifier.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteTrainer(ctx, id); err != nil {
		return err
	}
	s.log.WithField("trainer_id", id).Info("trainer deleted")
	return nil
}

func normalize(t trainer.Trainer) trainer.Trainer {
	t.Name = strings.TrimSpace(t.Name)
	t.Email = strings.TrimSpace(t.Email)
	t.Phone = strings.TrimSpace(t.Phone)
	t.Identification = strings.TrimSpace(t.Identification)
	return t
}

func (s *Service) validate(ctx context.Context, t trainer.Trainer, selfID string) error {
	v := apperr.NewValidation()
	for field, msg := range t.Problems() {
		v.Add(field, msg)
	}
	if err := v.ErrOrNil(); err != nil {
		return err
	}

	existing, err := s.store.ListTrainers(ctx)
	if err != nil {
		return err
	}
	for _, other := range existing {
		if other.ID == selfID {
			continue
		}
		if other.Phone == t.Phone {
			return apperr.Conflict("trainer", "phone %s already registered", t.Phone)
		}
		if other.Identification == t.Identification {
			return apperr.Conflict("trainer", "identification %s already registered", t.Identification)
		}
	}
	return nil
}
