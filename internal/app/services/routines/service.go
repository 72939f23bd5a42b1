// Package routines manages training routines and their exercise catalog.
package routines

import (
	"context"
	"strings"

	"github.com/irongym/backend/internal/app/apperr"
	"github.com/irongym/backend/internal/app/domain/routine"
	"github.com/irongym/backend/internal/app/storage"
	"github.com/irongym/backend/pkg/logger"
)

// Service manages routine records and the shared exercise catalog.
type Service struct {
	store     storage.RoutineStore
	exercises storage.ExerciseStore
	log       *logger.Logger
}

// New constructs a routine service.
func New(store storage.RoutineStore, exercises storage.ExerciseStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("routines")
	}
	return &Service{store: store, exercises: exercises, log: log}
}

// Create registers a routine. Exercises embedded in the routine are upserted
// into the catalog so they can be reused across routines.
func (s *Service) Create(ctx context.Context, r routine.Routine) (routine.Routine, error) {
	r, err := s.normalize(ctx, r)
	if err != nil {
		return routine.Routine{}, err
	}

	created, err := s.store.CreateRoutine(ctx, r)
	if err != nil {
		return routine.Routine{}, err
	}
	s.log.WithField("routine_id", created.ID).
		WithField("exercises", len(created.Exercises)).
		Info("routine created")
	return created, nil
}

// Update replaces the routine with the given id.
func (s *Service) Update(ctx context.Context, id string, r routine.Routine) (routine.Routine, error) {
	if _, err := s.store.GetRoutine(ctx, id); err != nil {
		return routine.Routine{}, err
	}
	r.ID = id
	r, err := s.normalize(ctx, r)
	if err != nil {
		return routine.Routine{}, err
	}

	updated, err := s.store.UpdateRoutine(ctx, r)
	if err != nil {
		return routine.Routine{}, err
	}
	s.log.WithField("routine_id", id).Info("routine updated")
	return updated, nil
}

// Get retrieves a routine by identifier.
func (s *Service) Get(ctx context.Context, id string) (routine.Routine, error) {
	return s.store.GetRoutine(ctx, id)
}

// List returns all routines in insertion order.
func (s *Service) List(ctx context.Context) ([]routine.Routine, error) {
	return s.store.ListRoutines(ctx)
}

// Delete removes a routine by identifier.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteRoutine(ctx, id); err != nil {
		return err
	}
	s.log.WithField("routine_id", id).Info("routine deleted")
	return nil
}

// ListExercises returns the shared exercise catalog.
func (s *Service) ListExercises(ctx context.Context) ([]routine.Exercise, error) {
	return s.exercises.ListExercises(ctx)
}

func (s *Service) normalize(ctx context.Context, r routine.Routine) (routine.Routine, error) {
	v := apperr.NewValidation()
	r.Objective = strings.TrimSpace(r.Objective)
	if r.Objective == "" {
		v.Add("objective", "objective is required")
	}
	for i := range r.Exercises {
		r.Exercises[i].Name = strings.TrimSpace(r.Exercises[i].Name)
		ex := r.Exercises[i]
		if ex.Name == "" {
			v.Add("exercises", "exercise name is required")
			break
		}
		if ex.Repetitions <= 0 || ex.Sets <= 0 {
			v.Add("exercises", "repetitions and sets must be positive")
			break
		}
	}
	if err := v.ErrOrNil(); err != nil {
		return routine.Routine{}, err
	}

	for _, ex := range r.Exercises {
		if _, err := s.exercises.GetExercise(ctx, ex.Name); err == nil {
			if _, err := s.exercises.UpdateExercise(ctx, ex); err != nil {
				return routine.Routine{}, err
			}
			continue
		} else if !apperr.IsNotFound(err) {
			return routine.Routine{}, err
		}
		if _, err := s.exercises.CreateExercise(ctx, ex); err != nil {
			return routine.Routine{}, err
		}
	}
	return r, nil
}
