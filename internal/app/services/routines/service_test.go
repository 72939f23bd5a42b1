package routines

import (
	"context"
	"io"
	"testing"

	"github.com/irongym/backend/internal/app/apperr"
	"github.com/irongym/backend/internal/app/domain/routine"
	"github.com/irongym/backend/internal/app/storage/csvstore"
	"github.com/irongym/backend/pkg/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	log := logger.NewDefault("routines-test")
	log.SetOutput(io.Discard)
	store, err := csvstore.New(t.TempDir(), log)
	if err != nil {
		t.Fatalf("csvstore.New: %v", err)
	}
	return New(store, store, log)
}

func TestCreateUpsertsExercisesIntoCatalog(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.Create(ctx, routine.Routine{
		Objective: "Fuerza",
		Exercises: []routine.Exercise{
			{Name: "Sentadilla", Repetitions: 10, Sets: 4},
			{Name: "Press banca", Repetitions: 8, Sets: 4},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "R01" {
		t.Fatalf("ID = %q, want R01", created.ID)
	}

	catalog, err := svc.ListExercises(ctx)
	if err != nil {
		t.Fatalf("ListExercises: %v", err)
	}
	if len(catalog) != 2 {
		t.Fatalf("catalog has %d exercises, want 2", len(catalog))
	}

	// A second routine reusing an exercise updates it instead of duplicating.
	if _, err := svc.Create(ctx, routine.Routine{
		Objective: "Hipertrofia",
		Exercises: []routine.Exercise{{Name: "Sentadilla", Repetitions: 12, Sets: 5}},
	}); err != nil {
		t.Fatalf("second create: %v", err)
	}
	catalog, err = svc.ListExercises(ctx)
	if err != nil {
		t.Fatalf("ListExercises: %v", err)
	}
	if len(catalog) != 2 {
		t.Fatalf("catalog grew to %d entries", len(catalog))
	}
	for _, ex := range catalog {
		if ex.Name == "Sentadilla" && (ex.Repetitions != 12 || ex.Sets != 5) {
			t.Fatalf("exercise not updated: %+v", ex)
		}
	}
}

func TestCreateRejectsBadExercises(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Create(context.Background(), routine.Routine{
		Objective: "Fuerza",
		Exercises: []routine.Exercise{{Name: "Sentadilla", Repetitions: 0, Sets: 4}},
	})
	if !apperr.IsValidation(err) {
		t.Fatalf("error = %v, want validation", err)
	}
}

func TestCreateRequiresObjective(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Create(context.Background(), routine.Routine{})
	if !apperr.IsValidation(err) {
		t.Fatalf("error = %v, want validation", err)
	}
}
