package groupclasses

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/irongym/backend/internal/app/apperr"
	"github.com/irongym/backend/internal/app/domain/client"
	"github.com/irongym/backend/internal/app/domain/groupclass"
	"github.com/irongym/backend/internal/app/domain/person"
	"github.com/irongym/backend/internal/app/domain/trainer"
	"github.com/irongym/backend/internal/app/storage/csvstore"
	"github.com/irongym/backend/pkg/logger"
)

type fixture struct {
	svc   *Service
	store *csvstore.Store
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	log := logger.NewDefault("groupclasses-test")
	log.SetOutput(io.Discard)
	store, err := csvstore.New(t.TempDir(), log)
	if err != nil {
		t.Fatalf("csvstore.New: %v", err)
	}
	return fixture{svc: New(store, store, store, log), store: store}
}

func (f fixture) seedClient(t *testing.T, phone, ident string) client.Client {
	t.Helper()
	created, err := f.store.CreateClient(context.Background(), client.Client{Fields: person.Fields{
		Name:           "Ana",
		Email:          "ana@example.com",
		Phone:          phone,
		Identification: ident,
	}})
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return created
}

func (f fixture) seedTrainer(t *testing.T) trainer.Trainer {
	t.Helper()
	created, err := f.store.CreateTrainer(context.Background(), trainer.Trainer{Fields: person.Fields{
		Name:           "Coach",
		Email:          "coach@example.com",
		Phone:          "3109998877",
		Identification: "CC-T1",
	}})
	if err != nil {
		t.Fatalf("seed trainer: %v", err)
	}
	return created
}

func TestCreateValidatesTrainerReference(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Create(context.Background(), groupclass.GroupClass{
		Name:        "Spinning",
		MaxCapacity: 10,
		Schedule:    "Lunes 18:00",
		TrainerID:   "T99",
	})
	var vErr *apperr.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error = %v, want validation", err)
	}
	if _, ok := vErr.Fields["trainerId"]; !ok {
		t.Fatalf("trainerId missing from %v", vErr.Fields)
	}
}

func TestCreateAllocatesGCID(t *testing.T) {
	f := newFixture(t)
	coach := f.seedTrainer(t)
	created, err := f.svc.Create(context.Background(), groupclass.GroupClass{
		Name:        "Spinning",
		MaxCapacity: 2,
		Schedule:    "Lunes 18:00",
		TrainerID:   coach.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "GC01" {
		t.Fatalf("ID = %q, want GC01", created.ID)
	}
}

func TestRegisterClientEnforcesCapacityAndDuplicates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	coach := f.seedTrainer(t)
	first := f.seedClient(t, "3001234567", "CC-1")
	second := f.seedClient(t, "3017654321", "CC-2")
	third := f.seedClient(t, "3020001111", "CC-3")

	class, err := f.svc.Create(ctx, groupclass.GroupClass{
		Name:        "Spinning",
		MaxCapacity: 2,
		Schedule:    "Lunes 18:00",
		TrainerID:   coach.ID,
	})
	if err != nil {
		t.Fatalf("create class: %v", err)
	}

	if _, err := f.svc.RegisterClient(ctx, class.ID, first.ID); err != nil {
		t.Fatalf("register first: %v", err)
	}
	if _, err := f.svc.RegisterClient(ctx, class.ID, first.ID); !apperr.IsConflict(err) {
		t.Fatalf("duplicate registration error = %v, want conflict", err)
	}
	if _, err := f.svc.RegisterClient(ctx, class.ID, second.ID); err != nil {
		t.Fatalf("register second: %v", err)
	}
	if _, err := f.svc.RegisterClient(ctx, class.ID, third.ID); !apperr.IsConflict(err) {
		t.Fatalf("over-capacity registration error = %v, want conflict", err)
	}

	if _, err := f.svc.RegisterClient(ctx, class.ID, "99"); !apperr.IsValidation(err) {
		t.Fatalf("unknown client error = %v, want validation", err)
	}
}

func TestUnregisterClient(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	coach := f.seedTrainer(t)
	member := f.seedClient(t, "3001234567", "CC-1")

	class, err := f.svc.Create(ctx, groupclass.GroupClass{
		Name:        "Yoga",
		MaxCapacity: 5,
		Schedule:    "Martes 07:00",
		TrainerID:   coach.ID,
	})
	if err != nil {
		t.Fatalf("create class: %v", err)
	}
	if _, err := f.svc.RegisterClient(ctx, class.ID, member.ID); err != nil {
		t.Fatalf("register: %v", err)
	}

	updated, err := f.svc.UnregisterClient(ctx, class.ID, member.ID)
	if err != nil {
		t.Fatalf("unregister: %v", err)
	}
	if updated.HasClient(member.ID) {
		t.Fatal("client still registered after unregister")
	}
	if _, err := f.svc.UnregisterClient(ctx, class.ID, member.ID); !apperr.IsNotFound(err) {
		t.Fatalf("second unregister error = %v, want not found", err)
	}
}

func TestRegistrationsSurviveReload(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	coach := f.seedTrainer(t)
	member := f.seedClient(t, "3001234567", "CC-1")

	class, err := f.svc.Create(ctx, groupclass.GroupClass{
		Name:        "Yoga",
		MaxCapacity: 5,
		Schedule:    "Martes 07:00",
		TrainerID:   coach.ID,
	})
	if err != nil {
		t.Fatalf("create class: %v", err)
	}
	if _, err := f.svc.RegisterClient(ctx, class.ID, member.ID); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := f.store.Reload(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	got, err := f.svc.Get(ctx, class.ID)
	if err != nil {
		t.Fatalf("get after reload: %v", err)
	}
	if !got.HasClient(member.ID) {
		t.Fatalf("registration lost across reload: %+v", got)
	}
}
