package payments

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/irongym/backend/internal/app/apperr"
	"github.com/irongym/backend/internal/app/domain/client"
	"github.com/irongym/backend/internal/app/domain/dates"
	"github.com/irongym/backend/internal/app/domain/payment"
	"github.com/irongym/backend/internal/app/domain/person"
	"github.com/irongym/backend/internal/app/services/clients"
	"github.com/irongym/backend/internal/app/storage/csvstore"
	"github.com/irongym/backend/pkg/logger"
)

func newFixture(t *testing.T) (*Service, *clients.Service) {
	t.Helper()
	log := logger.NewDefault("payments-test")
	log.SetOutput(io.Discard)
	store, err := csvstore.New(t.TempDir(), log)
	if err != nil {
		t.Fatalf("csvstore.New: %v", err)
	}
	return New(store, store, log), clients.New(store, log)
}

func seedClient(t *testing.T, svc *clients.Service, name, phone, ident string) client.Client {
	t.Helper()
	created, err := svc.Create(context.Background(), client.Client{Fields: person.Fields{
		Name:           name,
		Email:          ident + "@example.com",
		Phone:          phone,
		Identification: ident,
	}})
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return created
}

func at(day, month, hour int) dates.DateTime {
	return dates.NewDateTime(2026, time.Month(month), day, hour, 0)
}

func TestCreateNormalizesMethodAlias(t *testing.T) {
	ctx := context.Background()
	svc, clientSvc := newFixture(t)
	c := seedClient(t, clientSvc, "Ana", "3001234567", "CC-1")

	created, err := svc.Create(ctx, payment.Payment{
		Amount:   15000,
		DateTime: at(10, 3, 9),
		Method:   "cash",
		ClientID: c.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Method != payment.MethodCash {
		t.Fatalf("method = %q, want %q", created.Method, payment.MethodCash)
	}
}

func TestCreateRejectsUnknownMethodAndClient(t *testing.T) {
	svc, _ := newFixture(t)

	_, err := svc.Create(context.Background(), payment.Payment{
		Amount:   15000,
		DateTime: at(10, 3, 9),
		Method:   "BARTER",
		ClientID: "99",
	})
	var vErr *apperr.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error = %v, want validation", err)
	}
	if _, ok := vErr.Fields["paymentMethod"]; !ok {
		t.Fatalf("paymentMethod missing from %v", vErr.Fields)
	}
	if _, ok := vErr.Fields["clientId"]; !ok {
		t.Fatalf("clientId missing from %v", vErr.Fields)
	}
}

func TestListByClient(t *testing.T) {
	ctx := context.Background()
	svc, clientSvc := newFixture(t)
	ana := seedClient(t, clientSvc, "Ana", "3001234567", "CC-1")
	luis := seedClient(t, clientSvc, "Luis", "3017654321", "CC-2")

	for _, p := range []payment.Payment{
		{Amount: 10000, DateTime: at(1, 3, 9), Method: payment.MethodCash, ClientID: ana.ID},
		{Amount: 20000, DateTime: at(2, 3, 9), Method: payment.MethodNequi, ClientID: luis.ID},
		{Amount: 30000, DateTime: at(3, 3, 9), Method: payment.MethodCash, ClientID: ana.ID},
	} {
		if _, err := svc.Create(ctx, p); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := svc.ListByClient(ctx, ana.ID)
	if err != nil {
		t.Fatalf("ListByClient: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d payments, want 2", len(got))
	}
	empty, err := svc.ListByClient(ctx, "")
	if err != nil {
		t.Fatalf("ListByClient empty: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("blank client id returned %d payments", len(empty))
	}
}

func TestMethodsListsCanonicalSet(t *testing.T) {
	svc, _ := newFixture(t)
	methods := svc.Methods()
	want := []payment.Method{
		payment.MethodCash,
		payment.MethodTransfer,
		payment.MethodNequi,
		payment.MethodDaviplata,
	}
	if len(methods) != len(want) {
		t.Fatalf("got %d methods", len(methods))
	}
	for i, m := range want {
		if methods[i] != m {
			t.Fatalf("methods[%d] = %q, want %q", i, methods[i], m)
		}
	}
}
