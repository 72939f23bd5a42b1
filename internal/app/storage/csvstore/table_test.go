package csvstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/irongym/backend/internal/app/apperr"
	"github.com/irongym/backend/internal/app/domain/attendance"
	"github.com/irongym/backend/internal/app/domain/client"
	"github.com/irongym/backend/internal/app/domain/person"
	"github.com/irongym/backend/pkg/logger"
)

func testLogger() *logger.Logger {
	log := logger.NewDefault("csvstore-test")
	log.SetOutput(io.Discard)
	return log
}

func newTestStore(t *testing.T, dir string) *Store {
	t.Helper()
	s, err := New(dir, testLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func testClient(name, phone, ident string) client.Client {
	return client.Client{Fields: person.Fields{
		Name:           name,
		Email:          strings.ToLower(name) + "@example.com",
		Phone:          phone,
		Identification: ident,
	}}
}

func TestClientCreateAllocatesSequentialIDs(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, t.TempDir())

	first, err := s.CreateClient(ctx, testClient("Ana", "3001234567", "CC-1"))
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	if first.ID != "01" {
		t.Fatalf("first ID = %q, want 01", first.ID)
	}
	second, err := s.CreateClient(ctx, testClient("Luis", "3017654321", "CC-2"))
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if second.ID != "02" {
		t.Fatalf("second ID = %q, want 02", second.ID)
	}
}

func TestClientRoundTripThroughFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := newTestStore(t, dir)

	created, err := s.CreateClient(ctx, testClient("Ana", "3001234567", "CC-1"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// A fresh store against the same directory must see the record.
	reopened := newTestStore(t, dir)
	got, err := reopened.GetClient(ctx, created.ID)
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if got != created {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, created)
	}
}

func TestReloadSkipsMalformedRows(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	content := strings.Join([]string{
		"id,name,email,phone,identification",
		"01,Ana,ana@example.com,3001234567,CC-1",
		"this row is broken",
		",MissingID,x@example.com,3000000000,CC-9",
		"02,Luis,luis@example.com,3017654321,CC-2",
		"",
	}, "\n")
	if err := os.WriteFile(filepath.Join(dir, "clients.csv"), []byte(content), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	s := newTestStore(t, dir)
	clients, err := s.ListClients(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(clients) != 2 {
		t.Fatalf("got %d clients, want 2 (malformed rows skipped)", len(clients))
	}
	if clients[0].ID != "01" || clients[1].ID != "02" {
		t.Fatalf("unexpected IDs: %q, %q", clients[0].ID, clients[1].ID)
	}
}

func TestNextIDSkipsGapsAfterDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, t.TempDir())

	for _, c := range []client.Client{
		testClient("Ana", "3001234567", "CC-1"),
		testClient("Luis", "3017654321", "CC-2"),
		testClient("Sofia", "3020001111", "CC-3"),
	} {
		if _, err := s.CreateClient(ctx, c); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if err := s.DeleteClient(ctx, "02"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// The allocator tracks the maximum, so the freed middle ID is not reused.
	next, err := s.CreateClient(ctx, testClient("Maria", "3031112222", "CC-4"))
	if err != nil {
		t.Fatalf("create after delete: %v", err)
	}
	if next.ID != "04" {
		t.Fatalf("ID after delete = %q, want 04", next.ID)
	}
}

func TestCreateWithDuplicateIDConflicts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, t.TempDir())

	c := testClient("Ana", "3001234567", "CC-1")
	c.ID = "07"
	if _, err := s.CreateClient(ctx, c); err != nil {
		t.Fatalf("create: %v", err)
	}
	dup := testClient("Luis", "3017654321", "CC-2")
	dup.ID = "07"
	_, err := s.CreateClient(ctx, dup)
	if !apperr.IsConflict(err) {
		t.Fatalf("duplicate create error = %v, want conflict", err)
	}
}

func TestAttendanceIDFormatEnforced(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, t.TempDir())

	bad := attendance.Attendance{ID: "X99", ClientID: "01", GroupClassID: "GC01"}
	_, err := s.CreateAttendance(ctx, bad)
	if !apperr.IsValidation(err) {
		t.Fatalf("invalid attendance ID error = %v, want validation", err)
	}

	ok := attendance.Attendance{ClientID: "01", GroupClassID: "GC01"}
	created, err := s.CreateAttendance(ctx, ok)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "A01" {
		t.Fatalf("allocated attendance ID = %q, want A01", created.ID)
	}
}

func TestUpdateMissingRecordNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, t.TempDir())

	_, err := s.UpdateClient(ctx, testClient("Ghost", "3000000000", "CC-0"))
	if !apperr.IsNotFound(err) {
		t.Fatalf("update missing error = %v, want not found", err)
	}
	if err := s.DeleteClient(ctx, "42"); !apperr.IsNotFound(err) {
		t.Fatalf("delete missing error = %v, want not found", err)
	}
}

func TestSaveWritesHeaderAndRows(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := newTestStore(t, dir)

	if _, err := s.CreateClient(ctx, testClient("Ana", "3001234567", "CC-1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	raw, err := os.ReadFile(filepath.Join(dir, "clients.csv"))
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header plus one row", len(lines))
	}
	if lines[0] != "id,name,email,phone,identification" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != "01,Ana,ana@example.com,3001234567,CC-1" {
		t.Fatalf("row = %q", lines[1])
	}
}
