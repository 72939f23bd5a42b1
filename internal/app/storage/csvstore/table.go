// Package csvstore implements the storage interfaces on top of flat CSV
// files, one file per entity type. Each table owns its in-memory collection,
// loads it from disk at startup and rewrites the whole file on every
// mutation. A per-table mutex serializes read-modify-write sequences so
// concurrent creates cannot allocate the same ID or corrupt the rewrite.
package csvstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/irongym/backend/internal/app/apperr"
	"github.com/irongym/backend/internal/app/metrics"
	"github.com/irongym/backend/pkg/logger"
)

// errSkipRow marks a malformed CSV row. Rows failing to decode are dropped
// on load instead of aborting it; production data files are expected to
// contain the occasional bad line.
var errSkipRow = errors.New("skip row")

// schema describes how one entity type maps onto its CSV file.
type schema[T any] struct {
	name    string   // resource name used in errors, e.g. "client"
	file    string   // base file name, e.g. "clients.csv"
	header  []string // column order, written verbatim on save
	prefix  string   // ID prefix for the allocator ("" for bare numbers)
	width   int      // zero-padding width of the numeric suffix
	validID func(string) bool // optional format check for caller-supplied IDs
	id      func(T) string
	setID   func(*T, string)
	encode  func(T) []string
	decode  func([]string) (T, error)
}

// table is the file-backed record store for a single entity type.
type table[T any] struct {
	mu   sync.Mutex
	path string
	sch  schema[T]
	recs []T
	log  *logger.Logger
}

func newTable[T any](dir string, sch schema[T], log *logger.Logger) (*table[T], error) {
	t := &table[T]{
		path: filepath.Join(dir, sch.file),
		sch:  sch,
		log:  log.WithField("entity", sch.name),
	}
	if err := t.Reload(); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload re-reads the backing file, replacing the in-memory collection.
// A missing file yields an empty collection.
func (t *table[T]) Reload() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	data, err := os.ReadFile(t.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			t.recs = nil
			return nil
		}
		metrics.RecordStoreOperation(t.sch.name, "load", false)
		return apperr.Storage("read", t.path, err)
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	recs := make([]T, 0, len(lines))
	skipped := 0
	for i, line := range lines {
		if i == 0 || strings.TrimSpace(line) == "" {
			continue // header or trailing blank
		}
		fields := strings.Split(line, ",")
		for j := range fields {
			fields[j] = strings.TrimSpace(fields[j])
		}
		rec, err := t.sch.decode(fields)
		if err != nil {
			skipped++
			continue
		}
		recs = append(recs, rec)
	}
	if skipped > 0 {
		t.log.WithField("rows", skipped).Warn("skipped malformed rows during load")
	}
	t.recs = recs
	metrics.RecordStoreOperation(t.sch.name, "load", true)
	return nil
}

// saveLocked rewrites the whole file: header first, then every record in
// collection order. The content is written to a temp file and renamed into
// place so a crash mid-write cannot leave a truncated file behind.
func (t *table[T]) saveLocked() error {
	var b strings.Builder
	b.WriteString(strings.Join(t.sch.header, ","))
	b.WriteByte('\n')
	for _, rec := range t.recs {
		b.WriteString(strings.Join(t.sch.encode(rec), ","))
		b.WriteByte('\n')
	}

	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return apperr.Storage("mkdir", t.path, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(t.path), t.sch.file+".tmp-*")
	if err != nil {
		return apperr.Storage("create", t.path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperr.Storage("write", t.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperr.Storage("close", t.path, err)
	}
	if err := os.Rename(tmpName, t.path); err != nil {
		os.Remove(tmpName)
		return apperr.Storage("rename", t.path, err)
	}
	return nil
}

// persistLocked saves and logs failures. The in-memory collection stays
// ahead of the file on a failed write; callers must not assume durability
// without checking the returned error.
func (t *table[T]) persistLocked(op string) error {
	err := t.saveLocked()
	if err != nil {
		t.log.WithError(err).Error("persist failed")
	}
	metrics.RecordStoreOperation(t.sch.name, op, err == nil)
	return err
}

func (t *table[T]) indexLocked(id string) int {
	for i, rec := range t.recs {
		if t.sch.id(rec) == id {
			return i
		}
	}
	return -1
}

// nextIDLocked scans current IDs matching prefix+digits and returns the
// prefix plus the zero-padded successor of the highest numeric suffix.
// Recomputed on every call; IDs freed by deletion are not reused within a
// run because the maximum, not the gaps, drives allocation.
func (t *table[T]) nextIDLocked() string {
	max := 0
	for _, rec := range t.recs {
		id := t.sch.id(rec)
		if !strings.HasPrefix(id, t.sch.prefix) {
			continue
		}
		n, err := strconv.Atoi(id[len(t.sch.prefix):])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%0*d", t.sch.prefix, t.sch.width, max+1)
}

// List returns a copy of all records in file/insertion order.
func (t *table[T]) List() []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]T, len(t.recs))
	copy(out, t.recs)
	return out
}

// Get returns the record with the given ID via linear scan.
func (t *table[T]) Get(id string) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var zero T
	i := t.indexLocked(id)
	if i < 0 {
		return zero, apperr.NotFound(t.sch.name, id)
	}
	return t.recs[i], nil
}

// Create inserts a record, allocating an ID when the candidate carries none.
// Caller-supplied IDs are checked for format and uniqueness.
func (t *table[T]) Create(rec T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var zero T

	id := strings.TrimSpace(t.sch.id(rec))
	if id == "" {
		id = t.nextIDLocked()
		t.sch.setID(&rec, id)
	} else {
		if t.sch.validID != nil && !t.sch.validID(id) {
			return zero, apperr.Invalid("id", "invalid "+t.sch.name+" id format")
		}
		if t.indexLocked(id) >= 0 {
			return zero, apperr.Conflict(t.sch.name, "id %s already exists", id)
		}
		t.sch.setID(&rec, id)
	}

	t.recs = append(t.recs, rec)
	if err := t.persistLocked("create"); err != nil {
		return zero, err
	}
	return rec, nil
}

// Update overwrites the record at the position matching id, forcing the
// candidate's ID to the addressed one.
func (t *table[T]) Update(id string, rec T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var zero T

	i := t.indexLocked(id)
	if i < 0 {
		return zero, apperr.NotFound(t.sch.name, id)
	}
	t.sch.setID(&rec, id)
	t.recs[i] = rec
	if err := t.persistLocked("update"); err != nil {
		return zero, err
	}
	return rec, nil
}

// Delete removes the first record matching id. The file is only rewritten
// when a record was actually removed.
func (t *table[T]) Delete(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexLocked(id)
	if i < 0 {
		return apperr.NotFound(t.sch.name, id)
	}
	t.recs = append(t.recs[:i], t.recs[i+1:]...)
	return t.persistLocked("delete")
}
