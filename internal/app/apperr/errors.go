// Package apperr defines the error taxonomy shared by the services and the
// HTTP layer. Stores and services return these types so callers can map
// failures to the right status code without string matching.
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ValidationError aggregates per-field validation failures. It collects every
// problem found on a candidate record instead of failing on the first one, so
// the caller receives a complete field→message map.
type ValidationError struct {
	Fields map[string]string
}

// NewValidation returns an empty validation error ready to collect fields.
func NewValidation() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Invalid is a convenience constructor for a single-field failure.
func Invalid(field, message string) *ValidationError {
	v := NewValidation()
	v.Add(field, message)
	return v
}

// Add records a failure for a field. The first message per field wins.
func (v *ValidationError) Add(field, message string) {
	if v.Fields == nil {
		v.Fields = make(map[string]string)
	}
	if _, seen := v.Fields[field]; !seen {
		v.Fields[field] = message
	}
}

// Empty reports whether no failures were recorded.
func (v *ValidationError) Empty() bool { return len(v.Fields) == 0 }

// ErrOrNil returns the error when at least one field failed, nil otherwise.
func (v *ValidationError) ErrOrNil() error {
	if v.Empty() {
		return nil
	}
	return v
}

func (v *ValidationError) Error() string {
	if v.Empty() {
		return "validation failed"
	}
	fields := make([]string, 0, len(v.Fields))
	for f := range v.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v.Fields[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ConflictError signals a duplicate identifier or unique-field collision.
type ConflictError struct {
	Resource string
	Message  string
}

func Conflict(resource, format string, args ...any) *ConflictError {
	return &ConflictError{Resource: resource, Message: fmt.Sprintf(format, args...)}
}

func (c *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", c.Resource, c.Message)
}

// NotFoundError signals an unknown identifier on get, update or delete.
type NotFoundError struct {
	Resource string
	ID       string
}

func NotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (n *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", n.Resource, n.ID)
}

// StorageError wraps an I/O failure against a backing CSV file. The wrapped
// cause is preserved for logging; the in-memory collection is not rolled back.
type StorageError struct {
	Path string
	Op   string
	Err  error
}

func Storage(op, path string, err error) *StorageError {
	return &StorageError{Op: op, Path: path, Err: err}
}

func (s *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", s.Op, s.Path, s.Err)
}

func (s *StorageError) Unwrap() error { return s.Err }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var n *NotFoundError
	return errors.As(err, &n)
}
