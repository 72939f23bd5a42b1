// Package dates provides the calendar date and date-time values used by the
// gym domain. The gym's wire format writes date-times as dd-MM-yyyy'T'HH:mm
// and plain dates as yyyy-MM-dd; ISO date-times are accepted on input for
// compatibility with older data files.
package dates

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout        = "2006-01-02"
	dateTimeLayout    = "02-01-2006T15:04"
	isoDateTimeLayout = "2006-01-02T15:04"
)

// Date is a calendar date with no time-of-day component.
type Date struct {
	t time.Time
}

// NewDate builds a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// ParseDate parses a yyyy-MM-dd value.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected yyyy-MM-dd", s)
	}
	return Date{t: t}, nil
}

func (d Date) IsZero() bool        { return d.t.IsZero() }
func (d Date) Before(o Date) bool  { return d.t.Before(o.t) }
func (d Date) After(o Date) bool   { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool   { return d.t.Equal(o.t) }
func (d Date) String() string      { return d.t.Format(dateLayout) }
func (d Date) Time() time.Time     { return d.t }
func (d Date) AddDays(n int) Date  { return Date{t: d.t.AddDate(0, 0, n)} }

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateTime is a minute-resolution timestamp.
type DateTime struct {
	t time.Time
}

// NewDateTime builds a DateTime from its components.
func NewDateTime(year int, month time.Month, day, hour, minute int) DateTime {
	return DateTime{t: time.Date(year, month, day, hour, minute, 0, 0, time.UTC)}
}

// ParseDateTime parses dd-MM-yyyy'T'HH:mm, falling back to the ISO form.
func ParseDateTime(s string) (DateTime, error) {
	trimmed := strings.TrimSpace(s)
	if t, err := time.Parse(dateTimeLayout, trimmed); err == nil {
		return DateTime{t: t}, nil
	}
	if t, err := time.Parse(isoDateTimeLayout, trimmed); err == nil {
		return DateTime{t: t}, nil
	}
	if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return DateTime{t: t}, nil
	}
	return DateTime{}, fmt.Errorf("invalid date-time %q: expected dd-MM-yyyy'T'HH:mm", s)
}

func (dt DateTime) IsZero() bool    { return dt.t.IsZero() }
func (dt DateTime) Time() time.Time { return dt.t }
func (dt DateTime) String() string  { return dt.t.Format(dateTimeLayout) }

// Date discards the time-of-day, keeping only the calendar day.
func (dt DateTime) Date() Date {
	return NewDate(dt.t.Year(), dt.t.Month(), dt.t.Day())
}

func (dt DateTime) MarshalJSON() ([]byte, error) {
	if dt.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + dt.String() + `"`), nil
}

func (dt *DateTime) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*dt = DateTime{}
		return nil
	}
	parsed, err := ParseDateTime(raw)
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}
