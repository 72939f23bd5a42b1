package dates

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.String() != "2026-03-15" {
		t.Fatalf("String() = %q", d.String())
	}
	if _, err := ParseDate("15-03-2026"); err == nil {
		t.Fatal("day-first date accepted as yyyy-MM-dd")
	}
}

func TestParseDateTimeLayouts(t *testing.T) {
	want := NewDateTime(2026, time.March, 15, 18, 30)
	for _, raw := range []string{"15-03-2026T18:30", "2026-03-15T18:30"} {
		got, err := ParseDateTime(raw)
		if err != nil {
			t.Fatalf("ParseDateTime(%q): %v", raw, err)
		}
		if !got.Time().Equal(want.Time()) {
			t.Fatalf("ParseDateTime(%q) = %v, want %v", raw, got, want)
		}
	}
	if _, err := ParseDateTime("yesterday"); err == nil {
		t.Fatal("garbage date-time accepted")
	}
}

func TestDateTimeStringUsesDayFirstLayout(t *testing.T) {
	dt := NewDateTime(2026, time.January, 2, 9, 5)
	if dt.String() != "02-01-2026T09:05" {
		t.Fatalf("String() = %q", dt.String())
	}
}

func TestDateTimeDateDiscardsTime(t *testing.T) {
	dt := NewDateTime(2026, time.March, 15, 23, 59)
	if !dt.Date().Equal(NewDate(2026, time.March, 15)) {
		t.Fatalf("Date() = %v", dt.Date())
	}
}

func TestJSONRoundTrip(t *testing.T) {
	type payload struct {
		Day  Date     `json:"day"`
		At   DateTime `json:"at"`
		Zero Date     `json:"zero"`
	}
	in := payload{Day: NewDate(2026, time.July, 4), At: NewDateTime(2026, time.July, 4, 8, 0)}
	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"day":"2026-07-04","at":"04-07-2026T08:00","zero":null}`
	if string(raw) != want {
		t.Fatalf("marshal = %s, want %s", raw, want)
	}
	var out payload
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Day.Equal(in.Day) || !out.At.Time().Equal(in.At.Time()) || !out.Zero.IsZero() {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}
