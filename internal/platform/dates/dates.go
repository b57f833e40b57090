// Package dates carries the two temporal kinds session payloads use: a
// calendar day and an instant. They marshal to distinct JSON shapes and
// refuse each other's, so a value keeps its kind across save and load.
package dates

import (
	"encoding/json"
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

// Date is a calendar day with no time-of-day component.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts only the YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

func (d Date) String() string  { return d.t.Format(dayLayout) }
func (d Date) IsZero() bool    { return d.t.IsZero() }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.t.Format(dayLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a JSON string: %w", err)
	}
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return fmt.Errorf("date %q is not YYYY-MM-DD: %w", s, err)
	}
	d.t = t
	return nil
}

// Time is an instant, marshalled as RFC 3339. A bare calendar day is
// rejected rather than silently promoted.
type Time struct {
	t time.Time
}

func NewTime(t time.Time) Time { return Time{t: t.UTC()} }

func ParseTime(s string) (Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Time{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return Time{t: t}, nil
}

func (t Time) String() string { return t.t.Format(time.RFC3339) }
func (t Time) IsZero() bool   { return t.t.IsZero() }
func (t Time) Std() time.Time { return t.t }

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.t.Format(time.RFC3339))
}

func (t *Time) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("time must be a JSON string: %w", err)
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("time %q is not RFC 3339: %w", s, err)
	}
	t.t = parsed
	return nil
}
