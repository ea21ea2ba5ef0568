package dto

import (
	"encoding/json"
	"strings"
	"time"
)

// ErrorResponse HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse plain confirmation body for writes.
type MessageResponse struct {
	Message string `json:"message"`
}

// IDResponse returned by creates that know the new id.
type IDResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message,omitempty"`
}

const dateLayout = "2006-01-02"

// Date is a calendar date. It accepts "2024-03-01" as well as full RFC 3339
// timestamps (what JavaScript's Date.toJSON sends) and always writes the short form.
type Date struct {
	time.Time
}

// NewDate wraps t.
func NewDate(t time.Time) *Date {
	return &Date{Time: t}
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	y, m, day := t.Date()
	d.Time = time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

// TimePtr returns nil for a nil or zero date.
func (d *Date) TimePtr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

// DateFrom wraps a nullable time for responses.
func DateFrom(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	return NewDate(*t)
}
