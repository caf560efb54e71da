package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Amount is a monetary value received from the platform. Valid is false when
// the source field was absent, null or not a finite number.
type Amount struct {
	Value float64
	Valid bool
}

func NewAmount(v float64) Amount {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Amount{}
	}
	return Amount{Value: v, Valid: true}
}

// AmountPtr converts an optional request value.
func AmountPtr(v *float64) Amount {
	if v == nil {
		return Amount{}
	}
	return NewAmount(*v)
}

// Float returns the value, or zero for an absent amount.
func (a Amount) Float() float64 {
	if !a.Valid {
		return 0
	}
	return a.Value
}

// Ptr is the inverse of AmountPtr.
func (a Amount) Ptr() *float64 {
	if !a.Valid {
		return nil
	}
	v := a.Value
	return &v
}

// ParseAmount never fails: anything that is not a number or a numeric
// string yields an absent amount.
func ParseAmount(data []byte) Amount {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return Amount{}
	}
	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return Amount{}
		}
		raw = strings.TrimSpace(s)
	}
	if raw == "" {
		return Amount{}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Amount{}
	}
	return NewAmount(v)
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = ParseAmount(data)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(a.Value)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp accepts RFC3339 strings, plain dates and epoch milliseconds.
// Unparseable values decode to the zero time.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	if t.IsZero() {
		return Timestamp{}
	}
	return Timestamp{Time: t.UTC()}
}

func ParseTimestamp(data []byte) Timestamp {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return Timestamp{}
	}
	if data[0] != '"' {
		ms, err := strconv.ParseFloat(string(data), 64)
		if err != nil || math.IsNaN(ms) || math.IsInf(ms, 0) {
			return Timestamp{}
		}
		return NewTimestamp(time.UnixMilli(int64(ms)))
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return Timestamp{}
	}
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimestamp(t)
		}
	}
	return Timestamp{}
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	*t = ParseTimestamp(data)
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}
