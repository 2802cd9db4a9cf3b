package dateparse

import (
	"encoding/json"
	"errors"
	"math"
	"time"
)

// ErrUnrecognizedFormat is returned when a value cannot be coerced to a date.
var ErrUnrecognizedFormat = errors.New("unrecognized date format")

// stringLayouts are tried in order when coercing a string date.
var stringLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseString coerces an ISO-8601 / YYYY-MM-DD string into a time.Time.
func ParseString(s string) (time.Time, error) {
	for _, layout := range stringLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrUnrecognizedFormat
}

// ParseValue coerces the date encodings accepted at the API boundary into a
// time.Time. Supported inputs: time.Time, ISO-8601 strings, a serialized
// {"_seconds": n, "_nanoseconds": n} timestamp object, and a bare
// epoch-seconds number.
func ParseValue(v interface{}) (time.Time, error) {
	switch val := v.(type) {
	case time.Time:
		return val, nil
	case *time.Time:
		if val == nil {
			return time.Time{}, ErrUnrecognizedFormat
		}
		return *val, nil
	case string:
		return ParseString(val)
	case float64:
		sec, frac := math.Modf(val)
		return time.Unix(int64(sec), int64(frac*1e9)), nil
	case int64:
		return time.Unix(val, 0), nil
	case int:
		return time.Unix(int64(val), 0), nil
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return time.Time{}, ErrUnrecognizedFormat
		}
		return ParseValue(f)
	case map[string]interface{}:
		return parseTimestampObject(val)
	}
	return time.Time{}, ErrUnrecognizedFormat
}

// parseTimestampObject handles the {"_seconds": n, "_nanoseconds": n} shape
// (the "seconds"/"nanoseconds" spelling is accepted too).
func parseTimestampObject(m map[string]interface{}) (time.Time, error) {
	secVal, ok := m["_seconds"]
	if !ok {
		secVal, ok = m["seconds"]
	}
	if !ok {
		return time.Time{}, ErrUnrecognizedFormat
	}

	sec, ok := toInt64(secVal)
	if !ok {
		return time.Time{}, ErrUnrecognizedFormat
	}

	var nsec int64
	if nsecVal, found := m["_nanoseconds"]; found {
		nsec, _ = toInt64(nsecVal)
	} else if nsecVal, found := m["nanoseconds"]; found {
		nsec, _ = toInt64(nsecVal)
	}

	return time.Unix(sec, nsec), nil
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// NextDay returns midnight of the day after t.
func NextDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DayString renders t as a YYYY-MM-DD day token.
func DayString(t time.Time) string {
	return t.Format("2006-01-02")
}
