package dateparse

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseString(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{"rfc3339", "2025-06-01T09:30:00Z", time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC), true},
		{"date only", "2025-06-01", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), true},
		{"datetime no zone", "2025-06-01T09:30:00", time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC), true},
		{"garbage", "not-a-date", time.Time{}, false},
		{"empty", "", time.Time{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseString(tc.input)
			if !tc.ok {
				assert.ErrorIs(t, err, ErrUnrecognizedFormat)
				return
			}
			assert.NoError(t, err)
			assert.True(t, got.Equal(tc.want), "got %v want %v", got, tc.want)
		})
	}
}

func TestParseValueTimestampObject(t *testing.T) {
	got, err := ParseValue(map[string]interface{}{
		"_seconds":     float64(1748767800),
		"_nanoseconds": float64(0),
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1748767800), got.Unix())

	// seconds/nanoseconds spelling
	got, err = ParseValue(map[string]interface{}{"seconds": float64(1748767800)})
	assert.NoError(t, err)
	assert.Equal(t, int64(1748767800), got.Unix())

	_, err = ParseValue(map[string]interface{}{"foo": "bar"})
	assert.ErrorIs(t, err, ErrUnrecognizedFormat)
}

func TestParseValueEpochSeconds(t *testing.T) {
	got, err := ParseValue(float64(1748767800))
	assert.NoError(t, err)
	assert.Equal(t, int64(1748767800), got.Unix())
}

func TestParseValueNative(t *testing.T) {
	now := time.Now()
	got, err := ParseValue(now)
	assert.NoError(t, err)
	assert.True(t, got.Equal(now))

	_, err = ParseValue([]string{"nope"})
	assert.ErrorIs(t, err, ErrUnrecognizedFormat)
}

func TestFlexDateUnmarshal(t *testing.T) {
	var payload struct {
		Date FlexDate `json:"date"`
	}

	err := json.Unmarshal([]byte(`{"date":"2025-06-01"}`), &payload)
	assert.NoError(t, err)
	assert.Equal(t, "2025-06-01", DayString(payload.Date.Time))

	err = json.Unmarshal([]byte(`{"date":{"_seconds":1748767800,"_nanoseconds":0}}`), &payload)
	assert.NoError(t, err)
	assert.Equal(t, int64(1748767800), payload.Date.Unix())

	err = json.Unmarshal([]byte(`{"date":1748767800}`), &payload)
	assert.NoError(t, err)
	assert.Equal(t, int64(1748767800), payload.Date.Unix())

	err = json.Unmarshal([]byte(`{"date":"bogus"}`), &payload)
	assert.Error(t, err)
}

func TestDayHelpers(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	ts := time.Date(2025, 6, 1, 14, 30, 45, 123, loc)

	start := StartOfDay(ts)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, loc), start)

	end := EndOfDay(ts)
	assert.True(t, end.Before(NextDay(ts)))
	assert.True(t, SameDay(ts, end))

	assert.True(t, SameDay(ts, time.Date(2025, 6, 1, 0, 0, 0, 0, loc)))
	assert.False(t, SameDay(ts, time.Date(2025, 6, 2, 0, 0, 0, 0, loc)))
}
