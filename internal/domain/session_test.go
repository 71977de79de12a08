package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp_DatetimeLocal(t *testing.T) {
	got, err := ParseTimestamp(" 2024-01-01T23:30 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC), got)
}

func TestParseTimestamp_RFC3339KeepsWallClockMinute(t *testing.T) {
	got, err := ParseTimestamp("2024-01-01T23:00:59+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC), got)
}

func TestParseTimestamp_Invalid(t *testing.T) {
	_, err := ParseTimestamp("last night")
	assert.ErrorIs(t, err, ErrInvalidTimestamp)
}

func TestInterval_JSONKeepsParsedValue(t *testing.T) {
	start, err := ParseTimestamp("2024-01-01T23:00:59Z")
	require.NoError(t, err)
	end, err := ParseTimestamp("2024-01-01T23:01:00Z")
	require.NoError(t, err)
	in := Interval{Start: start, End: end}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2024-01-01T23:00","end":"2024-01-01T23:01"}`, string(data))

	var out Interval
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
	assert.Equal(t, time.Minute, out.End.Sub(out.Start))
}

func TestWallMinute(t *testing.T) {
	zone := time.FixedZone("X", -5*3600)
	got := WallMinute(time.Date(2024, 3, 9, 6, 45, 30, 999, zone))
	assert.Equal(t, time.Date(2024, 3, 9, 6, 45, 0, 0, time.UTC), got)
}
