package sleepcalc

import (
	"testing"
	"time"

	"github.com/alexanderramin/slumber/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := domain.ParseTimestamp(s)
	require.NoError(t, err)
	return v
}

func TestTotalMinutes_Empty(t *testing.T) {
	assert.Equal(t, 0, TotalMinutes(nil))
	assert.Equal(t, 0, TotalMinutes([]domain.Interval{}))
}

func TestTotalMinutes_ZeroLength(t *testing.T) {
	at := ts(t, "2024-03-10T22:15")
	assert.Equal(t, 0, TotalMinutes([]domain.Interval{{Start: at, End: at}}))
}

func TestTotalMinutes_OvernightWithDates(t *testing.T) {
	iv := domain.Interval{Start: ts(t, "2024-01-01T23:00"), End: ts(t, "2024-01-02T07:00")}
	assert.Equal(t, 480, TotalMinutes([]domain.Interval{iv}))
}

func TestTotalMinutes_MidnightWrap(t *testing.T) {
	// Same calendar date on both ends: raw difference is -960.
	iv := domain.Interval{Start: ts(t, "2024-01-01T23:30"), End: ts(t, "2024-01-01T07:30")}
	assert.Equal(t, 480, TotalMinutes([]domain.Interval{iv}))
}

func TestTotalMinutes_OrderIndependent(t *testing.T) {
	night := domain.Interval{Start: ts(t, "2024-01-01T23:00"), End: ts(t, "2024-01-02T06:00")}
	nap := domain.Interval{Start: ts(t, "2024-01-02T14:00"), End: ts(t, "2024-01-02T14:45")}

	assert.Equal(t, 465, TotalMinutes([]domain.Interval{night, nap}))
	assert.Equal(t, 465, TotalMinutes([]domain.Interval{nap, night}))
}

func TestIntervalMinutes(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		diff time.Duration
		want int
	}{
		{"positive", 90 * time.Minute, 90},
		{"truncates partial minute", 90*time.Minute + 59*time.Second, 90},
		{"one minute back wraps", -time.Minute, 1439},
		{"exactly one day back", -24 * time.Hour, 0},
		{"more than a day back wraps modulo", -25 * time.Hour, 23 * 60},
		{"longer than a day forward is kept", 25 * time.Hour, 25 * 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntervalMinutes(base, base.Add(tt.diff))
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0 min"},
		{45, "45 min"},
		{60, "1 hr"},
		{90, "1 hr 30 min"},
		{480, "8 hr"},
		{1439, "23 hr 59 min"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.minutes))
		})
	}
}

func TestEndFromDuration(t *testing.T) {
	start := ts(t, "2024-01-01T23:00")
	end := EndFromDuration(start, 480)
	assert.Equal(t, "2024-01-02T07:00", end.Format(domain.TimestampLayout))
	assert.Equal(t, 480, IntervalMinutes(start, end))
}

func TestEngine_MatchesTotalMinutes(t *testing.T) {
	var calc Calculator = Engine{}
	ivs := []domain.Interval{{Start: ts(t, "2024-01-01T23:30"), End: ts(t, "2024-01-01T07:30")}}
	assert.Equal(t, TotalMinutes(ivs), calc.TotalMinutes(ivs))
}
