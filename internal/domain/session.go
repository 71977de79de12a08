package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the minute-precision layout used for interval endpoints,
// matching an HTML datetime-local value.
const TimestampLayout = "2006-01-02T15:04"

// ParseTimestamp parses a datetime-local value, falling back to RFC 3339.
// The result is normalised with WallMinute, so an RFC 3339 value keeps its
// wall clock but loses seconds and offset, exactly as it will be stored.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(TimestampLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return WallMinute(t), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q (want YYYY-MM-DDTHH:MM)", ErrInvalidTimestamp, s)
}

// WallMinute returns t's wall clock truncated to the minute and labelled
// UTC. That is the precision TimestampLayout stores, so totals computed from
// it survive a save and reload unchanged.
func WallMinute(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}

// Interval is one contiguous sleep period. End may precede Start when the
// interval crosses midnight.
type Interval struct {
	Start time.Time
	End   time.Time
}

type intervalJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (i Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal(intervalJSON{
		Start: i.Start.Format(TimestampLayout),
		End:   i.End.Format(TimestampLayout),
	})
}

func (i *Interval) UnmarshalJSON(data []byte) error {
	var raw intervalJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	start, err := ParseTimestamp(raw.Start)
	if err != nil {
		return fmt.Errorf("interval start: %w", err)
	}
	end, err := ParseTimestamp(raw.End)
	if err != nil {
		return fmt.Errorf("interval end: %w", err)
	}
	i.Start, i.End = start, end
	return nil
}

// SleepSession is one saved sleep record. TotalMinutes is derived from
// Intervals when the session is recorded and is never edited afterwards.
type SleepSession struct {
	ID           string     `json:"id"`
	Intervals    []Interval `json:"sessions"`
	Date         time.Time  `json:"date"`
	TotalMinutes int        `json:"totalMinutes"`
	Notes        *string    `json:"notes,omitempty"`
}

// Note returns the session notes or "" when none were saved.
func (s *SleepSession) Note() string {
	if s.Notes == nil {
		return ""
	}
	return *s.Notes
}

// Totals extracts TotalMinutes from a newest-first history, preserving order.
func Totals(history []SleepSession) []int {
	totals := make([]int, len(history))
	for i, s := range history {
		totals[i] = s.TotalMinutes
	}
	return totals
}
