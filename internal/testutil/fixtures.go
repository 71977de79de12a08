package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/slumber/internal/domain"
	"github.com/alexanderramin/slumber/internal/sleepcalc"
)

var testSessionCounter atomic.Int64

// FixedNow is the reference instant used by fixtures and test clocks.
var FixedNow = time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC)

// FixedClock returns a clock that always reports FixedNow.
func FixedClock() func() time.Time {
	return func() time.Time { return FixedNow }
}

// SequenceIDs hands out "id-1", "id-2", ... in order.
type SequenceIDs struct {
	n atomic.Int64
}

func (s *SequenceIDs) NewID() string {
	return fmt.Sprintf("id-%d", s.n.Add(1))
}

// Overnight returns an interval starting at 23:00 on day and lasting minutes.
func Overnight(day time.Time, minutes int) domain.Interval {
	start := time.Date(day.Year(), day.Month(), day.Day(), 23, 0, 0, 0, time.UTC)
	return domain.Interval{Start: start, End: sleepcalc.EndFromDuration(start, minutes)}
}

// Session options
type SessionOption func(*domain.SleepSession)

func WithNotes(n string) SessionOption {
	return func(s *domain.SleepSession) {
		s.Notes = &n
	}
}

func WithID(id string) SessionOption {
	return func(s *domain.SleepSession) {
		s.ID = id
	}
}

func WithDate(d time.Time) SessionOption {
	return func(s *domain.SleepSession) {
		s.Date = d
	}
}

func WithIntervals(ivs ...domain.Interval) SessionOption {
	return func(s *domain.SleepSession) {
		s.Intervals = ivs
	}
}

// NewTestSession builds a session with one overnight interval of the given
// length. TotalMinutes is always recomputed from the final intervals.
func NewTestSession(minutes int, opts ...SessionOption) domain.SleepSession {
	n := testSessionCounter.Add(1)
	s := domain.SleepSession{
		ID:        fmt.Sprintf("sess-%d", n),
		Intervals: []domain.Interval{Overnight(FixedNow.AddDate(0, 0, -1), minutes)},
		Date:      FixedNow,
	}
	for _, opt := range opts {
		opt(&s)
	}
	s.TotalMinutes = sleepcalc.TotalMinutes(s.Intervals)
	return s
}
