// Package sleepcalc computes sleep durations from interval timestamps.
//
// Intervals whose end precedes their start are treated as crossing midnight
// and wrapped into a single day. An interval longer than 24 hours therefore
// cannot be told apart from its modulo-24h equivalent.
package sleepcalc

import (
	"fmt"
	"time"

	"github.com/alexanderramin/slumber/internal/domain"
)

const minutesPerDay = 24 * 60

// Calculator totals the intervals of a session. Every caller that needs a
// session total goes through this so save and preview agree.
type Calculator interface {
	TotalMinutes(intervals []domain.Interval) int
}

// Engine is the default Calculator.
type Engine struct{}

func (Engine) TotalMinutes(intervals []domain.Interval) int {
	return TotalMinutes(intervals)
}

// IntervalMinutes returns whole minutes between start and end, truncated
// toward zero. Negative differences wrap into [0, 1440).
func IntervalMinutes(start, end time.Time) int {
	minutes := int(end.Sub(start) / time.Minute)
	if minutes < 0 {
		minutes = minutes%minutesPerDay + minutesPerDay
		if minutes == minutesPerDay {
			minutes = 0
		}
	}
	return minutes
}

// TotalMinutes sums IntervalMinutes over every interval.
func TotalMinutes(intervals []domain.Interval) int {
	total := 0
	for _, iv := range intervals {
		total += IntervalMinutes(iv.Start, iv.End)
	}
	return total
}

// FormatDuration renders minutes as "H hr M min", "H hr", or "M min".
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60

	if hours == 0 {
		return fmt.Sprintf("%d min", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%d hr", hours)
	}
	return fmt.Sprintf("%d hr %d min", hours, mins)
}

// EndFromDuration returns start advanced by the given number of minutes.
func EndFromDuration(start time.Time, minutes int) time.Time {
	return start.Add(time.Duration(minutes) * time.Minute)
}
