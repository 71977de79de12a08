package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/slumber/internal/domain"
	"github.com/alexanderramin/slumber/internal/sleepcalc"
)

// Convert turns a validated ImportFile into sessions. Missing IDs come from
// newID and missing dates from now. Stored totals are ignored and recomputed
// with calc, so a hand-edited file cannot disagree with its intervals.
// Call ValidateImportFile first.
func Convert(file *ImportFile, calc sleepcalc.Calculator, newID func() string, now time.Time) ([]domain.SleepSession, error) {
	out := make([]domain.SleepSession, 0, len(file.Sessions))

	for i, s := range file.Sessions {
		intervals := make([]domain.Interval, 0, len(s.Intervals))
		for j, iv := range s.Intervals {
			start, err := domain.ParseTimestamp(iv.Start)
			if err != nil {
				return nil, fmt.Errorf("sleepSessions[%d].sessions[%d].start: %w", i, j, err)
			}
			end, err := domain.ParseTimestamp(iv.End)
			if err != nil {
				return nil, fmt.Errorf("sleepSessions[%d].sessions[%d].end: %w", i, j, err)
			}
			intervals = append(intervals, domain.Interval{Start: start, End: end})
		}

		date := now.UTC()
		if s.Date != "" {
			d, err := time.Parse(time.RFC3339, s.Date)
			if err != nil {
				return nil, fmt.Errorf("sleepSessions[%d].date: %w", i, err)
			}
			date = d.UTC()
		}

		id := s.ID
		if id == "" {
			id = newID()
		}

		var notes string
		if s.Notes != nil {
			notes = *s.Notes
		}

		out = append(out, domain.SleepSession{
			ID:           id,
			Intervals:    intervals,
			Date:         date,
			TotalMinutes: calc.TotalMinutes(intervals),
			Notes:        domain.OptionalNote(notes),
		})
	}

	return out, nil
}
