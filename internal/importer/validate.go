package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/slumber/internal/domain"
)

// ValidateImportFile checks every session before conversion and returns all
// problems found.
func ValidateImportFile(file *ImportFile) []error {
	var errs []error

	ids := make(map[string]bool)
	for i, s := range file.Sessions {
		prefix := fmt.Sprintf("sleepSessions[%d]", i)

		if s.ID != "" {
			if ids[s.ID] {
				errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, s.ID))
			}
			ids[s.ID] = true
		}

		if len(s.Intervals) == 0 {
			errs = append(errs, fmt.Errorf("%s.sessions: %w", prefix, domain.ErrNoIntervals))
		}
		for j, iv := range s.Intervals {
			ivPrefix := fmt.Sprintf("%s.sessions[%d]", prefix, j)
			errs = append(errs, validateTimestamp(ivPrefix+".start", iv.Start)...)
			errs = append(errs, validateTimestamp(ivPrefix+".end", iv.End)...)
		}

		if s.Date != "" {
			if _, err := time.Parse(time.RFC3339, s.Date); err != nil {
				errs = append(errs, fmt.Errorf("%s.date: invalid date %q (expected RFC 3339)", prefix, s.Date))
			}
		}
		if s.TotalMinutes != nil && *s.TotalMinutes < 0 {
			errs = append(errs, fmt.Errorf("%s.totalMinutes must not be negative", prefix))
		}
	}

	return errs
}

func validateTimestamp(field, value string) []error {
	if value == "" {
		return []error{fmt.Errorf("%s is required", field)}
	}
	if _, err := domain.ParseTimestamp(value); err != nil {
		return []error{fmt.Errorf("%s: %w", field, err)}
	}
	return nil
}
