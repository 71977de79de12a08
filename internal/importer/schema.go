package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexanderramin/slumber/internal/repository"
)

// ImportFile is a sleep history document. It is either a bare JSON array of
// sessions or an object holding that array under "sleepSessions", which is
// how the stored history and browser localStorage dumps look.
type ImportFile struct {
	Sessions []SessionImport `json:"sleepSessions"`
}

// SessionImport is one session as written by an earlier export.
type SessionImport struct {
	ID           string           `json:"id,omitempty"`
	Intervals    []IntervalImport `json:"sessions"`
	Date         string           `json:"date,omitempty"`
	TotalMinutes *int             `json:"totalMinutes,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
}

// IntervalImport keeps timestamps as text so validation can report them.
type IntervalImport struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ParseImportFile decodes either accepted document shape.
func ParseImportFile(data []byte) (*ImportFile, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var sessions []SessionImport
		if err := json.Unmarshal(trimmed, &sessions); err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
		return &ImportFile{Sessions: sessions}, nil
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	raw, ok := doc[repository.KeySessions]
	if !ok {
		return nil, fmt.Errorf("parsing import file: no %q array", repository.KeySessions)
	}
	var file ImportFile
	if err := json.Unmarshal(raw, &file.Sessions); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &file, nil
}

// LoadImportFile reads and parses a sleep history file.
func LoadImportFile(path string) (*ImportFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportFile(data)
}
