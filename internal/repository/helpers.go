package repository

import (
	"strconv"
	"time"
)

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// boolToString stores a bool the way JavaScript's String(bool) would.
func boolToString(b bool) string {
	return strconv.FormatBool(b)
}
