package domain

import "errors"

var (
	ErrNoIntervals      = errors.New("a sleep session needs at least one interval")
	ErrEmptyHistory     = errors.New("no sleep sessions recorded")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)
