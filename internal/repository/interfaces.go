package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/slumber/internal/domain"
)

// ErrNotFound is returned when a key or record does not exist.
var ErrNotFound = errors.New("not found")

// Storage keys. The session history and theme preference each live under a
// single key, the same layout the web version kept in local storage.
const (
	KeySessions = "sleepSessions"
	KeyDarkMode = "darkMode"
)

// KVStore holds opaque string values under string keys.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// SessionStore persists the whole sleep history, newest first.
type SessionStore interface {
	Load(ctx context.Context) ([]domain.SleepSession, error)
	Save(ctx context.Context, history []domain.SleepSession) error
	Append(ctx context.Context, s domain.SleepSession) error
	Get(ctx context.Context, id string) (*domain.SleepSession, error)
	Delete(ctx context.Context, id string) error
}

// PreferenceStore persists display preferences.
type PreferenceStore interface {
	// Theme reports the saved theme and whether one was saved at all.
	Theme(ctx context.Context) (domain.Theme, bool, error)
	SetTheme(ctx context.Context, t domain.Theme) error
}
