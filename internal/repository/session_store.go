package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/slumber/internal/domain"
)

// JSONSessionStore keeps the full history as one JSON array under
// KeySessions. Append and Delete are read-modify-write; wrap them in a
// transaction-scoped KVStore when atomicity matters.
type JSONSessionStore struct {
	kv KVStore
}

func NewJSONSessionStore(kv KVStore) *JSONSessionStore {
	return &JSONSessionStore{kv: kv}
}

// Load returns the stored history. A missing key is an empty history.
func (s *JSONSessionStore) Load(ctx context.Context) ([]domain.SleepSession, error) {
	raw, err := s.kv.Get(ctx, KeySessions)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []domain.SleepSession{}, nil
		}
		return nil, err
	}

	var history []domain.SleepSession
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		return nil, fmt.Errorf("decoding sleep history: %w", err)
	}
	if history == nil {
		history = []domain.SleepSession{}
	}
	return history, nil
}

func (s *JSONSessionStore) Save(ctx context.Context, history []domain.SleepSession) error {
	if history == nil {
		history = []domain.SleepSession{}
	}
	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("encoding sleep history: %w", err)
	}
	return s.kv.Set(ctx, KeySessions, string(data))
}

// Append puts the session at the front of the history.
func (s *JSONSessionStore) Append(ctx context.Context, session domain.SleepSession) error {
	history, err := s.Load(ctx)
	if err != nil {
		return err
	}
	for _, existing := range history {
		if existing.ID == session.ID {
			return fmt.Errorf("sleep session %s already exists", session.ID)
		}
	}
	return s.Save(ctx, append([]domain.SleepSession{session}, history...))
}

func (s *JSONSessionStore) Get(ctx context.Context, id string) (*domain.SleepSession, error) {
	history, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range history {
		if history[i].ID == id {
			return &history[i], nil
		}
	}
	return nil, fmt.Errorf("sleep session %s: %w", id, ErrNotFound)
}

func (s *JSONSessionStore) Delete(ctx context.Context, id string) error {
	history, err := s.Load(ctx)
	if err != nil {
		return err
	}
	kept := make([]domain.SleepSession, 0, len(history))
	for _, existing := range history {
		if existing.ID != id {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(history) {
		return fmt.Errorf("sleep session %s: %w", id, ErrNotFound)
	}
	return s.Save(ctx, kept)
}
