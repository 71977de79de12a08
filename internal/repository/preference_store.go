package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/slumber/internal/domain"
)

// KVPreferenceStore stores the theme as a "true"/"false" dark-mode flag.
type KVPreferenceStore struct {
	kv KVStore
}

func NewKVPreferenceStore(kv KVStore) *KVPreferenceStore {
	return &KVPreferenceStore{kv: kv}
}

func (s *KVPreferenceStore) Theme(ctx context.Context) (domain.Theme, bool, error) {
	raw, err := s.kv.Get(ctx, KeyDarkMode)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	dark, err := strconv.ParseBool(raw)
	if err != nil {
		return "", false, fmt.Errorf("decoding %s preference %q: %w", KeyDarkMode, raw, err)
	}
	if dark {
		return domain.ThemeDark, true, nil
	}
	return domain.ThemeLight, true, nil
}

func (s *KVPreferenceStore) SetTheme(ctx context.Context, t domain.Theme) error {
	return s.kv.Set(ctx, KeyDarkMode, boolToString(t == domain.ThemeDark))
}
