package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/slumber/internal/domain"
	"github.com/alexanderramin/slumber/internal/repository"
)

type settingsService struct {
	prefs        repository.PreferenceStore
	defaultTheme domain.Theme
	observer     UseCaseObserver
}

// NewSettingsService returns the saved theme, or defaultTheme when the user
// never chose one.
func NewSettingsService(prefs repository.PreferenceStore, defaultTheme domain.Theme, observers ...UseCaseObserver) SettingsService {
	if _, ok := domain.ParseTheme(string(defaultTheme)); !ok {
		defaultTheme = domain.ThemeLight
	}
	return &settingsService{
		prefs:        prefs,
		defaultTheme: defaultTheme,
		observer:     useCaseObserverOrNoop(observers),
	}
}

func (s *settingsService) Theme(ctx context.Context) (domain.Theme, error) {
	t, ok, err := s.prefs.Theme(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return s.defaultTheme, nil
	}
	return t, nil
}

func (s *settingsService) SetTheme(ctx context.Context, t domain.Theme) (err error) {
	defer observe(ctx, s.observer, "set-theme", time.Now(), map[string]any{"theme": string(t)}, &err)

	if _, ok := domain.ParseTheme(string(t)); !ok {
		return fmt.Errorf("unknown theme %q", t)
	}
	return s.prefs.SetTheme(ctx, t)
}

func (s *settingsService) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	current, err := s.Theme(ctx)
	if err != nil {
		return "", err
	}
	next := current.Toggle()
	if err := s.SetTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}
