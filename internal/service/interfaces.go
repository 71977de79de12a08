package service

import (
	"context"

	"github.com/alexanderramin/slumber/internal/domain"
	"github.com/alexanderramin/slumber/internal/stats"
)

// RecordRequest carries already-parsed intervals from the presentation layer.
type RecordRequest struct {
	Intervals []domain.Interval
	Notes     string
}

// Preview is the live total shown before a session is saved.
type Preview struct {
	TotalMinutes int
	Formatted    string
	Quality      domain.QualityBand
	Message      string
}

type SleepService interface {
	Record(ctx context.Context, req RecordRequest) (*domain.SleepSession, error)
	Preview(intervals []domain.Interval) Preview
	// History returns sessions newest first. limit <= 0 returns everything.
	History(ctx context.Context, limit int) ([]domain.SleepSession, error)
	Get(ctx context.Context, id string) (*domain.SleepSession, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context, window int) (stats.Summary, error)
}

type SettingsService interface {
	Theme(ctx context.Context) (domain.Theme, error)
	SetTheme(ctx context.Context, t domain.Theme) error
	ToggleTheme(ctx context.Context) (domain.Theme, error)
}
