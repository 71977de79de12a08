package service

import (
	"context"
	"time"

	"github.com/alexanderramin/slumber/internal/db"
	"github.com/alexanderramin/slumber/internal/domain"
	"github.com/alexanderramin/slumber/internal/repository"
	"github.com/alexanderramin/slumber/internal/sleepcalc"
	"github.com/alexanderramin/slumber/internal/stats"
)

type sleepService struct {
	sessions repository.SessionStore
	uow      db.UnitOfWork
	calc     sleepcalc.Calculator
	ids      IDGenerator
	now      func() time.Time
	observer UseCaseObserver
}

// SleepOption customizes a SleepService.
type SleepOption func(*sleepService)

func WithIDGenerator(g IDGenerator) SleepOption {
	return func(s *sleepService) { s.ids = g }
}

func WithClock(now func() time.Time) SleepOption {
	return func(s *sleepService) { s.now = now }
}

func WithCalculator(c sleepcalc.Calculator) SleepOption {
	return func(s *sleepService) { s.calc = c }
}

func WithObserver(o UseCaseObserver) SleepOption {
	return func(s *sleepService) {
		if o != nil {
			s.observer = o
		}
	}
}

// NewSleepService reads through sessions and writes through tx-scoped
// stores opened on uow.
func NewSleepService(sessions repository.SessionStore, uow db.UnitOfWork, opts ...SleepOption) SleepService {
	s := &sleepService{
		sessions: sessions,
		uow:      uow,
		calc:     sleepcalc.Engine{},
		ids:      UUIDGenerator{},
		now:      time.Now,
		observer: NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func txSessionStore(tx db.DBTX) repository.SessionStore {
	return repository.NewJSONSessionStore(repository.NewSQLiteKVStore(tx))
}

func (s *sleepService) Record(ctx context.Context, req RecordRequest) (session *domain.SleepSession, err error) {
	fields := map[string]any{"intervals": len(req.Intervals)}
	defer observe(ctx, s.observer, "record-sleep", time.Now(), fields, &err)

	if len(req.Intervals) == 0 {
		return nil, domain.ErrNoIntervals
	}

	// Stored at minute precision, so total what will be stored.
	intervals := make([]domain.Interval, len(req.Intervals))
	for i, iv := range req.Intervals {
		intervals[i] = domain.Interval{Start: domain.WallMinute(iv.Start), End: domain.WallMinute(iv.End)}
	}

	recorded := domain.SleepSession{
		ID:           s.ids.NewID(),
		Intervals:    intervals,
		Date:         s.now().UTC(),
		TotalMinutes: s.calc.TotalMinutes(intervals),
		Notes:        domain.OptionalNote(req.Notes),
	}
	fields["session_id"] = recorded.ID
	fields["total_min"] = recorded.TotalMinutes

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return txSessionStore(tx).Append(ctx, recorded)
	})
	if err != nil {
		return nil, err
	}
	return &recorded, nil
}

func (s *sleepService) Preview(intervals []domain.Interval) Preview {
	total := s.calc.TotalMinutes(intervals)
	band := sleepcalc.Quality(total)
	return Preview{
		TotalMinutes: total,
		Formatted:    sleepcalc.FormatDuration(total),
		Quality:      band,
		Message:      sleepcalc.QualityMessage(band),
	}
}

func (s *sleepService) History(ctx context.Context, limit int) ([]domain.SleepSession, error) {
	history, err := s.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(history) > limit {
		history = history[:limit]
	}
	return history, nil
}

func (s *sleepService) Get(ctx context.Context, id string) (*domain.SleepSession, error) {
	return s.sessions.Get(ctx, id)
}

func (s *sleepService) Delete(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "delete-sleep", time.Now(), map[string]any{"session_id": id}, &err)

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return txSessionStore(tx).Delete(ctx, id)
	})
}

// Stats summarizes the whole history. A non-positive window falls back to
// stats.DefaultTrendWindow.
func (s *sleepService) Stats(ctx context.Context, window int) (stats.Summary, error) {
	history, err := s.sessions.Load(ctx)
	if err != nil {
		return stats.Summary{}, err
	}
	if window <= 0 {
		window = stats.DefaultTrendWindow
	}
	return stats.Summarize(domain.Totals(history), window)
}
