package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/slumber/internal/db"
	"github.com/alexanderramin/slumber/internal/domain"
	"github.com/alexanderramin/slumber/internal/importer"
	"github.com/alexanderramin/slumber/internal/repository"
)

// ImportResult holds the outcome of a history import.
type ImportResult struct {
	Added   int
	Skipped int // already present by ID
	DryRun  bool
}

type ImportService interface {
	Import(ctx context.Context, filePath string, dryRun bool) (*ImportResult, error)
	ImportFile(ctx context.Context, file *importer.ImportFile, dryRun bool) (*ImportResult, error)
	// Export returns the whole history in the same document shape Import reads.
	Export(ctx context.Context) ([]byte, error)
}

type importService struct {
	*sleepService
}

// NewImportService shares its options with NewSleepService so imported
// sessions get the same ID generator, clock and calculator.
func NewImportService(sessions repository.SessionStore, uow db.UnitOfWork, opts ...SleepOption) ImportService {
	return &importService{sleepService: NewSleepService(sessions, uow, opts...).(*sleepService)}
}

func (s *importService) Import(ctx context.Context, filePath string, dryRun bool) (*ImportResult, error) {
	file, err := importer.LoadImportFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportFile(ctx, file, dryRun)
}

func (s *importService) ImportFile(ctx context.Context, file *importer.ImportFile, dryRun bool) (result *ImportResult, err error) {
	fields := map[string]any{"sessions": len(file.Sessions), "dry_run": dryRun}
	defer observe(ctx, s.observer, "import-history", time.Now(), fields, &err)

	if errs := importer.ValidateImportFile(file); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	incoming, err := importer.Convert(file, s.calc, s.ids.NewID, s.now())
	if err != nil {
		return nil, fmt.Errorf("converting import file: %w", err)
	}

	result = &ImportResult{DryRun: dryRun}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		store := txSessionStore(tx)
		history, err := store.Load(ctx)
		if err != nil {
			return err
		}

		known := make(map[string]bool, len(history))
		for _, existing := range history {
			known[existing.ID] = true
		}
		merged := history
		for _, session := range incoming {
			if known[session.ID] {
				result.Skipped++
				continue
			}
			known[session.ID] = true
			merged = append(merged, session)
			result.Added++
		}

		if dryRun || result.Added == 0 {
			return nil
		}
		// Newest first by recorded date; ties keep their existing order.
		slices.SortStableFunc(merged, func(a, b domain.SleepSession) int {
			return b.Date.Compare(a.Date)
		})
		return store.Save(ctx, merged)
	})
	if err != nil {
		return nil, err
	}
	fields["added"] = result.Added
	fields["skipped"] = result.Skipped
	return result, nil
}

func (s *importService) Export(ctx context.Context) ([]byte, error) {
	history, err := s.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	doc := map[string][]domain.SleepSession{repository.KeySessions: history}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding sleep history: %w", err)
	}
	return data, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
