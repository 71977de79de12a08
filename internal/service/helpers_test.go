package service

import (
	"bytes"
	"database/sql"
	"testing"

	"github.com/alexanderramin/slumber/internal/repository"
	"github.com/alexanderramin/slumber/internal/testutil"
)

// setupSleep wires a SleepService over a fresh in-memory database with a
// fixed clock and sequential IDs.
func setupSleep(t *testing.T, opts ...SleepOption) (SleepService, repository.SessionStore, *sql.DB) {
	t.Helper()
	database := testutil.NewTestDB(t)
	store := repository.NewJSONSessionStore(repository.NewSQLiteKVStore(database))

	base := []SleepOption{
		WithIDGenerator(&testutil.SequenceIDs{}),
		WithClock(testutil.FixedClock()),
	}
	svc := NewSleepService(store, testutil.NewTestUoW(database), append(base, opts...)...)
	return svc, store, database
}

// captureObserver returns an observer writing slog text into buf.
func captureObserver(buf *bytes.Buffer) UseCaseObserver {
	return NewLogUseCaseObserver(buf)
}
