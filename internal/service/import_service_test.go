package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/slumber/internal/importer"
	"github.com/alexanderramin/slumber/internal/repository"
	"github.com/alexanderramin/slumber/internal/sleepcalc"
	"github.com/alexanderramin/slumber/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupImport(t *testing.T, opts ...SleepOption) (ImportService, repository.SessionStore) {
	t.Helper()
	database := testutil.NewTestDB(t)
	store := repository.NewJSONSessionStore(repository.NewSQLiteKVStore(database))
	base := []SleepOption{
		WithIDGenerator(&testutil.SequenceIDs{}),
		WithClock(testutil.FixedClock()),
	}
	return NewImportService(store, testutil.NewTestUoW(database), append(base, opts...)...), store
}

const legacyDoc = `{"sleepSessions":[
  {"id":"1704179100000","sessions":[{"start":"2024-01-01T23:00","end":"2024-01-02T07:00"}],"date":"2024-01-02T07:05:00.000Z","totalMinutes":480},
  {"sessions":[{"start":"2023-12-31T23:30","end":"2023-12-31T06:00"}],"date":"2024-01-01T06:10:00.000Z","totalMinutes":1,"notes":"restless"}
],"darkMode":"true"}`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImport_MergesNewestFirst(t *testing.T) {
	svc, store := setupImport(t)
	ctx := context.Background()

	existing := testutil.NewTestSession(400, testutil.WithID("mine"),
		testutil.WithDate(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)))
	require.NoError(t, store.Append(ctx, existing))

	res, err := svc.Import(ctx, writeFile(t, legacyDoc), false)
	require.NoError(t, err)
	assert.Equal(t, &ImportResult{Added: 2}, res)

	history, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "1704179100000", history[0].ID)
	assert.Equal(t, "mine", history[1].ID)
	assert.Equal(t, "id-1", history[2].ID)
	assert.Equal(t, 390, history[2].TotalMinutes, "stored total is recomputed")
	assert.Equal(t, "restless", history[2].Note())
}

func TestImport_SecondsAndOffsetsSurviveReload(t *testing.T) {
	svc, store := setupImport(t)
	ctx := context.Background()

	doc := `[{"id":"z","sessions":[{"start":"2024-01-01T23:00:59Z","end":"2024-01-02T07:00:01+01:00"}]}]`
	_, err := svc.Import(ctx, writeFile(t, doc), false)
	require.NoError(t, err)

	reloaded, err := store.Get(ctx, "z")
	require.NoError(t, err)
	assert.Equal(t, 480, reloaded.TotalMinutes)
	assert.Equal(t, sleepcalc.TotalMinutes(reloaded.Intervals), reloaded.TotalMinutes)
}

func TestImport_SkipsKnownIDs(t *testing.T) {
	svc, store := setupImport(t)
	ctx := context.Background()
	path := writeFile(t, legacyDoc)

	_, err := svc.Import(ctx, path, false)
	require.NoError(t, err)

	res, err := svc.Import(ctx, path, false)
	require.NoError(t, err)
	// The session without an ID gets a fresh one each time.
	assert.Equal(t, 1, res.Added)
	assert.Equal(t, 1, res.Skipped)

	history, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 3)
}

func TestImport_DryRunWritesNothing(t *testing.T) {
	svc, store := setupImport(t)
	ctx := context.Background()

	res, err := svc.Import(ctx, writeFile(t, legacyDoc), true)
	require.NoError(t, err)
	assert.Equal(t, &ImportResult{Added: 2, DryRun: true}, res)

	history, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestImport_ValidationErrorsListed(t *testing.T) {
	svc, store := setupImport(t)

	_, err := svc.ImportFile(context.Background(), &importer.ImportFile{Sessions: []importer.SessionImport{
		{ID: "x"},
		{ID: "y", Intervals: []importer.IntervalImport{{Start: "soon", End: "2024-01-01T07:00"}}},
	}}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed (2 errors)")
	assert.Contains(t, err.Error(), "sleepSessions[1].sessions[0].start")

	history, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestImport_MissingFile(t *testing.T) {
	svc, _ := setupImport(t)
	_, err := svc.Import(context.Background(), filepath.Join(t.TempDir(), "nope.json"), false)
	assert.ErrorContains(t, err, "loading import file")
}

func TestImport_RollsBackOnWriteFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	store := repository.NewJSONSessionStore(repository.NewSQLiteKVStore(database))
	uow := &testutil.FailingWriteUoW{DB: database, FailOn: 1, Err: errors.New("disk full")}
	svc := NewImportService(store, uow, WithIDGenerator(&testutil.SequenceIDs{}))

	_, err := svc.Import(context.Background(), writeFile(t, legacyDoc), false)
	assert.ErrorContains(t, err, "disk full")

	history, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestExport_ReadableByImport(t *testing.T) {
	src, srcStore := setupImport(t)
	ctx := context.Background()
	require.NoError(t, srcStore.Append(ctx, testutil.NewTestSession(450, testutil.WithNotes("ok"))))
	require.NoError(t, srcStore.Append(ctx, testutil.NewTestSession(300)))

	data, err := src.Export(ctx)
	require.NoError(t, err)

	var doc map[string][]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc[repository.KeySessions], 2)

	dst, dstStore := setupImport(t)
	path := writeFile(t, string(data))
	res, err := dst.Import(ctx, path, false)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Added)

	want, err := srcStore.Load(ctx)
	require.NoError(t, err)
	got, err := dstStore.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExport_EmptyHistory(t *testing.T) {
	svc, _ := setupImport(t)
	data, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"sleepSessions":[]}`, string(data))
}

func TestImport_ObserverLogsUseCase(t *testing.T) {
	var buf bytes.Buffer
	svc, _ := setupImport(t, WithObserver(captureObserver(&buf)))

	_, err := svc.Import(context.Background(), writeFile(t, legacyDoc), false)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "use_case=import-history")
	assert.Contains(t, buf.String(), "added=2")
}
