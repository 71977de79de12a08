package cli

import (
	"bytes"
	"context"
	"regexp"
	"testing"

	"github.com/alexanderramin/slumber/internal/cli/formatter"
	"github.com/alexanderramin/slumber/internal/domain"
	"github.com/alexanderramin/slumber/internal/repository"
	"github.com/alexanderramin/slumber/internal/service"
	"github.com/alexanderramin/slumber/internal/testutil"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// testApp wires real services over an in-memory database. Extra sleep
// options are appended after the deterministic clock and ID generator.
func testApp(t *testing.T, opts ...service.SleepOption) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	kv := repository.NewSQLiteKVStore(database)

	base := []service.SleepOption{
		service.WithIDGenerator(&testutil.SequenceIDs{}),
		service.WithClock(testutil.FixedClock()),
	}
	sessions := repository.NewJSONSessionStore(kv)
	uow := testutil.NewTestUoW(database)
	opts = append(base, opts...)
	settings := service.NewSettingsService(repository.NewKVPreferenceStore(kv), domain.ThemeLight)

	t.Cleanup(func() { formatter.ApplyTheme(domain.ThemeLight) })

	return &App{
		Sleep:       service.NewSleepService(sessions, uow, opts...),
		Settings:    settings,
		Import:      service.NewImportService(sessions, uow, opts...),
		TrendWindow: 5,
		HistoryRows: 20,
		Now:         testutil.FixedClock(),
	}
}

// executeCmd runs the root command with args and returns stripped stdout.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stripANSI(out.String()), err
}

func mustExecute(t *testing.T, app *App, args ...string) string {
	t.Helper()
	out, err := executeCmd(t, app, args...)
	require.NoError(t, err, "slumber %v", args)
	return out
}

// listIDs hands out a fixed list of IDs in order.
type listIDs struct {
	ids []string
	n   int
}

func (l *listIDs) NewID() string {
	id := l.ids[l.n]
	l.n++
	return id
}
