package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/slumber/internal/cli/formatter"
	"github.com/alexanderramin/slumber/internal/service"
	"github.com/alexanderramin/slumber/internal/stats"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// App holds the services and terminal hooks used by CLI commands.
type App struct {
	Sleep    service.SleepService
	Settings service.SettingsService
	Import   service.ImportService

	TrendWindow int
	HistoryRows int

	// Optional hooks. Nil values fall back to the real clock, a
	// non-interactive terminal, huh.Form.Run, and tea.Program.Run.
	Now           func() time.Time
	IsInteractive func() bool
	RunForm       func(*huh.Form) error
	RunProgram    func(tea.Model) error
}

// NewRootCmd creates the top-level "slumber" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "slumber",
		Short:         "Personal sleep log and statistics",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.applyTheme(cmd.Context())
		},
	}

	root.AddCommand(
		newLogCmd(app),
		newPreviewCmd(app),
		newHistoryCmd(app),
		newShowCmd(app),
		newRemoveCmd(app),
		newStatsCmd(app),
		newThemeCmd(app),
		newImportCmd(app),
		newExportCmd(app),
	)

	return root
}

func (a *App) applyTheme(ctx context.Context) error {
	if a.Settings == nil {
		return nil
	}
	theme, err := a.Settings.Theme(ctx)
	if err != nil {
		return err
	}
	formatter.ApplyTheme(theme)
	return nil
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) runForm(f *huh.Form) error {
	if a.RunForm != nil {
		return a.RunForm(f)
	}
	return f.Run()
}

func (a *App) runProgram(m tea.Model) error {
	if a.RunProgram != nil {
		return a.RunProgram(m)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (a *App) trendWindow() int {
	if a.TrendWindow > 0 {
		return a.TrendWindow
	}
	return stats.DefaultTrendWindow
}
